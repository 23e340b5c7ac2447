package db

import (
	"context"
	"log"

	"github.com/finance-tracker/backend/internal/model"
	"github.com/finance-tracker/backend/internal/password"
)

// Seed inserts demo users, expense categories, sub-categories and payment
// methods into an empty database. It is a no-op once any user exists.
func (db *Postgres) Seed(ctx context.Context) error {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		user     model.User
		password string
	}{
		{
			user: model.User{
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john.doe@example.com",
				Role:      "User",
			},
			password: "Password123",
		},
		{
			user: model.User{
				FirstName: "Jane",
				LastName:  "Smith",
				Email:     "jane.smith@example.com",
				Role:      "Admin",
			},
			password: "Password456",
		},
	}

	for _, s := range users {
		hash, err := password.Hash(s.password)
		if err != nil {
			return err
		}
		s.user.PasswordHash = hash
		if _, err := db.CreateUser(ctx, &s.user); err != nil {
			return err
		}
	}

	categories := map[string][]model.SubCategory{
		"Food & Dining": {
			{Name: "Restaurants", Description: "Dining out"},
			{Name: "Groceries", Description: "Food shopping"},
		},
		"Transportation": {
			{Name: "Gas", Description: "Fuel for vehicles"},
			{Name: "Public Transport", Description: "Buses, trains, etc."},
		},
		"Entertainment": nil,
		"Utilities":     nil,
	}
	descriptions := map[string]string{
		"Food & Dining":  "Restaurants, groceries, etc.",
		"Transportation": "Gas, public transport, etc.",
		"Entertainment":  "Movies, games, etc.",
		"Utilities":      "Electricity, water, internet, etc.",
	}

	for _, name := range []string{"Food & Dining", "Transportation", "Entertainment", "Utilities"} {
		created, err := db.CreateCategory(ctx, &model.Category{Name: name, Description: descriptions[name]})
		if err != nil {
			return err
		}
		for _, sub := range categories[name] {
			_, err := db.Pool.Exec(ctx,
				`INSERT INTO expense_sub_categories (name, description, category_id) VALUES ($1, $2, $3)`,
				sub.Name, sub.Description, created.ID)
			if err != nil {
				return err
			}
		}
	}

	paymentMethods := []model.PaymentMethod{
		{Name: "Credit Card", Description: "Credit card payments"},
		{Name: "Debit Card", Description: "Debit card payments"},
		{Name: "Cash", Description: "Cash payments"},
		{Name: "Bank Transfer", Description: "Direct bank transfers"},
	}
	for _, m := range paymentMethods {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO expense_payment_methods (name, description) VALUES ($1, $2)`,
			m.Name, m.Description)
		if err != nil {
			return err
		}
	}

	log.Printf("[Seed] Demo data inserted")
	return nil
}
