package db

import (
	"context"

	"github.com/finance-tracker/backend/internal/model"
)

func (db *Postgres) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
		INSERT INTO expense_categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`
	var out model.Category
	err := db.Pool.QueryRow(ctx, query, c.Name, c.Description).Scan(&out.ID, &out.Name, &out.Description)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (db *Postgres) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, description FROM expense_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *Postgres) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, description FROM expense_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (db *Postgres) UpdateCategory(ctx context.Context, c *model.Category) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE expense_categories SET name = $2, description = $3 WHERE id = $1`,
		c.ID, c.Name, c.Description)
	return err
}

func (db *Postgres) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) ListSubCategories(ctx context.Context, categoryID int64) ([]model.SubCategory, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, category_id FROM expense_sub_categories WHERE category_id = $1 ORDER BY id`,
		categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.SubCategory
	for rows.Next() {
		var s model.SubCategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (db *Postgres) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, description FROM expense_payment_methods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []model.PaymentMethod
	for rows.Next() {
		var m model.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}
