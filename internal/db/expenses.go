package db

import (
	"context"

	"github.com/finance-tracker/backend/internal/model"
)

const expenseColumns = `id, name, description, amount, expense_date, category, sub_category, payment_method, notes, user_id`

func scanExpense(row interface{ Scan(...any) error }) (*model.Expense, error) {
	var e model.Expense
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Amount,
		&e.Date,
		&e.Category,
		&e.SubCategory,
		&e.PaymentMethod,
		&e.Notes,
		&e.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (db *Postgres) CreateExpense(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	query := `
		INSERT INTO expenses (name, description, amount, expense_date, category, sub_category, payment_method, notes, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + expenseColumns
	return scanExpense(db.Pool.QueryRow(ctx, query,
		e.Name, e.Description, e.Amount, e.Date, e.Category, e.SubCategory, e.PaymentMethod, e.Notes, e.UserID))
}

func (db *Postgres) GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	return scanExpense(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func (db *Postgres) UpdateExpense(ctx context.Context, e *model.Expense) error {
	query := `
		UPDATE expenses
		SET name = $2, description = $3, amount = $4, expense_date = $5,
		    category = $6, sub_category = $7, payment_method = $8, notes = $9
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query,
		e.ID, e.Name, e.Description, e.Amount, e.Date, e.Category, e.SubCategory, e.PaymentMethod, e.Notes)
	return err
}

func (db *Postgres) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
