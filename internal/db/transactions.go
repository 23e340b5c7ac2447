package db

import (
	"context"

	"github.com/finance-tracker/backend/internal/model"
)

const transactionColumns = `id, account_id, amount, tx_type, tx_date, category_id, notes`

func scanTransaction(row interface{ Scan(...any) error }) (*model.Transaction, error) {
	var t model.Transaction
	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.Amount,
		&t.Type,
		&t.Date,
		&t.CategoryID,
		&t.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) CreateTransaction(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, amount, tx_type, tx_date, category_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns
	return scanTransaction(db.Pool.QueryRow(ctx, query,
		t.AccountID, t.Amount, t.Type, t.Date, t.CategoryID, t.Notes))
}

func (db *Postgres) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY tx_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (db *Postgres) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $2, amount = $3, tx_type = $4, tx_date = $5, category_id = $6, notes = $7
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, t.ID, t.AccountID, t.Amount, t.Type, t.Date, t.CategoryID, t.Notes)
	return err
}

func (db *Postgres) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
