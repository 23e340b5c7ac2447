package db

import (
	"context"

	"github.com/finance-tracker/backend/internal/model"
)

const accountColumns = `id, name, email, account_type, balance, description, created_at`

func scanAccount(row interface{ Scan(...any) error }) (*model.Account, error) {
	var a model.Account
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.AccountType,
		&a.Balance,
		&a.Description,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *Postgres) CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error) {
	query := `
		INSERT INTO accounts (name, email, account_type, balance, description, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + accountColumns
	return scanAccount(db.Pool.QueryRow(ctx, query, a.Name, a.Email, a.AccountType, a.Balance, a.Description))
}

func (db *Postgres) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (db *Postgres) UpdateAccount(ctx context.Context, a *model.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, email = $3, account_type = $4, description = $5
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, a.ID, a.Name, a.Email, a.AccountType, a.Description)
	return err
}

func (db *Postgres) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
