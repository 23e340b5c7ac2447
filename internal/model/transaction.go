package model

import "time"

type Transaction struct {
	ID         int64
	AccountID  int64
	Amount     int64
	Type       string
	Date       time.Time
	CategoryID int64
	Notes      string
}

type TransactionRequest struct {
	AccountID  int64     `json:"accountId"`
	Amount     int64     `json:"amount"`
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	CategoryID int64     `json:"categoryId"`
	Notes      string    `json:"notes"`
}

type TransactionResponse struct {
	ID         int64     `json:"id"`
	AccountID  int64     `json:"accountId"`
	Amount     int64     `json:"amount"`
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	CategoryID int64     `json:"categoryId"`
	Notes      string    `json:"notes"`
}

func (t *Transaction) ToResponse() TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		AccountID:  t.AccountID,
		Amount:     t.Amount,
		Type:       t.Type,
		Date:       t.Date,
		CategoryID: t.CategoryID,
		Notes:      t.Notes,
	}
}
