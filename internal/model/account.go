package model

import "time"

type Account struct {
	ID          int64
	Name        string
	Email       string
	AccountType string
	Balance     float64
	Description string
	CreatedAt   time.Time
}

type CreateAccountRequest struct {
	Name           string  `json:"name"`
	InitialBalance float64 `json:"initialBalance"`
	Description    string  `json:"description"`
	Email          string  `json:"email"`
}

type UpdateAccountRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
	Description string `json:"description"`
}

type AccountResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Balance     float64   `json:"balance"`
	AccountType string    `json:"accountType"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a *Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Balance:     a.Balance,
		AccountType: a.AccountType,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}
