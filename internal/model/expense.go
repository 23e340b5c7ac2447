package model

import "time"

type Expense struct {
	ID            int64
	Name          string
	Description   string
	Amount        float64
	Date          time.Time
	Category      string
	SubCategory   string
	PaymentMethod string
	Notes         string
	UserID        int64
}

type ExpenseRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"subCategory"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes"`
	UserID        int64     `json:"userId"`
}

type ExpenseResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"subCategory"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes"`
	UserID        int64     `json:"userId"`
}

func (e *Expense) ToResponse() ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          e.Date,
		Category:      e.Category,
		SubCategory:   e.SubCategory,
		PaymentMethod: e.PaymentMethod,
		Notes:         e.Notes,
		UserID:        e.UserID,
	}
}
