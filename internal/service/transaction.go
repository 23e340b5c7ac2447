package service

import (
	"context"

	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/model"
)

type transactionStore interface {
	CreateTransaction(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, t *model.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
}

type TransactionService struct {
	store transactionStore
}

func NewTransactionService(store transactionStore) *TransactionService {
	return &TransactionService{store: store}
}

func (s *TransactionService) Create(ctx context.Context, req model.TransactionRequest) (*model.TransactionResponse, error) {
	if req.AccountID <= 0 {
		return nil, NewValidation("Transaction account id is required.")
	}

	transaction, err := s.store.CreateTransaction(ctx, &model.Transaction{
		AccountID:  req.AccountID,
		Amount:     req.Amount,
		Type:       req.Type,
		Date:       req.Date,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}

	resp := transaction.ToResponse()
	return &resp, nil
}

func (s *TransactionService) GetByID(ctx context.Context, id int64) (*model.TransactionResponse, error) {
	transaction, err := s.store.GetTransactionByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Transaction", id)
		}
		return nil, err
	}
	resp := transaction.ToResponse()
	return &resp, nil
}

func (s *TransactionService) List(ctx context.Context) ([]model.TransactionResponse, error) {
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, transactions[i].ToResponse())
	}
	return out, nil
}

func (s *TransactionService) Update(ctx context.Context, id int64, req model.TransactionRequest) (*model.TransactionResponse, error) {
	transaction, err := s.store.GetTransactionByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Transaction", id)
		}
		return nil, err
	}

	transaction.Amount = req.Amount
	transaction.Type = req.Type
	transaction.Date = req.Date
	transaction.CategoryID = req.CategoryID
	transaction.Notes = req.Notes

	if err := s.store.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	resp := transaction.ToResponse()
	return &resp, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteTransaction(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFound("Transaction", id)
	}
	return nil
}
