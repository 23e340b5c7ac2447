package service

import (
	"context"

	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/model"
)

type expenseStore interface {
	CreateExpense(ctx context.Context, e *model.Expense) (*model.Expense, error)
	GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	UpdateExpense(ctx context.Context, e *model.Expense) error
	DeleteExpense(ctx context.Context, id int64) (bool, error)
}

type ExpenseService struct {
	store expenseStore
}

func NewExpenseService(store expenseStore) *ExpenseService {
	return &ExpenseService{store: store}
}

func (s *ExpenseService) Create(ctx context.Context, req model.ExpenseRequest) (*model.ExpenseResponse, error) {
	if req.Name == "" {
		return nil, NewValidation("Expense name is required.")
	}

	expense, err := s.store.CreateExpense(ctx, &model.Expense{
		Name:          req.Name,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		UserID:        req.UserID,
	})
	if err != nil {
		return nil, err
	}

	resp := expense.ToResponse()
	return &resp, nil
}

func (s *ExpenseService) GetByID(ctx context.Context, id int64) (*model.ExpenseResponse, error) {
	expense, err := s.store.GetExpenseByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Expense", id)
		}
		return nil, err
	}
	resp := expense.ToResponse()
	return &resp, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]model.ExpenseResponse, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, expenses[i].ToResponse())
	}
	return out, nil
}

// Update replaces every mutable field; the owning user never changes.
func (s *ExpenseService) Update(ctx context.Context, id int64, req model.ExpenseRequest) (*model.ExpenseResponse, error) {
	expense, err := s.store.GetExpenseByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Expense", id)
		}
		return nil, err
	}

	expense.Name = req.Name
	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.Date = req.Date
	expense.Category = req.Category
	expense.SubCategory = req.SubCategory
	expense.PaymentMethod = req.PaymentMethod
	expense.Notes = req.Notes

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}

	resp := expense.ToResponse()
	return &resp, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFound("Expense", id)
	}
	return nil
}
