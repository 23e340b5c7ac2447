package service

import (
	"context"

	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/model"
	"github.com/finance-tracker/backend/internal/validate"
)

type accountStore interface {
	CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	UpdateAccount(ctx context.Context, a *model.Account) error
	DeleteAccount(ctx context.Context, id int64) (bool, error)
}

type AccountService struct {
	store accountStore
}

func NewAccountService(store accountStore) *AccountService {
	return &AccountService{store: store}
}

func (s *AccountService) Create(ctx context.Context, req model.CreateAccountRequest) (*model.AccountResponse, error) {
	if msg := validate.Error(validate.CreateAccountRules(req)...); msg != "" {
		return nil, NewValidation(msg)
	}

	account, err := s.store.CreateAccount(ctx, &model.Account{
		Name:        req.Name,
		Email:       req.Email,
		AccountType: "Checking",
		Balance:     req.InitialBalance,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	resp := account.ToResponse()
	return &resp, nil
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*model.AccountResponse, error) {
	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Account", id)
		}
		return nil, err
	}
	resp := account.ToResponse()
	return &resp, nil
}

func (s *AccountService) List(ctx context.Context) ([]model.AccountResponse, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, accounts[i].ToResponse())
	}
	return out, nil
}

func (s *AccountService) Update(ctx context.Context, id int64, req model.UpdateAccountRequest) (*model.AccountResponse, error) {
	if msg := validate.Error(validate.UpdateAccountRules(req)...); msg != "" {
		return nil, NewValidation(msg)
	}

	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Account", id)
		}
		return nil, err
	}

	if req.Name != "" {
		account.Name = req.Name
	}
	if req.Email != "" {
		account.Email = req.Email
	}
	if req.AccountType != "" {
		account.AccountType = req.AccountType
	}
	if req.Description != "" {
		account.Description = req.Description
	}

	if err := s.store.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	resp := account.ToResponse()
	return &resp, nil
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteAccount(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFound("Account", id)
	}
	return nil
}
