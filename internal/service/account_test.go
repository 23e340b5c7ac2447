package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/backend/internal/model"
)

type fakeAccountStore struct {
	accounts map[int64]*model.Account
	nextID   int64
	deleted  bool
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[int64]*model.Account{}, nextID: 1, deleted: true}
}

func (f *fakeAccountStore) CreateAccount(_ context.Context, a *model.Account) (*model.Account, error) {
	created := *a
	created.ID = f.nextID
	f.nextID++
	f.accounts[created.ID] = &created
	return &created, nil
}

func (f *fakeAccountStore) GetAccountByID(_ context.Context, id int64) (*model.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountStore) ListAccounts(_ context.Context) ([]model.Account, error) {
	out := make([]model.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountStore) UpdateAccount(_ context.Context, a *model.Account) error {
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountStore) DeleteAccount(_ context.Context, id int64) (bool, error) {
	return f.deleted, nil
}

func TestAccountCreateDefaults(t *testing.T) {
	svc := NewAccountService(newFakeAccountStore())

	resp, err := svc.Create(context.Background(), model.CreateAccountRequest{
		Name:           "Main Checking",
		InitialBalance: 2500.75,
	})
	require.NoError(t, err)
	assert.Equal(t, "Checking", resp.AccountType)
	assert.Equal(t, 2500.75, resp.Balance)
}

func TestAccountCreateInvalid(t *testing.T) {
	svc := NewAccountService(newFakeAccountStore())

	_, err := svc.Create(context.Background(), model.CreateAccountRequest{
		Name:           "X",
		InitialBalance: -5,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Account name must be between 2 and 100 characters")
	assert.Contains(t, verr.Message, "Initial balance must be greater than or equal to 0")
}

func TestAccountUpdatePartial(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAccountService(store)

	created, err := svc.Create(context.Background(), model.CreateAccountRequest{
		Name:           "Savings",
		InitialBalance: 100,
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, model.UpdateAccountRequest{
		AccountType: "High Yield Savings",
	})
	require.NoError(t, err)
	assert.Equal(t, "Savings", resp.Name)
	assert.Equal(t, "High Yield Savings", resp.AccountType)
	assert.Equal(t, float64(100), resp.Balance)
}

func TestAccountGetByIDNotFound(t *testing.T) {
	svc := NewAccountService(newFakeAccountStore())

	_, err := svc.GetByID(context.Background(), 8)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Account with id 8 not found", nf.Error())
}

func TestAccountDeleteNotFound(t *testing.T) {
	store := newFakeAccountStore()
	store.deleted = false
	svc := NewAccountService(store)

	err := svc.Delete(context.Background(), 8)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
