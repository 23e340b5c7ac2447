package service

import (
	"context"
	"strings"

	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/model"
	"github.com/finance-tracker/backend/internal/password"
	"github.com/finance-tracker/backend/internal/validate"
)

type userStore interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id int64) (bool, error)
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
}

type UserService struct {
	store userStore
}

func NewUserService(store userStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	if msg := validate.Error(validate.CreateUserRules(req)...); msg != "" {
		return nil, NewValidation(msg)
	}

	inUse, err := s.store.EmailInUse(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, NewValidationf("Email '%s' is already in use.", req.Email)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "User"
	}

	user, err := s.store.CreateUser(ctx, &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, NewValidationf("Email '%s' is already in use.", req.Email)
		}
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.UserResponse, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("User", id)
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

// Update applies only the fields present in the request. A changed email is
// re-checked for uniqueness against every other user; a new password is
// re-hashed before storage.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if msg := validate.Error(validate.UpdateUserRules(req)...); msg != "" {
		return nil, NewValidation(msg)
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("User", id)
		}
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" && !strings.EqualFold(req.Email, user.Email) {
		inUse, err := s.store.EmailInUse(ctx, req.Email, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, NewValidationf("Email '%s' is already in use.", req.Email)
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFound("User", id)
	}
	return nil
}
