package service

import (
	"context"
	"log"

	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/model"
	"github.com/finance-tracker/backend/internal/password"
	"github.com/finance-tracker/backend/internal/token"
)

// Both credential failures below return the same message so a caller
// cannot tell an unknown email from a wrong password.
const invalidCredentials = "Invalid email or password."

type credentialStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserTokens(ctx context.Context, id int64, accessToken, refreshToken string) error
}

type AuthService struct {
	store  credentialStore
	tokens *token.Issuer
}

func NewAuthService(store credentialStore, tokens *token.Issuer) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Login verifies the credentials, issues a fresh token pair and records it
// on the user row. The stored pair is overwritten on every successful
// login; concurrent logins for the same user are last-writer-wins.
func (s *AuthService) Login(ctx context.Context, email, pw string) (*model.LoginResponse, error) {
	if email == "" || pw == "" {
		return nil, NewValidation("Email and password are required.")
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			log.Printf("[Auth] login attempt with non-existent email: %s", email)
			return nil, NewValidation(invalidCredentials)
		}
		return nil, err
	}

	if !password.Verify(pw, user.PasswordHash) {
		log.Printf("[Auth] invalid password attempt for email: %s", email)
		return nil, NewValidation(invalidCredentials)
	}

	accessToken, err := s.tokens.AccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken := s.tokens.RefreshToken()

	if err := s.store.UpdateUserTokens(ctx, user.ID, accessToken, refreshToken); err != nil {
		return nil, err
	}

	log.Printf("[Auth] user logged in: %s", email)
	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
