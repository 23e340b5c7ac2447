package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/backend/internal/model"
	"github.com/finance-tracker/backend/internal/service"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"

	accessCookieMaxAge  = 24 * 60 * 60     // 1 day
	refreshCookieMaxAge = 7 * 24 * 60 * 60 // 7 days
)

type authService interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

type AuthHandler struct {
	svc authService
	dev bool
}

// NewAuthHandler builds the login endpoint. dev disables the Secure cookie
// flag for local development over plain HTTP.
func NewAuthHandler(svc authService, dev bool) *AuthHandler {
	return &AuthHandler{svc: svc, dev: dev}
}

// Login godoc
// @Summary Login
// @Description Verifies credentials and issues an access/refresh token pair, also set as HTTP-only cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ProblemResponse
// @Failure 401 {object} model.ProblemResponse
// @Failure 500 {object} model.ProblemResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ProblemResponse{
			Title:  "Invalid request",
			Detail: "Request body is required.",
			Status: http.StatusBadRequest,
		})
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			log.Printf("[Auth] warning: login failed for email %s: %s", req.Email, validation.Message)
			c.JSON(http.StatusUnauthorized, model.ProblemResponse{
				Title:  "Authentication failed",
				Detail: validation.Message,
				Status: http.StatusUnauthorized,
			})
			return
		}
		log.Printf("[Auth] error: unexpected error during login for email %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, model.ProblemResponse{
			Title:  "An error occurred during login",
			Detail: "Please try again later.",
			Status: http.StatusInternalServerError,
		})
		return
	}

	h.setTokenCookies(c, resp)

	// Tokens are returned in the body as well so non-browser clients can
	// use the Authorization header instead of cookies.
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair *model.LoginResponse) {
	secure := !h.dev
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookieName, pair.AccessToken, accessCookieMaxAge, "/", "", secure, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken, refreshCookieMaxAge, "/", "", secure, true)
}
