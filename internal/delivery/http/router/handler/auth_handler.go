package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

var loginFields = bodyFields{
	"username": domainerrors.ErrInvalidUsername,
	"password": domainerrors.ErrInvalidPassword,
}

// AuthHandler serves login and logout.
type AuthHandler struct {
	auth usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindBody(c, &req, loginFields); err != nil {
		return err
	}

	token, err := h.auth.Login(requestContext(c), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{Token: token}, "Login successful")
}

// Logout ends the current session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(requestContext(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
