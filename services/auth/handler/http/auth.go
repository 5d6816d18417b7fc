package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/middleware"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	nrpkg "github.com/sewamobil/sewamobil/internal/pkg/newrelic"
	"github.com/sewamobil/sewamobil/internal/utils"
	"github.com/sewamobil/sewamobil/services/auth"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, authMW)
}

// Register creates a customer account
func (h *AuthHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.Register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", user)
}

// Login authenticates a user and returns a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	user, err := h.authUC.GetUser(c.Request().Context(), userID.String())
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}

func (h *AuthHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUserInactive):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("auth handler error", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
}
