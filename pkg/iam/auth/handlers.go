package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/iam/user"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeNotAuthenticated   = ErrRegistry.Register("NOT_AUTHENTICATED", errx.TypeAuthentication, http.StatusUnauthorized, "Not authenticated")
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

func ErrInvalidCredentials() *errx.Error { return ErrRegistry.New(CodeInvalidCredentials) }
func ErrNotAuthenticated() *errx.Error   { return ErrRegistry.New(CodeNotAuthenticated) }
func ErrInvalidRequest() *errx.Error     { return ErrRegistry.New(CodeInvalidRequest) }

// LoginRequest - DTO for admin login
type LoginRequest struct {
	Email    kernel.Email `json:"email"`
	Password string       `json:"password"`
}

// LoginResponse - DTO returned on successful login
type LoginResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// AuthHandlers provides HTTP handlers for admin authentication
type AuthHandlers struct {
	userRepo     user.Repository
	passwordSvc  PasswordService
	tokenService TokenService
}

// NewAuthHandlers creates the authentication handlers
func NewAuthHandlers(userRepo user.Repository, passwordSvc PasswordService, tokenService TokenService) *AuthHandlers {
	return &AuthHandlers{
		userRepo:     userRepo,
		passwordSvc:  passwordSvc,
		tokenService: tokenService,
	}
}

// Login authenticates an administrator
// POST /auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	u, err := h.userRepo.FindByEmail(c.Context(), req.Email)
	if err != nil {
		// Same response for unknown email and wrong password
		return ErrInvalidCredentials()
	}

	if !u.IsActive() {
		return user.ErrUserSuspended()
	}

	if err := h.passwordSvc.Compare(u.PasswordHash, req.Password); err != nil {
		return ErrInvalidCredentials()
	}

	token, err := h.tokenService.GenerateToken(u.ID, u.Email, u.Scopes)
	if err != nil {
		return errx.Wrap(err, "failed to issue token", errx.TypeInternal)
	}

	return c.JSON(LoginResponse{Token: token, User: u})
}

// Me returns the authenticated administrator
// GET /auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authCtx, ok := GetAuthContext(c)
	if !ok {
		return ErrNotAuthenticated()
	}

	u, err := h.userRepo.FindByID(c.Context(), authCtx.UserID)
	if err != nil {
		return user.ErrUserNotFound()
	}

	return c.JSON(u)
}

// RegisterRoutes registers authentication routes
func (h *AuthHandlers) RegisterRoutes(app *fiber.App, authMiddleware *TokenMiddleware) {
	api := app.Group("/auth")

	api.Post("/login", h.Login)
	api.Get("/me", authMiddleware.Authenticate(), h.Me)
}
