package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopehr/hr-api/internal/auth"
	domain "github.com/hopehr/hr-api/internal/domain/employee"
	"github.com/hopehr/hr-api/internal/httperr"
	"github.com/hopehr/hr-api/internal/middleware"
	"github.com/hopehr/hr-api/internal/models"
)

type AuthHandler struct {
	repo   domain.Repository
	tokens *auth.TokenService
}

func NewAuthHandler(repo domain.Repository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{repo: repo, tokens: tokens}
}

// --------- Requests ---------

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if !models.ValidRole(role) {
		httperr.BadRequest(c, "invalid_role", "Role must be either admin or employee.")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Internal server error.")
		return
	}

	user, err := h.repo.CreateUser(c.Request.Context(), req.Email, hash, role)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			httperr.Conflict(c, "email_already_exists", "User with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Internal server error.")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Internal server error.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	user, err := h.repo.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deliberately the same response as a wrong password.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.repo.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout changes no server-side state; the client discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
