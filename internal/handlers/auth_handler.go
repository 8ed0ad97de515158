package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookeasy-app/booking-api/internal/audit"
	"github.com/bookeasy-app/booking-api/internal/config"
	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/identity"
	"github.com/bookeasy-app/booking-api/internal/validators"
)

type AuthHandler struct {
	provider identity.Provider
	config   *config.Config
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	provider identity.Provider,
	cfg *config.Config,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		config:   cfg,
		audit:    audit,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "The email domain does not appear to be valid.",
		})
		return
	}

	ident, err := h.provider.Register(c.Request.Context(), identity.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAccountExists) {
			c.JSON(http.StatusConflict, gin.H{"error": httperr.CodeAccountExists})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(ident)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	h.dispatchAudit(ident, "user_registered")

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(ident),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ident, err := h.provider.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": httperr.CodeInvalidCredentials})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	token, err := h.generateToken(ident)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	h.dispatchAudit(ident, "login")

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(ident),
		"token": token,
	})
}

// ResetPassword always answers 200 with a generic message. Whether the
// account exists is never revealed to the caller.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	_ = h.provider.ResetPassword(c.Request.Context(), req.Email)

	c.JSON(http.StatusOK, gin.H{
		"message": "If an account exists for this email, reset instructions have been sent.",
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(ident *booking.Identity) (string, error) {
	sub, err := strconv.ParseUint(ident.ID, 10, 64)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": uint(sub),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) dispatchAudit(ident *booking.Identity, action string) {
	if h.audit == nil {
		return
	}

	if id, err := strconv.ParseUint(ident.ID, 10, 64); err == nil {
		uid := uint(id)
		h.audit.Dispatch(audit.Event{
			UserID: &uid,
			Action: action,
			Entity: "user",
		})
	}
}

func userPayload(ident *booking.Identity) gin.H {
	return gin.H{
		"id":         ident.ID,
		"first_name": ident.FirstName,
		"last_name":  ident.LastName,
		"email":      ident.Email,
		"phone":      ident.Phone,
	}
}
