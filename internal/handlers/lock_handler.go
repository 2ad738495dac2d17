package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"muhasib/internal/config"
	apperrors "muhasib/internal/errors"
	"muhasib/internal/middleware"
)

// LockHandler handles privacy-lock requests.
type LockHandler struct{}

// NewLockHandler creates a new LockHandler.
func NewLockHandler() *LockHandler {
	return &LockHandler{}
}

// UnlockRequest represents the request payload for unlocking the API.
type UnlockRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// UnlockResponse represents a successful unlock.
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Unlock handles exchanging the passphrase for an unlock token.
// @Summary     Unlock
// @Description Exchange the configured passphrase for a bearer token
// @Tags        lock
// @Accept      json
// @Produce     json
// @Param       request body UnlockRequest true "Passphrase"
// @Success     200 {object} UnlockResponse "Unlock token"
// @Failure     400 {object} ErrorResponse "Lock not configured"
// @Failure     401 {object} ErrorResponse "Invalid passphrase"
// @Router      /unlock [post]
func (h *LockHandler) Unlock(c *gin.Context) {
	cfg := config.Get()
	if !cfg.LockEnabled() {
		respondWithError(c, apperrors.ErrLockDisabled)
		return
	}

	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.PassphraseHash), []byte(req.Passphrase)); err != nil {
		respondWithError(c, apperrors.ErrInvalidPassphrase)
		return
	}

	token, expiresAt, err := middleware.GenerateUnlockToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, UnlockResponse{Token: token, ExpiresAt: expiresAt})
}

// GetLockStatus handles reporting whether the privacy lock is configured.
// @Summary     Get lock status
// @Description Report whether the privacy lock is enabled
// @Tags        lock
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]bool "Lock status"
// @Router      /lock [get]
func (h *LockHandler) GetLockStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enabled": config.Get().LockEnabled()})
}
