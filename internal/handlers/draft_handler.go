package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/models"
	"muhasib/internal/services"
)

// DraftHandler handles form-draft requests.
type DraftHandler struct {
	draftService services.DraftServicer
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService services.DraftServicer) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// GetDraft handles loading the persisted form draft.
// @Summary     Get draft
// @Description Get the last-entered form state, or the defaults if none exists
// @Tags        draft
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Draft "Form draft"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.draftService.Load()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// PutDraft handles overwriting the persisted form draft.
// @Summary     Save draft
// @Description Overwrite the persisted form state with the submitted values
// @Tags        draft
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.Draft true "Form state"
// @Success     200 {object} models.Draft "Saved draft"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /draft [put]
func (h *DraftHandler) PutDraft(c *gin.Context) {
	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.draftService.Save(draft); err != nil {
		respondWithError(c, err)
		return
	}
	draft.Normalize()
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ResetDraft handles clearing the form draft back to defaults.
// @Summary     Reset draft
// @Description Replace the persisted form state with the defaults
// @Tags        draft
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Draft "Default draft"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /draft/reset [post]
func (h *DraftHandler) ResetDraft(c *gin.Context) {
	draft, err := h.draftService.Reset()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
