package services

import (
	"encoding/json"

	"muhasib/internal/logger"
	"muhasib/internal/models"
	"muhasib/internal/store"
)

// draftService persists the last-entered form state so the user never has
// to re-enter their holdings.
type draftService struct {
	store store.BlobStore
}

// NewDraftService creates a new DraftServicer.
func NewDraftService(blobStore store.BlobStore) DraftServicer {
	return &draftService{store: blobStore}
}

// Load returns the persisted draft. An absent or malformed blob yields the
// default draft with one blank entry per category.
func (s *draftService) Load() (models.Draft, error) {
	raw, found, err := s.store.Load(store.KeyDraft)
	if err != nil {
		return models.Draft{}, err
	}
	if !found {
		return models.NewDraft(), nil
	}

	var draft models.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		logger.Get().Warnw("discarding malformed draft blob", "error", err)
		return models.NewDraft(), nil
	}
	draft.Normalize()
	return draft, nil
}

// Save overwrites the persisted draft. Write failures are logged, not
// surfaced: the draft is a convenience, losing one keystroke's worth of
// state must never fail the user action that triggered it.
func (s *draftService) Save(draft models.Draft) error {
	draft.Normalize()
	raw, err := json.Marshal(draft)
	if err != nil {
		logger.Get().Errorw("failed to encode draft", "error", err)
		return nil
	}
	if err := s.store.Save(store.KeyDraft, raw); err != nil {
		logger.Get().Warnw("failed to persist draft", "error", err)
	}
	return nil
}

// Reset replaces the draft with the defaults and returns them.
func (s *draftService) Reset() (models.Draft, error) {
	draft := models.NewDraft()
	if err := s.Save(draft); err != nil {
		return models.Draft{}, err
	}
	return draft, nil
}
