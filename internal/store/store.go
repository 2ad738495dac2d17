// Package store provides the key-value blob persistence the ledger and
// draft services write through. Blobs are opaque JSON documents; the store
// never interprets them.
package store

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "muhasib/internal/errors"
)

// Well-known blob keys.
const (
	KeyLedger = "ledger"
	KeyDraft  = "draft"
)

// Blob is a single persisted key-value row.
type Blob struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BlobStore is the persistence collaborator consumed by the services.
// Load reports absence via the bool rather than an error; Save overwrites
// the whole value for the key.
type BlobStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

type gormBlobStore struct {
	db *gorm.DB
}

// New creates a BlobStore backed by the given database.
func New(db *gorm.DB) BlobStore {
	return &gormBlobStore{db: db}
}

// Load reads the blob stored under key. The second return value is false
// when no blob exists for the key.
func (s *gormBlobStore) Load(key string) ([]byte, bool, error) {
	var blob Blob
	if err := s.db.Where("key = ?", key).First(&blob).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return []byte(blob.Value), true, nil
}

// Save upserts the blob under key, replacing any previous value in full.
func (s *gormBlobStore) Save(key string, value []byte) error {
	blob := Blob{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
