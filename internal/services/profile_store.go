package services

import (
	"context"
	"errors"

	"github.com/onboard/app/internal/models"
)

// Store faults, classified coarsely the way the handlers report them.
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")
)

// ProfileStore is the single-document view of the external store: one profile
// per UID, read whole and overwritten whole. Save never merges with a prior
// record.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}
