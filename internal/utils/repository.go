package utils

import (
	"context"
	"time"

	"github.com/tamilred/playerbot/internal/models"
)

// UserRepository defines user-record database operations. GetUser returns
// (nil, nil) when no record exists.
type UserRepository interface {
	// EnsureUser creates the record with the default language if absent.
	// It never overwrites an existing record.
	EnsureUser(ctx context.Context, userID int64) error
	SetLanguage(ctx context.Context, userID int64, lang string) error
	SetExpiry(ctx context.Context, userID int64, expiry time.Time) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// PlaylistRepository defines playlist database operations. Tracks are
// append-only and listed in insertion order.
type PlaylistRepository interface {
	AddTrack(ctx context.Context, fileID, title string) error
	ListTracks(ctx context.Context) ([]models.Track, error)
}
