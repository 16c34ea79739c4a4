package service

import (
	"context"
	"time"

	"github.com/platescan/backend/internal/models"
)

// CompletionClient is the external text/vision inference capability. Its
// accuracy is out of scope; only the shape of its output is validated.
type CompletionClient interface {
	AnalyzeImage(ctx context.Context, prompt, imageDataURL string) (string, error)
	CompleteText(ctx context.Context, system, prompt string) (string, error)
}

// RecordStore persists validated nutrition records. Records are never
// updated or deleted.
type RecordStore interface {
	Insert(ctx context.Context, record *models.NutritionRecord) error
	ListAll(ctx context.Context) ([]models.NutritionRecord, error)
	ListBySource(ctx context.Context, source string) ([]models.NutritionRecord, error)
	ListSince(ctx context.Context, since time.Time) ([]models.NutritionRecord, error)
}

// ProfileStore persists user profiles with their derived goals.
type ProfileStore interface {
	Insert(ctx context.Context, profile *models.UserProfile) error
	ListAll(ctx context.Context) ([]models.UserProfile, error)
	Latest(ctx context.Context) (*models.UserProfile, error)
}

// ResponseCache holds raw completion text keyed by request fingerprint so a
// failed persistence can be retried without paying for a second completion
// call. All methods are advisory; a cache outage never fails a request.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, raw string)
	Delete(ctx context.Context, key string)
}

// PhotoArchive mirrors meal photos to external storage after a record is
// persisted. Failures are logged, never surfaced.
type PhotoArchive interface {
	Archive(ctx context.Context, recordID, imageBase64 string)
}
