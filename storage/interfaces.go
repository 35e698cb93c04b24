package storage

import (
	"context"

	"bikeshare-explorer/models"
)

// TripSource is the interface any trip data backend must satisfy.
type TripSource interface {
	Load(ctx context.Context, city string) (*models.TripTable, error)
}
