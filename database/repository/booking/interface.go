package booking

import (
	"context"
	"errors"

	"github.com/techentia-work/vtcc-australia/models"
)

// ErrNotFound is returned when no booking matches the requested id.
var ErrNotFound = errors.New("booking not found")

// Repository defines the interface for booking persistence. The backing store
// is a spreadsheet, so there is no query pushdown: callers list everything and
// filter in memory.
type Repository interface {
	ListAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Append(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
}
