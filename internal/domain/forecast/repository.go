package forecast

import (
	"context"
	"time"
)

type DemandHistoryRepository interface {
	GetRange(ctx context.Context, businessID string, from, to time.Time) ([]DemandRecord, error)
}
