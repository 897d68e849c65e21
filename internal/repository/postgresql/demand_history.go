package postgresql

import (
	"context"
	"time"

	"github.com/shiftmind/shiftmind-backend-go/internal/domain/forecast"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/database"
)

type demandHistoryRepositoryImpl struct {
	db *database.DB
}

func NewDemandHistoryRepository(db *database.DB) forecast.DemandHistoryRepository {
	return &demandHistoryRepositoryImpl{db: db}
}

// GetRange implements forecast.DemandHistoryRepository.
func (r *demandHistoryRepositoryImpl) GetRange(ctx context.Context, businessID string, from, to time.Time) ([]forecast.DemandRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT business_id, date, hour_of_day, demand_value
		FROM demand_history
		WHERE business_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, hour_of_day
	`

	rows, err := q.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []forecast.DemandRecord
	for rows.Next() {
		var rec forecast.DemandRecord
		if err := rows.Scan(&rec.BusinessID, &rec.Date, &rec.Hour, &rec.Value); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
