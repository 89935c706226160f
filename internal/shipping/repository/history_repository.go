package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"katering/internal/domain"
)

type MySQLHistoryRepository struct {
	db *sql.DB
}

func NewMySQLHistoryRepository(db *sql.DB) *MySQLHistoryRepository {
	return &MySQLHistoryRepository{db: db}
}

func (r *MySQLHistoryRepository) Insert(ctx context.Context, record domain.OngkirHistory) error {
	query := `
		INSERT INTO ongkir_history
			(pesanan_id, origin_lat, origin_lng, destination_lat, destination_lng,
			 jarak_meter, jarak_km, durasi_detik, ongkir, provider)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var originLat, originLng, destLat, destLng *float64
	if record.Origin != nil {
		originLat = &record.Origin.Lat
		originLng = &record.Origin.Lng
	}
	if record.Destination != nil {
		destLat = &record.Destination.Lat
		destLng = &record.Destination.Lng
	}

	_, err := r.db.ExecContext(ctx, query,
		record.PesananID, originLat, originLng, destLat, destLng,
		record.JarakMeter, record.JarakKM, record.DurasiDetik, record.Ongkir, record.Provider,
	)
	if err != nil {
		return fmt.Errorf("inserting ongkir history: %w", err)
	}

	return nil
}

// DeleteOlderThan removes audit rows past the retention window. Used by the
// scheduled pruner, never by request handling.
func (r *MySQLHistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ongkir_history WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning ongkir history: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}

	return rows, nil
}
