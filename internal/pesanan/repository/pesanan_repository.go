package repository

import (
	"context"
	"database/sql"
	"fmt"

	"katering/internal/domain"
	"katering/internal/errors"
)

type MySQLPesananRepository struct {
	db *sql.DB
}

func NewMySQLPesananRepository(db *sql.DB) *MySQLPesananRepository {
	return &MySQLPesananRepository{db: db}
}

// PesananSummary is one list row with the aggregates the list endpoints
// join in.
type PesananSummary struct {
	domain.Pesanan
	JumlahItem   int
	NamaCustomer *string
	NoTelepon    *string
	Email        *string
}

func (r *MySQLPesananRepository) InsertTx(ctx context.Context, tx *sql.Tx, p domain.Pesanan) (uint, error) {
	query := `
		INSERT INTO pesanan
			(user_id, tanggal_pesan, waktu_pengiriman, alamat_pengiriman,
			 jarak_km, ongkir, total_harga, catatan, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		p.UserID, p.TanggalPesan, p.WaktuPengiriman, p.AlamatPengiriman,
		p.JarakKM, p.Ongkir, p.TotalHarga, p.Catatan, p.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting pesanan: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLPesananRepository) FindByID(ctx context.Context, id uint) (*domain.Pesanan, error) {
	query := `
		SELECT id, user_id, tanggal_pesan, waktu_pengiriman, alamat_pengiriman,
		       jarak_km, ongkir, total_harga, catatan, status, created_at
		FROM pesanan
		WHERE id = ?
	`

	var p domain.Pesanan
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.TanggalPesan, &p.WaktuPengiriman, &p.AlamatPengiriman,
		&p.JarakKM, &p.Ongkir, &p.TotalHarga, &p.Catatan, &p.Status, &p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Pesanan tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("querying pesanan by id: %w", err)
	}

	return &p, nil
}

func (r *MySQLPesananRepository) FindByIDWithCustomer(ctx context.Context, id uint) (*PesananSummary, error) {
	query := `
		SELECT p.id, p.user_id, p.tanggal_pesan, p.waktu_pengiriman, p.alamat_pengiriman,
		       p.jarak_km, p.ongkir, p.total_harga, p.catatan, p.status, p.created_at,
		       u.nama, u.email, u.no_telepon
		FROM pesanan p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.id = ?
	`

	var s PesananSummary
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.TanggalPesan, &s.WaktuPengiriman, &s.AlamatPengiriman,
		&s.JarakKM, &s.Ongkir, &s.TotalHarga, &s.Catatan, &s.Status, &s.CreatedAt,
		&s.NamaCustomer, &s.Email, &s.NoTelepon,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Pesanan tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("querying pesanan with customer: %w", err)
	}

	return &s, nil
}

func (r *MySQLPesananRepository) FindByUser(ctx context.Context, userID uint) ([]PesananSummary, error) {
	query := `
		SELECT p.id, p.user_id, p.tanggal_pesan, p.waktu_pengiriman, p.alamat_pengiriman,
		       p.jarak_km, p.ongkir, p.total_harga, p.catatan, p.status, p.created_at,
		       (SELECT COUNT(*) FROM detail_pesanan WHERE pesanan_id = p.id) AS jumlah_item
		FROM pesanan p
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying pesanan by user: %w", err)
	}
	defer rows.Close()

	var result []PesananSummary
	for rows.Next() {
		var s PesananSummary
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TanggalPesan, &s.WaktuPengiriman, &s.AlamatPengiriman,
			&s.JarakKM, &s.Ongkir, &s.TotalHarga, &s.Catatan, &s.Status, &s.CreatedAt,
			&s.JumlahItem,
		); err != nil {
			return nil, fmt.Errorf("scanning pesanan row: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

func (r *MySQLPesananRepository) FindAll(ctx context.Context) ([]PesananSummary, error) {
	query := `
		SELECT p.id, p.user_id, p.tanggal_pesan, p.waktu_pengiriman, p.alamat_pengiriman,
		       p.jarak_km, p.ongkir, p.total_harga, p.catatan, p.status, p.created_at,
		       u.nama, u.no_telepon,
		       (SELECT COUNT(*) FROM detail_pesanan WHERE pesanan_id = p.id) AS jumlah_item
		FROM pesanan p
		LEFT JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying all pesanan: %w", err)
	}
	defer rows.Close()

	var result []PesananSummary
	for rows.Next() {
		var s PesananSummary
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TanggalPesan, &s.WaktuPengiriman, &s.AlamatPengiriman,
			&s.JarakKM, &s.Ongkir, &s.TotalHarga, &s.Catatan, &s.Status, &s.CreatedAt,
			&s.NamaCustomer, &s.NoTelepon, &s.JumlahItem,
		); err != nil {
			return nil, fmt.Errorf("scanning pesanan row: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

func (r *MySQLPesananRepository) UpdateStatus(ctx context.Context, id uint, status domain.PesananStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE pesanan SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating pesanan status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Pesanan tidak ditemukan")
	}

	return nil
}

type Statistics struct {
	TotalPesanan    int
	PesananPending  int
	TotalPendapatan int64
	PesananHariIni  int
}

func (r *MySQLPesananRepository) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pesanan`).Scan(&stats.TotalPesanan); err != nil {
		return nil, fmt.Errorf("counting pesanan: %w", err)
	}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pesanan WHERE status = ?`, domain.StatusPending,
	).Scan(&stats.PesananPending); err != nil {
		return nil, fmt.Errorf("counting pending pesanan: %w", err)
	}

	var pendapatan sql.NullInt64
	if err := r.db.QueryRowContext(ctx,
		`SELECT SUM(total_harga) FROM pesanan WHERE status IN (?, ?)`,
		domain.StatusCompleted, domain.StatusShipped,
	).Scan(&pendapatan); err != nil {
		return nil, fmt.Errorf("summing pendapatan: %w", err)
	}
	stats.TotalPendapatan = pendapatan.Int64

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pesanan WHERE DATE(created_at) = CURDATE()`,
	).Scan(&stats.PesananHariIni); err != nil {
		return nil, fmt.Errorf("counting today's pesanan: %w", err)
	}

	return &stats, nil
}
