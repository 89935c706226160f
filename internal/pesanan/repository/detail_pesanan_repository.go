package repository

import (
	"context"
	"database/sql"
	"fmt"

	"katering/internal/domain"
)

type MySQLDetailPesananRepository struct {
	db *sql.DB
}

func NewMySQLDetailPesananRepository(db *sql.DB) *MySQLDetailPesananRepository {
	return &MySQLDetailPesananRepository{db: db}
}

func (r *MySQLDetailPesananRepository) InsertTx(ctx context.Context, tx *sql.Tx, item domain.DetailPesanan) (uint, error) {
	query := `
		INSERT INTO detail_pesanan (pesanan_id, menu_id, jumlah, harga_satuan, subtotal)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		item.PesananID, item.MenuID, item.Jumlah, item.HargaSatuan, item.Subtotal,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting detail pesanan: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// DetailWithMenu carries one line item joined with its menu entry for the
// detail endpoint.
type DetailWithMenu struct {
	domain.DetailPesanan
	NamaMenu string
	Kategori string
}

func (r *MySQLDetailPesananRepository) FindByPesananID(ctx context.Context, pesananID uint) ([]DetailWithMenu, error) {
	query := `
		SELECT dp.id, dp.pesanan_id, dp.menu_id, dp.jumlah, dp.harga_satuan, dp.subtotal,
		       COALESCE(m.nama_menu, ''), COALESCE(m.kategori, '')
		FROM detail_pesanan dp
		LEFT JOIN menu m ON dp.menu_id = m.id
		WHERE dp.pesanan_id = ?
		ORDER BY dp.id
	`

	rows, err := r.db.QueryContext(ctx, query, pesananID)
	if err != nil {
		return nil, fmt.Errorf("querying detail pesanan: %w", err)
	}
	defer rows.Close()

	var result []DetailWithMenu
	for rows.Next() {
		var d DetailWithMenu
		if err := rows.Scan(
			&d.ID, &d.PesananID, &d.MenuID, &d.Jumlah, &d.HargaSatuan, &d.Subtotal,
			&d.NamaMenu, &d.Kategori,
		); err != nil {
			return nil, fmt.Errorf("scanning detail pesanan row: %w", err)
		}
		result = append(result, d)
	}

	return result, rows.Err()
}
