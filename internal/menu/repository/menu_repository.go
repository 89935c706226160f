package repository

import (
	"context"
	"database/sql"
	"fmt"

	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

const menuColumns = "id, nama_menu, deskripsi, harga, kategori, foto_url, foto_filename, status, created_at"

func scanMenu(row interface{ Scan(...any) error }) (*domain.Menu, error) {
	var m domain.Menu
	var deskripsi sql.NullString
	err := row.Scan(
		&m.ID, &m.NamaMenu, &deskripsi, &m.Harga, &m.Kategori,
		&m.FotoURL, &m.FotoFilename, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Deskripsi = deskripsi.String
	return &m, nil
}

// FindAvailable returns menu entries customers can order, grouped by category
// for the storefront listing.
func (r *MySQLMenuRepository) FindAvailable(ctx context.Context) ([]domain.Menu, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM menu WHERE status = ? ORDER BY kategori, nama_menu",
		menuColumns,
	)

	rows, err := r.db.QueryContext(ctx, query, domain.MenuTersedia)
	if err != nil {
		return nil, fmt.Errorf("querying available menu: %w", err)
	}
	defer rows.Close()

	var result []domain.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning menu row: %w", err)
		}
		result = append(result, *m)
	}

	return result, rows.Err()
}

func (r *MySQLMenuRepository) FindByID(ctx context.Context, id uint) (*domain.Menu, error) {
	query := fmt.Sprintf("SELECT %s FROM menu WHERE id = ?", menuColumns)

	m, err := scanMenu(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Menu tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu by id: %w", err)
	}

	return m, nil
}

func (r *MySQLMenuRepository) Insert(ctx context.Context, m domain.Menu) (uint, error) {
	query := `
		INSERT INTO menu (nama_menu, deskripsi, harga, kategori, foto_url, foto_filename, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		m.NamaMenu, m.Deskripsi, m.Harga, m.Kategori, m.FotoURL, m.FotoFilename, m.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting menu: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLMenuRepository) Update(ctx context.Context, m domain.Menu) error {
	query := `
		UPDATE menu
		SET nama_menu = ?, deskripsi = ?, harga = ?, kategori = ?,
		    foto_url = ?, foto_filename = ?, status = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		m.NamaMenu, m.Deskripsi, m.Harga, m.Kategori, m.FotoURL, m.FotoFilename, m.Status, m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating menu: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("Menu tidak ditemukan")
	}

	return nil
}

func (r *MySQLMenuRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting menu: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("Menu tidak ditemukan")
	}

	return nil
}
