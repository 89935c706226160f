package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

const mysqlDuplicateEntry = 1062

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

const userColumns = "id, nama, email, password, no_telepon, alamat, status, role, created_at"

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Nama, &u.Email, &u.PasswordHash, &u.NoTelepon, &u.Alamat,
		&u.Status, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MySQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ?", userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	return user, nil
}

func (r *MySQLUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	return user, nil
}

func (r *MySQLUserRepository) Insert(ctx context.Context, user domain.User) (uint, error) {
	query := `
		INSERT INTO users (nama, email, password, no_telepon, alamat, status, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Nama, user.Email, user.PasswordHash, user.NoTelepon, user.Alamat,
		user.Status, user.Role,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, apperrors.NewConflictError("Email sudah terdaftar")
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLUserRepository) FindPending(ctx context.Context) ([]domain.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE status = ? AND role = ? ORDER BY created_at",
		userColumns,
	)
	return r.findMany(ctx, query, domain.UserStatusPending, domain.RoleClient)
}

func (r *MySQLUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC", userColumns)
	return r.findMany(ctx, query)
}

func (r *MySQLUserRepository) findMany(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		result = append(result, *user)
	}

	return result, rows.Err()
}

func (r *MySQLUserRepository) UpdateStatus(ctx context.Context, id uint, status domain.UserStatus) error {
	return r.update(ctx, `UPDATE users SET status = ? WHERE id = ?`, status, id)
}

func (r *MySQLUserRepository) UpdateRole(ctx context.Context, id uint, role domain.UserRole) error {
	return r.update(ctx, `UPDATE users SET role = ? WHERE id = ?`, role, id)
}

// Promoting a client to admin also approves the account in the same statement.
func (r *MySQLUserRepository) PromoteToAdmin(ctx context.Context, id uint) error {
	return r.update(ctx, `UPDATE users SET role = ?, status = ? WHERE id = ?`,
		domain.RoleAdmin, domain.UserStatusApproved, id)
}

func (r *MySQLUserRepository) update(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("User tidak ditemukan")
	}

	return nil
}
