package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katering/internal/domain"
	"katering/internal/errors"
	"katering/internal/testutil"
)

func TestNewMySQLUserRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func insertUser(t *testing.T, repo *MySQLUserRepository, u domain.User) uint {
	id, err := repo.Insert(context.Background(), u)
	require.NoError(t, err)
	return id
}

func pendingClient(email string) domain.User {
	return domain.User{
		Nama:         "Budi",
		Email:        email,
		PasswordHash: "hash",
		Status:       domain.UserStatusPending,
		Role:         domain.RoleClient,
	}
}

func TestMySQLUserRepository_InsertAndFindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	id := insertUser(t, repo, pendingClient("budi@example.com"))

	found, err := repo.FindByEmail(context.Background(), "budi@example.com")
	require.NoError(t, err)

	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Budi", found.Nama)
	assert.Equal(t, domain.UserStatusPending, found.Status)
	assert.Equal(t, domain.RoleClient, found.Role)
}

func TestMySQLUserRepository_Insert_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	insertUser(t, repo, pendingClient("budi@example.com"))

	_, err := repo.Insert(context.Background(), pendingClient("budi@example.com"))

	_, ok := errors.IsConflictError(err)
	assert.True(t, ok, "expected ConflictError, got %v", err)
}

func TestMySQLUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestMySQLUserRepository_FindPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	insertUser(t, repo, pendingClient("pending@example.com"))

	approved := pendingClient("approved@example.com")
	approved.Status = domain.UserStatusApproved
	insertUser(t, repo, approved)

	admin := pendingClient("admin@example.com")
	admin.Role = domain.RoleAdmin
	insertUser(t, repo, admin)

	pending, err := repo.FindPending(context.Background())
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, "pending@example.com", pending[0].Email)
}

func TestMySQLUserRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	id := insertUser(t, repo, pendingClient("budi@example.com"))

	err := repo.UpdateStatus(context.Background(), id, domain.UserStatusApproved)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusApproved, found.Status)
}

func TestMySQLUserRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	err := repo.UpdateStatus(context.Background(), 424242, domain.UserStatusApproved)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestMySQLUserRepository_PromoteToAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	id := insertUser(t, repo, pendingClient("budi@example.com"))

	err := repo.PromoteToAdmin(context.Background(), id)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, found.Role)
	assert.Equal(t, domain.UserStatusApproved, found.Status)
}
