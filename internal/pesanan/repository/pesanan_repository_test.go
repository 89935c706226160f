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

func TestNewMySQLPesananRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLPesananRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func insertPesanan(t *testing.T, db *sql.DB, repo *MySQLPesananRepository, p domain.Pesanan) uint {
	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.InsertTx(context.Background(), tx, p)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	return id
}

func TestMySQLPesananRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "Budi", "budi@example.com")
	repo := NewMySQLPesananRepository(db)

	km := 7.5
	catatan := "tanpa sambal"
	id := insertPesanan(t, db, repo, domain.Pesanan{
		UserID:           userID,
		TanggalPesan:     "2025-01-10",
		WaktuPengiriman:  "11:30",
		AlamatPengiriman: "Jl. Merdeka 1",
		JarakKM:          &km,
		Ongkir:           15000,
		TotalHarga:       55000,
		Catatan:          &catatan,
		Status:           domain.StatusPending,
	})

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, found.ID)
	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, int64(15000), found.Ongkir)
	assert.Equal(t, int64(55000), found.TotalHarga)
	assert.Equal(t, domain.StatusPending, found.Status)
	require.NotNil(t, found.JarakKM)
	assert.InDelta(t, 7.5, *found.JarakKM, 0.0001)
	require.NotNil(t, found.Catatan)
	assert.Equal(t, "tanpa sambal", *found.Catatan)
}

func TestMySQLPesananRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPesananRepository(db)

	_, err := repo.FindByID(context.Background(), 424242)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestMySQLPesananRepository_FindByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	budi := testutil.SeedUser(t, db, "Budi", "budi@example.com")
	siti := testutil.SeedUser(t, db, "Siti", "siti@example.com")
	menuID := testutil.SeedMenu(t, db, "Nasi Kotak", 15000)

	repo := NewMySQLPesananRepository(db)
	detailRepo := NewMySQLDetailPesananRepository(db)

	base := domain.Pesanan{
		TanggalPesan:     "2025-01-10",
		WaktuPengiriman:  "11:30",
		AlamatPengiriman: "Jl. Merdeka 1",
		Status:           domain.StatusPending,
	}

	budiPesanan := base
	budiPesanan.UserID = budi
	budiID := insertPesanan(t, db, repo, budiPesanan)

	sitiPesanan := base
	sitiPesanan.UserID = siti
	insertPesanan(t, db, repo, sitiPesanan)

	tx, err := db.Begin()
	require.NoError(t, err)
	_, err = detailRepo.InsertTx(context.Background(), tx, domain.DetailPesanan{
		PesananID: budiID, MenuID: menuID, Jumlah: 2, HargaSatuan: 15000, Subtotal: 30000,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	rows, err := repo.FindByUser(context.Background(), budi)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, budiID, rows[0].ID)
	assert.Equal(t, 1, rows[0].JumlahItem)
}

func TestMySQLPesananRepository_FindAll_IncludesCustomer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "Budi", "budi@example.com")
	repo := NewMySQLPesananRepository(db)

	p := domain.Pesanan{
		UserID:           userID,
		TanggalPesan:     "2025-01-10",
		WaktuPengiriman:  "11:30",
		AlamatPengiriman: "Jl. Merdeka 1",
		Status:           domain.StatusPending,
	}
	insertPesanan(t, db, repo, p)

	rows, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].NamaCustomer)
	assert.Equal(t, "Budi", *rows[0].NamaCustomer)
	assert.Equal(t, 0, rows[0].JumlahItem)
}

func TestMySQLPesananRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "Budi", "budi@example.com")
	repo := NewMySQLPesananRepository(db)

	id := insertPesanan(t, db, repo, domain.Pesanan{
		UserID:           userID,
		TanggalPesan:     "2025-01-10",
		WaktuPengiriman:  "11:30",
		AlamatPengiriman: "Jl. Merdeka 1",
		Status:           domain.StatusPending,
	})

	err := repo.UpdateStatus(context.Background(), id, domain.StatusProcessing)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, found.Status)
}

func TestMySQLPesananRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPesananRepository(db)

	err := repo.UpdateStatus(context.Background(), 424242, domain.StatusProcessing)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestMySQLPesananRepository_Statistics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "Budi", "budi@example.com")
	repo := NewMySQLPesananRepository(db)

	base := domain.Pesanan{
		UserID:           userID,
		TanggalPesan:     "2025-01-10",
		WaktuPengiriman:  "11:30",
		AlamatPengiriman: "Jl. Merdeka 1",
	}

	pending := base
	pending.Status = domain.StatusPending
	pending.TotalHarga = 10000
	insertPesanan(t, db, repo, pending)

	completed := base
	completed.Status = domain.StatusCompleted
	completed.TotalHarga = 40000
	insertPesanan(t, db, repo, completed)

	shipped := base
	shipped.Status = domain.StatusShipped
	shipped.TotalHarga = 25000
	insertPesanan(t, db, repo, shipped)

	stats, err := repo.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalPesanan)
	assert.Equal(t, 1, stats.PesananPending)
	// revenue counts completed and shipped only
	assert.Equal(t, int64(65000), stats.TotalPendapatan)
	assert.Equal(t, 3, stats.PesananHariIni)
}
