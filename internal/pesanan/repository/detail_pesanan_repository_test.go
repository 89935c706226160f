package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katering/internal/domain"
	"katering/internal/testutil"
)

func TestNewMySQLDetailPesananRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLDetailPesananRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestMySQLDetailPesananRepository_FindByPesananID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "Budi", "budi@example.com")
	sate := testutil.SeedMenu(t, db, "Sate", 25000)
	gado := testutil.SeedMenu(t, db, "Gado-Gado", 18000)

	pesananRepo := NewMySQLPesananRepository(db)
	repo := NewMySQLDetailPesananRepository(db)

	pesananID := insertPesanan(t, db, pesananRepo, domain.Pesanan{
		UserID:           userID,
		TanggalPesan:     "2025-01-10",
		WaktuPengiriman:  "11:30",
		AlamatPengiriman: "Jl. Merdeka 1",
		Status:           domain.StatusPending,
	})

	tx, err := db.Begin()
	require.NoError(t, err)
	_, err = repo.InsertTx(context.Background(), tx, domain.DetailPesanan{
		PesananID: pesananID, MenuID: sate, Jumlah: 2, HargaSatuan: 25000, Subtotal: 50000,
	})
	require.NoError(t, err)
	_, err = repo.InsertTx(context.Background(), tx, domain.DetailPesanan{
		PesananID: pesananID, MenuID: gado, Jumlah: 1, HargaSatuan: 18000, Subtotal: 18000,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	items, err := repo.FindByPesananID(context.Background(), pesananID)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Sate", items[0].NamaMenu)
	assert.Equal(t, "makanan", items[0].Kategori)
	assert.Equal(t, int64(50000), items[0].Subtotal)
	assert.Equal(t, "Gado-Gado", items[1].NamaMenu)
}

func TestMySQLDetailPesananRepository_FindByPesananID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDetailPesananRepository(db)

	items, err := repo.FindByPesananID(context.Background(), 424242)
	require.NoError(t, err)
	assert.Empty(t, items)
}
