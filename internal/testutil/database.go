package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL instance
// on localhost:3306 with a database named 'katering_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/katering_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB removes all rows, children before parents.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"ongkir_history", "detail_pesanan", "pesanan", "menu", "users"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		nama VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		no_telepon VARCHAR(30),
		alamat VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		role VARCHAR(20) NOT NULL DEFAULT 'client',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createMenuTable := `
	CREATE TABLE IF NOT EXISTS menu (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		nama_menu VARCHAR(150) NOT NULL,
		deskripsi TEXT,
		harga BIGINT NOT NULL,
		kategori VARCHAR(100) NOT NULL,
		foto_url VARCHAR(255),
		foto_filename VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'tersedia',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createPesananTable := `
	CREATE TABLE IF NOT EXISTS pesanan (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id INT UNSIGNED NOT NULL,
		tanggal_pesan DATE NOT NULL,
		waktu_pengiriman VARCHAR(20) NOT NULL,
		alamat_pengiriman VARCHAR(255) NOT NULL,
		jarak_km DECIMAL(8,3),
		ongkir BIGINT NOT NULL DEFAULT 0,
		total_harga BIGINT NOT NULL DEFAULT 0,
		catatan TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`

	createDetailPesananTable := `
	CREATE TABLE IF NOT EXISTS detail_pesanan (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		pesanan_id INT UNSIGNED NOT NULL,
		menu_id INT UNSIGNED NOT NULL,
		jumlah INT NOT NULL,
		harga_satuan BIGINT NOT NULL,
		subtotal BIGINT NOT NULL,
		FOREIGN KEY (pesanan_id) REFERENCES pesanan(id) ON DELETE CASCADE,
		FOREIGN KEY (menu_id) REFERENCES menu(id)
	)`

	createOngkirHistoryTable := `
	CREATE TABLE IF NOT EXISTS ongkir_history (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		pesanan_id INT UNSIGNED,
		origin_lat DOUBLE,
		origin_lng DOUBLE,
		destination_lat DOUBLE,
		destination_lng DOUBLE,
		jarak_meter DOUBLE NOT NULL,
		jarak_km DECIMAL(8,3) NOT NULL,
		durasi_detik BIGINT NOT NULL,
		ongkir BIGINT NOT NULL,
		provider VARCHAR(30) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"users", createUsersTable},
		{"menu", createMenuTable},
		{"pesanan", createPesananTable},
		{"detail_pesanan", createDetailPesananTable},
		{"ongkir_history", createOngkirHistoryTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// SeedUser inserts one approved client and returns its id.
func SeedUser(t *testing.T, db *sql.DB, nama, email string) uint {
	result, err := db.Exec(
		`INSERT INTO users (nama, email, password, status, role) VALUES (?, ?, 'x', 'approved', 'client')`,
		nama, email,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded user id: %v", err)
	}
	return uint(id)
}

// SeedMenu inserts one available menu entry and returns its id.
func SeedMenu(t *testing.T, db *sql.DB, nama string, harga int64) uint {
	result, err := db.Exec(
		`INSERT INTO menu (nama_menu, harga, kategori) VALUES (?, ?, 'makanan')`,
		nama, harga,
	)
	if err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded menu id: %v", err)
	}
	return uint(id)
}
