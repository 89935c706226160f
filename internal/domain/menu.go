package domain

import "time"

type Menu struct {
	ID           uint
	NamaMenu     string
	Deskripsi    string
	Harga        int64
	Kategori     string
	FotoURL      *string
	FotoFilename *string
	Status       MenuStatus
	CreatedAt    time.Time
}

type MenuStatus string

const (
	MenuTersedia MenuStatus = "tersedia"
	MenuHabis    MenuStatus = "habis"
)
