package dto

import "time"

type MenuDTO struct {
	ID        uint      `json:"id"`
	NamaMenu  string    `json:"nama_menu"`
	Deskripsi string    `json:"deskripsi"`
	Harga     int64     `json:"harga"`
	Kategori  string    `json:"kategori"`
	FotoURL   *string   `json:"foto_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuListResponse struct {
	Menu []MenuDTO `json:"menu"`
}

type MenuResponse struct {
	Message string  `json:"message"`
	Menu    MenuDTO `json:"menu"`
}
