package dto

import "time"

type CreatePesananRequest struct {
	UserID           uint                 `json:"user_id"`
	TanggalPesan     string               `json:"tanggal_pesan"`
	WaktuPengiriman  string               `json:"waktu_pengiriman"`
	AlamatPengiriman string               `json:"alamat_pengiriman"`
	JarakKM          *float64             `json:"jarak_km,omitempty"`
	Origin           *CoordinateDTO       `json:"origin,omitempty"`
	Destination      *CoordinateDTO       `json:"destination,omitempty"`
	Items            []PesananItemRequest `json:"items"`
	Catatan          *string              `json:"catatan,omitempty"`
}

type PesananItemRequest struct {
	MenuID      uint  `json:"menu_id"`
	Jumlah      int   `json:"jumlah"`
	HargaSatuan int64 `json:"harga_satuan"`
}

type CreatePesananResponse struct {
	Message    string `json:"message"`
	PesananID  uint   `json:"pesanan_id"`
	TotalHarga int64  `json:"total_harga"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type PesananDTO struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	TanggalPesan     string    `json:"tanggal_pesan"`
	WaktuPengiriman  string    `json:"waktu_pengiriman"`
	AlamatPengiriman string    `json:"alamat_pengiriman"`
	JarakKM          *float64  `json:"jarak_km"`
	Ongkir           int64     `json:"ongkir"`
	TotalHarga       int64     `json:"total_harga"`
	Catatan          *string   `json:"catatan"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	JumlahItem       int       `json:"jumlah_item,omitempty"`
	NamaCustomer     *string   `json:"nama_customer,omitempty"`
	NoTelepon        *string   `json:"no_telepon,omitempty"`
	Email            *string   `json:"email,omitempty"`
}

type DetailPesananDTO struct {
	ID          uint   `json:"id"`
	PesananID   uint   `json:"pesanan_id"`
	MenuID      uint   `json:"menu_id"`
	Jumlah      int    `json:"jumlah"`
	HargaSatuan int64  `json:"harga_satuan"`
	Subtotal    int64  `json:"subtotal"`
	NamaMenu    string `json:"nama_menu"`
	Kategori    string `json:"kategori"`
}

type PesananListResponse struct {
	Pesanan []PesananDTO `json:"pesanan"`
}

type PesananDetailResponse struct {
	Pesanan PesananDTO         `json:"pesanan"`
	Detail  []DetailPesananDTO `json:"detail"`
}

type StatisticsResponse struct {
	TotalPesanan    int   `json:"total_pesanan"`
	PesananPending  int   `json:"pesanan_pending"`
	TotalPendapatan int64 `json:"total_pendapatan"`
	PesananHariIni  int   `json:"pesanan_hari_ini"`
}
