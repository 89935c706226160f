package domain

import "time"

type Pesanan struct {
	ID               uint
	UserID           uint
	TanggalPesan     string
	WaktuPengiriman  string
	AlamatPengiriman string
	JarakKM          *float64
	Ongkir           int64
	TotalHarga       int64
	Catatan          *string
	Status           PesananStatus
	CreatedAt        time.Time
}

type DetailPesanan struct {
	ID          uint
	PesananID   uint
	MenuID      uint
	Jumlah      int
	HargaSatuan int64
	Subtotal    int64
}

type PesananStatus string

const (
	StatusPending    PesananStatus = "pending"
	StatusProcessing PesananStatus = "processing"
	StatusShipped    PesananStatus = "shipped"
	StatusCompleted  PesananStatus = "completed"
	StatusCancelled  PesananStatus = "cancelled"
)

func (s PesananStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition is the single place status-transition rules live. The current
// policy allows any recognized target from any prior state; a stricter state
// machine (e.g. forbidding completed -> pending) only needs to change here.
func CanTransition(from, to PesananStatus) bool {
	return to.Valid()
}
