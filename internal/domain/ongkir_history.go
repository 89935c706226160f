package domain

import "time"

// OngkirHistory is one row of the append-only shipping calculation log.
// It is written best-effort after a calculation and never read back by the
// order workflow.
type OngkirHistory struct {
	ID          uint
	PesananID   *uint
	Origin      *Coordinate
	Destination *Coordinate
	JarakMeter  float64
	JarakKM     float64
	DurasiDetik int64
	Ongkir      int64
	Provider    string
	CreatedAt   time.Time
}
