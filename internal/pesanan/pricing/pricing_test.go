package pricing

import (
	"testing"

	apperrors "katering/internal/errors"
)

func TestPriceOrder_SingleItem(t *testing.T) {
	items := []Item{{MenuID: 1, Jumlah: 2, HargaSatuan: 15000}}

	priced, err := PriceOrder(items, 10000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if priced.Items[0].Subtotal != 30000 {
		t.Errorf("expected subtotal 30000, got %d", priced.Items[0].Subtotal)
	}
	if priced.ItemsSubtotal != 30000 {
		t.Errorf("expected items subtotal 30000, got %d", priced.ItemsSubtotal)
	}
	if priced.TotalHarga != 40000 {
		t.Errorf("expected total 40000, got %d", priced.TotalHarga)
	}
}

func TestPriceOrder_MultipleItems(t *testing.T) {
	items := []Item{
		{MenuID: 1, Jumlah: 3, HargaSatuan: 12000},
		{MenuID: 2, Jumlah: 1, HargaSatuan: 25000},
		{MenuID: 3, Jumlah: 10, HargaSatuan: 5000},
	}

	priced, err := PriceOrder(items, 8000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expectedSubtotal := int64(36000 + 25000 + 50000)
	if priced.ItemsSubtotal != expectedSubtotal {
		t.Errorf("expected items subtotal %d, got %d", expectedSubtotal, priced.ItemsSubtotal)
	}
	if priced.TotalHarga != expectedSubtotal+8000 {
		t.Errorf("expected total %d, got %d", expectedSubtotal+8000, priced.TotalHarga)
	}
}

func TestPriceOrder_TotalIsSubtotalsPlusFee(t *testing.T) {
	items := []Item{
		{MenuID: 1, Jumlah: 7, HargaSatuan: 1111},
		{MenuID: 2, Jumlah: 13, HargaSatuan: 999},
	}

	for _, fee := range []int64{0, 1, 2000, 999999} {
		priced, err := PriceOrder(items, fee)
		if err != nil {
			t.Fatalf("fee=%d: expected no error, got %v", fee, err)
		}

		var sum int64
		for _, item := range priced.Items {
			sum += item.Subtotal
		}
		if priced.TotalHarga != sum+fee {
			t.Errorf("fee=%d: expected total %d, got %d", fee, sum+fee, priced.TotalHarga)
		}
	}
}

func TestPriceOrder_EmptyItems(t *testing.T) {
	_, err := PriceOrder(nil, 5000)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestPriceOrder_NonPositiveQuantity(t *testing.T) {
	for _, jumlah := range []int{0, -3} {
		items := []Item{{MenuID: 1, Jumlah: jumlah, HargaSatuan: 15000}}

		_, err := PriceOrder(items, 1000)
		ve, ok := apperrors.IsValidationError(err)
		if !ok {
			t.Fatalf("jumlah=%d: expected ValidationError, got %v", jumlah, err)
		}
		if ve.Details[0].Field != "items[0].jumlah" {
			t.Errorf("expected detail on items[0].jumlah, got %s", ve.Details[0].Field)
		}
	}
}

func TestPriceOrder_NegativeUnitPrice(t *testing.T) {
	items := []Item{{MenuID: 1, Jumlah: 1, HargaSatuan: -1}}

	_, err := PriceOrder(items, 0)
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestPriceOrder_ZeroUnitPriceAllowed(t *testing.T) {
	items := []Item{{MenuID: 1, Jumlah: 2, HargaSatuan: 0}}

	priced, err := PriceOrder(items, 3000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if priced.TotalHarga != 3000 {
		t.Errorf("expected total 3000, got %d", priced.TotalHarga)
	}
}

func TestPriceOrder_Idempotent(t *testing.T) {
	items := []Item{{MenuID: 1, Jumlah: 2, HargaSatuan: 15000}}

	first, err := PriceOrder(items, 10000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := PriceOrder(items, 10000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.TotalHarga != second.TotalHarga {
		t.Errorf("expected identical totals, got %d and %d", first.TotalHarga, second.TotalHarga)
	}
}
