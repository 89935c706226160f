package pricing

import (
	"strconv"

	"github.com/samber/lo"

	apperrors "katering/internal/errors"
)

// Item is one requested line: a menu reference, a quantity and the unit
// price snapshot taken at order time.
type Item struct {
	MenuID      uint
	Jumlah      int
	HargaSatuan int64
}

type PricedItem struct {
	MenuID      uint
	Jumlah      int
	HargaSatuan int64
	Subtotal    int64
}

type PricedOrder struct {
	Items         []PricedItem
	ItemsSubtotal int64
	Ongkir        int64
	TotalHarga    int64
}

// PriceOrder computes every subtotal server-side and the grand total as
// items subtotal plus the shipping fee. All arithmetic is integer; clients
// never supply totals.
func PriceOrder(items []Item, ongkir int64) (*PricedOrder, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("pesanan tanpa item", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	var details []apperrors.ValidationDetail
	for idx, item := range items {
		if item.MenuID == 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].menu_id",
				Message: "menu_id is required",
			})
		}
		if item.Jumlah <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].jumlah",
				Message: "jumlah must be a positive integer",
			})
		}
		if item.HargaSatuan < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].harga_satuan",
				Message: "harga_satuan must be non-negative",
			})
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	priced := lo.Map(items, func(item Item, _ int) PricedItem {
		return PricedItem{
			MenuID:      item.MenuID,
			Jumlah:      item.Jumlah,
			HargaSatuan: item.HargaSatuan,
			Subtotal:    int64(item.Jumlah) * item.HargaSatuan,
		}
	})

	itemsSubtotal := lo.SumBy(priced, func(item PricedItem) int64 {
		return item.Subtotal
	})

	return &PricedOrder{
		Items:         priced,
		ItemsSubtotal: itemsSubtotal,
		Ongkir:        ongkir,
		TotalHarga:    itemsSubtotal + ongkir,
	}, nil
}
