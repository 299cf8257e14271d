// Package pricing turns untrusted line requests into a priced quote using catalog prices only.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/samber/lo"
)

const (
	msgNoItems         = "Please provide items array with at least one item"
	msgIncompleteLine  = "Each item must have item_id and quantity"
	msgNonPositiveQty  = "Quantity must be greater than 0"
	msgItemsNotFound   = "One or more menu items not found"
	msgMixedCurrencies = "Menu items must be priced in a single currency"
	msgTotalTooLarge   = "Order total exceeds the maximum allowed"
)

var msgQtyTooLarge = fmt.Sprintf("Quantity must not exceed %d", domain.MaxLineQuantity)

type Engine struct {
	catalog port.MenuCatalog
}

func NewEngine(catalog port.MenuCatalog) (Engine, error) {
	if catalog == nil {
		return Engine{}, errors.New("catalog is nil")
	}

	return Engine{catalog: catalog}, nil
}

// ValidateLines checks the shape of the request without touching the catalog.
func ValidateLines(lines []domain.LineRequest) error {
	if len(lines) == 0 {
		return &domain.ValidationError{Field: "items", Message: msgNoItems}
	}

	for _, line := range lines {
		if line.ItemID <= 0 || line.Quantity == 0 {
			return &domain.ValidationError{Field: "items", Message: msgIncompleteLine}
		}
		if line.Quantity < 0 {
			return &domain.ValidationError{Field: "quantity", Message: msgNonPositiveQty}
		}
		if line.Quantity > domain.MaxLineQuantity {
			return &domain.ValidationError{Field: "quantity", Message: msgQtyTooLarge}
		}
	}

	return nil
}

// Quote prices lines at the current catalog price. Client-supplied prices are never
// accepted; repeated item ids stay separate lines.
func (e Engine) Quote(ctx context.Context, lines []domain.LineRequest) (domain.Quote, error) {
	var q domain.Quote

	if err := ValidateLines(lines); err != nil {
		return q, err
	}

	ids := lo.Uniq(lo.Map(lines, func(line domain.LineRequest, _ int) int64 {
		return line.ItemID
	}))

	items, err := e.catalog.LookupMany(ctx, ids)
	if err != nil {
		return q, fmt.Errorf("catalog.LookupMany: %w", err)
	}

	if len(items) < len(ids) {
		return q, &domain.NotFoundError{Message: msgItemsNotFound}
	}

	byID := lo.KeyBy(items, func(item domain.MenuItem) int64 {
		return item.ID
	})

	var unavailable []string
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return q, &domain.NotFoundError{Message: msgItemsNotFound}
		}
		if !item.Available {
			unavailable = append(unavailable, item.Name)
		}
	}

	if len(unavailable) > 0 {
		return q, &domain.UnavailableError{Names: unavailable}
	}

	unit := byID[lines[0].ItemID].Price.Currency
	total := domain.ZeroMoney(unit)

	q.Lines = make([]domain.QuoteLine, 0, len(lines))
	for _, line := range lines {
		item := byID[line.ItemID]

		total, err = total.Add(item.Price.Times(line.Quantity))
		if err != nil {
			return domain.Quote{}, &domain.ValidationError{Field: "items", Message: msgMixedCurrencies}
		}

		q.Lines = append(q.Lines, domain.QuoteLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
		})
	}

	if total.Amount.GreaterThan(domain.MaxOrderTotal) {
		return domain.Quote{}, &domain.ValidationError{Field: "items", Message: msgTotalTooLarge}
	}

	q.Total = total
	return q, nil
}
