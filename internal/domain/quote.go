package domain

// Quote is the priced, validated form of a set of line requests.
type Quote struct {
	Lines []QuoteLine
	Total Money
}

type QuoteLine struct {
	ItemID    int64
	Name      string
	Quantity  int
	UnitPrice Money
}

// NewOrder builds the order to persist for userID. ID and timestamps are assigned by storage.
func (q Quote) NewOrder(userID string) Order {
	items := make([]OrderItem, 0, len(q.Lines))
	for _, line := range q.Lines {
		name := line.Name
		items = append(items, OrderItem{
			ItemID:   line.ItemID,
			Name:     &name,
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
		})
	}

	return Order{
		UserID: userID,
		Total:  q.Total,
		Status: OrderStatusReceived,
		Items:  items,
	}
}
