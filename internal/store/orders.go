package store

import (
	"context"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/models"
)

// LoadOrders returns every persisted purchase order in saved order.
func (s *Store) LoadOrders(ctx context.Context) ([]*models.PurchaseOrder, error) {
	var orders []*models.PurchaseOrder
	err := s.Orders.NewSelect().
		Model(&orders).
		Order("seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load orders")
	}
	if orders == nil {
		orders = []*models.PurchaseOrder{}
	}
	return orders, nil
}

// SaveOrders replaces the whole orders collection.
func (s *Store) SaveOrders(ctx context.Context, orders []*models.PurchaseOrder) error {
	for i, o := range orders {
		o.Seq = int64(i)
	}
	if err := replaceAll(ctx, s.Orders, (*models.PurchaseOrder)(nil), &orders, len(orders)); err != nil {
		return errs.Wrap(err, "save orders")
	}
	return nil
}
