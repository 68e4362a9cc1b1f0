package store

import (
	"context"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/models"
)

// LoadDiscounts returns every persisted discount rule in registration order.
func (s *Store) LoadDiscounts(ctx context.Context) ([]*models.Discount, error) {
	var discounts []*models.Discount
	err := s.Discounts.NewSelect().
		Model(&discounts).
		Order("seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load discounts")
	}
	if discounts == nil {
		discounts = []*models.Discount{}
	}
	return discounts, nil
}

// SaveDiscounts replaces the whole discounts collection.
func (s *Store) SaveDiscounts(ctx context.Context, discounts []*models.Discount) error {
	for i, d := range discounts {
		d.Seq = int64(i)
	}
	if err := replaceAll(ctx, s.Discounts, (*models.Discount)(nil), &discounts, len(discounts)); err != nil {
		return errs.Wrap(err, "save discounts")
	}
	return nil
}
