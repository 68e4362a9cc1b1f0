package store

import (
	"context"
	"sort"

	"gp-ticketing/internal/errs"
)

// LoadSales returns the persisted date -> sold-count mapping. A fresh store
// yields an empty map.
func (s *Store) LoadSales(ctx context.Context) (map[string]int, error) {
	var rows []salesRow
	err := s.Sales.NewSelect().
		Model(&rows).
		Scan(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load sales")
	}
	sales := make(map[string]int, len(rows))
	for _, r := range rows {
		sales[r.Day] = r.Count
	}
	return sales, nil
}

// SaveSales replaces the whole sales log.
func (s *Store) SaveSales(ctx context.Context, sales map[string]int) error {
	days := make([]string, 0, len(sales))
	for day := range sales {
		days = append(days, day)
	}
	sort.Strings(days)

	rows := make([]salesRow, 0, len(sales))
	for _, day := range days {
		rows = append(rows, salesRow{Day: day, Count: sales[day]})
	}
	if err := replaceAll(ctx, s.Sales, (*salesRow)(nil), &rows, len(rows)); err != nil {
		return errs.Wrap(err, "save sales")
	}
	return nil
}
