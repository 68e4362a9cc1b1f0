package store

import (
	"context"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/models"
)

// LoadUsers returns every persisted account in saved order. Purchase
// histories live in the orders store and are reattached by the caller.
func (s *Store) LoadUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.Users.NewSelect().
		Model(&users).
		Order("seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load users")
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// SaveUsers replaces the whole users collection.
func (s *Store) SaveUsers(ctx context.Context, users []*models.User) error {
	for i, u := range users {
		u.Seq = int64(i)
	}
	if err := replaceAll(ctx, s.Users, (*models.User)(nil), &users, len(users)); err != nil {
		return errs.Wrap(err, "save users")
	}
	return nil
}
