// Package users handles account registration, login and profile edits.
package users

import (
	"context"
	"fmt"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/logger"
	"gp-ticketing/internal/models"
)

var (
	ErrEmailTaken         = errs.Validation("email already exists")
	ErrInvalidCredentials = errs.Validation("invalid email or password")
)

// Persistence is the slice of the store this service needs.
type Persistence interface {
	SaveUsers(ctx context.Context, users []*models.User) error
}

// Service keeps the loaded accounts in memory and writes the whole
// collection back after each mutation.
type Service struct {
	store  Persistence
	logger *logger.Logger
	users  []*models.User
}

func NewService(store Persistence, log *logger.Logger, loaded []*models.User) *Service {
	return &Service{store: store, logger: log, users: loaded}
}

func (s *Service) Users() []*models.User {
	return s.users
}

func (s *Service) FindByEmail(email string) *models.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *Service) FindByID(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Register creates a customer account and persists it immediately. All
// fields are required and the email must not be in use.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := s.validateNewAccount(name, email, password); err != nil {
		return nil, err
	}
	customer := models.NewCustomer(name, email, password)
	return s.add(ctx, customer)
}

// RegisterAdmin creates an admin account with its derived display id.
func (s *Service) RegisterAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := s.validateNewAccount(name, email, password); err != nil {
		return nil, err
	}
	admin := models.NewAdmin(name, email, password)
	return s.add(ctx, admin)
}

func (s *Service) add(ctx context.Context, user *models.User) (*models.User, error) {
	s.users = append(s.users, user)
	if err := s.store.SaveUsers(ctx, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return nil, errs.Wrap(err, "persist new account")
	}
	s.logger.LogUser("REGISTER", user.Email, fmt.Sprintf("created %s account", user.Role))
	return user, nil
}

// Authenticate scans for a matching email and plain-text password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.CheckPassword(password) {
			s.logger.LogUser("LOGIN", email, "authenticated")
			return u, nil
		}
	}
	s.logger.LogUser("LOGIN", email, "rejected")
	return nil, ErrInvalidCredentials
}

// UpdateProfile edits name and email, and the password when one is given.
func (s *Service) UpdateProfile(ctx context.Context, id, name, email, password string) error {
	if name == "" || email == "" {
		return errs.Validation("name and email cannot be empty")
	}
	user := s.FindByID(id)
	if user == nil {
		return errs.Mark(errs.Newf("user %s", id), errs.ErrNotFound)
	}
	if existing := s.FindByEmail(email); existing != nil && existing.ID != id {
		return ErrEmailTaken
	}

	user.Name = name
	user.Email = email
	if password != "" {
		user.Password = password
	}
	if err := s.store.SaveUsers(ctx, s.users); err != nil {
		return errs.Wrap(err, "persist profile update")
	}
	s.logger.LogUser("PROFILE", email, "updated")
	return nil
}

// Persist rewrites the users store, used after purchase-history mutations.
func (s *Service) Persist(ctx context.Context) error {
	return s.store.SaveUsers(ctx, s.users)
}

func (s *Service) validateNewAccount(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return errs.Validation("all fields are required")
	}
	if s.FindByEmail(email) != nil {
		return ErrEmailTaken
	}
	return nil
}
