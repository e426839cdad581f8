package user

import (
	"context"
	"fmt"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/user"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/repository"
)

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

type RegisterCommand struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// Register stores a new user with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*domain.User, error) {
	u, err := domain.New(cmd.Name, cmd.Email, cmd.Password, cmd.Phone, cmd.Street, cmd.Apartment, cmd.Zip, cmd.City, cmd.Country, cmd.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}
