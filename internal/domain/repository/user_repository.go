package repository

import (
	"context"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/user"
)

type UserRepository interface {
	Insert(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindAll(ctx context.Context) ([]user.User, error)
}
