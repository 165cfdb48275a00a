package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateRegistration(ctx context.Context, in Registration) error
	GetRegistration(ctx context.Context, id string) (Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
	ListRegistrations(ctx context.Context, filter RegistrationListFilter) ([]Registration, error)
}
