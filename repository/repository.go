// Package repository is the narrow seam between the handlers and the
// relational store. Handlers only see these interfaces and sentinels; gorm
// stays behind them.
package repository

import (
	"context"
	"errors"

	"github.com/nmapp/checkbackend/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type Users interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type History interface {
	Create(ctx context.Context, record *models.DownloadHistory) error
	ListByUser(ctx context.Context, userID uint) ([]models.DownloadHistory, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// Store bundles the per-entity repositories for wiring.
type Store struct {
	Users   Users
	History History
}
