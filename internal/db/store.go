package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/athan/internal/model"
)

var ErrNotFound = errors.New("not found")

// Store is the subscription persistence used by the API and the dispatcher.
type Store interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
	GetSubscription(ctx context.Context, token string) (*model.Subscription, error)
	// SaveSubscription inserts the token or updates the location and
	// language of an existing one.
	SaveSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error)
	// DeleteSubscription is idempotent.
	DeleteSubscription(ctx context.Context, token string) error
	DeleteSubscriptions(ctx context.Context, tokens []string) (int64, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
