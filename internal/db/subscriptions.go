package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Nixie-Tech-LLC/athan/internal/model"
)

const subscriptionColumns = `id, token, location, language, created_at, updated_at`

func (s *pgStore) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := s.db.SelectContext(ctx, &subs, `
		SELECT `+subscriptionColumns+`
		FROM push_subscriptions
		ORDER BY location, language, created_at
		`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

func (s *pgStore) GetSubscription(ctx context.Context, token string) (*model.Subscription, error) {
	var sub model.Subscription
	err := s.db.GetContext(ctx, &sub, `
		SELECT `+subscriptionColumns+`
		FROM push_subscriptions
		WHERE token = $1
		`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &sub, nil
}

func (s *pgStore) SaveSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}

	var saved model.Subscription
	err := s.db.GetContext(ctx, &saved, `
		INSERT INTO push_subscriptions (id, token, location, language)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO UPDATE
		SET location = EXCLUDED.location,
		    language = EXCLUDED.language,
		    updated_at = NOW()
		RETURNING `+subscriptionColumns,
		sub.ID, sub.Token, sub.Location, sub.Language)
	if err != nil {
		return nil, fmt.Errorf("save subscription: %w", err)
	}
	return &saved, nil
}

func (s *pgStore) DeleteSubscription(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func (s *pgStore) DeleteSubscriptions(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE token = ANY($1)`, pq.Array(tokens))
	if err != nil {
		return 0, fmt.Errorf("delete subscriptions: %w", err)
	}
	return res.RowsAffected()
}
