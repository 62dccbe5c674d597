package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/muhammadheryan/resource-matcher/cmd/redis"
	"github.com/muhammadheryan/resource-matcher/model"
	goredis "github.com/redis/go-redis/v9"
)

// ConversationRepository keeps each user's in-flight provide conversation
// between turns.
type ConversationRepository interface {
	GetProvideState(ctx context.Context, userID string) (*model.ProvideState, error)
	SetProvideState(ctx context.Context, userID string, state *model.ProvideState, ttl time.Duration) error
	DeleteProvideState(ctx context.Context, userID string) error
}

type redis struct{}

// NewRepository returns a Redis ConversationRepository implementation
func NewRepository() ConversationRepository {
	return &redis{}
}

func provideKey(userID string) string {
	return "conversation:provide:" + userID
}

// GetProvideState returns nil when the user has no conversation in flight.
func (r *redis) GetProvideState(ctx context.Context, userID string) (*model.ProvideState, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, provideKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var state model.ProvideState
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, fmt.Errorf("decode provide state: %w", err)
	}
	return &state, nil
}

// SetProvideState stores the state with a time-to-live
func (r *redis) SetProvideState(ctx context.Context, userID string, state *model.ProvideState, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	val, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return client.Set(ctx, provideKey(userID), val, ttl).Err()
}

// DeleteProvideState removes a finished conversation
func (r *redis) DeleteProvideState(ctx context.Context, userID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, provideKey(userID)).Err()
}
