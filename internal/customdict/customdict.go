package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "spellcheck:custom_words"

// Store keeps user-added dictionary words in a Redis set.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store on the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: defaultKey}
}

// Add inserts a word into the store.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the store.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every word in the store.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

// Contains reports whether word is in the store.
func (s *Store) Contains(ctx context.Context, word string) (bool, error) {
	return s.client.SIsMember(ctx, s.key, word).Result()
}
