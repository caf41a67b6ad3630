// Package uploadsession stores the state of an in-flight portfolio
// upload between the preview, mapping-override and confirm steps.
// Sessions live in Redis under a TTL; nothing about an upload survives
// past its session.
package uploadsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wealthlens-api/internal/mapping"
)

const keyPrefix = "upload_session:"

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("upload session not found")

// Session is everything the confirm step needs: the detected (possibly
// overridden) mappings and the raw rows they will be applied to.
type Session struct {
	SessionID string                  `json:"session_id"`
	UserID    string                  `json:"user_id"`
	FileName  string                  `json:"file_name"`
	Headers   []string                `json:"headers"`
	Mappings  []mapping.ColumnMapping `json:"mappings"`
	Rows      [][]string              `json:"rows"`
	CreatedAt time.Time               `json:"created_at"`
}

// Store reads and writes sessions in Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save writes the session under its id, resetting the TTL.
func (s *Store) Save(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+session.SessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get loads a session by id. Expired and unknown ids both return
// ErrNotFound.
func (s *Store) Get(ctx context.Context, sessionID string) (*Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
