package utils

import (
	"MediCore/cache"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const resetCodeTTL = 15 * time.Minute

// ResetCodeStore keeps one-time password reset codes in Redis.
type ResetCodeStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewResetCodeStore(c *cache.Cache) *ResetCodeStore {
	return &ResetCodeStore{cache: c, ttl: resetCodeTTL}
}

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func resetCodeKey(email string) string {
	return "reset_code:" + email
}

// Set stores the reset code for email, replacing any earlier one.
func (s *ResetCodeStore) Set(ctx context.Context, email, code string) error {
	return s.cache.Set(ctx, resetCodeKey(email), code, s.ttl)
}

// Get returns the stored reset code, or "" if none is pending.
func (s *ResetCodeStore) Get(ctx context.Context, email string) (string, error) {
	return s.cache.Get(ctx, resetCodeKey(email))
}

func (s *ResetCodeStore) Delete(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, resetCodeKey(email))
}
