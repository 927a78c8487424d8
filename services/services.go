package services

import (
	"context"
	"strings"
	"time"
)

// Locker serialises operations that check-then-write a unique key.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func() error) error
}

// Clock returns the current time. Services take one so tests can pin dates.
type Clock func() time.Time

func lockKey(kind, value string) string {
	return kind + "_lock:" + strings.ToLower(strings.TrimSpace(value))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeTerms lower-cases, trims and de-duplicates a list of terms, dropping blanks.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
