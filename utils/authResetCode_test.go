package utils

import (
	"MediCore/cache"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}

func TestResetCodeStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewResetCodeStore(cache.New(client))
	ctx := context.Background()

	code, err := store.Get(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Empty(t, code)

	require.NoError(t, store.Set(ctx, "ann@example.com", "123456"))
	code, err = store.Get(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
	assert.Equal(t, resetCodeTTL, mr.TTL("reset_code:ann@example.com"))

	mr.FastForward(resetCodeTTL + time.Second)
	code, err = store.Get(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Empty(t, code)

	require.NoError(t, store.Set(ctx, "ann@example.com", "654321"))
	require.NoError(t, store.Delete(ctx, "ann@example.com"))
	code, err = store.Get(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Empty(t, code)
}
