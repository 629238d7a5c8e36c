package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardNumberKey(t *testing.T) {
	assert.Equal(t, "card:number:5000000000000004", CardNumberKey(5000000000000004))
}

func TestNoopLock(t *testing.T) {
	var lock NoopLock

	token, ok, err := lock.Acquire(context.Background(), CardNumberKey(1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, lock.Release(context.Background(), CardNumberKey(1), token))
}

func TestRedisLockReleaseRequiresToken(t *testing.T) {
	lock := NewRedisLock(nil, 0, 0, 0)
	assert.Error(t, lock.Release(context.Background(), "card:number:1", ""))
}
