package locker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryAcquireIsExclusive(t *testing.T) {
	l := New()

	assert.True(t, l.TryAcquire("sync"))
	assert.True(t, l.IsHeld("sync"))
	assert.False(t, l.TryAcquire("sync"))

	// A different key is independent.
	assert.True(t, l.TryAcquire("other"))

	l.Release("sync")
	assert.False(t, l.IsHeld("sync"))
	assert.True(t, l.TryAcquire("sync"))
}
