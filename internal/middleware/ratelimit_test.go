// internal/middleware/ratelimit_test.go
package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter_Allow(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("正常系: 上限までは許可し、超過分は拒否する", func(t *testing.T) {
		limiter := NewFixedWindowLimiter(3, time.Hour)
		limiter.now = func() time.Time { return base }

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("203.0.113.1"), "request %d should be allowed", i+1)
		}
		assert.False(t, limiter.Allow("203.0.113.1"))
	})

	t.Run("正常系: キーごとに独立してカウントされる", func(t *testing.T) {
		limiter := NewFixedWindowLimiter(1, time.Hour)
		limiter.now = func() time.Time { return base }

		assert.True(t, limiter.Allow("203.0.113.1"))
		assert.False(t, limiter.Allow("203.0.113.1"))
		assert.True(t, limiter.Allow("203.0.113.2"))
	})

	t.Run("正常系: ウィンドウ経過後はカウントがリセットされる", func(t *testing.T) {
		limiter := NewFixedWindowLimiter(1, time.Hour)

		current := base
		limiter.now = func() time.Time { return current }

		assert.True(t, limiter.Allow("203.0.113.1"))
		assert.False(t, limiter.Allow("203.0.113.1"))

		current = base.Add(time.Hour + time.Minute)
		assert.True(t, limiter.Allow("203.0.113.1"))
	})

	t.Run("境界値: ウィンドウ境界ちょうどではまだ拒否する", func(t *testing.T) {
		limiter := NewFixedWindowLimiter(1, time.Hour)

		current := base
		limiter.now = func() time.Time { return current }

		assert.True(t, limiter.Allow("203.0.113.1"))

		current = base.Add(time.Hour)
		assert.False(t, limiter.Allow("203.0.113.1"))
	})
}
