// internal/middleware/ratelimit.go
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/webutil"
)

// rateWindow は1キー分の固定ウィンドウカウンタです
type rateWindow struct {
	count     int
	resetTime time.Time
}

// FixedWindowLimiter はクライアントIPごとの固定ウィンドウレートリミッタです。
// ゲストのテキスト生成APIの流量制限に使用します。
type FixedWindowLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	limit   int
	window  time.Duration
	now     func() time.Time // テストで差し替えるための時刻関数
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		windows: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow はキーに対するリクエストを1件計上し、許可するかどうかを返します。
func (l *FixedWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// 期限切れウィンドウの掃除 (アクセス時に都度実施)
	for k, w := range l.windows {
		if now.After(w.resetTime) {
			delete(l.windows, k)
		}
	}

	w, ok := l.windows[key]
	if !ok {
		l.windows[key] = &rateWindow{count: 1, resetTime: now.Add(l.window)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// GuestRateLimitMiddleware はゲスト生成APIの流量制限ミドルウェアです。
// 上限超過時は「認証が必要」であることが分かるエラーコードを返します。
func GuestRateLimitMiddleware(limiter *FixedWindowLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			key := clientIP(r)
			if !limiter.Allow(key) {
				logger.Warn("Guest rate limit exceeded", "client_ip", key)
				appErr := model.NewAppError(
					"AUTH_REQUIRED",
					"無料の生成回数の上限に達しました。続けるにはアカウント登録が必要です。",
					"",
					model.ErrRateLimited,
				)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP はリクエスト元IPを取得します。RealIPミドルウェア適用後はRemoteAddrが実IPになります。
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
