package cas

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// AwaitWechat polls the Wechat verify endpoint on the direct route every
// interval until the user approves the login. It returns the first
// non-Rejected status, the first error, or the context's error when the
// deadline expires — bound the overall wait with context.WithTimeout.
// The core performs no retries of its own; this loop is the only place
// the library repeats a request, and only because the protocol is a poll.
func (s *Session) AwaitWechat(ctx context.Context, w Wechat, interval time.Duration) (UserStatus, error) {
	return s.awaitWechat(ctx, w, endpointDirect, interval)
}

// AwaitWechatWebVPN is AwaitWechat against the WebVPN route.
func (s *Session) AwaitWechatWebVPN(ctx context.Context, w Wechat, interval time.Duration) (UserStatus, error) {
	return s.awaitWechat(ctx, w, endpointWebVPN, interval)
}

func (s *Session) awaitWechat(ctx context.Context, w Wechat, ep *endpoint, interval time.Duration) (UserStatus, error) {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return UserStatus{}, err
		}

		status, err := s.run(ctx, w, ep)
		if err != nil {
			return UserStatus{}, err
		}
		if !status.IsRejected() {
			return status, nil
		}
	}
}
