package ratelimiter

import (
	"context"
	"errors"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value time.Duration
}

var (
	Minute = Interval{value: time.Minute}
	Hour   = Interval{value: time.Hour}
	Day    = Interval{value: 24 * time.Hour}
)

func (i Interval) Duration() time.Duration {
	return i.value
}

// Window returns the start of the fixed window that t falls into.
func (i Interval) Window(t time.Time) time.Time {
	return t.UTC().Truncate(i.value)
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
