package ratelimit

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/salespulse/salespulse/internal/config"
)

const keySubmissionOrg = "eod:submit:org:%s"

const (
	defaultSubmissionRate  = 5.0 // tokens per second
	defaultSubmissionBurst = 20
)

// SubmissionLimiter throttles EOD submissions per organization. A nil
// limiter allows everything, which is the shape when Redis is not
// configured.
type SubmissionLimiter struct {
	bucket *TokenBucket

	rate  float64
	burst int
}

func NewSubmissionLimiter(cfg config.Config) *SubmissionLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
	})

	return &SubmissionLimiter{
		bucket: NewTokenBucket(client),
		rate:   defaultSubmissionRate,
		burst:  defaultSubmissionBurst,
	}
}

func (l *SubmissionLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

func (l *SubmissionLimiter) AllowOrg(ctx context.Context, orgID string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keySubmissionOrg, strings.TrimSpace(orgID)), l.rate, l.burst)
}
