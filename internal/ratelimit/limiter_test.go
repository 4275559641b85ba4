package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := NewTokenBucket(3, 1)

	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if bucket.Allow() {
		t.Error("4th request should be denied")
	}

	time.Sleep(1100 * time.Millisecond)

	if !bucket.Allow() {
		t.Error("Request after refill should be allowed")
	}

	if bucket.Allow() {
		t.Error("Request immediately after refill should be denied")
	}
}

func TestTwoTierRateLimiter_PerIPLimit(t *testing.T) {
	limiter := NewTwoTierRateLimiter(10, 10, 3, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("192.168.1.1") {
			t.Errorf("Request %d for IP 192.168.1.1 should be allowed", i+1)
		}
	}

	if limiter.Allow("192.168.1.1") {
		t.Error("4th request from same IP should be denied")
	}

	// Different IP should still be allowed
	for i := 0; i < 3; i++ {
		if !limiter.Allow("192.168.1.2") {
			t.Errorf("Request %d for IP 192.168.1.2 should be allowed", i+1)
		}
	}
}

func TestTwoTierRateLimiter_GlobalLimit(t *testing.T) {
	limiter := NewTwoTierRateLimiter(2, 2, 10, 10)

	if !limiter.Allow("192.168.1.1") {
		t.Error("First global request should be allowed")
	}
	if !limiter.Allow("192.168.1.2") {
		t.Error("Second global request should be allowed")
	}
	if limiter.Allow("192.168.1.3") {
		t.Error("Third request should be denied by global limit")
	}
}

func TestTwoTierRateLimiter_Wait(t *testing.T) {
	limiter := NewTwoTierRateLimiter(1, 1, 1, 1)

	if !limiter.Allow("192.168.1.1") {
		t.Fatal("First request should be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "192.168.1.1"); err == nil {
		t.Error("Wait should time out while the bucket is empty")
	}
}
