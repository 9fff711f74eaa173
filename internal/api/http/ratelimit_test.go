package http

import (
	"fmt"
	"testing"
	"time"
)

func TestLimiterEnforcesBurst(t *testing.T) {
	l := newSubmissionLimiter(5, 3)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if !l.allow("10.0.0.1", now) {
			t.Fatalf("request %d within burst must pass", i+1)
		}
	}
	if l.allow("10.0.0.1", now) {
		t.Fatal("request beyond burst must be denied")
	}
	// A different client has its own bucket.
	if !l.allow("10.0.0.2", now) {
		t.Fatal("other clients must not share the exhausted bucket")
	}
}

func TestLimiterRefillsOverTime(t *testing.T) {
	l := newSubmissionLimiter(60, 1)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if !l.allow("10.0.0.1", now) {
		t.Fatal("first request must pass")
	}
	if l.allow("10.0.0.1", now) {
		t.Fatal("burst of 1 must deny an immediate second request")
	}
	if !l.allow("10.0.0.1", now.Add(time.Second)) {
		t.Fatal("60/min must admit one request per second")
	}
}

func TestLimiterBucketCountIsBounded(t *testing.T) {
	l := newSubmissionLimiter(5, 3)
	l.maxBuckets = 4
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		l.allow(fmt.Sprintf("10.0.0.%d", i), now)
	}
	if len(l.buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(l.buckets))
	}

	// The existing buckets have gone idle; admitting a new IP evicts them.
	later := now.Add(l.idleTTL + time.Minute)
	if !l.allow("10.0.1.1", later) {
		t.Fatal("new client must be admitted after eviction")
	}
	if len(l.buckets) != 1 {
		t.Fatalf("idle buckets must be evicted, got %d", len(l.buckets))
	}
}

func TestLimiterFullOfActiveBucketsStaysBounded(t *testing.T) {
	l := newSubmissionLimiter(5, 3)
	l.maxBuckets = 4
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		l.allow(fmt.Sprintf("10.0.0.%d", i), now)
	}
	if len(l.buckets) > l.maxBuckets {
		t.Fatalf("bucket map exceeded cap: %d > %d", len(l.buckets), l.maxBuckets)
	}
}
