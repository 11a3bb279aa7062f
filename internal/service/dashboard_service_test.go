package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/config"
)

type fakeCounter struct {
	n     int
	err   error
	calls int
}

func (f *fakeCounter) Count(ctx context.Context) (int, error) {
	f.calls++
	return f.n, f.err
}

func testDashboard(t *testing.T, students, teachers, subjects, announcements *fakeCounter, ttl time.Duration) (*DashboardService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewDashboardServiceWithCounters(students, teachers, subjects, announcements, rdb, ttl, zerolog.Nop())
	return svc, mr
}

func TestAdminOverviewCacheMissComputesAndStores(t *testing.T) {
	students := &fakeCounter{n: 120}
	teachers := &fakeCounter{n: 15}
	subjects := &fakeCounter{n: 64}
	announcements := &fakeCounter{n: 9}
	svc, mr := testDashboard(t, students, teachers, subjects, announcements, time.Minute)

	overview, err := svc.AdminOverview(context.Background())
	if err != nil {
		t.Fatalf("AdminOverview error: %v", err)
	}
	if overview.Students != 120 || overview.Teachers != 15 || overview.Subjects != 64 || overview.Announcements != 9 {
		t.Errorf("overview = %+v, want counts 120/15/64/9", overview)
	}

	raw, err := mr.Get(config.CacheKey.DashboardCountsKey())
	if err != nil {
		t.Fatalf("cache read error: %v", err)
	}
	var cached AdminOverview
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		t.Fatalf("cached payload is not JSON: %v", err)
	}
	if cached.Students != 120 {
		t.Errorf("cached Students = %d, want 120", cached.Students)
	}
	if mr.TTL(config.CacheKey.DashboardCountsKey()) != time.Minute {
		t.Errorf("cache TTL = %v, want 1m", mr.TTL(config.CacheKey.DashboardCountsKey()))
	}
}

func TestAdminOverviewCacheHitSkipsCounters(t *testing.T) {
	students := &fakeCounter{n: 1}
	svc, _ := testDashboard(t, students, &fakeCounter{}, &fakeCounter{}, &fakeCounter{}, time.Minute)
	ctx := context.Background()

	if _, err := svc.AdminOverview(ctx); err != nil {
		t.Fatal(err)
	}
	if students.calls != 1 {
		t.Fatalf("counter calls after miss = %d, want 1", students.calls)
	}

	if _, err := svc.AdminOverview(ctx); err != nil {
		t.Fatal(err)
	}
	if students.calls != 1 {
		t.Errorf("counter calls after hit = %d, want still 1", students.calls)
	}
}

func TestAdminOverviewRecomputesAfterExpiry(t *testing.T) {
	students := &fakeCounter{n: 5}
	svc, mr := testDashboard(t, students, &fakeCounter{}, &fakeCounter{}, &fakeCounter{}, time.Minute)
	ctx := context.Background()

	if _, err := svc.AdminOverview(ctx); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Minute)

	students.n = 6
	overview, err := svc.AdminOverview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if overview.Students != 6 {
		t.Errorf("Students after expiry = %d, want recomputed 6", overview.Students)
	}
	if students.calls != 2 {
		t.Errorf("counter calls = %d, want 2", students.calls)
	}
}

func TestAdminOverviewCounterError(t *testing.T) {
	countErr := errors.New("count failed")
	svc, _ := testDashboard(t, &fakeCounter{err: countErr}, &fakeCounter{}, &fakeCounter{}, &fakeCounter{}, time.Minute)

	if _, err := svc.AdminOverview(context.Background()); !errors.Is(err, countErr) {
		t.Errorf("AdminOverview error = %v, want %v", err, countErr)
	}
}
