package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

func TestExpandCap(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)

	require.NoError(t, f.svc.ExpandCap(5))
	assert.Equal(t, 15, f.daily.progress.NewCap)

	// Non-positive amounts are ignored.
	require.NoError(t, f.svc.ExpandCap(0))
	require.NoError(t, f.svc.ExpandCap(-3))
	assert.Equal(t, 15, f.daily.progress.NewCap)
}

func TestExpandCapRaisesSessionBudget(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)

	require.NoError(t, f.svc.ExpandCap(5))

	active, err := f.svc.StartSession(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 15, active.NewCount())
}

func TestExpandCapUnlimited(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)
	f.daily.progress.NewTaken = 10

	require.NoError(t, f.svc.ExpandCapUnlimited())
	assert.Equal(t, domain.UnlimitedNewCap, f.daily.progress.NewCap)

	active, err := f.svc.StartSession(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 20, active.NewCount())
}

func TestRolloverResetsQuota(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)

	yesterday := f.today.AddDays(-1)
	stale := domain.NewDailyProgress(yesterday, 10)
	stale.NewCap = 50
	stale.NewTaken = 50
	stale.MarkIntroduced("v-001")
	require.NoError(t, f.daily.Update(stale))

	require.NoError(t, f.svc.RolloverIfNewDay())

	got := f.daily.Current()
	assert.Equal(t, f.today, got.Date)
	assert.Equal(t, 10, got.NewCap)
	assert.Equal(t, 0, got.NewTaken)
	assert.False(t, got.WasIntroduced("v-001"))
}

func TestRolloverSameDayIsNoop(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)

	f.daily.progress.NewCap = 25
	f.daily.progress.NewTaken = 7

	require.NoError(t, f.svc.RolloverIfNewDay())
	assert.Equal(t, 25, f.daily.progress.NewCap)
	assert.Equal(t, 7, f.daily.progress.NewTaken)
}

func TestExpandCapRollsOverFirst(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)

	stale := domain.NewDailyProgress(f.today.AddDays(-1), 10)
	require.NoError(t, f.daily.Update(stale))

	require.NoError(t, f.svc.ExpandCap(5))

	got := f.daily.Current()
	assert.Equal(t, f.today, got.Date)
	assert.Equal(t, 15, got.NewCap)
}

func TestResetAllProgress(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 30)

	require.NoError(t, f.reviews.Put("v-001", domain.NewReviewState(f.today)))
	f.daily.progress.NewTaken = 4

	require.NoError(t, f.svc.ResetAllProgress())

	assert.Equal(t, 0, f.reviews.Len())
	// The daily quota is deliberately left alone.
	assert.Equal(t, 4, f.daily.progress.NewTaken)
}
