package jobs

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"katering/internal/config"
	apperrors "katering/internal/errors"
)

type mockHistoryStore struct {
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	cutoffs             []time.Time
}

func (m *mockHistoryStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.cutoffs = append(m.cutoffs, cutoff)
	return m.DeleteOlderThanFunc(ctx, cutoff)
}

func TestHistoryPruner_PruneUsesRetentionCutoff(t *testing.T) {
	store := &mockHistoryStore{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 3, nil
		},
	}
	pruner := NewHistoryPruner(store, config.HistoryConfig{
		RetentionDays: 90,
		PruneSchedule: "0 3 * * *",
	}, zap.NewNop())

	before := time.Now().Add(-90 * 24 * time.Hour)
	pruner.prune()
	after := time.Now().Add(-90 * 24 * time.Hour)

	if len(store.cutoffs) != 1 {
		t.Fatalf("expected one delete call, got %d", len(store.cutoffs))
	}
	cutoff := store.cutoffs[0]
	if cutoff.Before(before) || cutoff.After(after) {
		t.Errorf("cutoff %v outside expected retention window", cutoff)
	}
}

func TestHistoryPruner_PruneSurvivesStoreError(t *testing.T) {
	store := &mockHistoryStore{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, apperrors.NewInternalError("db down", nil)
		},
	}
	pruner := NewHistoryPruner(store, config.HistoryConfig{
		RetentionDays: 30,
		PruneSchedule: "0 3 * * *",
	}, zap.NewNop())

	// must not panic; the next scheduled run retries
	pruner.prune()
}

func TestHistoryPruner_StartRejectsBadSchedule(t *testing.T) {
	pruner := NewHistoryPruner(&mockHistoryStore{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) { return 0, nil },
	}, config.HistoryConfig{
		RetentionDays: 30,
		PruneSchedule: "not a schedule",
	}, zap.NewNop())

	if err := pruner.Start(); err == nil {
		t.Error("expected an error for an invalid cron expression")
		pruner.Stop()
	}
}

func TestHistoryPruner_StartAndStop(t *testing.T) {
	pruner := NewHistoryPruner(&mockHistoryStore{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) { return 0, nil },
	}, config.HistoryConfig{
		RetentionDays: 30,
		PruneSchedule: "0 3 * * *",
	}, zap.NewNop())

	if err := pruner.Start(); err != nil {
		t.Fatalf("expected no error starting, got %v", err)
	}
	pruner.Stop()
}
