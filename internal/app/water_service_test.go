package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

type mockWaterRepo struct {
	addFn   func(ctx context.Context, userID int64, d float64, t time.Time) (*domain.WaterEvent, float64, error)
	delFn   func(ctx context.Context, userID int64, id int64) error
	listFn  func(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error)
	totalFn func(ctx context.Context, userID int64, day string) (float64, error)
}

func (m *mockWaterRepo) AddWaterEvent(ctx context.Context, userID int64, d float64, t time.Time) (*domain.WaterEvent, float64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, d, t)
	}
	return &domain.WaterEvent{UserID: userID, DeltaMl: d, CreatedAt: t}, d, nil
}

func (m *mockWaterRepo) DeleteWaterEvent(ctx context.Context, userID int64, id int64) error {
	if m.delFn != nil {
		return m.delFn(ctx, userID, id)
	}
	return nil
}

func (m *mockWaterRepo) ListRecentWaterEvents(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockWaterRepo) WaterTotalForLocalDay(ctx context.Context, userID int64, day string) (float64, error) {
	if m.totalFn != nil {
		return m.totalFn(ctx, userID, day)
	}
	return 0, nil
}

func TestRecordWaterEvent_Validation(t *testing.T) {
	svc := app.NewWaterService(&mockWaterRepo{})

	tests := []struct {
		name  string
		delta float64
	}{
		{"zero delta", 0},
		{"too large positive", 5001},
		{"too large negative", -6000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordEvent(context.Background(), 1, tc.delta)
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRecordWaterEvent_Success(t *testing.T) {
	repo := &mockWaterRepo{
		addFn: func(_ context.Context, userID int64, d float64, at time.Time) (*domain.WaterEvent, float64, error) {
			return &domain.WaterEvent{ID: 42, UserID: userID, DeltaMl: d, CreatedAt: at}, 1250, nil
		},
	}
	svc := app.NewWaterService(repo)
	rec, err := svc.RecordEvent(context.Background(), 1, 250)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 42 || rec.AppliedMl != 250 || rec.TotalMl != 1250 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRecordWaterEvent_RepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &mockWaterRepo{
		addFn: func(context.Context, int64, float64, time.Time) (*domain.WaterEvent, float64, error) {
			return nil, 0, boom
		},
	}
	_, err := app.NewWaterService(repo).RecordEvent(context.Background(), 1, 250)
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if errors.Is(err, app.ErrInvalid) {
		t.Fatal("storage failure must not be reported as invalid input")
	}
}

func TestRecordWaterEvent_CapsRemoval(t *testing.T) {
	svc := app.NewWaterService(memory.New())
	ctx := context.Background()
	if _, err := svc.RecordEvent(ctx, 1, 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := svc.RecordEvent(ctx, 1, -500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.AppliedMl != -300 || rec.TotalMl != 0 {
		t.Fatalf("expected removal capped at -300, got %+v", rec)
	}
}

func TestRecordWaterEvent_NothingToRemove(t *testing.T) {
	_, err := app.NewWaterService(memory.New()).RecordEvent(context.Background(), 1, -250)
	if !errors.Is(err, app.ErrNoWaterToRemove) {
		t.Fatalf("expected ErrNoWaterToRemove, got %v", err)
	}
	if !errors.Is(err, app.ErrInvalid) {
		t.Fatalf("expected ErrNoWaterToRemove to be an input error, got %v", err)
	}
}

func TestRecordWaterEvent_ConcurrentRemovals(t *testing.T) {
	db := memory.New()
	svc := app.NewWaterService(db)
	ctx := context.Background()
	if _, err := svc.RecordEvent(ctx, 1, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		removed float64
		refused int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := svc.RecordEvent(ctx, 1, -500)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, app.ErrNoWaterToRemove):
				refused++
			case err != nil:
				t.Errorf("unexpected error: %v", err)
			default:
				removed += rec.AppliedMl
			}
		}()
	}
	wg.Wait()

	total, err := svc.GetTodayTotal(ctx, 1, domain.LocalDay(time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total 0 after concurrent removals, got %v", total)
	}
	if removed != -500 || refused != workers-1 {
		t.Fatalf("expected one removal of 500 and %d refusals, got removed=%v refused=%d", workers-1, removed, refused)
	}
}

func TestUndoLastWater_Empty(t *testing.T) {
	repo := &mockWaterRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.WaterEvent, error) {
			return nil, nil
		},
	}
	svc := app.NewWaterService(repo)
	undone, _, err := svc.UndoLast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if undone {
		t.Fatal("expected undone=false for empty list")
	}
}

func TestUndoLastWater_Success(t *testing.T) {
	repo := &mockWaterRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.WaterEvent, error) {
			return []domain.WaterEvent{{ID: 7, DeltaMl: 500}}, nil
		},
		delFn: func(_ context.Context, _ int64, id int64) error {
			if id != 7 {
				t.Fatalf("expected delete id 7, got %d", id)
			}
			return nil
		},
	}
	svc := app.NewWaterService(repo)
	undone, id, err := svc.UndoLast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !undone || id != 7 {
		t.Fatalf("expected undone=true id=7, got undone=%v id=%d", undone, id)
	}
}

func TestGetTodayTotal(t *testing.T) {
	repo := &mockWaterRepo{
		totalFn: func(_ context.Context, _ int64, day string) (float64, error) {
			if day != "2026-02-08" {
				t.Fatalf("unexpected day: %s", day)
			}
			return 2500, nil
		},
	}
	svc := app.NewWaterService(repo)
	total, err := svc.GetTodayTotal(context.Background(), 1, "2026-02-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2500 {
		t.Fatalf("expected 2500, got %v", total)
	}
}
