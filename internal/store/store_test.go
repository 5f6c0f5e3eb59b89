package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/caesar/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "caesar.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func TestInsertAndListOperations(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ops := []model.Operation{
		{CreatedAt: base, Kind: model.OpEncrypt, Shift: 3, InputLen: 5, Source: model.SourceCLI},
		{CreatedAt: base.Add(time.Minute), Kind: model.OpAnalyze, InputLen: 10, Source: model.SourceAPI},
		{CreatedAt: base.Add(2 * time.Minute), Kind: model.OpDecrypt, Shift: 7, InputLen: 8, Source: model.SourceTUI},
	}
	for _, op := range ops {
		if _, err := st.InsertOperation(ctx, op); err != nil {
			t.Fatalf("failed to insert operation: %v", err)
		}
	}

	listed, err := st.ListOperations(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("failed to list operations: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(listed))
	}
	if listed[0].Kind != model.OpEncrypt || listed[2].Kind != model.OpDecrypt {
		t.Fatalf("unexpected order: %v, %v", listed[0].Kind, listed[2].Kind)
	}
	if listed[0].Shift != 3 || listed[0].InputLen != 5 || listed[0].Source != model.SourceCLI {
		t.Fatalf("unexpected operation fields: %+v", listed[0])
	}
	if !listed[0].CreatedAt.Equal(base) {
		t.Fatalf("unexpected created_at: %v", listed[0].CreatedAt)
	}
}

func TestListOperationsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		kind := model.OpEncrypt
		if i%2 == 1 {
			kind = model.OpBruteForce
		}
		op := model.Operation{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Kind:      kind,
			Shift:     i,
			InputLen:  i,
			Source:    model.SourceCLI,
		}
		if _, err := st.InsertOperation(ctx, op); err != nil {
			t.Fatalf("failed to insert operation: %v", err)
		}
	}

	byKind, err := st.ListOperations(ctx, model.HistoryFilter{Kind: model.OpBruteForce})
	if err != nil {
		t.Fatalf("failed to list by kind: %v", err)
	}
	if len(byKind) != 2 {
		t.Fatalf("expected 2 brute-force operations, got %d", len(byKind))
	}

	since := base.Add(3 * time.Minute)
	bySince, err := st.ListOperations(ctx, model.HistoryFilter{Since: &since})
	if err != nil {
		t.Fatalf("failed to list by since: %v", err)
	}
	if len(bySince) != 2 {
		t.Fatalf("expected 2 operations since cutoff, got %d", len(bySince))
	}

	byLast, err := st.ListOperations(ctx, model.HistoryFilter{Last: 2})
	if err != nil {
		t.Fatalf("failed to list last: %v", err)
	}
	if len(byLast) != 2 {
		t.Fatalf("expected last 2 operations, got %d", len(byLast))
	}
	if byLast[1].Shift != 4 {
		t.Fatalf("expected newest operation last, got shift %d", byLast[1].Shift)
	}
}
