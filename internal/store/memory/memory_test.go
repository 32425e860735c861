package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/verseworks/poem-service/internal/model"
)

func TestAppendAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i := 1; i <= 3; i++ {
		a, err := s.Authors().Append(ctx, &model.Author{Name: fmt.Sprintf("author-%d", i)})
		if err != nil {
			t.Fatalf("append author %d: %v", i, err)
		}
		if a.ID != i {
			t.Fatalf("expected id %d, got %d", i, a.ID)
		}
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	names := []string{"Love", "Nature", "Loss"}
	for _, n := range names {
		if _, err := s.Categories().Append(ctx, &model.Category{Name: n, Slug: n}); err != nil {
			t.Fatalf("append %s: %v", n, err)
		}
	}

	cats, err := s.Categories().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, c := range cats {
		if c.Name != names[i] {
			t.Fatalf("position %d: expected %s, got %s", i, names[i], c.Name)
		}
	}
}

func TestAppendRejectsDuplicateUniqueFields(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Users().Append(ctx, &model.User{UserName: "alice", Password: "pw"}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if _, err := s.Users().Append(ctx, &model.User{UserName: "alice", Password: "other"}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	users, err := s.Users().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("collection changed on rejected append: %d users", len(users))
	}
}

func TestGetByIDMissReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Poems().GetByID(ctx, 42); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Categories().GetBySlug(ctx, "ghost"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByCategoryFiltersInOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i, catID := range []int{1, 2, 1, 1, 2} {
		if _, err := s.Poems().Append(ctx, &model.Poem{Title: fmt.Sprintf("p%d", i+1), CategoryID: catID, AuthorID: 1}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	poems, err := s.Poems().ListByCategory(ctx, 1)
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	wantIDs := []int{1, 3, 4}
	if len(poems) != len(wantIDs) {
		t.Fatalf("expected %d poems, got %d", len(wantIDs), len(poems))
	}
	for i, p := range poems {
		if p.ID != wantIDs[i] {
			t.Fatalf("position %d: expected poem %d, got %d", i, wantIDs[i], p.ID)
		}
	}
}

func TestConcurrentAppendsNeverCollideOnID(t *testing.T) {
	ctx := context.Background()
	s := New()

	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := s.Poems().Append(ctx, &model.Poem{Title: fmt.Sprintf("p%d", i), AuthorID: 1, CategoryID: 1})
			if err != nil {
				t.Errorf("append: %v", err)
				return
			}
			ids <- p.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	s := New()

	in := &model.Author{Name: "Rilke"}
	out, err := s.Authors().Append(ctx, in)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if in.ID != 0 {
		t.Fatalf("input mutated: id %d", in.ID)
	}
	out.Name = "changed"
	stored, err := s.Authors().GetByID(ctx, out.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "Rilke" {
		t.Fatalf("stored record aliased to returned copy: %s", stored.Name)
	}
}

func TestSeedDemoProducesResolvableCatalog(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := SeedDemo(ctx, s); err != nil {
		t.Fatalf("seed: %v", err)
	}

	poems, err := s.Poems().List(ctx)
	if err != nil {
		t.Fatalf("list poems: %v", err)
	}
	if len(poems) == 0 {
		t.Fatal("seed produced no poems")
	}
	for _, p := range poems {
		if _, err := s.Authors().GetByID(ctx, p.AuthorID); err != nil {
			t.Fatalf("poem %d references missing author %d", p.ID, p.AuthorID)
		}
		if _, err := s.Categories().GetByID(ctx, p.CategoryID); err != nil {
			t.Fatalf("poem %d references missing category %d", p.ID, p.CategoryID)
		}
	}
}
