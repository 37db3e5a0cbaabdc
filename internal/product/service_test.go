package product

import (
	"context"
	"testing"

	"github.com/thirteen-hero/myCats-server/internal/product/entity"
)

// memRepo serves a fixed catalog from memory.
type memRepo struct {
	items []entity.Product
}

func (m *memRepo) matching(category int) []entity.Product {
	if category == 0 {
		return m.items
	}
	var out []entity.Product
	for _, p := range m.items {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (m *memRepo) Count(_ context.Context, category int) (int64, error) {
	return int64(len(m.matching(category))), nil
}

func (m *memRepo) List(_ context.Context, category int, offset, limit int64) ([]entity.Product, error) {
	items := m.matching(category)
	if offset >= int64(len(items)) {
		return nil, nil
	}
	items = items[offset:]
	if limit < int64(len(items)) {
		items = items[:limit]
	}
	return items, nil
}

func catalog(n int, category int) []entity.Product {
	items := make([]entity.Product, n)
	for i := range items {
		items[i] = entity.Product{Order: i, Title: "item", Category: category}
	}
	return items
}

func TestList_HasMore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		total       int
		offset      int64
		limit       int64
		wantLen     int
		wantHasMore bool
	}{
		{name: "first page of many", total: 10, offset: 0, limit: 4, wantLen: 4, wantHasMore: true},
		{name: "middle page", total: 10, offset: 4, limit: 4, wantLen: 4, wantHasMore: true},
		{name: "last full page", total: 10, offset: 8, limit: 4, wantLen: 2, wantHasMore: false},
		{name: "exact boundary", total: 8, offset: 4, limit: 4, wantLen: 4, wantHasMore: false},
		{name: "offset past end", total: 3, offset: 10, limit: 4, wantLen: 0, wantHasMore: false},
		{name: "empty catalog", total: 0, offset: 0, limit: 4, wantLen: 0, wantHasMore: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(&memRepo{items: catalog(tt.total, 1)})
			page, err := svc.List(context.Background(), 0, tt.offset, tt.limit)
			if err != nil {
				t.Fatalf("List error: %v", err)
			}
			if len(page.List) != tt.wantLen {
				t.Errorf("len(list) = %d, want %d", len(page.List), tt.wantLen)
			}
			if page.HasMore != tt.wantHasMore {
				t.Errorf("hasMore = %v, want %v", page.HasMore, tt.wantHasMore)
			}
		})
	}
}

func TestList_CategoryFilter(t *testing.T) {
	t.Parallel()

	repo := &memRepo{items: append(catalog(3, 1), catalog(5, 2)...)}
	svc := NewService(repo)

	page, err := svc.List(context.Background(), 2, 0, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(page.List) != 5 {
		t.Errorf("len(list) = %d, want 5", len(page.List))
	}
	for _, p := range page.List {
		if p.Category != 2 {
			t.Errorf("category = %d, want 2", p.Category)
		}
	}

	// category 0 means unfiltered
	page, err = svc.List(context.Background(), 0, 0, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(page.List) != 8 {
		t.Errorf("len(list) = %d, want 8", len(page.List))
	}
}

func TestList_NeverReturnsNilSlice(t *testing.T) {
	t.Parallel()

	svc := NewService(&memRepo{})
	page, err := svc.List(context.Background(), 0, 0, 4)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.List == nil {
		t.Fatal("List must return an empty slice, not nil, so JSON encodes [] not null")
	}
}
