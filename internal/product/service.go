package product

import (
	"context"

	"github.com/thirteen-hero/myCats-server/internal/product/entity"
)

// Repository provides read access to the products collection. Category 0
// means "all categories". Ordering is the store's natural order.
type Repository interface {
	Count(ctx context.Context, category int) (int64, error)
	List(ctx context.Context, category int, offset, limit int64) ([]entity.Product, error)
}

// Page is one slice of the catalog plus a flag telling clients whether
// another page exists.
type Page struct {
	List    []entity.Product `json:"list"`
	HasMore bool             `json:"hasMore"`
}

// Service encapsulates catalog listing and depends on a repository.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns one page of products. hasMore holds when the total count
// exceeds offset+limit.
func (s *Service) List(ctx context.Context, category int, offset, limit int64) (*Page, error) {
	total, err := s.repo.Count(ctx, category)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Product{}
	}
	return &Page{List: items, HasMore: total > offset+limit}, nil
}
