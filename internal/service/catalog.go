package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fitgym/backend/internal/catalog"
	"github.com/fitgym/backend/internal/models"
	"github.com/fitgym/backend/internal/repo"
	"github.com/fitgym/backend/pkg/logging"
)

// Searcher is a full-text product index.
type Searcher interface {
	IndexProducts(ctx context.Context, items []models.Product) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Repo   *repo.GormRepo
	Search Searcher
}

// SearchEnabled reports whether product search goes to the index rather
// than the store.
func (s *CatalogService) SearchEnabled() bool { return s.Search != nil }

// Seed writes the product catalog to the store and, when configured, to
// the search index. Index failures are logged and leave store search on.
func (s *CatalogService) Seed(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "catalog.seed")

	items := catalog.Products()
	if err := s.Repo.UpsertProducts(ctx, items); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	l.Info("products_seeded", "count", len(items))

	if s.Search != nil {
		if err := s.Search.IndexProducts(ctx, items); err != nil {
			l.Warn("products_index_failed", "error", err)
			s.Search = nil
			return nil
		}
		l.Info("products_indexed", "count", len(items))
	}
	return nil
}

func (s *CatalogService) Plans() []models.Plan {
	return catalog.Plans()
}

func (s *CatalogService) Quote(slug, billing string) (*catalog.Quote, error) {
	p, err := catalog.FindPlan(slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	q, err := catalog.NewQuote(p, billing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return &q, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *CatalogService) GetProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, strings.TrimSpace(category), offset, limit)
}

// SearchProducts prefers the search index and falls back to the store when
// the index is absent or failing.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("%w: query is required", ErrValidation)
	}

	if s.Search != nil {
		total, items, err := s.Search.Search(ctx, q, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_index_failed", "reason", "falling back to store", "error", err)
	}
	return s.Repo.SearchProducts(ctx, q, offset, limit)
}
