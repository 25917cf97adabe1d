package catalog

import (
	"context"
	"sync"

	"loomline-be/internal/logger"
	"loomline-be/internal/metrics"

	"go.uber.org/zap"
)

// Service owns the in-memory catalog. The product list is loaded once per
// process and read-only afterwards; a failed load leaves the catalog empty
// rather than failing the caller, so the rest of the storefront (cart,
// checkout) stays usable.
type Service interface {
	Products(ctx context.Context, criteria FilterCriteria, sort SortKey) []Product
	Carousel(ctx context.Context) []Product
}

type service struct {
	repo Repository
	mx   *metrics.Store

	once     sync.Once
	products []Product
}

func NewService(repo Repository, mx *metrics.Store) Service {
	return &service{repo: repo, mx: mx}
}

func (s *service) load(ctx context.Context) {
	s.once.Do(func() {
		log := logger.FromCtx(ctx).With(
			zap.String("layer", "service"),
			zap.String("method", "load"),
		)

		timer := metrics.StartTimer()

		products, err := s.repo.GetAll(ctx)
		if err != nil {
			// Recovered locally: the storefront shows an empty catalog.
			log.Error("failed to load catalog, serving empty list",
				zap.Error(err),
				zap.Duration("duration", timer.Duration()),
			)
			return
		}

		s.products = products

		log.Info("catalog loaded",
			zap.Int("count", len(products)),
			zap.Duration("duration", timer.Duration()),
		)
	})
}

func (s *service) Products(ctx context.Context, criteria FilterCriteria, sort SortKey) []Product {
	s.load(ctx)
	s.mx.CatalogQueries.Inc()
	return Query(s.products, criteria, sort)
}

// Carousel returns the marquee feed: the promoted slice of the catalog,
// meaning products carrying a rating or an active discount.
func (s *service) Carousel(ctx context.Context) []Product {
	s.load(ctx)
	s.mx.CatalogQueries.Inc()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Rating != nil || p.DiscountedPrice != nil {
			out = append(out, p)
		}
	}
	return out
}
