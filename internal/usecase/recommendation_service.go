package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dermalens/backend/internal/domain"
)

const catalogCacheKey = "catalog:products"

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	CacheTTL           time.Duration
	SimilarLimit       int
	CompatibleLimit    int
	MaxComparison      int
	EnableDebugLogging bool
}

// RecommendationService resolves catalog data and delegates to the pure
// scorers. Only the fetched catalog snapshot is cached; computed scores are
// recomputed on every call.
type RecommendationService struct {
	cache              domain.CacheRepository
	catalog            domain.CatalogClient
	similarity         *SimilarityScorer
	pairing            *PairingService
	cacheTTL           time.Duration
	maxComparison      int
	enableDebugLogging bool
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	cache domain.CacheRepository,
	catalog domain.CatalogClient,
	config RecommendationServiceConfig,
) *RecommendationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	maxComparison := config.MaxComparison
	if maxComparison <= 0 {
		maxComparison = 3
	}

	return &RecommendationService{
		cache: cache,
		catalog: catalog,
		similarity: NewSimilarityScorer(SimilarityConfig{
			Limit:              config.SimilarLimit,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		pairing: NewPairingService(PairingConfig{
			Limit:              config.CompatibleLimit,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		cacheTTL:           cacheTTL,
		maxComparison:      maxComparison,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SimilarProducts ranks the catalog against the given reference product and
// user profile.
func (s *RecommendationService) SimilarProducts(
	ctx context.Context,
	productID string,
	user domain.UserProfile,
) ([]domain.ScoredProduct, error) {
	if productID == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	reference := findProduct(products, productID)
	if reference == nil {
		return nil, domain.ErrProductNotFound
	}

	return s.similarity.ScoreSimilarProducts(products, *reference, user), nil
}

// CompatibleProducts finds complementary products that pair safely with the
// reference.
func (s *RecommendationService) CompatibleProducts(
	ctx context.Context,
	productID string,
	user domain.UserProfile,
) ([]domain.CompatibleProduct, error) {
	if productID == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	reference := findProduct(products, productID)
	if reference == nil {
		return nil, domain.ErrProductNotFound
	}

	return s.pairing.FindCompatibleProducts(products, *reference, user), nil
}

// CompareProducts resolves the selected IDs and builds the side-by-side
// comparison metrics.
func (s *RecommendationService) CompareProducts(
	ctx context.Context,
	productIDs []string,
) (*domain.ComparisonMetrics, error) {
	if len(productIDs) == 0 || len(productIDs) > s.maxComparison {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]domain.Product, 0, len(productIDs))
	for _, id := range productIDs {
		p := findProduct(products, id)
		if p == nil {
			return nil, domain.ErrProductNotFound
		}
		selected = append(selected, *p)
	}

	metrics := BuildComparisonMetrics(selected)
	return &metrics, nil
}

// ProductTimeOfDay classifies a catalog product into its routine slot.
func (s *RecommendationService) ProductTimeOfDay(
	ctx context.Context,
	productID string,
) (domain.TimeOfDay, error) {
	if productID == "" {
		return domain.TimeOfDay{}, domain.ErrInvalidRequest
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return domain.TimeOfDay{}, err
	}

	reference := findProduct(products, productID)
	if reference == nil {
		return domain.TimeOfDay{}, domain.ErrProductNotFound
	}

	return ClassifyTimeOfDay(*reference), nil
}

// loadCatalog returns the product catalog, from cache when fresh.
// Flow: check cache -> fetch from catalog API -> cache -> return
func (s *RecommendationService) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if cached, err := s.catalogFromCache(ctx); err == nil && len(cached) > 0 {
		if s.enableDebugLogging {
			log.Printf("[CATALOG] Serving %d products from cache", len(cached))
		}
		return cached, nil
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	if err := s.cache.Set(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
		// A failed cache write only costs the next call a refetch.
		if s.enableDebugLogging {
			log.Printf("[CATALOG] Cache write failed: %v", err)
		}
	}

	return products, nil
}

// catalogFromCache reads the catalog snapshot back out of the cache. The
// cache JSON-roundtrips stored values, so the snapshot comes back as generic
// maps and is re-decoded into products.
func (s *RecommendationService) catalogFromCache(ctx context.Context) ([]domain.Product, error) {
	value, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, err
	}

	if products, ok := value.([]domain.Product); ok {
		return products, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return products, nil
}

// findProduct locates a product by ID in the catalog slice.
func findProduct(products []domain.Product, id string) *domain.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
