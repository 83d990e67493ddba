package impl

import (
	"context"
	"log/slog"
	"sort"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// facetService implements the FacetUsecase interface. It reads the cluster
// store directly; the read path never mutates anything, so it bypasses the
// transaction manager.
type facetService struct {
	clusterRepo repository.ClusterRepository
	maxPageSize int
	logger      *slog.Logger
}

// NewFacetService is the constructor for facetService.
func NewFacetService(
	cfg *config.Config,
	clusterRepo repository.ClusterRepository,
	logger *slog.Logger,
) usecase.FacetUsecase {
	return &facetService{
		clusterRepo: clusterRepo,
		maxPageSize: cfg.Pagination.MaxPageSize,
		logger:      logger,
	}
}

// FindValues returns the observed values of one property within the cluster
// containing categoryID. Unknown categories and undeclared properties yield
// an empty result.
func (srv *facetService) FindValues(ctx context.Context, categoryID uuid.UUID, property string) ([]string, error) {
	clusterID, err := srv.clusterRepo.FindClusterByCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrClusterNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to resolve cluster")
	}

	counts, err := srv.clusterRepo.ValuesFor(ctx, clusterID, property)
	if err != nil {
		if errors.Is(err, repository.ErrCounterNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to read counter")
	}

	values := make([]string, 0, len(counts))
	for value := range counts {
		values = append(values, value)
	}
	sort.Strings(values)

	return values, nil
}

// ListFacets returns one page of the cluster's counters in insertion order.
// The page size bound is checked before the store is touched.
func (srv *facetService) ListFacets(ctx context.Context, categoryID uuid.UUID, page, pageSize int) (*pagination.Page[entity.PropertyCounter], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	clusterID, err := srv.clusterRepo.FindClusterByCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrClusterNotFound) {
			return pagination.NewPage([]entity.PropertyCounter{}, req, 0), nil
		}

		return nil, errors.Wrap(err, "failed to resolve cluster")
	}

	counters, total, err := srv.clusterRepo.ListCounters(ctx, clusterID, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list counters")
	}

	return pagination.NewPage(counters, req, total), nil
}
