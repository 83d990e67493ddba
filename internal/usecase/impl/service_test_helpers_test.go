package impl

import (
	"context"
	"io"
	"log/slog"

	"market/config"
	"market/internal/domain/repository"
)

// stubTxManager runs the callback directly against a fixed factory, standing
// in for a real database transaction in unit tests.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

// stubClusterTxManager is the indexer-side counterpart of stubTxManager.
type stubClusterTxManager struct {
	repo repository.ClusterRepository
}

func (s stubClusterTxManager) Execute(_ context.Context, fn func(repository.ClusterRepository) error) error {
	return fn(s.repo)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxPageSize int) *config.Config {
	return &config.Config{
		Pagination: config.PaginationConfig{
			MaxPageSize: maxPageSize,
		},
	}
}
