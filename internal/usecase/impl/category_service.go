package impl

import (
	"context"
	"log/slog"
	"time"

	"market/config"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager   repository.TransactionManager
	bus         *event.Bus
	maxPageSize int
	logger      *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager:   txManager,
		bus:         bus,
		maxPageSize: cfg.Pagination.MaxPageSize,
		logger:      logger,
	}
}

// RegisterCategory creates a category node. A child's required properties are
// the union of its own and its parent's, so the superset invariant holds by
// construction. The registration event is published inside the same
// transaction; a failing reactor or queue publish rolls the whole write back.
func (srv *categoryService) RegisterCategory(ctx context.Context, input *usecase.RegisterCategoryInput) (*entity.Category, error) {
	srv.logger.Info("Registering category", "name", input.Name, "parentID", input.ParentID)

	category := &entity.Category{
		ID:            uuid.New(),
		Name:          input.Name,
		ParentID:      input.ParentID,
		RequiredProps: input.RequiredProps,
		CreatedAt:     time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		if input.ParentID != nil {
			parent, err := categoryRepo.FindByID(ctx, *input.ParentID)
			if err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return errors.Wrap(domainerrors.ErrCategoryNotFound, "parent category not found")
				}

				return errors.Wrap(err, "failed to find parent category")
			}

			category.RequiredProps = unionProps(parent.RequiredProps, input.RequiredProps)
		}

		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		if input.ParentID != nil {
			if err := categoryRepo.AppendSubcategory(ctx, *input.ParentID, category.ID); err != nil {
				return errors.Wrap(err, "failed to link category to parent")
			}
		}

		return srv.bus.Publish(ctx, repoFactory, event.CategoryRegistered{Category: category})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register category")
	}

	return category, nil
}

// GetCategory retrieves a single category.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCategoryRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories retrieves one page of categories.
func (srv *categoryService) ListCategories(ctx context.Context, page, pageSize int) (*pagination.Page[entity.Category], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Category]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewCategoryRepository().List(ctx, req)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SearchCategories retrieves one page of categories matching the query.
func (srv *categoryService) SearchCategories(ctx context.Context, query string, page, pageSize int) (*pagination.Page[entity.Category], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Category]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewCategoryRepository().Search(ctx, query, req)
		if err != nil {
			return errors.Wrap(err, "failed to search categories")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ClosureFor returns the given categories plus all transitive ancestors.
func (srv *categoryService) ClosureFor(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error) {
	var closure []uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids, err := ancestorClosure(ctx, repoFactory.NewCategoryRepository(), categoryIDs)
		if err != nil {
			return err
		}
		closure = ids

		return nil
	})
	if err != nil {
		return nil, mapCategoryErr(err)
	}

	return closure, nil
}

// SubtreeClosureFor returns the given categories plus all transitive
// descendants.
func (srv *categoryService) SubtreeClosureFor(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error) {
	var closure []uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids, err := descendantClosure(ctx, repoFactory.NewCategoryRepository(), categoryIDs)
		if err != nil {
			return err
		}
		closure = ids

		return nil
	})
	if err != nil {
		return nil, mapCategoryErr(err)
	}

	return closure, nil
}

// mapCategoryErr surfaces a repository not-found as the application error.
func mapCategoryErr(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return err
}
