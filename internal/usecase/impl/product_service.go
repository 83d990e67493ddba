package impl

import (
	"context"
	"log/slog"
	"strings"
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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	bus         *event.Bus
	maxPageSize int
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager:   txManager,
		bus:         bus,
		maxPageSize: cfg.Pagination.MaxPageSize,
		logger:      logger,
	}
}

// RegisterProduct creates a product. The related-category closure is
// computed from the direct categories, and the characteristics must cover
// every required property declared by those categories. The registration
// event is published inside the same transaction.
func (srv *productService) RegisterProduct(ctx context.Context, input *usecase.RegisterProductInput) (*entity.Product, error) {
	srv.logger.Info("Registering product", "name", input.Name, "categories", len(input.CategoryIDs))

	product := &entity.Product{
		ID:                uuid.New(),
		Caption:           input.Name,
		Description:       input.Description,
		CategoryIDs:       dedupeIDs(input.CategoryIDs),
		Characteristics:   input.Characteristics,
		Price:             input.Price,
		ActualPrice:       input.Price,
		AvailableQuantity: input.Quantity,
		Images:            input.Images,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		categories, err := categoryRepo.FindByIDs(ctx, product.CategoryIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load categories")
		}
		if len(categories) < len(product.CategoryIDs) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "product references unknown category")
		}

		if missing := missingRequiredProps(categories, input.Characteristics); len(missing) > 0 {
			return domainerrors.ErrMissingRequiredProps.WithDetails(strings.Join(missing, ", "))
		}

		closure, err := ancestorClosure(ctx, categoryRepo, product.CategoryIDs)
		if err != nil {
			return err
		}
		product.RelatedCategoryIDs = closure

		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return srv.bus.Publish(ctx, repoFactory, event.ProductRegistered{Product: product})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register product")
	}

	return product, nil
}

// GetProduct retrieves a single product.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProduct(ctx, repoFactory.NewProductRepository(), id)
		if err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts retrieves one page of products.
func (srv *productService) ListProducts(ctx context.Context, page, pageSize int) (*pagination.Page[entity.Product], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Product]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewProductRepository().List(ctx, req)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SearchProducts retrieves one page of products matching the query.
func (srv *productService) SearchProducts(ctx context.Context, query string, page, pageSize int) (*pagination.Page[entity.Product], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Product]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewProductRepository().Search(ctx, query, req)
		if err != nil {
			return errors.Wrap(err, "failed to search products")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateProduct modifies a product's caption fields, categories, price, or
// characteristics. Category changes recompute the closure and re-check the
// required properties. A price change rescales the actual price so the
// currently applied discount multipliers survive.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.logger.Info("Updating product", "productID", id)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		categoryRepo := repoFactory.NewCategoryRepository()

		found, err := findProduct(ctx, productRepo, id)
		if err != nil {
			return err
		}
		product = found

		if input.Name != nil {
			product.Caption = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Characteristics != nil {
			product.Characteristics = input.Characteristics
		}
		if input.CategoryIDs != nil {
			product.CategoryIDs = dedupeIDs(input.CategoryIDs)
		}

		if input.CategoryIDs != nil || input.Characteristics != nil {
			categories, err := categoryRepo.FindByIDs(ctx, product.CategoryIDs)
			if err != nil {
				return errors.Wrap(err, "failed to load categories")
			}
			if len(categories) < len(product.CategoryIDs) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "product references unknown category")
			}
			if missing := missingRequiredProps(categories, product.Characteristics); len(missing) > 0 {
				return domainerrors.ErrMissingRequiredProps.WithDetails(strings.Join(missing, ", "))
			}

			closure, err := ancestorClosure(ctx, categoryRepo, product.CategoryIDs)
			if err != nil {
				return err
			}
			product.RelatedCategoryIDs = closure
		}

		if input.Price != nil && product.Price > 0 {
			// The stored actual price is rescaled in one statement so a
			// discount applied concurrently is never lost. The local copy
			// mirrors the result for the response.
			if err := productRepo.RescalePrice(ctx, id, *input.Price); err != nil {
				return errors.Wrap(err, "failed to rescale price")
			}
			factor := product.ActualPrice / product.Price
			product.Price = *input.Price
			product.ActualPrice = *input.Price * factor
		}

		product.UpdatedAt = time.Now()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes the product and publishes the deletion event so the
// cascade reactor cleans up comments, discount targets, and carts in the
// same transaction.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting product", "productID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := findProduct(ctx, productRepo, id)
		if err != nil {
			return err
		}

		if err := productRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return srv.bus.Publish(ctx, repoFactory, event.ProductDeleted{Product: product})
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// SetQuantity overwrites the available stock.
func (srv *productService) SetQuantity(ctx context.Context, id uuid.UUID, quantity int64) error {
	if quantity < 0 {
		return domainerrors.ErrInvalidQuantity
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if _, err := findProduct(ctx, productRepo, id); err != nil {
			return err
		}

		return errors.Wrap(productRepo.SetQuantity(ctx, id, quantity), "failed to set quantity")
	})
}

// AddImage attaches an image reference to the product.
func (srv *productService) AddImage(ctx context.Context, id uuid.UUID, image string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if _, err := findProduct(ctx, productRepo, id); err != nil {
			return err
		}

		return errors.Wrap(productRepo.AddImage(ctx, id, image), "failed to add image")
	})
}

// RemoveImage detaches an image reference from the product.
func (srv *productService) RemoveImage(ctx context.Context, id uuid.UUID, image string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if _, err := findProduct(ctx, productRepo, id); err != nil {
			return err
		}

		return errors.Wrap(productRepo.RemoveImage(ctx, id, image), "failed to remove image")
	})
}

// findProduct loads a product, surfacing not-found as the application error.
func findProduct(ctx context.Context, repo repository.ProductRepository, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
