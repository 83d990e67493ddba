package postgres

import (
	"context"
	"strings"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves all products whose id appears in ids.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}

	var models []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(models), nil
}

// Update modifies an existing product row. The price columns are left
// alone; they change only through RescalePrice and MultiplyActualPrice.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"caption":              productM.Caption,
			"description":          productM.Description,
			"category_ids":         productM.CategoryIDs,
			"related_category_ids": productM.RelatedCategoryIDs,
			"characteristics":      productM.Characteristics,
			"updated_at":           productM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// RescalePrice overwrites the base price and rescales actual_price from the
// stored column values in a single statement, so the applied discount
// factor survives even against a concurrent discount write.
func (repo *productRepository) RescalePrice(ctx context.Context, id uuid.UUID, price float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND price > 0", id).
		Updates(map[string]any{
			"price":        price,
			"actual_price": gorm.Expr("actual_price / price * ?", price),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rescale price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product row.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List retrieves one page of products ordered by creation time.
func (repo *productRepository) List(ctx context.Context, req pagination.Request) ([]entity.Product, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var models []model.ProductModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(models), total, nil
}

// Search retrieves one page of products whose caption matches the query.
func (repo *productRepository) Search(ctx context.Context, query string, req pagination.Request) ([]entity.Product, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("LOWER(caption) LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count matching products")
	}

	var models []model.ProductModel
	err = repo.db.WithContext(ctx).
		Where("LOWER(caption) LIKE ?", pattern).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}


	return toProductDomains(models), total, nil
}

// FindIDsByRelatedCategories returns the ids of every product whose
// related-category closure intersects the given category set.
func (repo *productRepository) FindIDsByRelatedCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(categoryIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("jsonb_exists_any(related_category_ids, ?::text[])", uuidArrayLiteral(categoryIDs)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by related categories")
	}

	return ids, nil
}

// DecrementStock atomically subtracts quantity from stock and bumps the
// order count, guarded against going negative. The existence of the product
// is the caller's concern; a zero row count here means the guard failed.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND available_quantity >= ?", id, quantity).
		Updates(map[string]any{
			"available_quantity": gorm.Expr("available_quantity - ?", quantity),
			"order_count":        gorm.Expr("order_count + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// RestoreStock applies the exact inverse of DecrementStock.
func (repo *productRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"available_quantity": gorm.Expr("available_quantity + ?", quantity),
			"order_count":        gorm.Expr("order_count - 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetQuantity overwrites the available quantity.
func (repo *productRepository) SetQuantity(ctx context.Context, id uuid.UUID, quantity int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("available_quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// MultiplyActualPrice atomically rescales actual_price for every product in ids.
func (repo *productRepository) MultiplyActualPrice(ctx context.Context, ids []uuid.UUID, factor float64) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Update("actual_price", gorm.Expr("actual_price * ?", factor)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to rescale actual price")
	}

	return nil
}

// UpdateRating overwrites the denormalized rating.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("rating", rating)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AddImage appends an image reference to the product.
func (repo *productRepository) AddImage(ctx context.Context, id uuid.UUID, image string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("images", gorm.Expr("images || to_jsonb(?::text)", image))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// RemoveImage drops an image reference from the product.
func (repo *productRepository) RemoveImage(ctx context.Context, id uuid.UUID, image string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("images", gorm.Expr("images - ?::text", image))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// uuidArrayLiteral renders ids as a PostgreSQL text array literal, used with
// jsonb_exists_any so the jsonb existence operator never collides with the
// driver's placeholder syntax.
func uuidArrayLiteral(ids []uuid.UUID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// --- mapping helpers ---

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                 product.ID,
		Caption:            product.Caption,
		Description:        product.Description,
		CategoryIDs:        model.UUIDSlice(product.CategoryIDs),
		RelatedCategoryIDs: model.UUIDSlice(product.RelatedCategoryIDs),
		Characteristics:    model.StringMap(product.Characteristics),
		Price:              product.Price,
		ActualPrice:        product.ActualPrice,
		Rating:             product.Rating,
		OrderCount:         product.OrderCount,
		AvailableQuantity:  product.AvailableQuantity,
		Images:             model.StringSlice(product.Images),
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                 productM.ID,
		Caption:            productM.Caption,
		Description:        productM.Description,
		CategoryIDs:        productM.CategoryIDs,
		RelatedCategoryIDs: productM.RelatedCategoryIDs,
		Characteristics:    productM.Characteristics,
		Price:              productM.Price,
		ActualPrice:        productM.ActualPrice,
		Rating:             productM.Rating,
		OrderCount:         productM.OrderCount,
		AvailableQuantity:  productM.AvailableQuantity,
		Images:             productM.Images,
		CreatedAt:          productM.CreatedAt,
		UpdatedAt:          productM.UpdatedAt,
	}
}

func toProductDomains(models []model.ProductModel) []entity.Product {
	out := make([]entity.Product, 0, len(models))
	for i := range models {
		out = append(out, *toProductDomain(&models[i]))
	}

	return out
}
