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

// categoryRepository implements the domain CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrConflict, "category already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return nil
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByIDs retrieves all categories whose id appears in ids.
func (repo *categoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Category, error) {
	if len(ids) == 0 {
		return []entity.Category{}, nil
	}

	var models []model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories by ids")
	}

	return toCategoryDomains(models), nil
}

// AppendSubcategory records childID in the parent's subcategory list.
func (repo *categoryRepository) AppendSubcategory(ctx context.Context, parentID, childID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", parentID).
		Update("subcategory_ids", gorm.Expr("subcategory_ids || to_jsonb(?::text)", childID.String()))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to append subcategory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// FindChildren retrieves the direct children of the given category.
func (repo *categoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]entity.Category, error) {
	var models []model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("parent_id = ?", parentID).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find child categories")
	}

	return toCategoryDomains(models), nil
}

// List retrieves one page of categories ordered by creation time.
func (repo *categoryRepository) List(ctx context.Context, req pagination.Request) ([]entity.Category, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count categories")
	}

	var models []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(models), total, nil
}

// Search retrieves one page of categories whose name matches the query.
func (repo *categoryRepository) Search(ctx context.Context, query string, req pagination.Request) ([]entity.Category, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("LOWER(name) LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count matching categories")
	}

	var models []model.CategoryModel
	err = repo.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search categories")
	}

	return toCategoryDomains(models), total, nil
}

// --- mapping helpers ---

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:             category.ID,
		Name:           category.Name,
		ParentID:       category.ParentID,
		SubcategoryIDs: model.UUIDSlice(category.SubcategoryIDs),
		RequiredProps:  model.StringSlice(category.RequiredProps),
		CreatedAt:      category.CreatedAt,
	}
}

func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:             categoryM.ID,
		Name:           categoryM.Name,
		ParentID:       categoryM.ParentID,
		SubcategoryIDs: categoryM.SubcategoryIDs,
		RequiredProps:  categoryM.RequiredProps,
		CreatedAt:      categoryM.CreatedAt,
	}
}

func toCategoryDomains(models []model.CategoryModel) []entity.Category {
	out := make([]entity.Category, 0, len(models))
	for i := range models {
		out = append(out, *toCategoryDomain(&models[i]))
	}

	return out
}
