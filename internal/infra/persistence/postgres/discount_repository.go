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

// discountRepository implements the domain DiscountRepository interface using GORM.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{db: db}
}

// Create persists a discount of any kind.
func (repo *discountRepository) Create(ctx context.Context, discount entity.Discount) error {
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrConflict, "promo code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	return nil
}

// FindByID retrieves a single discount by its unique ID.
func (repo *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Discount, error) {
	var discountM model.DiscountModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&discountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount by id")
	}

	return toDiscountDomain(&discountM)
}

// FindPromoCode retrieves a code-targeted discount by its code.
func (repo *discountRepository) FindPromoCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	var discountM model.DiscountModel
	err := repo.db.WithContext(ctx).
		Where("kind = ? AND code = ?", string(entity.DiscountKindPromo), code).
		First(&discountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	discount, err := toDiscountDomain(&discountM)
	if err != nil {
		return nil, err
	}
	promo, ok := discount.(*entity.PromoCode)
	if !ok {
		return nil, errors.Errorf("discount %s is not a promo code", discountM.ID)
	}

	return promo, nil
}

// Delete removes the discount row.
func (repo *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DiscountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete discount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// List retrieves one page of discounts ordered by creation time.
func (repo *discountRepository) List(ctx context.Context, req pagination.Request) ([]entity.Discount, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.DiscountModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count discounts")
	}

	var models []model.DiscountModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list discounts")
	}

	discounts := make([]entity.Discount, 0, len(models))
	for i := range models {
		discount, err := toDiscountDomain(&models[i])
		if err != nil {
			return nil, 0, err
		}
		discounts = append(discounts, discount)
	}

	return discounts, total, nil
}

// Search retrieves one page of discounts whose description matches the query.
func (repo *discountRepository) Search(ctx context.Context, query string, req pagination.Request) ([]entity.Discount, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("LOWER(description) LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count matching discounts")
	}

	var models []model.DiscountModel
	err = repo.db.WithContext(ctx).
		Where("LOWER(description) LIKE ?", pattern).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search discounts")
	}

	discounts := make([]entity.Discount, 0, len(models))
	for i := range models {
		discount, err := toDiscountDomain(&models[i])
		if err != nil {
			return nil, 0, err
		}
		discounts = append(discounts, discount)
	}

	return discounts, total, nil
}

// PullProductFromTargets removes productID from every product discount's
// target list.
func (repo *discountRepository) PullProductFromTargets(ctx context.Context, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("kind = ? AND jsonb_exists(target_product_ids, ?)", string(entity.DiscountKindProduct), productID.String()).
		Update("target_product_ids", gorm.Expr("target_product_ids - ?", productID.String())).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull product from discounts")
	}

	return nil
}

// --- mapping helpers ---

func fromDiscountDomain(discount entity.Discount) *model.DiscountModel {
	base := discount.Base()
	discountM := &model.DiscountModel{
		ID:          base.ID,
		Kind:        string(discount.Kind()),
		Description: base.Description,
		PercentOff:  base.PercentOff,
		Multiplier:  base.Multiplier,
		CreatedAt:   base.CreatedAt,
	}

	switch d := discount.(type) {
	case *entity.ProductDiscount:
		discountM.TargetProductIDs = model.UUIDSlice(d.TargetProductIDs)
	case *entity.CategoryDiscount:
		discountM.CategoryClosureIDs = model.UUIDSlice(d.CategoryClosureIDs)
	case *entity.PromoCode:
		code := d.Code
		discountM.Code = &code
	}

	return discountM
}

func toDiscountDomain(discountM *model.DiscountModel) (entity.Discount, error) {
	base := entity.DiscountBase{
		ID:          discountM.ID,
		Description: discountM.Description,
		PercentOff:  discountM.PercentOff,
		Multiplier:  discountM.Multiplier,
		CreatedAt:   discountM.CreatedAt,
	}

	switch entity.DiscountKind(discountM.Kind) {
	case entity.DiscountKindProduct:
		return &entity.ProductDiscount{
			DiscountBase:     base,
			TargetProductIDs: discountM.TargetProductIDs,
		}, nil
	case entity.DiscountKindCategory:
		return &entity.CategoryDiscount{
			DiscountBase:       base,
			CategoryClosureIDs: discountM.CategoryClosureIDs,
		}, nil
	case entity.DiscountKindPromo:
		var code string
		if discountM.Code != nil {
			code = *discountM.Code
		}

		return &entity.PromoCode{
			DiscountBase: base,
			Code:         code,
		}, nil
	}

	return nil, errors.Errorf("unknown discount kind %q", discountM.Kind)
}
