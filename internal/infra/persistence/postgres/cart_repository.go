package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Save creates or replaces the owner's cart.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(cartM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// FindByOwner retrieves the owner's cart.
func (repo *cartRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return toCartDomain(&cartM), nil
}

// DeleteByOwner removes the owner's cart.
func (repo *cartRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.CartModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// RemoveProductFromAll drops productID from the item map of every cart that
// references it.
func (repo *cartRepository) RemoveProductFromAll(ctx context.Context, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("jsonb_exists(items, ?)", productID.String()).
		Update("items", gorm.Expr("items - ?", productID.String())).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product from carts")
	}

	return nil
}

// --- mapping helpers ---

func fromCartDomain(cart *entity.Cart) *model.CartModel {
	return &model.CartModel{
		ID:        cart.ID,
		OwnerID:   cart.OwnerID,
		Items:     model.Int64Map(cart.Items),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}

func toCartDomain(cartM *model.CartModel) *entity.Cart {
	return &entity.Cart{
		ID:        cartM.ID,
		OwnerID:   cartM.OwnerID,
		Items:     cartM.Items,
		CreatedAt: cartM.CreatedAt,
		UpdatedAt: cartM.UpdatedAt,
	}
}
