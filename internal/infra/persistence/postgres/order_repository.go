package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByOwner retrieves one page of the owner's orders ordered by creation
// time, newest first.
func (repo *orderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, req pagination.Request) ([]entity.Order, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var models []model.OrderModel
	err = repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, *toOrderDomain(&models[i]))
	}

	return orders, total, nil
}

// UpdateStatus overwrites the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- mapping helpers ---

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := make(model.OrderItems, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItemRecord{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			CapturedPrice: item.CapturedPrice,
		})
	}

	return &model.OrderModel{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		Items:           items,
		Status:          string(order.Status),
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(orderM.Items))
	for _, item := range orderM.Items {
		items = append(items, entity.OrderItem{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			CapturedPrice: item.CapturedPrice,
		})
	}

	return &entity.Order{
		ID:              orderM.ID,
		OwnerID:         orderM.OwnerID,
		Items:           items,
		Status:          entity.OrderStatus(orderM.Status),
		ShippingAddress: orderM.ShippingAddress,
		CreatedAt:       orderM.CreatedAt,
	}
}
