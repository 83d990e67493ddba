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

// commentRepository implements the domain CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	return nil
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// Delete removes the comment row.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByProduct removes every comment referencing the product.
func (repo *commentRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.CommentModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product comments")
	}

	return nil
}

// ListByProduct retrieves one page of a product's comments ordered by
// creation time.
func (repo *commentRepository) ListByProduct(ctx context.Context, productID uuid.UUID, req pagination.Request) ([]entity.Comment, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("product_id = ?", productID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var models []model.CommentModel
	err = repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, *toCommentDomain(&models[i]))
	}

	return comments, total, nil
}

// ListByOwner retrieves one page of the owner's comments ordered by
// creation time.
func (repo *commentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, req pagination.Request) ([]entity.Comment, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var models []model.CommentModel
	err = repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, *toCommentDomain(&models[i]))
	}

	return comments, total, nil
}

// AverageRating aggregates the mean rating over every comment on the
// product. Zero when the product has no comments.
func (repo *commentRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	var rating float64
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&rating).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to aggregate comment ratings")
	}

	return rating, nil
}

// --- mapping helpers ---

func fromCommentDomain(comment *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        comment.ID,
		OwnerID:   comment.OwnerID,
		ProductID: comment.ProductID,
		Content:   comment.Content,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

func toCommentDomain(commentM *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        commentM.ID,
		OwnerID:   commentM.OwnerID,
		ProductID: commentM.ProductID,
		Content:   commentM.Content,
		Rating:    commentM.Rating,
		CreatedAt: commentM.CreatedAt,
	}
}
