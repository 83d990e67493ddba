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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	bus         *event.Bus
	maxPageSize int
	logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		txManager:   txManager,
		bus:         bus,
		maxPageSize: cfg.Pagination.MaxPageSize,
		logger:      logger,
	}
}

// RegisterComment creates a comment on a product. The rating reactor
// recomputes the product's mean rating in the same transaction.
func (srv *commentService) RegisterComment(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterCommentInput) (*entity.Comment, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	srv.logger.Info("Registering comment", "productID", input.ProductID, "ownerID", ownerID)

	comment := &entity.Comment{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		ProductID: input.ProductID,
		Content:   input.Content,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProduct(ctx, repoFactory.NewProductRepository(), input.ProductID); err != nil {
			return err
		}

		if err := repoFactory.NewCommentRepository().Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		return srv.bus.Publish(ctx, repoFactory, event.CommentRegistered{Comment: comment})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register comment")
	}

	return comment, nil
}

// DeleteComment removes the owner's comment and triggers a rating recompute.
func (srv *commentService) DeleteComment(ctx context.Context, ownerID, commentID uuid.UUID) error {
	srv.logger.Info("Deleting comment", "commentID", commentID, "ownerID", ownerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		comment, err := commentRepo.FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to find comment")
		}
		if comment.OwnerID != ownerID {
			return domainerrors.ErrNotOwner
		}

		if err := commentRepo.Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return srv.bus.Publish(ctx, repoFactory, event.CommentDeleted{Comment: comment})
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}

// ListComments retrieves one page of a product's comments.
func (srv *commentService) ListComments(ctx context.Context, productID uuid.UUID, page, pageSize int) (*pagination.Page[entity.Comment], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Comment]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewCommentRepository().ListByProduct(ctx, productID, req)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListMyComments retrieves one page of the owner's comments.
func (srv *commentService) ListMyComments(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*pagination.Page[entity.Comment], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Comment]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewCommentRepository().ListByOwner(ctx, ownerID, req)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
