package event

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBus_Publish_RegistrationOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe(NameProductRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Subscribe(NameProductRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		calls = append(calls, "second")
		return nil
	})
	bus.Subscribe(NameProductRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		calls = append(calls, "third")
		return nil
	})

	err := bus.Publish(context.Background(), nil, ProductRegistered{Product: &entity.Product{}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestBus_Publish_AbortsOnFirstError(t *testing.T) {
	bus := NewBus()
	var calls []string
	boom := errors.New("reactor failed")

	bus.Subscribe(NameOrderRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Subscribe(NameOrderRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		calls = append(calls, "second")
		return boom
	})
	bus.Subscribe(NameOrderRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		calls = append(calls, "third")
		return nil
	})

	err := bus.Publish(context.Background(), nil, OrderRegistered{Order: &entity.Order{}})
	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBus_Publish_OnlyMatchingName(t *testing.T) {
	bus := NewBus()
	var commentCalls, orderCalls int

	bus.Subscribe(NameCommentRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		commentCalls++
		return nil
	})
	bus.Subscribe(NameOrderRegistered, func(_ context.Context, _ repository.RepositoryFactory, _ Event) error {
		orderCalls++
		return nil
	})

	err := bus.Publish(context.Background(), nil, CommentRegistered{Comment: &entity.Comment{}})
	assert.NoError(t, err)
	assert.Equal(t, 1, commentCalls)
	assert.Equal(t, 0, orderCalls)
}

func TestBus_Publish_NoHandlers(t *testing.T) {
	bus := NewBus()

	err := bus.Publish(context.Background(), nil, CommentDeleted{Comment: &entity.Comment{}})
	assert.NoError(t, err)
}
