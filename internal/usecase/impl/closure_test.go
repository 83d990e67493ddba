package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAncestorClosure_WalksToRoot(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)

	ctx := context.Background()
	rootID := uuid.New()
	midID := uuid.New()
	leafID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{leafID}).
		Return([]entity.Category{{ID: leafID, ParentID: &midID}}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{midID}).
		Return([]entity.Category{{ID: midID, ParentID: &rootID}}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{rootID}).
		Return([]entity.Category{{ID: rootID}}, nil)

	closure, err := ancestorClosure(ctx, catRepo, []uuid.UUID{leafID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{leafID, midID, rootID}, closure)
}

func TestAncestorClosure_RootIsItsOwnClosure(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)

	ctx := context.Background()
	rootID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{rootID}).
		Return([]entity.Category{{ID: rootID}}, nil)

	closure, err := ancestorClosure(ctx, catRepo, []uuid.UUID{rootID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{rootID}, closure)
}

func TestAncestorClosure_UnknownCategoryFails(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)

	ctx := context.Background()
	unknownID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{unknownID}).
		Return([]entity.Category{}, nil)

	_, err := ancestorClosure(ctx, catRepo, []uuid.UUID{unknownID})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestDescendantClosure_CollectsSubtree(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)

	ctx := context.Background()
	rootID := uuid.New()
	childID := uuid.New()
	grandchildID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{rootID}).
		Return([]entity.Category{{ID: rootID, SubcategoryIDs: []uuid.UUID{childID}}}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{childID}).
		Return([]entity.Category{{ID: childID, SubcategoryIDs: []uuid.UUID{grandchildID}}}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{grandchildID}).
		Return([]entity.Category{{ID: grandchildID}}, nil)

	closure, err := descendantClosure(ctx, catRepo, []uuid.UUID{rootID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{rootID, childID, grandchildID}, closure)
}

func TestDescendantClosure_UnknownCategoryFails(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)

	ctx := context.Background()
	unknownID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{unknownID}).
		Return([]entity.Category{}, nil)

	_, err := descendantClosure(ctx, catRepo, []uuid.UUID{unknownID})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestUnionProps_ParentOrderWins(t *testing.T) {
	got := unionProps([]string{"brand", "color"}, []string{"color", "size"})
	assert.Equal(t, []string{"brand", "color", "size"}, got)
}

func TestUnionProps_EmptyParent(t *testing.T) {
	got := unionProps(nil, []string{"size"})
	assert.Equal(t, []string{"size"}, got)
}

func TestIntersects(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	assert.True(t, intersects([]uuid.UUID{a, b}, []uuid.UUID{b, c}))
	assert.False(t, intersects([]uuid.UUID{a}, []uuid.UUID{c}))
	assert.False(t, intersects(nil, []uuid.UUID{a}))
}

func TestMissingRequiredProps(t *testing.T) {
	categories := []entity.Category{
		{RequiredProps: []string{"brand", "color"}},
		{RequiredProps: []string{"color", "size"}},
	}

	missing := missingRequiredProps(categories, map[string]string{"color": "red"})
	assert.Equal(t, []string{"brand", "size"}, missing)

	missing = missingRequiredProps(categories, map[string]string{
		"brand": "acme", "color": "red", "size": "m",
	})
	assert.Empty(t, missing)
}
