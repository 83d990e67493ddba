// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ancestorClosure returns ids unioned with every transitive ancestor of each
// id. The walk is breadth-first over batched lookups so the number of
// queries is bounded by the hierarchy depth, not the node count.
func ancestorClosure(ctx context.Context, repo repository.CategoryRepository, ids []uuid.UUID) ([]uuid.UUID, error) {
	visited := make(map[uuid.UUID]struct{}, len(ids))
	frontier := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := visited[id]; !ok {
			visited[id] = struct{}{}
			frontier = append(frontier, id)
		}
	}

	for len(frontier) > 0 {
		categories, err := repo.FindByIDs(ctx, frontier)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load categories for closure")
		}
		if len(categories) < len(frontier) {
			return nil, errors.Wrap(repository.ErrCategoryNotFound, "closure references unknown category")
		}

		frontier = frontier[:0]
		for _, category := range categories {
			if category.ParentID == nil {
				continue
			}
			if _, ok := visited[*category.ParentID]; ok {
				continue
			}
			visited[*category.ParentID] = struct{}{}
			frontier = append(frontier, *category.ParentID)
		}
	}

	return setToSlice(visited), nil
}

// descendantClosure returns ids unioned with every transitive descendant of
// each id. Used to resolve a category discount's effective target once at
// registration.
func descendantClosure(ctx context.Context, repo repository.CategoryRepository, ids []uuid.UUID) ([]uuid.UUID, error) {
	visited := make(map[uuid.UUID]struct{}, len(ids))
	frontier := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := visited[id]; !ok {
			visited[id] = struct{}{}
			frontier = append(frontier, id)
		}
	}

	first := true
	for len(frontier) > 0 {
		categories, err := repo.FindByIDs(ctx, frontier)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load categories for closure")
		}
		if first && len(categories) < len(frontier) {
			return nil, errors.Wrap(repository.ErrCategoryNotFound, "closure references unknown category")
		}
		first = false

		frontier = frontier[:0]
		for _, category := range categories {
			for _, childID := range category.SubcategoryIDs {
				if _, ok := visited[childID]; ok {
					continue
				}
				visited[childID] = struct{}{}
				frontier = append(frontier, childID)
			}
		}
	}

	return setToSlice(visited), nil
}

// dedupeIDs drops repeated ids, preserving first-occurrence order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

func setToSlice(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}

	return out
}

// unionProps merges two property-name sets, preserving the order of the
// first and appending unseen entries of the second.
func unionProps(parent, child []string) []string {
	seen := make(map[string]struct{}, len(parent)+len(child))
	out := make([]string, 0, len(parent)+len(child))
	for _, prop := range parent {
		if _, ok := seen[prop]; !ok {
			seen[prop] = struct{}{}
			out = append(out, prop)
		}
	}
	for _, prop := range child {
		if _, ok := seen[prop]; !ok {
			seen[prop] = struct{}{}
			out = append(out, prop)
		}
	}

	return out
}

// intersects reports whether the two id slices share any element.
func intersects(a, b []uuid.UUID) bool {
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}

	return false
}

// missingRequiredProps returns the required property names absent from the
// product's characteristics, checked against every assigned category.
func missingRequiredProps(categories []entity.Category, characteristics map[string]string) []string {
	var missing []string
	seen := make(map[string]struct{})
	for _, category := range categories {
		for _, prop := range category.RequiredProps {
			if _, ok := characteristics[prop]; ok {
				continue
			}
			if _, ok := seen[prop]; ok {
				continue
			}
			seen[prop] = struct{}{}
			missing = append(missing, prop)
		}
	}

	return missing
}
