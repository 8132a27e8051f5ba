package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"employee-form/internal/entities"
	apperrors "employee-form/pkg/errors"
)

const designationCatalogueKey = "designation:catalogue"

type DesignationRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entities.Designation, error)
	FindByName(ctx context.Context, name string) (*entities.Designation, error)
	ReplaceAll(ctx context.Context, designations []entities.Designation) error
}

// DesignationRepository хранит справочник должностей одним JSON-значением.
type DesignationRepository struct {
	cache CacheRepositoryInterface
}

func NewDesignationRepository(cache CacheRepositoryInterface) DesignationRepositoryInterface {
	return &DesignationRepository{cache: cache}
}

func (r *DesignationRepository) FindAll(ctx context.Context) ([]entities.Designation, error) {
	raw, err := r.cache.Get(ctx, designationCatalogueKey)
	if errors.Is(err, ErrCacheMiss) {
		return []entities.Designation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать справочник должностей: %w", err)
	}

	var designations []entities.Designation
	if err := json.Unmarshal([]byte(raw), &designations); err != nil {
		return nil, fmt.Errorf("повреждённый справочник должностей: %w", err)
	}
	return designations, nil
}

func (r *DesignationRepository) FindByName(ctx context.Context, name string) (*entities.Designation, error) {
	designations, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range designations {
		if designations[i].Name == name {
			return &designations[i], nil
		}
	}
	return nil, apperrors.ErrDesignationNotFound
}

func (r *DesignationRepository) ReplaceAll(ctx context.Context, designations []entities.Designation) error {
	payload, err := json.Marshal(designations)
	if err != nil {
		return fmt.Errorf("ошибка сериализации справочника должностей: %w", err)
	}
	return r.cache.Set(ctx, designationCatalogueKey, payload, 0)
}
