package seeders

import (
	"context"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"employee-form/internal/entities"
	"employee-form/internal/repositories"
)

// SeedDesignations наполняет справочник должностей. list - строка вида
// "HR-001:Manager,Intern"; пустая строка - значения по умолчанию.
func SeedDesignations(ctx context.Context, repo repositories.DesignationRepositoryInterface, list string, logger *zap.Logger) error {
	logger.Info("▶️  Наполнение справочника должностей...")

	designations, err := parseDesignations(list)
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, designations); err != nil {
		return fmt.Errorf("ошибка наполнения должностей: %w", err)
	}

	logger.Info("✅ Справочник должностей наполнен", zap.Int("count", len(designations)))
	return nil
}

func parseDesignations(list string) ([]entities.Designation, error) {
	if strings.TrimSpace(list) == "" {
		result := make([]entities.Designation, 0, len(designationsData))
		for _, d := range designationsData {
			result = append(result, entities.Designation{Name: d.Name, Title: d.Title})
		}
		return result, nil
	}

	seen := make(map[string]bool)
	var result []entities.Designation
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, title, hasTitle := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("пустое имя должности в %q", item)
		}
		if seen[name] {
			return nil, fmt.Errorf("должность %q указана дважды", name)
		}
		seen[name] = true

		d := entities.Designation{Name: name}
		if title = strings.TrimSpace(title); hasTitle && title != "" {
			d.Title = null.StringFrom(title)
		}
		result = append(result, d)
	}
	return result, nil
}
