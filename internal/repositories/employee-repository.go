package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"employee-form/internal/entities"
	apperrors "employee-form/pkg/errors"
)

const (
	employeeSeqKey      = "employee:seq"
	employeeKeyPrefix   = "employee:id:"
	employeeNamePrefix  = "employee:name:"
	employeeNamingSerie = "HR-EMP-%05d"
)

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *entities.Employee) error
	FindByID(ctx context.Context, id string) (*entities.Employee, error)
}

type EmployeeRepository struct {
	cache  CacheRepositoryInterface
	logger *zap.Logger
}

func NewEmployeeRepository(cache CacheRepositoryInterface, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{cache: cache, logger: logger}
}

// Create присваивает сотруднику ID из серии HR-EMP-xxxxx. Имя уникально без учёта регистра.
func (r *EmployeeRepository) Create(ctx context.Context, employee *entities.Employee) error {
	seq, err := r.cache.Incr(ctx, employeeSeqKey)
	if err != nil {
		return fmt.Errorf("не удалось получить номер сотрудника: %w", err)
	}
	id := fmt.Sprintf(employeeNamingSerie, seq)

	ok, err := r.cache.SetNX(ctx, employeeNamePrefix+normalizeName(employee.EmployeeName), id, 0)
	if err != nil {
		return fmt.Errorf("не удалось проверить уникальность имени: %w", err)
	}
	if !ok {
		return apperrors.ErrDuplicate
	}

	employee.ID = id
	payload, err := json.Marshal(employee)
	if err != nil {
		return fmt.Errorf("ошибка сериализации сотрудника: %w", err)
	}
	if err := r.cache.Set(ctx, employeeKeyPrefix+id, payload, 0); err != nil {
		// Освобождаем имя, иначе повторная попытка упрётся в дубликат.
		if delErr := r.cache.Del(ctx, employeeNamePrefix+normalizeName(employee.EmployeeName)); delErr != nil {
			r.logger.Warn("Не удалось освободить имя сотрудника", zap.String("id", id), zap.Error(delErr))
		}
		return fmt.Errorf("не удалось сохранить сотрудника: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*entities.Employee, error) {
	raw, err := r.cache.Get(ctx, employeeKeyPrefix+id)
	if errors.Is(err, ErrCacheMiss) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать сотрудника %s: %w", id, err)
	}

	var employee entities.Employee
	if err := json.Unmarshal([]byte(raw), &employee); err != nil {
		return nil, fmt.Errorf("повреждённая запись сотрудника %s: %w", id, err)
	}
	return &employee, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
