package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"employee-form/internal/dto"
	"employee-form/internal/entities"
	"employee-form/internal/events"
	"employee-form/internal/repositories"
	apperrors "employee-form/pkg/errors"
	"employee-form/pkg/eventbus"
)

type EmployeeServiceInterface interface {
	AddEmployee(ctx context.Context, d dto.AddEmployeeDTO, session *entities.Session) (*dto.AddEmployeeResultDTO, error)
}

type EmployeeService struct {
	employeeRepo    repositories.EmployeeRepositoryInterface
	designationRepo repositories.DesignationRepositoryInterface
	bus             *eventbus.Bus
	logger          *zap.Logger
}

func NewEmployeeService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	designationRepo repositories.DesignationRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{
		employeeRepo:    employeeRepo,
		designationRepo: designationRepo,
		bus:             bus,
		logger:          logger,
	}
}

// AddEmployee создаёт сотрудника. Отказы (нет должности, дубликат) возвращаются
// как BusinessError и попадают клиенту строкой в message.
func (s *EmployeeService) AddEmployee(ctx context.Context, d dto.AddEmployeeDTO, session *entities.Session) (*dto.AddEmployeeResultDTO, error) {
	name := strings.TrimSpace(d.EmployeeName)
	designationName := strings.TrimSpace(d.Designation)

	designation, err := s.designationRepo.FindByName(ctx, designationName)
	if err != nil {
		if errors.Is(err, apperrors.ErrDesignationNotFound) {
			return nil, apperrors.NewBusinessError(err, "Designation not found")
		}
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось проверить должность", err, nil)
	}

	employee := &entities.Employee{
		EmployeeName: name,
		Designation:  designation.Name,
		CreatedBy:    session.User,
		CreatedAt:    time.Now(),
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewBusinessError(err, "Duplicate employee")
		}
		s.logger.Error("Ошибка при создании сотрудника", zap.String("employee_name", name), zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось создать сотрудника", err, nil)
	}

	s.logger.Info("Сотрудник успешно создан", zap.String("employee", employee.ID))
	s.bus.Publish(ctx, events.EmployeeCreatedEvent{Employee: *employee})

	return &dto.AddEmployeeResultDTO{Success: true, Employee: employee.ID}, nil
}
