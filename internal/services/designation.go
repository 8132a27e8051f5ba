package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"employee-form/internal/dto"
	"employee-form/internal/repositories"
	apperrors "employee-form/pkg/errors"
)

type DesignationServiceInterface interface {
	GetDesignations(ctx context.Context) ([]dto.DesignationDTO, error)
}

type DesignationService struct {
	designationRepo repositories.DesignationRepositoryInterface
	logger          *zap.Logger
}

func NewDesignationService(designationRepo repositories.DesignationRepositoryInterface, logger *zap.Logger) DesignationServiceInterface {
	return &DesignationService{designationRepo: designationRepo, logger: logger}
}

func (s *DesignationService) GetDesignations(ctx context.Context) ([]dto.DesignationDTO, error) {
	designations, err := s.designationRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка получения справочника должностей", zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось получить должности", err, nil)
	}

	result := make([]dto.DesignationDTO, 0, len(designations))
	for _, d := range designations {
		result = append(result, dto.DesignationDTO{Name: d.Name, Title: d.Title})
	}
	return result, nil
}
