package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"employee-form/internal/events"
	"employee-form/pkg/eventbus"
)

// AuditListener пишет в журнал аудита каждого добавленного сотрудника.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EmployeeCreatedEvent{}.Name(), l.HandleEmployeeCreated)
}

func (l *AuditListener) HandleEmployeeCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EmployeeCreatedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", event)
	}
	l.logger.Info("Сотрудник добавлен",
		zap.String("employee", e.Employee.ID),
		zap.String("employee_name", e.Employee.EmployeeName),
		zap.String("designation", e.Employee.Designation),
		zap.String("created_by", e.Employee.CreatedBy),
	)
	return nil
}
