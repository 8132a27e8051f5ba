package events

import "employee-form/internal/entities"

// EmployeeCreatedEvent - сотрудник добавлен через форму.
type EmployeeCreatedEvent struct {
	Employee entities.Employee
}

// Name - реализуем интерфейс eventbus.Event
func (e EmployeeCreatedEvent) Name() string {
	return "employee.created"
}
