package entities

import "time"

type Employee struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employee_name"`
	Designation  string    `json:"designation"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}
