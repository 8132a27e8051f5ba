package dto

import "github.com/aarondl/null/v8"

type AddEmployeeDTO struct {
	EmployeeName string `json:"employeename" form:"employeename" validate:"notblank,max=140"`
	Designation  string `json:"designation" form:"designation" validate:"notblank,max=140"`
}

type AddEmployeeResultDTO struct {
	Success  bool   `json:"success"`
	Employee string `json:"employee,omitempty"`
}

type DesignationDTO struct {
	Name  string      `json:"name"`
	Title null.String `json:"title"`
}

// Label - подпись опции: title, если задан, иначе name.
func (d DesignationDTO) Label() string {
	if d.Title.Valid && d.Title.String != "" {
		return d.Title.String
	}
	return d.Name
}
