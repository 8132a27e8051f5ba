package seeders

import "github.com/aarondl/null/v8"

type designationSeed struct {
	Name  string
	Title null.String
}

// designationsData - справочник по умолчанию, если DESIGNATIONS не задан.
var designationsData = []designationSeed{
	{Name: "HR-001", Title: null.StringFrom("Manager")},
	{Name: "HR-002", Title: null.StringFrom("HR Specialist")},
	{Name: "HR-003", Title: null.StringFrom("Accountant")},
	{Name: "HR-004", Title: null.StringFrom("Software Engineer")},
	{Name: "HR-005", Title: null.StringFrom("Support Engineer")},
	{Name: "Intern"},
}
