package employeeform

const (
	DefaultOptionLabel = "Select Designation"
	DefaultSubmitLabel = "Add Employee"
	SubmittingLabel    = "Submitting..."
)

// Option - опция выпадающего списка должностей.
type Option struct {
	Value string
	Label string
}

// Select - выпадающий список designation. Первая опция всегда пустая, по умолчанию.
type Select struct {
	Options  []Option
	Selected string
}

// SubmitButton - кнопка отправки: блокируется на время запроса.
type SubmitButton struct {
	Label    string
	Disabled bool
}

// Form - состояние формы employeeForm: поле имени, список должностей, кнопка.
type Form struct {
	EmployeeName string
	Designation  Select
	Submit       SubmitButton
}

func newForm() Form {
	return Form{
		Designation: Select{Options: []Option{defaultOption()}},
		Submit:      SubmitButton{Label: DefaultSubmitLabel},
	}
}

func defaultOption() Option {
	return Option{Value: "", Label: DefaultOptionLabel}
}

// resetOptions оставляет в списке только опцию по умолчанию.
func (s *Select) resetOptions() {
	s.Options = []Option{defaultOption()}
	s.Selected = ""
}

func (s *Select) hasValue(value string) bool {
	for _, o := range s.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// reset очищает введённые значения; опции списка и кнопка не меняются.
func (f *Form) reset() {
	f.EmployeeName = ""
	f.Designation.Selected = ""
}

// clone - копия для чтения снаружи без гонок.
func (f Form) clone() Form {
	f.Designation.Options = append([]Option(nil), f.Designation.Options...)
	return f
}
