package errors

import "fmt"

var (
	// Сессия и CSRF
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrSessionExpired     = fmt.Errorf("сессия истекла")
	ErrCSRFToken          = fmt.Errorf("неверный CSRF-токен")

	// Сотрудники и должности
	ErrDuplicate           = fmt.Errorf("запись уже существует")
	ErrDesignationNotFound = fmt.Errorf("должность не найдена")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// HttpError - ошибка с HTTP-кодом и текстом для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// BusinessError - отказ бизнес-логики. Frappe-методы возвращают такие ошибки
// строкой в поле message, а не HTTP-статусом.
type BusinessError struct {
	Message string
	Err     error
}

func (e *BusinessError) Error() string { return e.Message }

func (e *BusinessError) Unwrap() error { return e.Err }

func NewBusinessError(err error, format string, args ...interface{}) error {
	return &BusinessError{Message: fmt.Sprintf(format, args...), Err: err}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
