// Package employeeform - контроллер формы добавления сотрудника: CSRF-токен,
// загрузка должностей, проверка и отправка формы, область сообщений.
package employeeform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"employee-form/internal/csrf"
	"employee-form/internal/frappe"
	"employee-form/pkg/customvalidator"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	MsgLoadingDesignations = "Loading designations..."
	MsgDesignationsError   = "Error loading designations. Please refresh the page."
	MsgDesignationsFormat  = "Invalid data format received for designations"
	MsgRequiredFields      = "Please fill in all required fields"
	MsgAddingEmployee      = "Adding employee..."
	MsgEmployeeAdded       = "Employee added successfully!"
	MsgUnknownError        = "Unknown error"
	MsgUnexpectedResponse  = "Unexpected response format"
	MsgSubmitError         = "Error adding employee. Please try again."
)

var (
	ErrSubmitInProgress = errors.New("отправка формы уже выполняется")
	ErrNotInitialized   = errors.New("форма не инициализирована")
	ErrUnknownOption    = errors.New("нет такой должности в списке")
)

// FormClient - методы сайта, которые вызывает форма.
type FormClient interface {
	GetDesignations(ctx context.Context) (frappe.DesignationPayload, error)
	AddEmployee(ctx context.Context, token string, submission frappe.EmployeeSubmission) (frappe.SubmitResult, error)
}

type TokenResolver interface {
	Resolve(ctx context.Context) csrf.Token
}

// Session - результат инициализации. Токен в ней единственный, который уходит в заголовок.
type Session struct {
	CSRFToken csrf.Token
}

// Outcome - чем закончилась попытка отправки.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeAdded
	OutcomeRejected
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeAdded:
		return "added"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Controller struct {
	client   FormClient
	tokens   TokenResolver
	messages *MessageArea
	validate *validator.Validate
	logger   *zap.Logger

	mu   sync.Mutex
	form Form
}

func NewController(client FormClient, tokens TokenResolver, messages *MessageArea, logger *zap.Logger) *Controller {
	if messages == nil {
		messages = NewMessageArea(DefaultMessageTTL)
	}
	return &Controller{
		client:   client,
		tokens:   tokens,
		messages: messages,
		validate: customvalidator.New(),
		logger:   logger.Named("employeeform"),
		form:     newForm(),
	}
}

func (c *Controller) Messages() *MessageArea { return c.messages }

// Form - копия текущего состояния формы.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.clone()
}

func (c *Controller) SetEmployeeName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.EmployeeName = name
}

// SelectDesignation выбирает опцию по значению. "" - опция по умолчанию.
func (c *Controller) SelectDesignation(value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.form.Designation.hasValue(value) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, value)
	}
	c.form.Designation.Selected = value
	return nil
}

// Initialize: сначала токен, потом должности. Строго последовательно.
func (c *Controller) Initialize(ctx context.Context) *Session {
	token := c.tokens.Resolve(ctx)
	if !token.IsSet() {
		c.logger.Warn("Форма инициализирована без CSRF-токена")
	}
	session := &Session{CSRFToken: token}

	if err := c.LoadDesignations(ctx); err != nil {
		c.logger.Warn("Должности не загружены", zap.Error(err))
	}
	return session
}

// LoadDesignations заполняет список должностей. Ошибка уже показана в области
// сообщений, наружу она возвращается для вызывающего кода.
func (c *Controller) LoadDesignations(ctx context.Context) error {
	c.messages.Show(KindLoading, MsgLoadingDesignations)

	payload, err := c.client.GetDesignations(ctx)
	if err != nil {
		c.logger.Error("Ошибка загрузки должностей", zap.Error(err))
		c.mu.Lock()
		c.form.Designation.resetOptions()
		c.mu.Unlock()
		c.messages.Show(KindError, MsgDesignationsError)
		return err
	}

	c.mu.Lock()
	c.form.Designation.resetOptions()
	if payload.Valid {
		for _, entry := range payload.Entries {
			c.form.Designation.Options = append(c.form.Designation.Options, Option{
				Value: entry.Value(),
				Label: entry.Label(),
			})
		}
	}
	count := len(c.form.Designation.Options) - 1
	c.mu.Unlock()

	if !payload.Valid {
		c.logger.Warn("Неверный формат списка должностей")
		c.messages.Show(KindError, MsgDesignationsFormat)
		return errors.New(MsgDesignationsFormat)
	}

	c.logger.Debug("Должности загружены", zap.Int("count", count))
	c.messages.Clear()
	return nil
}

// Submit проверяет и отправляет форму. Результат для пользователя - в области
// сообщений; ошибка возвращается только если отправка не начиналась.
func (c *Controller) Submit(ctx context.Context, session *Session) (Outcome, error) {
	if session == nil {
		return OutcomeInvalid, ErrNotInitialized
	}

	c.mu.Lock()
	if c.form.Submit.Disabled {
		c.mu.Unlock()
		return OutcomeInvalid, ErrSubmitInProgress
	}

	submission := frappe.EmployeeSubmission{
		EmployeeName: strings.TrimSpace(c.form.EmployeeName),
		Designation:  strings.TrimSpace(c.form.Designation.Selected),
	}
	if err := c.validate.Struct(submission); err != nil {
		c.mu.Unlock()
		c.messages.Show(KindError, MsgRequiredFields)
		return OutcomeInvalid, nil
	}

	label := c.form.Submit.Label
	c.form.Submit.Disabled = true
	c.form.Submit.Label = SubmittingLabel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.form.Submit.Disabled = false
		c.form.Submit.Label = label
		c.mu.Unlock()
	}()

	c.messages.Show(KindLoading, MsgAddingEmployee)

	result, err := c.client.AddEmployee(ctx, session.CSRFToken.Value, submission)
	if err != nil {
		c.logger.Error("Ошибка добавления сотрудника", zap.Error(err))
		c.messages.Show(KindError, MsgSubmitError)
		return OutcomeFailed, nil
	}

	switch result.Kind {
	case frappe.ResultStructured:
		if !result.Success {
			c.messages.Show(KindError, "Error: "+MsgUnknownError)
			return OutcomeRejected, nil
		}
		c.logger.Info("Сотрудник добавлен", zap.String("employee", result.Employee))
		c.messages.Show(KindSuccess, MsgEmployeeAdded)
		c.mu.Lock()
		c.form.reset()
		c.mu.Unlock()
		return OutcomeAdded, nil
	case frappe.ResultText:
		c.messages.Show(KindError, "Error: "+result.Text)
		return OutcomeRejected, nil
	default:
		c.messages.Show(KindError, MsgUnexpectedResponse)
		return OutcomeRejected, nil
	}
}
