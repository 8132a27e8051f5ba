package frappe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNullBody - сервер ответил JSON null: ни конверта, ни данных.
var ErrNullBody = errors.New("пустой ответ (null)")

// EmployeeSubmission - тело запроса add_employee.
type EmployeeSubmission struct {
	EmployeeName string `json:"employeename" validate:"required"`
	Designation  string `json:"designation" validate:"required"`
}

type EntryKind int

const (
	// EntryRecord - объект {name, title}.
	EntryRecord EntryKind = iota
	// EntryText - голая строка.
	EntryText
	// EntryRaw - любое другое значение, хранится как JSON-текст.
	EntryRaw
)

// DesignationEntry - элемент списка должностей: запись или строка.
type DesignationEntry struct {
	Kind  EntryKind
	Name  string
	Title string
	Text  string
}

// Value - значение опции выпадающего списка.
func (e DesignationEntry) Value() string {
	if e.Kind == EntryRecord {
		return e.Name
	}
	return e.Text
}

// Label - подпись опции: title, затем name, затем само значение.
// Title бывает и у объекта без name.
func (e DesignationEntry) Label() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Value()
}

func (e *DesignationEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = DesignationEntry{Kind: EntryText, Text: s}
		return nil
	case len(data) > 0 && data[0] == '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		title := displayField(fields, "title")
		name := displayField(fields, "name")
		if name == "" {
			*e = DesignationEntry{Kind: EntryRaw, Title: title, Text: string(data)}
			return nil
		}
		*e = DesignationEntry{Kind: EntryRecord, Name: name, Title: title}
		return nil
	default:
		*e = DesignationEntry{Kind: EntryRaw, Text: string(data)}
		return nil
	}
}

// DesignationPayload - разобранный ответ get_designations. Valid=false, если
// в ответе нет массива ни в корне, ни в поле message.
type DesignationPayload struct {
	Entries []DesignationEntry
	Valid   bool
}

// DecodeDesignationPayload принимает голый массив или {message: [...]}.
// Ошибка - только если тело вообще не JSON.
func DecodeDesignationPayload(body []byte) (DesignationPayload, error) {
	var root json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return DesignationPayload{}, fmt.Errorf("ошибка парсинга списка должностей: %w", err)
	}
	if isNull(root) {
		return DesignationPayload{}, fmt.Errorf("список должностей: %w", ErrNullBody)
	}

	list := root
	if isObject(root) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(root, &envelope); err != nil {
			return DesignationPayload{}, fmt.Errorf("ошибка парсинга списка должностей: %w", err)
		}
		if msg, ok := envelope["message"]; ok && truthy(msg) {
			list = msg
		}
	}

	if !isArray(list) {
		return DesignationPayload{Valid: false}, nil
	}
	var entries []DesignationEntry
	if err := json.Unmarshal(list, &entries); err != nil {
		return DesignationPayload{}, fmt.Errorf("ошибка парсинга элементов списка должностей: %w", err)
	}
	return DesignationPayload{Entries: entries, Valid: true}, nil
}

type ResultKind int

const (
	// ResultMissing - в ответе нет поля message (или оно пустое).
	ResultMissing ResultKind = iota
	// ResultStructured - message - объект (или иное не-строковое значение).
	ResultStructured
	// ResultText - message - строка с текстом ошибки.
	ResultText
)

// SubmitResult - разобранный ответ add_employee.
type SubmitResult struct {
	Kind     ResultKind
	Success  bool
	Employee string
	Text     string
}

func DecodeSubmitResult(body []byte) (SubmitResult, error) {
	var root json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return SubmitResult{}, fmt.Errorf("ошибка парсинга ответа add_employee: %w", err)
	}
	if isNull(root) {
		return SubmitResult{}, fmt.Errorf("ответ add_employee: %w", ErrNullBody)
	}
	if !isObject(root) {
		return SubmitResult{Kind: ResultMissing}, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(root, &envelope); err != nil {
		return SubmitResult{}, fmt.Errorf("ошибка парсинга ответа add_employee: %w", err)
	}
	msg, ok := envelope["message"]
	if !ok || !truthy(msg) {
		return SubmitResult{Kind: ResultMissing}, nil
	}

	msg = bytes.TrimSpace(msg)
	if msg[0] == '"' {
		var text string
		if err := json.Unmarshal(msg, &text); err != nil {
			return SubmitResult{}, fmt.Errorf("ошибка парсинга текста ответа: %w", err)
		}
		return SubmitResult{Kind: ResultText, Text: text}, nil
	}

	result := SubmitResult{Kind: ResultStructured}
	if isObject(msg) {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(msg, &fields); err != nil {
			return SubmitResult{}, fmt.Errorf("ошибка парсинга ответа add_employee: %w", err)
		}
		if success, ok := fields["success"]; ok {
			result.Success = truthy(success)
		}
		result.Employee = stringField(fields, "employee")
	}
	return result, nil
}

// truthy повторяет правила истинности JSON-значения: null, false, 0 и "" - ложь.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case '"':
		return len(raw) > 2
	case '{', '[', 't':
		return true
	default:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return false
		}
		return n != 0
	}
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// displayField - поле объекта в виде текста опции: ложное значение - пусто,
// строка - как есть, остальное - JSON-текстом.
func displayField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok || !truthy(raw) {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if raw[0] != '"' {
		return string(raw)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
