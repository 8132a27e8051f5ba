package employeeform

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	KindLoading MessageKind = "loading"
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// DefaultMessageTTL - через сколько исчезают сообщения loading и success.
const DefaultMessageTTL = 3 * time.Second

type Message struct {
	ID   string
	Kind MessageKind
	Text string
}

// autoDismiss - сообщения этого вида убираются сами.
func (k MessageKind) autoDismiss() bool {
	return k == KindLoading || k == KindSuccess
}

// MessageArea - область сообщений формы: не больше одного сообщения.
// Для loading и success при показе заводится одно отложенное удаление,
// которое отменяется, если сообщение перезаписали или очистили раньше.
// Наблюдатели получают изменения в том же порядке, в каком они произошли;
// вызывать Show или Clear из наблюдателя нельзя.
type MessageArea struct {
	mu sync.Mutex
	// notifyMu берётся под mu и держится на время оповещения.
	notifyMu  sync.Mutex
	current   *Message
	timer     *time.Timer
	ttl       time.Duration
	observers []func(*Message)
}

func NewMessageArea(ttl time.Duration) *MessageArea {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return &MessageArea{ttl: ttl}
}

// OnChange подписывает наблюдателя. Вызывается после каждого изменения, nil - область пуста.
func (a *MessageArea) OnChange(fn func(*Message)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observers = append(a.observers, fn)
}

// Show заменяет текущее сообщение целиком.
func (a *MessageArea) Show(kind MessageKind, text string) Message {
	msg := Message{ID: uuid.NewString(), Kind: kind, Text: text}

	a.mu.Lock()
	a.stopTimer()
	a.current = &msg
	if kind.autoDismiss() {
		id := msg.ID
		a.timer = time.AfterFunc(a.ttl, func() { a.expire(id) })
	}
	observers := a.snapshotObservers()
	a.notifyMu.Lock()
	a.mu.Unlock()
	defer a.notifyMu.Unlock()

	a.notify(observers, &msg)
	return msg
}

func (a *MessageArea) Clear() {
	a.mu.Lock()
	a.stopTimer()
	hadMessage := a.current != nil
	a.current = nil
	observers := a.snapshotObservers()
	a.notifyMu.Lock()
	a.mu.Unlock()
	defer a.notifyMu.Unlock()

	if hadMessage {
		a.notify(observers, nil)
	}
}

// Current - текущее сообщение или nil.
func (a *MessageArea) Current() *Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	msg := *a.current
	return &msg
}

// expire убирает сообщение id, если оно всё ещё показано.
func (a *MessageArea) expire(id string) {
	a.mu.Lock()
	if a.current == nil || a.current.ID != id {
		a.mu.Unlock()
		return
	}
	a.current = nil
	a.timer = nil
	observers := a.snapshotObservers()
	a.notifyMu.Lock()
	a.mu.Unlock()
	defer a.notifyMu.Unlock()

	a.notify(observers, nil)
}

func (a *MessageArea) stopTimer() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *MessageArea) snapshotObservers() []func(*Message) {
	return append(([]func(*Message))(nil), a.observers...)
}

func (a *MessageArea) notify(observers []func(*Message), msg *Message) {
	for _, fn := range observers {
		if msg == nil {
			fn(nil)
			continue
		}
		m := *msg
		fn(&m)
	}
}
