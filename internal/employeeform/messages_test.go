package employeeform

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * time.Millisecond

func TestMessageArea_SuccessExpires(t *testing.T) {
	area := NewMessageArea(testTTL)

	msg := area.Show(KindSuccess, MsgEmployeeAdded)
	require.NotNil(t, area.Current())
	assert.Equal(t, msg.ID, area.Current().ID)

	assert.Eventually(t, func() bool { return area.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestMessageArea_ErrorPersists(t *testing.T) {
	area := NewMessageArea(testTTL)

	area.Show(KindError, MsgSubmitError)
	time.Sleep(4 * testTTL)

	current := area.Current()
	require.NotNil(t, current)
	assert.Equal(t, KindError, current.Kind)
	assert.Equal(t, MsgSubmitError, current.Text)
}

func TestMessageArea_OverwriteCancelsPendingRemoval(t *testing.T) {
	area := NewMessageArea(testTTL)

	area.Show(KindLoading, MsgAddingEmployee)
	area.Show(KindError, "Error: Duplicate employee")
	time.Sleep(4 * testTTL)

	current := area.Current()
	require.NotNil(t, current, "удаление loading-сообщения не должно задеть новое")
	assert.Equal(t, "Error: Duplicate employee", current.Text)
}

func TestMessageArea_RemovesOnlyOnce(t *testing.T) {
	area := NewMessageArea(testTTL)

	var mu sync.Mutex
	var changes []*Message
	area.OnChange(func(m *Message) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, m)
	})

	area.Show(KindLoading, MsgLoadingDesignations)
	area.Show(KindSuccess, MsgEmployeeAdded)
	time.Sleep(4 * testTTL)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, changes, 3)
	assert.Equal(t, KindLoading, changes[0].Kind)
	assert.Equal(t, KindSuccess, changes[1].Kind)
	assert.Nil(t, changes[2])
}

func TestMessageArea_ClearStopsTimer(t *testing.T) {
	area := NewMessageArea(testTTL)

	notified := 0
	area.OnChange(func(*Message) { notified++ })

	area.Show(KindLoading, MsgLoadingDesignations)
	area.Clear()
	area.Clear()
	time.Sleep(4 * testTTL)

	assert.Nil(t, area.Current())
	assert.Equal(t, 2, notified, "показ и одна очистка; повторная очистка пустой области молчит")
}

func TestNewMessageArea_DefaultTTL(t *testing.T) {
	area := NewMessageArea(0)
	assert.Equal(t, DefaultMessageTTL, area.ttl)
}

func TestMessageArea_NotifiesInOrderOfChanges(t *testing.T) {
	area := NewMessageArea(testTTL)

	var mu sync.Mutex
	var changes []*Message
	expired := make(chan struct{})
	release := make(chan struct{})
	area.OnChange(func(m *Message) {
		mu.Lock()
		changes = append(changes, m)
		mu.Unlock()
		if m == nil {
			close(expired)
			<-release
		}
	})

	area.Show(KindSuccess, MsgEmployeeAdded)
	<-expired

	// Новое сообщение появляется, пока наблюдатель ещё обрабатывает удаление.
	shown := make(chan struct{})
	go func() {
		area.Show(KindError, MsgSubmitError)
		close(shown)
	}()
	time.Sleep(testTTL)
	close(release)
	<-shown

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, changes, 3)
	assert.Equal(t, KindSuccess, changes[0].Kind)
	assert.Nil(t, changes[1])
	require.NotNil(t, changes[2])
	assert.Equal(t, MsgSubmitError, changes[2].Text)

	current := area.Current()
	require.NotNil(t, current)
	assert.Equal(t, changes[2].ID, current.ID, "последнее оповещение совпадает с тем, что показано")
}
