package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("FRAPPE_URL", "http://erp.local/")
	t.Setenv("MESSAGE_TTL", "")

	cfg := New()

	assert.Equal(t, "http://erp.local", cfg.Client.BaseURL)
	assert.Equal(t, "/employeeform", cfg.Client.FormPage)
	assert.Equal(t, 3*time.Second, cfg.Client.MessageTTL, "пустое значение не парсится и заменяется значением по умолчанию")
	assert.Equal(t, 72*time.Hour, cfg.Site.SessionTTL)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CSRF_TOKEN", "abc")

	cfg := New()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Site.SessionTTL)
	assert.Equal(t, "abc", cfg.Client.CSRFToken)
}
