package entities

import "time"

// Session - серверная сессия пользователя, ключ - cookie sid.
type Session struct {
	SID       string    `json:"sid"`
	User      string    `json:"user"`
	FullName  string    `json:"full_name"`
	CSRFToken string    `json:"csrf_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
