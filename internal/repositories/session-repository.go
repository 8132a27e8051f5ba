package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"employee-form/internal/entities"
	apperrors "employee-form/pkg/errors"
)

const sessionKeyPrefix = "session:"

type SessionRepositoryInterface interface {
	Save(ctx context.Context, session *entities.Session, ttl time.Duration) error
	FindBySID(ctx context.Context, sid string) (*entities.Session, error)
	Delete(ctx context.Context, sid string) error
}

type SessionRepository struct {
	cache CacheRepositoryInterface
}

func NewSessionRepository(cache CacheRepositoryInterface) SessionRepositoryInterface {
	return &SessionRepository{cache: cache}
}

func (r *SessionRepository) Save(ctx context.Context, session *entities.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("ошибка сериализации сессии: %w", err)
	}
	return r.cache.Set(ctx, sessionKeyPrefix+session.SID, payload, ttl)
}

func (r *SessionRepository) FindBySID(ctx context.Context, sid string) (*entities.Session, error) {
	raw, err := r.cache.Get(ctx, sessionKeyPrefix+sid)
	if errors.Is(err, ErrCacheMiss) {
		return nil, apperrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать сессию: %w", err)
	}

	var session entities.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("повреждённая сессия: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	return r.cache.Del(ctx, sessionKeyPrefix+sid)
}
