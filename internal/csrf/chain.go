// Package csrf находит CSRF-токен сайта по упорядоченному списку источников.
package csrf

import (
	"context"

	"go.uber.org/zap"
)

// Provider - один источник токена. Пустая строка без ошибки - "здесь токена нет".
type Provider struct {
	Name   string
	Lookup func(ctx context.Context) (string, error)
}

// Token - найденный токен и имя источника.
type Token struct {
	Value  string
	Source string
}

func (t Token) IsSet() bool { return t.Value != "" }

// Chain опрашивает источники по порядку до первого непустого значения.
type Chain struct {
	providers []Provider
	logger    *zap.Logger
}

func NewChain(logger *zap.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, logger: logger.Named("csrf")}
}

// Resolve никогда не возвращает ошибку: сбой любого источника прекращает поиск,
// токен остаётся пустым, а ошибка только логируется.
func (c *Chain) Resolve(ctx context.Context) Token {
	for _, p := range c.providers {
		value, err := p.Lookup(ctx)
		if err != nil {
			c.logger.Warn("Ошибка получения CSRF-токена", zap.String("provider", p.Name), zap.Error(err))
			return Token{}
		}
		if value != "" {
			c.logger.Debug("CSRF-токен найден", zap.String("provider", p.Name))
			return Token{Value: value, Source: p.Name}
		}
	}

	c.logger.Warn("CSRF-токен не найден ни в одном источнике")
	return Token{}
}
