package csrf

import (
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Site - то, что нужно стандартной цепочке от клиента сайта.
type Site interface {
	FetchPage(ctx context.Context, path string) (*goquery.Document, error)
	Cookies() []*http.Cookie
	GetCSRFToken(ctx context.Context) (string, error)
}

// DefaultChain собирает источники в порядке приоритета: настройка, csrf_token и
// frappe.csrf_token из скриптов страницы, meta csrf-token, meta X-Frappe-CSRF-Token,
// cookie csrf_token/csrftoken, запрос get_csrf_token. Пустой pagePath - без страницы.
func DefaultChain(site Site, configured, pagePath string, logger *zap.Logger) *Chain {
	var fetch func(ctx context.Context) (*goquery.Document, error)
	if pagePath != "" {
		fetch = func(ctx context.Context) (*goquery.Document, error) {
			return site.FetchPage(ctx, pagePath)
		}
	}
	page := NewPageSource(fetch, logger.Named("csrf"))

	var providers []Provider
	if configured != "" {
		providers = append(providers, Static(ProviderConfig, configured))
	}
	providers = append(providers,
		page.Global(),
		page.FrappeGlobal(),
		page.MetaTag(ProviderMeta, "csrf-token"),
		page.MetaTag(ProviderFrappeMeta, "X-Frappe-CSRF-Token"),
		Cookie(site.Cookies, "csrf_token", "csrftoken"),
		Network(site.GetCSRFToken),
	)
	return NewChain(logger, providers...)
}
