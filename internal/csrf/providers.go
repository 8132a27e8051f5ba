package csrf

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	ProviderConfig       = "config"
	ProviderGlobal       = "global"
	ProviderFrappeGlobal = "frappe_global"
	ProviderMeta         = "meta"
	ProviderFrappeMeta   = "frappe_meta"
	ProviderCookie       = "cookie"
	ProviderNetwork      = "network"
)

var (
	// csrf_token = "..." без префикса "frappe." перед именем.
	globalTokenRe = regexp.MustCompile(`(?:^|[^.\w$])csrf_token\s*=\s*["']([^"']+)["']`)
	frappeTokenRe = regexp.MustCompile(`frappe\.csrf_token\s*=\s*["']([^"']+)["']`)
)

// Static - заранее известный токен (настройка CSRF_TOKEN, флаг --csrf-token).
func Static(name, value string) Provider {
	return Provider{
		Name:   name,
		Lookup: func(context.Context) (string, error) { return strings.TrimSpace(value), nil },
	}
}

// PageSource лениво загружает HTML-страницу один раз на все страничные источники.
type PageSource struct {
	fetch  func(ctx context.Context) (*goquery.Document, error)
	logger *zap.Logger

	mu      sync.Mutex
	fetched bool
	doc     *goquery.Document
}

// NewPageSource - fetch == nil означает "страницы нет": страничные источники пусты.
// Страница, которую не удалось загрузить, тоже считается отсутствующей.
func NewPageSource(fetch func(ctx context.Context) (*goquery.Document, error), logger *zap.Logger) *PageSource {
	return &PageSource{fetch: fetch, logger: logger}
}

func (p *PageSource) document(ctx context.Context) (*goquery.Document, error) {
	if p == nil || p.fetch == nil {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.fetched {
		doc, err := p.fetch(ctx)
		if err != nil {
			p.logger.Warn("Страница не загружена, токен ищется в cookie и по сети", zap.Error(err))
			doc = nil
		}
		p.doc = doc
		p.fetched = true
	}
	return p.doc, nil
}

// ScriptVariable ищет присваивание токена во встроенных скриптах страницы.
func (p *PageSource) ScriptVariable(name string, re *regexp.Regexp) Provider {
	return Provider{
		Name: name,
		Lookup: func(ctx context.Context) (string, error) {
			doc, err := p.document(ctx)
			if err != nil || doc == nil {
				return "", err
			}

			var token string
			doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
				if m := re.FindStringSubmatch(s.Text()); m != nil {
					token = m[1]
					return false
				}
				return true
			})
			return token, nil
		},
	}
}

// Global - глобальная переменная csrf_token.
func (p *PageSource) Global() Provider { return p.ScriptVariable(ProviderGlobal, globalTokenRe) }

// FrappeGlobal - поле frappe.csrf_token.
func (p *PageSource) FrappeGlobal() Provider {
	return p.ScriptVariable(ProviderFrappeGlobal, frappeTokenRe)
}

// MetaTag - атрибут content тега <meta name="...">.
func (p *PageSource) MetaTag(name, metaName string) Provider {
	return Provider{
		Name: name,
		Lookup: func(ctx context.Context) (string, error) {
			doc, err := p.document(ctx)
			if err != nil || doc == nil {
				return "", err
			}
			content, _ := doc.Find(fmt.Sprintf(`meta[name=%q]`, metaName)).First().Attr("content")
			return content, nil
		},
	}
}

// Cookie - первая cookie с одним из имён, значение URL-декодируется.
func Cookie(cookies func() []*http.Cookie, names ...string) Provider {
	return Provider{
		Name: ProviderCookie,
		Lookup: func(context.Context) (string, error) {
			for _, c := range cookies() {
				for _, name := range names {
					if c.Name != name {
						continue
					}
					value, err := url.PathUnescape(c.Value)
					if err != nil {
						return "", fmt.Errorf("не удалось декодировать cookie %s: %w", c.Name, err)
					}
					return value, nil
				}
			}
			return "", nil
		},
	}
}

// Network - запрос токена у сервера.
func Network(fetch func(ctx context.Context) (string, error)) Provider {
	return Provider{Name: ProviderNetwork, Lookup: fetch}
}
