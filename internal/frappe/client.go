package frappe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	MethodLogin           = "/api/method/login"
	MethodCSRFToken       = "/api/method/frappe.sessions.get_csrf_token"
	MethodGetDesignations = "/api/method/task_manager.services.employeeform.get_designations"
	MethodAddEmployee     = "/api/method/task_manager.services.employeeform.add_employee"

	// CSRFHeader - заголовок с CSRF-токеном для изменяющих запросов.
	CSRFHeader = "X-Frappe-CSRF-Token"
)

// Client - HTTP-клиент сайта Frappe. Cookie сессии живут в jar клиента.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("неверный адрес сайта %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("неверный адрес сайта %q: нужны схема и хост", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания cookie jar: %w", err)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
		baseURL:    u,
		logger:     logger.Named("frappe_client"),
	}, nil
}

// Cookies - cookie, которые клиент отправил бы на сайт.
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.baseURL)
}

// Login открывает сессию; cookie sid и csrf_token оседают в jar.
func (c *Client) Login(ctx context.Context, usr, pwd string) error {
	body, err := json.Marshal(map[string]string{"usr": usr, "pwd": pwd})
	if err != nil {
		return fmt.Errorf("ошибка сериализации логина: %w", err)
	}

	status, raw, err := c.do(ctx, http.MethodPost, MethodLogin, body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("вход не выполнен: статус %d, тело: %s", status, truncate(raw))
	}
	c.logger.Debug("Вход выполнен", zap.String("usr", usr))
	return nil
}

// FetchPage загружает HTML-страницу сайта (например, /employeeform).
func (c *Client) FetchPage(ctx context.Context, path string) (*goquery.Document, error) {
	status, raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("страница %s вернула статус %d", path, status)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора HTML страницы %s: %w", path, err)
	}
	return doc, nil
}

// GetCSRFToken запрашивает токен у frappe.sessions.get_csrf_token.
// Неуспешный статус - не ошибка, а отсутствие токена.
func (c *Client) GetCSRFToken(ctx context.Context) (string, error) {
	status, raw, err := c.do(ctx, http.MethodGet, MethodCSRFToken, nil, nil)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		c.logger.Debug("get_csrf_token вернул неуспешный статус", zap.Int("status", status))
		return "", nil
	}

	var envelope struct {
		Message interface{} `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("ошибка парсинга ответа get_csrf_token: %w", err)
	}
	token, _ := envelope.Message.(string)
	return token, nil
}

// GetDesignations загружает список должностей. Тело разбирается при любом статусе.
func (c *Client) GetDesignations(ctx context.Context) (DesignationPayload, error) {
	status, raw, err := c.do(ctx, http.MethodGet, MethodGetDesignations, nil, nil)
	if err != nil {
		return DesignationPayload{}, err
	}

	payload, err := DecodeDesignationPayload(raw)
	if err != nil {
		return DesignationPayload{}, fmt.Errorf("статус %d: %w", status, err)
	}
	c.logger.Debug("Список должностей получен",
		zap.Int("status", status),
		zap.Bool("valid", payload.Valid),
		zap.Int("count", len(payload.Entries)),
	)
	return payload, nil
}

// AddEmployee отправляет форму. Пустой token - заголовок не ставится.
func (c *Client) AddEmployee(ctx context.Context, token string, submission EmployeeSubmission) (SubmitResult, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("ошибка сериализации формы: %w", err)
	}

	headers := http.Header{}
	if token != "" {
		headers.Set(CSRFHeader, token)
	}

	status, raw, err := c.do(ctx, http.MethodPost, MethodAddEmployee, body, headers)
	if err != nil {
		return SubmitResult{}, err
	}

	result, err := DecodeSubmitResult(raw)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("статус %d: %w", status, err)
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, headers http.Header) (int, []byte, error) {
	endpoint := c.baseURL.String() + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка создания запроса %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка выполнения запроса %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("ошибка чтения ответа %s %s: %w", method, path, err)
	}
	return resp.StatusCode, raw, nil
}

func truncate(raw []byte) string {
	const limit = 256
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
