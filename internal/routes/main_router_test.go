package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"employee-form/internal/repositories"
	"employee-form/pkg/config"
	"employee-form/pkg/eventbus"
	"employee-form/pkg/utils"
	"employee-form/seeders"
)

// RouterTestSuite - маршруты страницы и методов формы поверх кэша в памяти.
type RouterTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Bus     *eventbus.Bus
	Cookies []*http.Cookie
	Token   string
}

func (s *RouterTestSuite) SetupTest() {
	hash, err := utils.HashPassword("secret")
	s.Require().NoError(err)

	cache := repositories.NewMemoryCacheRepository()
	s.Require().NoError(seeders.SeedDesignations(context.Background(), repositories.NewDesignationRepository(cache), "HR-001:Manager,Intern", zap.NewNop()))

	s.Echo = echo.New()
	s.Bus = eventbus.New(zap.NewNop())
	InitRouter(s.Echo, cache, s.Bus, NopLoggers(), &config.Config{Site: config.SiteConfig{
		User:         "Administrator",
		FullName:     "Admin User",
		PasswordHash: hash,
		SessionTTL:   time.Hour,
	}})
	s.Cookies = nil
	s.Token = ""
}

func (s *RouterTestSuite) TearDownTest() {
	s.Bus.Wait()
}

func (s *RouterTestSuite) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range s.Cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func (s *RouterTestSuite) login() {
	rec := s.do(http.MethodPost, "/api/method/login", `{"usr":"Administrator","pwd":"secret"}`, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Cookies = rec.Result().Cookies()
	for _, c := range s.Cookies {
		if c.Name == "csrf_token" {
			token, err := url.QueryUnescape(c.Value)
			s.Require().NoError(err)
			s.Token = token
		}
	}
	s.Require().NotEmpty(s.Token)
}

func (s *RouterTestSuite) addEmployee(body string) map[string]interface{} {
	rec := s.do(http.MethodPost, "/api/method"+PathAddEmployee, body, map[string]string{"X-Frappe-CSRF-Token": s.Token})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	return s.decode(rec)
}

func (s *RouterTestSuite) TestGuestRedirectedFromForm() {
	rec := s.do(http.MethodGet, "/employeeform", "", nil)
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("/login", rec.Header().Get(echo.HeaderLocation))

	s.Cookies = []*http.Cookie{{Name: "sid", Value: "Guest"}}
	rec = s.do(http.MethodGet, "/employeeform", "", nil)
	s.Equal(http.StatusFound, rec.Code)
}

func (s *RouterTestSuite) TestLogin() {
	rec := s.do(http.MethodPost, "/api/method/login", `{"usr":"Administrator","pwd":"wrong"}`, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	body := s.decode(rec)
	s.Equal("AuthenticationError", body["exc_type"])
	s.Equal("Invalid login credentials", body["exception"])
	s.NotContains(body, "message")

	rec = s.do(http.MethodPost, "/api/method/login", `{"usr":"Administrator","pwd":"secret"}`, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	body = s.decode(rec)
	s.Equal("Logged In", body["message"])
	s.Equal("Admin User", body["full_name"])

	names := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		names[c.Name] = true
	}
	s.True(names["sid"])
	s.True(names["csrf_token"])
}

func (s *RouterTestSuite) TestFormPage() {
	s.login()

	rec := s.do(http.MethodGet, "/employeeform", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	s.Require().NoError(err)

	meta, _ := doc.Find(`meta[name="csrf-token"]`).Attr("content")
	s.Equal(s.Token, meta)
	frappeMeta, _ := doc.Find(`meta[name="X-Frappe-CSRF-Token"]`).Attr("content")
	s.Equal(s.Token, frappeMeta)
	s.Contains(doc.Find("script").Text(), `frappe.csrf_token = "`+s.Token+`"`)

	s.Equal(1, doc.Find("form#employeeForm").Length())
	s.Equal(1, doc.Find("input#employeename").Length())
	s.Equal(1, doc.Find("#submitBtn").Length())
	s.Equal(1, doc.Find("#messageArea").Length())

	var options [][2]string
	doc.Find("select#designation option").Each(func(_ int, sel *goquery.Selection) {
		value, _ := sel.Attr("value")
		options = append(options, [2]string{value, sel.Text()})
	})
	s.Equal([][2]string{{"", "Select Designation"}, {"HR-001", "Manager"}, {"Intern", "Intern"}}, options)

	rec = s.do(http.MethodGet, "/login", "", nil)
	s.Equal(http.StatusFound, rec.Code, "вошедшего пользователя уводим на форму")
}

func (s *RouterTestSuite) TestCSRFTokenMethod() {
	rec := s.do(http.MethodGet, "/api/method"+PathCSRFToken, "", nil)
	s.Equal(http.StatusForbidden, rec.Code)

	s.login()
	rec = s.do(http.MethodGet, "/api/method"+PathCSRFToken, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(s.Token, s.decode(rec)["message"])
}

func (s *RouterTestSuite) TestGetDesignations() {
	s.login()
	rec := s.do(http.MethodGet, "/api/method"+PathGetDesignations, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":[{"name":"HR-001","title":"Manager"},{"name":"Intern","title":null}]}`, rec.Body.String())
}

func (s *RouterTestSuite) TestAddEmployee_CSRF() {
	s.login()

	for _, token := range []string{"", "forged"} {
		rec := s.do(http.MethodPost, "/api/method"+PathAddEmployee, `{"employeename":"Ali","designation":"HR-001"}`,
			map[string]string{"X-Frappe-CSRF-Token": token})
		s.Equal(http.StatusBadRequest, rec.Code)
		body := s.decode(rec)
		s.Equal("CSRFTokenError", body["exc_type"])
		s.NotContains(body, "message")
	}
}

func (s *RouterTestSuite) TestAddEmployee() {
	s.login()

	body := s.addEmployee(`{"employeename":" Ali Valiev ","designation":"HR-001"}`)
	s.Equal(map[string]interface{}{"success": true, "employee": "HR-EMP-00001"}, body["message"])

	body = s.addEmployee(`{"employeename":"ali  valiev","designation":"Intern"}`)
	s.Equal("Duplicate employee", body["message"])

	body = s.addEmployee(`{"employeename":"Bob","designation":"HR-999"}`)
	s.Equal("Designation not found", body["message"])

	body = s.addEmployee(`{"employeename":"   ","designation":"HR-001"}`)
	s.Equal("Employee name and designation are required", body["message"])

	body = s.addEmployee(`{"employeename":"Bob","designation":"Intern"}`)
	msg, ok := body["message"].(map[string]interface{})
	s.Require().True(ok, "%v", body)
	s.Equal(true, msg["success"])
	s.NotEqual("HR-EMP-00001", msg["employee"])
	s.Regexp(`^HR-EMP-\d{5}$`, msg["employee"])
}

func (s *RouterTestSuite) TestLogout() {
	s.login()
	rec := s.do(http.MethodPost, "/api/method/logout", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/method"+PathCSRFToken, "", nil)
	s.Equal(http.StatusForbidden, rec.Code, "сессия удалена на сервере")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
