package employeeform_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"employee-form/internal/csrf"
	"employee-form/internal/employeeform"
	"employee-form/internal/frappe"
	"employee-form/internal/repositories"
	"employee-form/internal/routes"
	"employee-form/pkg/config"
	"employee-form/pkg/eventbus"
	"employee-form/pkg/utils"
	"employee-form/seeders"
)

// SiteSuite гоняет контроллер формы против настоящего echo-сервера с памятью вместо Redis.
type SiteSuite struct {
	suite.Suite
	server *httptest.Server
	bus    *eventbus.Bus
	client *frappe.Client
}

func (s *SiteSuite) SetupTest() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret")
	s.Require().NoError(err)

	cfg := &config.Config{Site: config.SiteConfig{
		User:         "Administrator",
		FullName:     "Administrator",
		PasswordHash: hash,
		SessionTTL:   time.Hour,
	}}

	cache := repositories.NewMemoryCacheRepository()
	s.Require().NoError(seeders.SeedDesignations(ctx, repositories.NewDesignationRepository(cache), "", zap.NewNop()))

	e := echo.New()
	s.bus = eventbus.New(zap.NewNop())
	routes.InitRouter(e, cache, s.bus, routes.NopLoggers(), cfg)
	s.server = httptest.NewServer(e)

	s.client, err = frappe.New(s.server.URL, 5*time.Second, zap.NewNop())
	s.Require().NoError(err)
}

func (s *SiteSuite) TearDownTest() {
	s.bus.Wait()
	s.server.Close()
}

func (s *SiteSuite) newController(configured string) *employeeform.Controller {
	chain := csrf.DefaultChain(s.client, configured, "/employeeform", zap.NewNop())
	return employeeform.NewController(s.client, chain, employeeform.NewMessageArea(time.Minute), zap.NewNop())
}

func (s *SiteSuite) TestAddEmployee() {
	ctx := context.Background()
	s.Require().NoError(s.client.Login(ctx, "Administrator", "secret"))

	ctrl := s.newController("")
	session := ctrl.Initialize(ctx)
	s.Equal(csrf.ProviderGlobal, session.CSRFToken.Source)
	s.True(session.CSRFToken.IsSet())

	form := ctrl.Form()
	s.Require().Len(form.Designation.Options, 7)
	s.Equal(employeeform.Option{Value: "HR-001", Label: "Manager"}, form.Designation.Options[1])
	s.Equal(employeeform.Option{Value: "Intern", Label: "Intern"}, form.Designation.Options[6])

	ctrl.SetEmployeeName("Ali Valiev")
	s.Require().NoError(ctrl.SelectDesignation("HR-004"))
	outcome, err := ctrl.Submit(ctx, session)
	s.Require().NoError(err)
	s.Equal(employeeform.OutcomeAdded, outcome)
	s.Equal(employeeform.MsgEmployeeAdded, ctrl.Messages().Current().Text)
	s.Empty(ctrl.Form().EmployeeName)

	ctrl.SetEmployeeName("ali valiev")
	s.Require().NoError(ctrl.SelectDesignation("HR-001"))
	outcome, err = ctrl.Submit(ctx, session)
	s.Require().NoError(err)
	s.Equal(employeeform.OutcomeRejected, outcome)
	s.Equal("Error: Duplicate employee", ctrl.Messages().Current().Text)
}

func (s *SiteSuite) TestWrongTokenRejected() {
	ctx := context.Background()
	s.Require().NoError(s.client.Login(ctx, "Administrator", "secret"))

	ctrl := s.newController("not-the-session-token")
	session := ctrl.Initialize(ctx)
	s.Equal(csrf.ProviderConfig, session.CSRFToken.Source)

	ctrl.SetEmployeeName("Ali")
	s.Require().NoError(ctrl.SelectDesignation("HR-001"))
	outcome, err := ctrl.Submit(ctx, session)
	s.Require().NoError(err)
	s.Equal(employeeform.OutcomeRejected, outcome)
	s.Equal(employeeform.MsgUnexpectedResponse, ctrl.Messages().Current().Text)
}

func (s *SiteSuite) TestGuestCannotLoadDesignations() {
	ctrl := s.newController("")
	session := ctrl.Initialize(context.Background())

	s.False(session.CSRFToken.IsSet())
	msg := ctrl.Messages().Current()
	s.Require().NotNil(msg)
	s.Equal(employeeform.MsgDesignationsFormat, msg.Text, "403 без message - не массив")
	s.Len(ctrl.Form().Designation.Options, 1)
}

func TestSiteSuite(t *testing.T) {
	suite.Run(t, new(SiteSuite))
}

func TestDefaultChain_CookieAfterLogin(t *testing.T) {
	// Без страницы токен берётся из cookie csrf_token, выставленной при входе.
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	e := echo.New()
	cache := repositories.NewMemoryCacheRepository()
	bus := eventbus.New(zap.NewNop())
	routes.InitRouter(e, cache, bus, routes.NopLoggers(), &config.Config{Site: config.SiteConfig{
		User: "Administrator", PasswordHash: hash, SessionTTL: time.Hour,
	}})
	srv := httptest.NewServer(e)
	defer srv.Close()

	client, err := frappe.New(srv.URL, 5*time.Second, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, client.Login(context.Background(), "Administrator", "secret"))

	token := csrf.DefaultChain(client, "", "", zap.NewNop()).Resolve(context.Background())
	assert.Equal(t, csrf.ProviderCookie, token.Source)

	network, err := client.GetCSRFToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, network, token.Value)
}
