package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employee-form/internal/csrf"
	"employee-form/internal/employeeform"
	"employee-form/internal/frappe"
	"employee-form/pkg/config"
	"employee-form/pkg/logger"
)

type rootOptions struct {
	BaseURL   string
	User      string
	Password  string
	CSRFToken string
	Page      string
	Verbose   bool

	cfg config.ClientConfig
}

func newRootCmd() *cobra.Command {
	cfg := config.New().Client
	opts := &rootOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:           "employeeform",
		Short:         "Клиент формы добавления сотрудника",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.BaseURL, "url", cfg.BaseURL, "адрес сайта")
	flags.StringVar(&opts.User, "user", cfg.User, "пользователь для входа (пусто - без входа)")
	flags.StringVar(&opts.Password, "password", cfg.Password, "пароль (пусто - спросить)")
	flags.StringVar(&opts.CSRFToken, "csrf-token", cfg.CSRFToken, "CSRF-токен, заданный явно")
	flags.StringVar(&opts.Page, "page", cfg.FormPage, "страница формы для поиска токена (пусто - не загружать)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "подробный лог в stderr")

	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newDesignationsCmd(opts))
	cmd.AddCommand(newTokenCmd(opts))
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

// session - всё, что нужно командам: клиент сайта, цепочка токена и контроллер формы.
type session struct {
	logger     *zap.Logger
	client     *frappe.Client
	chain      *csrf.Chain
	controller *employeeform.Controller
}

// connect создаёт клиент и, если задан пользователь, входит на сайт.
func (o *rootOptions) connect(ctx context.Context) (*session, error) {
	log := logger.NewCLILogger(o.Verbose)

	client, err := frappe.New(o.BaseURL, o.cfg.HTTPTimeout, log)
	if err != nil {
		return nil, err
	}

	if o.User != "" {
		password := o.Password
		if password == "" {
			prompt := promptui.Prompt{Label: "Пароль " + o.User, Mask: '*'}
			if password, err = prompt.Run(); err != nil {
				return nil, fmt.Errorf("ввод пароля: %w", err)
			}
		}
		if err := client.Login(ctx, o.User, password); err != nil {
			return nil, err
		}
	}

	chain := csrf.DefaultChain(client, o.CSRFToken, o.Page, log)
	messages := employeeform.NewMessageArea(o.cfg.MessageTTL)
	return &session{
		logger:     log,
		client:     client,
		chain:      chain,
		controller: employeeform.NewController(client, chain, messages, log),
	}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
