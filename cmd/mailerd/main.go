package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/jnbao2020/saleor/modules/dispatch"
	"github.com/jnbao2020/saleor/modules/mailbox"
	"github.com/jnbao2020/saleor/pkg/config"
	"github.com/jnbao2020/saleor/pkg/email"
	"github.com/jnbao2020/saleor/pkg/logger"
	"github.com/jnbao2020/saleor/pkg/pg"
	"github.com/jnbao2020/saleor/pkg/templatedmail"
	"github.com/jnbao2020/saleor/svc/account"
	"github.com/jnbao2020/saleor/svc/order"
	"github.com/jnbao2020/saleor/svc/site"
)

// appConfig holds process-level settings for the mailer daemon.
type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Addr       string `env:"HTTP_ADDR" envDefault:":8080"`
	MailboxDir string `env:"MAILBOX_DIR" envDefault:"./var/mailbox"`
}

type configs struct {
	app     appConfig
	site    site.Config
	account account.Config
	email   email.Config
	pg      pg.Config
}

// loadConfigs parses all service configuration from the environment in one
// place, so a missing required variable fails the process at startup rather
// than on the first send.
func loadConfigs() (configs, error) {
	var c configs
	if err := config.Load(&c.app); err != nil {
		return configs{}, err
	}
	if err := config.Load(&c.site); err != nil {
		return configs{}, err
	}
	if err := config.Load(&c.account); err != nil {
		return configs{}, err
	}
	if err := config.Load(&c.email); err != nil {
		return configs{}, err
	}
	if err := config.Load(&c.pg); err != nil {
		return configs{}, err
	}
	return c, nil
}

// newTransport picks the outgoing mail transport: Postmark when both tokens
// are configured, otherwise the development sender capturing mail to disk
// for the mailbox preview.
func newTransport(cfg email.Config, captureDir string) (email.EmailSender, error) {
	if cfg.PostmarkServerToken != "" && cfg.PostmarkAccountToken != "" {
		return email.NewPostmarkClient(cfg)
	}
	return email.NewDevSender(captureDir), nil
}

func main() {
	cfgs, err := loadConfigs()
	if err != nil {
		slog.Error("Failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(logger.WithEnvironment(cfgs.app.Env, "mailerd"))
	logger.SetAsDefault(log)

	ctx := context.Background()

	pool, err := pg.Connect(ctx, cfgs.pg)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfgs.pg, log); err != nil {
		log.Error("Failed to apply migrations", logger.Error(err))
		os.Exit(1)
	}

	transport, err := newTransport(cfgs.email, cfgs.app.MailboxDir)
	if err != nil {
		log.Error("Failed to configure mail transport", logger.Error(err))
		os.Exit(1)
	}

	registry := templatedmail.NewRegistry()
	order.MustRegisterTemplates(registry)
	account.MustRegisterTemplates(registry)
	mailer := templatedmail.New(registry, transport, templatedmail.WithLogger(log))

	sites := site.NewPGStorage(pool)
	orderEmails := order.NewEmails(cfgs.site, order.NewPGStorage(pool), sites, mailer, order.WithLogger(log))
	accountEmails := account.NewEmails(cfgs.site, cfgs.account, account.NewPGStorage(pool), sites, mailer, account.WithLogger(log))

	r := chi.NewRouter()
	r.Mount("/internal/emails", dispatch.Router(dispatch.RouterOptions{
		Orders:   orderEmails,
		Accounts: accountEmails,
		Health:   pg.Healthcheck(pool),
		Logger:   log,
	}))
	if cfgs.app.Env != "production" {
		r.Mount("/dev/mailbox", mailbox.Router(mailbox.RouterOptions{Dir: cfgs.app.MailboxDir, Logger: log}))
	}

	log.Info("Mailer listening", slog.String("addr", cfgs.app.Addr), slog.String("env", cfgs.app.Env))
	if err := http.ListenAndServe(cfgs.app.Addr, r); err != nil {
		log.Error("HTTP server stopped", logger.Error(err))
		os.Exit(1)
	}
}
