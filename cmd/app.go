package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roadprep/roadprep/internal/access"
	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/api"
	"github.com/roadprep/roadprep/internal/app"
	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/config"
	"github.com/roadprep/roadprep/internal/logging"
	"github.com/roadprep/roadprep/internal/store"
)

// services bundles everything a command needs; Close tears it down.
type services struct {
	cfg      *config.Config
	log      *slog.Logger
	logClose io.Closer
	st       *store.Store
	backend  *api.Client
	accounts *account.Service
	loader   *catalog.Loader
	quick    *catalog.QuickExamSource
	resolver *access.Resolver
}

func buildServices(cmd *cobra.Command) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logPath := filepath.Join(filepath.Dir(dbPath), "roadprep.log")
	log, logClose, err := logging.Setup(logPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = logClose.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	backend := api.New(cfg.APIBaseURL, api.WithHTTPClient(httpClient))

	backendFor := func(token string) account.Backend {
		opts := []api.Option{api.WithHTTPClient(httpClient)}
		if token != "" {
			opts = append(opts, api.WithToken(token))
		}
		return api.New(cfg.APIBaseURL, opts...)
	}

	return &services{
		cfg:      cfg,
		log:      log,
		logClose: logClose,
		st:       st,
		backend:  backend,
		accounts: account.NewService(st.Credentials(), backendFor, log),
		loader:   catalog.NewLoader(backend, catalog.NewTTLCache(), log),
		quick:    catalog.NewQuickExamSource(st.Seeds(), backend, log),
		resolver: access.NewResolver(log),
	}, nil
}

func (s *services) Close() {
	if s.st != nil {
		_ = s.st.Close()
	}
	if s.logClose != nil {
		_ = s.logClose.Close()
	}
}

func runApp(cmd *cobra.Command, startAtExams bool) error {
	svc, err := buildServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	return app.Run(app.Options{
		Log:          svc.log,
		Accounts:     svc.accounts,
		Loader:       svc.loader,
		QuickExams:   svc.quick,
		Resolver:     svc.resolver,
		Attempts:     svc.st.Attempts(),
		Backend:      svc.backend,
		StartAtExams: startAtExams,
	})
}
