package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-formschema/internal/config"
	"github.com/goliatone/go-formschema/pkg/builder"
	"github.com/goliatone/go-formschema/pkg/normalize"
	"github.com/goliatone/go-formschema/pkg/prompt"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/sessionstore"
	"github.com/goliatone/go-formschema/pkg/validation"
)

// App carries what every command needs. Commands receive it through kong
// bindings.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	store  sessionstore.Store
	logger builder.Logger
	driver prompt.Driver
	out    io.Writer
	errOut io.Writer
}

func newApp(ctx context.Context, cli *CLI, out, errOut io.Writer) (*App, error) {
	cfg, err := config.LoadOptional(cli.Config)
	if err != nil {
		return nil, err
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}
	store, err := sessionstore.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	return &App{
		ctx:    ctx,
		cfg:    cfg,
		store:  store,
		logger: newLogger(cfg.Logging, errOut),
		driver: prompt.NewSurveyDriver(out),
		out:    out,
		errOut: errOut,
	}, nil
}

func newLogger(cfg config.LoggingConfig, w io.Writer) glog.Logger {
	if cfg.Format == "json" {
		return glog.NewLogger(
			glog.WithWriter(w),
			glog.WithLoggerTypeJSON(),
			glog.WithLevel(cfg.Level),
		)
	}
	return glog.NewLogger(
		glog.WithWriter(w),
		glog.WithLevel(cfg.Level),
	)
}

// Close releases the session store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) validator() *validation.Validator {
	return validation.New(a.cfg.ValidatorOptions()...)
}

// openSession restores the configured session, or starts an empty one when
// it has never been saved.
func (a *App) openSession() (*builder.Session, error) {
	options := []builder.Option{
		builder.WithValidator(a.validator()),
		builder.WithHistoryLimit(a.cfg.Session.HistoryLimit),
		builder.WithLogger(a.logger),
	}
	if a.cfg.Normalize {
		options = append(options, builder.WithNormalizer(normalize.Schema))
	}
	session := builder.New(options...)

	snap, err := a.store.Load(a.ctx, a.cfg.Session.Name)
	switch {
	case err == nil:
		session.Restore(snap)
	case sessionstore.IsNotFound(err):
		a.logger.Debug("starting new session", "session", a.cfg.Session.Name)
	default:
		return nil, err
	}
	return session, nil
}

func (a *App) saveSession(session *builder.Session) error {
	return a.store.Save(a.ctx, a.cfg.Session.Name, session.Snapshot())
}

// commit applies fn to the stored session and saves it when the result is
// successful. Rejections are printed and reported as errRejected.
func (a *App) commit(fn func(*builder.Session) validation.Result) error {
	session, err := a.openSession()
	if err != nil {
		return err
	}
	result := fn(session)
	if !result.Success {
		a.printIssues(result.Errors)
		return errRejected
	}
	if err := a.saveSession(session); err != nil {
		return err
	}
	a.printSummary(session.Schema())
	return nil
}

func (a *App) printIssues(issues []validation.Issue) {
	for _, issue := range issues {
		if path := issue.Path.String(); path != "" {
			fmt.Fprintf(a.errOut, "%s: %s\n", path, issue.Message)
			continue
		}
		fmt.Fprintln(a.errOut, issue.Message)
	}
}

func (a *App) printSummary(s schema.Schema) {
	fmt.Fprintf(a.out, "%d runnable(s)\n", len(s.Runnables))
	for i, r := range s.Runnables {
		fmt.Fprintf(a.out, "  [%d] %s (%s) %d input(s)\n", i, r.Path, r.Type, len(r.Inputs))
	}
}

func readRunnable(path string) (schema.Runnable, error) {
	var r schema.Runnable
	if err := readJSON(path, &r); err != nil {
		return schema.Runnable{}, err
	}
	return r, nil
}

func readInput(path string) (schema.Input, error) {
	var in schema.Input
	if err := readJSON(path, &in); err != nil {
		return schema.Input{}, err
	}
	return in, nil
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
