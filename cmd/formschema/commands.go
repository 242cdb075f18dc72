package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formschema/internal/config"
	"github.com/goliatone/go-formschema/pkg/builder"
	"github.com/goliatone/go-formschema/pkg/codec"
	"github.com/goliatone/go-formschema/pkg/normalize"
	"github.com/goliatone/go-formschema/pkg/openapi"
	"github.com/goliatone/go-formschema/pkg/prompt"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/validation"
)

// errRejected is returned after a rejected change has been printed.
var errRejected = errors.New("change rejected")

// CLI is the kong grammar.
type CLI struct {
	Config   string `help:"Configuration file." default:".formschema.yaml" env:"FORMSCHEMA_CONFIG"`
	DB       string `help:"Session database path." env:"FORMSCHEMA_DB"`
	Session  string `help:"Session name." short:"s" env:"FORMSCHEMA_SESSION"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)." env:"FORMSCHEMA_LOG_LEVEL"`

	Validate       ValidateCmd       `cmd:"" help:"Validate a schema document without touching the session."`
	Show           ShowCmd           `cmd:"" help:"Print the committed schema."`
	Import         ImportCmd         `cmd:"" help:"Replace the session schema with a document."`
	Export         ExportCmd         `cmd:"" help:"Write the committed schema."`
	OpenAPI        OpenAPICmd        `cmd:"" name:"openapi" help:"Write an OpenAPI description of the committed schema."`
	AddRunnable    AddRunnableCmd    `cmd:"" help:"Append a runnable."`
	AddInput       AddInputCmd       `cmd:"" help:"Append an input to a runnable."`
	RemoveRunnable RemoveRunnableCmd `cmd:"" help:"Remove a runnable."`
	RemoveInput    RemoveInputCmd    `cmd:"" help:"Remove an input from a runnable."`
	ReorderInputs  ReorderInputsCmd  `cmd:"" help:"Move an input within its runnable."`
	Undo           UndoCmd           `cmd:"" help:"Step back one committed change."`
	Redo           RedoCmd           `cmd:"" help:"Re-apply the last undone change."`
	Reset          ResetCmd          `cmd:"" help:"Commit the empty schema."`
	History        HistoryCmd        `cmd:"" help:"Show the undo and redo stacks."`
	Sessions       SessionsCmd       `cmd:"" help:"Manage saved sessions."`
}

func (c *CLI) apply(cfg *config.Config) {
	if c.DB != "" {
		cfg.Database.Path = c.DB
	}
	if c.Session != "" {
		cfg.Session.Name = c.Session
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
}

// ValidateCmd checks a document the way import would: normalised first when
// normalisation is enabled, then run through the configured validator.
type ValidateCmd struct {
	File string `arg:"" help:"Schema document (JSON or YAML)."`
}

func (c *ValidateCmd) Run(app *App) error {
	s, err := codec.Load(app.ctx, codec.SourceFromFile(c.File))
	if err != nil {
		return err
	}
	if app.cfg.Normalize {
		s = normalize.Schema(s)
	}
	result := app.validator().ValidateSchema(s)
	if !result.Success {
		app.printIssues(result.Errors)
		return errRejected
	}
	fmt.Fprintln(app.out, "valid")
	return nil
}

// ShowCmd prints the committed schema.
type ShowCmd struct {
	Format string `help:"Output format (json, yaml)." default:"json" enum:"json,yaml"`
}

func (c *ShowCmd) Run(app *App) error {
	session, err := app.openSession()
	if err != nil {
		return err
	}
	data, err := session.ExportFormat(codec.Format(c.Format))
	if err != nil {
		return err
	}
	_, err = app.out.Write(append(data, '\n'))
	return err
}

// ImportCmd replaces the session schema.
type ImportCmd struct {
	File string `arg:"" help:"Schema document (JSON or YAML)."`
}

func (c *ImportCmd) Run(app *App) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}
	session, err := app.openSession()
	if err != nil {
		return err
	}
	if err := session.ImportFormat(data, codec.FormatForPath(c.File)); err != nil {
		if builder.IsInvalidSchema(err) {
			fmt.Fprintln(app.errOut, "Invalid schema format")
			app.printIssues(session.Issues())
			return errRejected
		}
		return err
	}
	if err := app.saveSession(session); err != nil {
		return err
	}
	app.printSummary(session.Schema())
	return nil
}

// ExportCmd writes the committed schema. A directory output gets the
// default download file name.
type ExportCmd struct {
	Output string `short:"o" help:"Output file or directory; stdout when empty."`
	Format string `help:"Output format (json, yaml)." default:"json" enum:"json,yaml"`
}

func (c *ExportCmd) Run(app *App) error {
	session, err := app.openSession()
	if err != nil {
		return err
	}
	data, err := session.ExportFormat(codec.Format(c.Format))
	if err != nil {
		return err
	}
	return writeOutput(app, c.Output, codec.Filename, data)
}

// OpenAPICmd writes the OpenAPI description.
type OpenAPICmd struct {
	Output       string `short:"o" help:"Output file; stdout when empty."`
	Title        string `help:"Document title." default:"Form schema"`
	Version      string `help:"Document version." default:"1.0.0"`
	NoOperations bool   `help:"Emit component schemas only."`
}

func (c *OpenAPICmd) Run(app *App) error {
	session, err := app.openSession()
	if err != nil {
		return err
	}
	data, err := openapi.Export(session.Schema(),
		openapi.WithTitle(c.Title),
		openapi.WithVersion(c.Version),
		openapi.WithOperations(!c.NoOperations),
	)
	if err != nil {
		return err
	}
	return writeOutput(app, c.Output, "openapi.json", data)
}

// AddRunnableCmd appends a runnable read from a file or asked interactively.
type AddRunnableCmd struct {
	From string `help:"Runnable JSON file; prompts when empty."`
}

func (c *AddRunnableCmd) Run(app *App) error {
	var (
		r   schema.Runnable
		err error
	)
	if c.From != "" {
		r, err = readRunnable(c.From)
	} else {
		r, err = app.wizard().Runnable(app.ctx)
	}
	if err != nil {
		return err
	}
	return app.commit(func(s *builder.Session) validation.Result { return s.AddRunnable(r) })
}

// AddInputCmd appends an input.
type AddInputCmd struct {
	Runnable int    `arg:"" help:"Runnable index."`
	From     string `help:"Input JSON file; prompts when empty."`
}

func (c *AddInputCmd) Run(app *App) error {
	var (
		in  schema.Input
		err error
	)
	if c.From != "" {
		in, err = readInput(c.From)
	} else {
		in, err = app.wizard().Input(app.ctx)
	}
	if err != nil {
		return err
	}
	return app.commit(func(s *builder.Session) validation.Result { return s.AddInput(c.Runnable, in) })
}

// RemoveRunnableCmd removes a runnable.
type RemoveRunnableCmd struct {
	Index int `arg:"" help:"Runnable index."`
}

func (c *RemoveRunnableCmd) Run(app *App) error {
	return app.commit(func(s *builder.Session) validation.Result { return s.RemoveRunnable(c.Index) })
}

// RemoveInputCmd removes an input.
type RemoveInputCmd struct {
	Runnable int `arg:"" help:"Runnable index."`
	Input    int `arg:"" help:"Input index."`
}

func (c *RemoveInputCmd) Run(app *App) error {
	return app.commit(func(s *builder.Session) validation.Result { return s.RemoveInput(c.Runnable, c.Input) })
}

// ReorderInputsCmd moves an input.
type ReorderInputsCmd struct {
	Runnable int `arg:"" help:"Runnable index."`
	From     int `arg:"" help:"Current input index."`
	To       int `arg:"" help:"Target input index."`
}

func (c *ReorderInputsCmd) Run(app *App) error {
	return app.commit(func(s *builder.Session) validation.Result {
		return s.ReorderInputs(c.Runnable, c.From, c.To)
	})
}

// UndoCmd steps back.
type UndoCmd struct{}

func (c *UndoCmd) Run(app *App) error {
	return app.move("undo", (*builder.Session).Undo)
}

// RedoCmd steps forward.
type RedoCmd struct{}

func (c *RedoCmd) Run(app *App) error {
	return app.move("redo", (*builder.Session).Redo)
}

// ResetCmd commits the empty schema.
type ResetCmd struct{}

func (c *ResetCmd) Run(app *App) error {
	return app.commit((*builder.Session).Reset)
}

// HistoryCmd prints the history stacks.
type HistoryCmd struct{}

func (c *HistoryCmd) Run(app *App) error {
	session, err := app.openSession()
	if err != nil {
		return err
	}
	h := session.History()
	for i, entry := range h.Past() {
		fmt.Fprintf(app.out, "past[%d]    %s\n", i, describe(entry))
	}
	fmt.Fprintf(app.out, "present    %s\n", describe(h.Present()))
	for i, entry := range h.Future() {
		fmt.Fprintf(app.out, "future[%d]  %s\n", i, describe(entry))
	}
	return nil
}

// SessionsCmd groups session management.
type SessionsCmd struct {
	List   SessionsListCmd   `cmd:"" default:"1" help:"List saved sessions."`
	Delete SessionsDeleteCmd `cmd:"" help:"Delete a saved session."`
}

// SessionsListCmd lists session names.
type SessionsListCmd struct{}

func (c *SessionsListCmd) Run(app *App) error {
	names, err := app.store.List(app.ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		marker := " "
		if name == app.cfg.Session.Name {
			marker = "*"
		}
		fmt.Fprintf(app.out, "%s %s\n", marker, name)
	}
	return nil
}

// SessionsDeleteCmd deletes a session.
type SessionsDeleteCmd struct {
	Name string `arg:"" help:"Session name."`
}

func (c *SessionsDeleteCmd) Run(app *App) error {
	return app.store.Delete(app.ctx, c.Name)
}

func (a *App) move(name string, step func(*builder.Session) bool) error {
	session, err := a.openSession()
	if err != nil {
		return err
	}
	if !step(session) {
		fmt.Fprintf(a.out, "nothing to %s\n", name)
		return nil
	}
	if err := a.saveSession(session); err != nil {
		return err
	}
	a.printSummary(session.Schema())
	return nil
}

func (a *App) wizard() *prompt.Wizard {
	return prompt.NewWizard(
		prompt.WithDriver(a.driver),
		prompt.WithMaxInputs(a.cfg.Validation.MaxInputs),
	)
}

func writeOutput(app *App, output, defaultName string, data []byte) error {
	if output == "" {
		_, err := app.out.Write(append(data, '\n'))
		return err
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, defaultName)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(app.out, "wrote %s\n", output)
	return nil
}

func describe(s schema.Schema) string {
	total := 0
	for _, r := range s.Runnables {
		total += len(r.Inputs)
	}
	return fmt.Sprintf("%d runnable(s), %d input(s)", len(s.Runnables), total)
}
