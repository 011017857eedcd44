package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/instantnews/instantnews/catalog"
	"github.com/instantnews/instantnews/config"
	"github.com/instantnews/instantnews/newsapi"
	"github.com/instantnews/instantnews/render"
	"go.uber.org/zap"
)

const usageHint = "Arguments needed. Use argument --help/-h for more information."

var (
	// ErrInvalidCategory is returned for a category outside catalog.Categories.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidNewsCode is returned for a news code absent from the catalog.
	ErrInvalidNewsCode = errors.New("invalid news code")
)

// newsClient is the part of *newsapi.Client the dispatcher needs.
type newsClient interface {
	Ping(ctx context.Context) error
	Sources(ctx context.Context, category string) ([]newsapi.Source, error)
	Articles(ctx context.Context, code string) ([]newsapi.Article, error)
}

// dialFunc builds the client for a validated key.
type dialFunc func(conf *config.Conf, key string, log *zap.Logger) newsClient

func dialNewsAPI(conf *config.Conf, key string, log *zap.Logger) newsClient {
	return newsapi.NewClient(conf.BaseURL, key, conf.Timeout, log)
}

// App runs a single Command against the API and writes the result to Out.
type App struct {
	Client newsClient
	Out    io.Writer
	Log    *zap.Logger
}

// runCommand validates the credential and runs command. The credential is
// checked first so a missing key is fatal whatever was requested.
func runCommand(ctx context.Context, conf *config.Conf, command Command, out io.Writer, log *zap.Logger, dial dialFunc) error {
	key, err := conf.LoadAPIKey()
	if err != nil {
		return err
	}
	app := &App{
		Client: dial(conf, key, log),
		Out:    out,
		Log:    log,
	}
	return app.Run(ctx, command)
}

// Run executes cmd. The categories listing and the usage hint never touch the
// network; every other command probes the API and loads the catalog first.
func (a *App) Run(ctx context.Context, cmd Command) error {
	a.Log.Debug("dispatch", zap.Stringer("command", cmd.Kind), zap.String("arg", cmd.Arg))
	switch cmd.Kind {
	case KindNone:
		_, err := fmt.Fprintln(a.Out, usageHint)
		return err
	case KindCategories:
		return render.Categories(a.Out, catalog.Categories)
	}

	if err := a.Client.Ping(ctx); err != nil {
		return err
	}
	codes, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case KindShowAll:
		sources, err := a.Client.Sources(ctx, "")
		if err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}
		return render.Sources(a.Out, sources)
	case KindShowByCategory:
		if !catalog.IsCategory(cmd.Arg) {
			return ErrInvalidCategory
		}
		sources, err := a.Client.Sources(ctx, cmd.Arg)
		if err != nil {
			return fmt.Errorf("listing %s sources: %w", cmd.Arg, err)
		}
		return render.Sources(a.Out, sources)
	case KindNews:
		if !codes.Contains(cmd.Arg) {
			return ErrInvalidNewsCode
		}
		articles, err := a.Client.Articles(ctx, cmd.Arg)
		if err != nil {
			return fmt.Errorf("fetching %s articles: %w", cmd.Arg, err)
		}
		return render.Articles(a.Out, articles)
	}
	return fmt.Errorf("unknown command %v", cmd.Kind)
}

func (a *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	sources, err := a.Client.Sources(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetching news codes: %w", err)
	}
	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		ids = append(ids, s.ID)
	}
	codes := catalog.New(ids)
	a.Log.Debug("catalog loaded", zap.Int("codes", codes.Len()))
	return codes, nil
}

// userMessage is the console text printed for a failed run.
func userMessage(err error) string {
	switch {
	case errors.Is(err, config.ErrMissingKey):
		return fmt.Sprintf("No API Token detected. Please visit %s and get an API Token, "+
			"which will be used by instantnews to get access to the data.", config.RegisterURL)
	case errors.Is(err, config.ErrMalformedKey):
		return "Invalid API key"
	case errors.Is(err, newsapi.ErrUnreachable):
		return "There was issue connecting to the server. Please check your network connection."
	case errors.Is(err, ErrInvalidCategory):
		return "Invalid category"
	case errors.Is(err, ErrInvalidNewsCode):
		return "Invalid news code."
	}
	return err.Error()
}

// exitCode maps a run result to the process status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
