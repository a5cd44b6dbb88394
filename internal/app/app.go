// Package app implements the application layer for mvnrepo.
package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"go.trai.ch/mvnrepo/internal/adapters/properties" //nolint:depguard // Wired in app layer
	"go.trai.ch/mvnrepo/internal/adapters/settings"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
	"go.trai.ch/mvnrepo/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	files    ports.PropertyFileReader
	manifest ports.ManifestLoader
	logger   ports.Logger
}

// New creates a new App instance.
func New(files ports.PropertyFileReader, manifest ports.ManifestLoader, log ports.Logger) *App {
	return &App{
		files:    files,
		manifest: manifest,
		logger:   log,
	}
}

// Invocation holds the inputs of one command run.
type Invocation struct {
	// RootDir is the build root; empty means the working directory.
	RootDir string
	// DefaultPropertyFile overrides the manifest's and the built-in default file.
	DefaultPropertyFile string
	// PropertyFile is an explicit file for the requested repositories.
	PropertyFile string
	// Names selects named repositories. Without names the manifest is used,
	// or a single unnamed repository when there is none (or PropertyFile is set).
	Names []string
	// SystemProperties are key=value assignments given on the command line.
	SystemProperties []string
	// SystemOpts is the content of MVNREPO_OPTS; its -Dkey=value tokens are
	// system properties overridden by SystemProperties.
	SystemOpts string
}

// LoggingOptions controls log output.
type LoggingOptions struct {
	JSON  bool
	Quiet bool
}

// ConfigureLogging applies opts to the logger when it supports them.
func (a *App) ConfigureLogging(opts LoggingOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON)
	}
	if l, ok := a.logger.(interface{ SetLevel(slog.Level) }); ok && opts.Quiet {
		l.SetLevel(slog.LevelWarn)
	}
}

// Project creates the Project of inv together with the repositories inv requests.
func (a *App) Project(inv Invocation) (*Project, []domain.RepoRequest, error) {
	root, err := filepath.Abs(inv.RootDir)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to resolve build root"), "root", inv.RootDir)
	}

	manifest, found, err := a.manifest.Load(root)
	if err != nil {
		return nil, nil, err
	}

	defaultFile := inv.DefaultPropertyFile
	if defaultFile == "" && found {
		defaultFile = manifest.DefaultPropertyFile
	}

	system, err := properties.LoadSystem(inv.SystemOpts, inv.SystemProperties)
	if err != nil {
		return nil, nil, err
	}

	project := NewProject(a.files, system, a.logger, resolver.Config{
		RootDir:             root,
		DefaultPropertyFile: defaultFile,
	})

	reqs, err := requests(inv, manifest, found)
	if err != nil {
		return nil, nil, err
	}
	return project, reqs, nil
}

func requests(inv Invocation, manifest *ports.Manifest, found bool) ([]domain.RepoRequest, error) {
	file := domain.None[string]()
	if inv.PropertyFile != "" {
		file = domain.Some(inv.PropertyFile)
	}

	if len(inv.Names) > 0 {
		reqs := make([]domain.RepoRequest, 0, len(inv.Names))
		for _, name := range inv.Names {
			if err := domain.ValidateRepoName(name); err != nil {
				return nil, err
			}
			reqs = append(reqs, domain.RepoRequest{Name: domain.Some(name), PropertyFile: file})
		}
		return reqs, nil
	}

	if found && !file.IsPresent() && len(manifest.Repositories) > 0 {
		return manifest.Repositories, nil
	}

	return []domain.RepoRequest{{PropertyFile: file}}, nil
}

// Resolve resolves the repositories requested by inv.
func (a *App) Resolve(ctx context.Context, inv Invocation) ([]domain.ResolvedRepoConfig, error) {
	project, reqs, err := a.Project(inv)
	if err != nil {
		return nil, err
	}
	return project.ResolveAll(ctx, reqs)
}

// WriteSettings configures the repositories requested by inv and writes
// them to w as a Maven settings.xml.
func (a *App) WriteSettings(ctx context.Context, inv Invocation, w io.Writer) error {
	project, reqs, err := a.Project(inv)
	if err != nil {
		return err
	}

	handler := settings.NewHandler()
	if _, err := project.Configure(ctx, handler, reqs); err != nil {
		return err
	}

	skipped, err := handler.Render(w)
	if err != nil {
		return err
	}
	for _, name := range skipped {
		a.logger.Warn("Repository left out of settings.xml, it has no URL: " + name)
	}
	return nil
}
