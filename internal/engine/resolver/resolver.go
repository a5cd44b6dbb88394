// Package resolver resolves Maven repository definitions from a properties
// file and system-property overrides.
package resolver

import (
	"path/filepath"

	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
)

// Config fixes the file locations of one build invocation.
type Config struct {
	// RootDir is the build root. Relative property files are resolved against it.
	RootDir string
	// DefaultPropertyFile is used when a resolution names no file.
	DefaultPropertyFile string
}

// Resolver resolves repository definitions. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	files  ports.PropertyFileReader
	system ports.SystemProperties
	logger ports.Logger
	cfg    Config
}

// New creates a new Resolver.
func New(
	files ports.PropertyFileReader,
	system ports.SystemProperties,
	logger ports.Logger,
	cfg Config,
) *Resolver {
	if cfg.DefaultPropertyFile == "" {
		cfg.DefaultPropertyFile = domain.DefaultPropertyFile
	}
	return &Resolver{
		files:  files,
		system: system,
		logger: logger,
		cfg:    cfg,
	}
}

// PropertyFilePath returns the file a resolution reads, given an optional explicit file.
func (r *Resolver) PropertyFilePath(propertyFile domain.Optional[string]) string {
	path := propertyFile.OrElse(r.cfg.DefaultPropertyFile)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.cfg.RootDir, path)
}

// Resolve builds the configuration of the repository called name, reading
// propertyFile (or the default file) and applying system-property overrides.
// Missing values are logged, not returned as errors. Only a properties file
// that exists but cannot be read or parsed fails the resolution.
func (r *Resolver) Resolve(
	name domain.Optional[string],
	propertyFile domain.Optional[string],
) (domain.ResolvedRepoConfig, error) {
	keys := domain.KeysFor(name)
	path := r.PropertyFilePath(propertyFile)

	entries, found, err := r.files.Read(path)
	if err != nil {
		return domain.ResolvedRepoConfig{}, err
	}

	var url, username, password domain.ResolvedValue
	if found {
		r.logger.Info("Configuring Maven repo from property file: " + path)
		url = r.fromFile(entries, keys.URL)
		username = r.fromFile(entries, keys.Username)
		password = r.fromFile(entries, keys.Password)
	} else {
		r.logger.Warn("Maven property file not found: " + path)
	}

	return domain.ResolvedRepoConfig{
		Name:         name,
		PropertyFile: path,
		URL:          r.withSystemOverride(keys.URL, url),
		Username:     r.withSystemOverride(keys.Username, username),
		Password:     r.withSystemOverride(keys.Password, password),
	}, nil
}

func (r *Resolver) fromFile(entries map[string]string, key string) domain.ResolvedValue {
	v, ok := entries[key]
	if !ok {
		r.logger.Warn("Maven repo property unset in property file: " + key)
		return domain.ResolvedValue{}
	}
	return domain.ResolvedValue{Value: domain.Some(v), Source: domain.SourceFile}
}

func (r *Resolver) withSystemOverride(key string, def domain.ResolvedValue) domain.ResolvedValue {
	v, ok := r.system.Lookup(key)
	if !ok {
		return def
	}
	r.logger.Warn("Overriding Maven property from file with system property: " + key)
	return domain.ResolvedValue{Value: domain.Some(v), Source: domain.SourceSystem}
}
