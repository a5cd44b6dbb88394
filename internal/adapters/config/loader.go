// Package config loads the repository manifest of a build root.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads mvnrepo.yaml from root.
func (l *Loader) Load(root string) (*ports.Manifest, bool, error) {
	path := filepath.Join(root, domain.ManifestFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the build root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	manifest, err := Parse(data)
	if err != nil {
		return nil, false, zerr.With(err, "path", path)
	}

	l.Logger.Info("Loaded repository manifest: " + path)
	return manifest, true, nil
}

// Parse decodes and validates manifest content.
func Parse(data []byte) (*ports.Manifest, error) {
	var file Manifestfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidManifest, err), "failed to decode manifest")
	}

	if file.Version != domain.ManifestVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "unsupported manifest version"), "version", file.Version)
	}

	manifest := &ports.Manifest{
		DefaultPropertyFile: file.DefaultPropertyFile,
		Repositories:        make([]domain.RepoRequest, 0, len(file.Repositories)),
	}

	// Unnamed repositories share the "" key: two of them would read the same properties.
	seen := make(map[string]bool, len(file.Repositories))

	for _, dto := range file.Repositories {
		key := ""
		if dto.Name != nil {
			if err := domain.ValidateRepoName(*dto.Name); err != nil {
				return nil, err
			}
			key = *dto.Name
		}

		if seen[key] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateRepoName, "invalid manifest repositories"), "name", key)
		}
		seen[key] = true

		manifest.Repositories = append(manifest.Repositories, domain.RepoRequest{
			Name:         domain.FromPtr(dto.Name),
			PropertyFile: domain.FromPtr(dto.PropertyFile),
			Overrides: domain.RepoOverrides{
				URL:      domain.FromPtr(dto.URL),
				Username: domain.FromPtr(dto.Username),
				Password: domain.FromPtr(dto.Password),
			},
		})
	}

	return manifest, nil
}
