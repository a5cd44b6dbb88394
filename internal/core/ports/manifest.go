package ports

import "go.trai.ch/mvnrepo/internal/core/domain"

// Manifest is the parsed repository manifest of a build root.
type Manifest struct {
	DefaultPropertyFile string
	Repositories        []domain.RepoRequest
}

// ManifestLoader defines the interface for loading the repository manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given root directory.
	// found is false, with a nil error, when the root has no manifest.
	Load(root string) (manifest *Manifest, found bool, err error)
}
