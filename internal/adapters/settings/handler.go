// Package settings is an in-memory repository registry that renders its
// repositories as a Maven settings.xml.
package settings

import (
	"strconv"
	"sync"

	"go.trai.ch/mvnrepo/internal/core/ports"
)

const defaultName = "maven"

// Handler implements ports.RepositoryHandler. It is safe for concurrent use.
type Handler struct {
	mu    sync.Mutex
	repos []*Repository
}

// NewHandler creates an empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

var _ ports.RepositoryHandler = (*Handler)(nil)

// Maven registers a new repository named after the first of maven, maven2,
// maven3, ... that no registered repository uses.
func (h *Handler) Maven() ports.MavenRepository {
	h.mu.Lock()
	defer h.mu.Unlock()

	repo := &Repository{name: h.uniqueName(defaultName), creds: &Credentials{}}
	h.repos = append(h.repos, repo)
	return repo
}

func (h *Handler) uniqueName(base string) string {
	taken := make(map[string]bool, len(h.repos))
	for _, r := range h.repos {
		taken[r.name] = true
	}

	name := base
	for n := 2; taken[name]; n++ {
		name = base + strconv.Itoa(n)
	}
	return name
}

// Repositories returns the registered repositories in registration order.
func (h *Handler) Repositories() []*Repository {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*Repository, len(h.repos))
	copy(out, h.repos)
	return out
}
