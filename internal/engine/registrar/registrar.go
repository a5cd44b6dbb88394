// Package registrar applies resolved repository configurations to a host's
// repository registry.
package registrar

import (
	"errors"
	"net/url"
	"strings"

	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	errURLRequired        = zerr.New("Maven URL is required")
	errPartialCredentials = zerr.New("If either Maven username or password is set, both must be set")
)

// Apply registers a Maven repository on handler and configures it from cfg.
//
// A missing URL or a lone username/password is logged and the repository is
// registered anyway. A URL that does not parse is corrupt configuration: it
// is returned as an error and nothing is registered.
func Apply(cfg domain.ResolvedRepoConfig, handler ports.RepositoryHandler, logger ports.Logger) (ports.MavenRepository, error) {
	var repoURL *url.URL
	if raw, ok := cfg.URL.Value.Get(); ok {
		u, err := ParseURL(raw)
		if err != nil {
			return nil, err
		}
		repoURL = u
	}

	repo := handler.Maven()

	if name, ok := cfg.Name.Get(); ok {
		repo.SetName(name)
	}

	if repoURL == nil {
		logger.Error(zerr.With(errURLRequired, "repository", repo.Name()))
	} else {
		repo.SetURL(repoURL)
	}

	applyCredentials(cfg, repo, logger)

	return repo, nil
}

func applyCredentials(cfg domain.ResolvedRepoConfig, repo ports.MavenRepository, logger ports.Logger) {
	username, hasUsername := cfg.Username.Value.Get()
	password, hasPassword := cfg.Password.Value.Get()

	if !hasUsername || !hasPassword {
		if hasUsername || hasPassword {
			logger.Error(zerr.With(errPartialCredentials, "repository", repo.Name()))
		}
		logger.Info("Using unauthenticated Maven configuration")
	}

	creds := repo.Credentials()
	if hasUsername {
		creds.SetUsername(username)
	}
	if hasPassword {
		creds.SetPassword(password)
	}
}

// illegalURLChars are excluded from URI references by RFC 2396, in addition
// to control characters.
const illegalURLChars = " \"<>\\^`{|}"

// ParseURL parses a repository URL, reporting failures as domain.ErrInvalidRepoURL.
// Characters that are illegal in a URI are rejected instead of escaped.
func ParseURL(raw string) (*url.URL, error) {
	if i := strings.IndexFunc(raw, isIllegalURLRune); i >= 0 {
		return nil, invalidURL(raw, zerr.With(zerr.New("illegal character in URL"), "index", i))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalidURL(raw, err)
	}
	return u, nil
}

func isIllegalURLRune(r rune) bool {
	return r < 0x20 || r == 0x7f || strings.ContainsRune(illegalURLChars, r)
}

func invalidURL(raw string, cause error) error {
	err := errors.Join(domain.ErrInvalidRepoURL, cause)
	return zerr.With(zerr.Wrap(err, "failed to parse repository URL"), "url", raw)
}
