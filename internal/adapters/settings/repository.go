package settings

import (
	"net/url"

	"go.trai.ch/mvnrepo/internal/core/ports"
)

// Repository is a Maven repository registered on a Handler.
type Repository struct {
	name  string
	url   *url.URL
	creds *Credentials
}

var _ ports.MavenRepository = (*Repository)(nil)

// Name returns the repository name.
func (r *Repository) Name() string { return r.name }

// SetName sets the repository name.
func (r *Repository) SetName(name string) { r.name = name }

// URL returns the repository URL, or nil when unset.
func (r *Repository) URL() *url.URL { return r.url }

// SetURL sets the repository URL.
func (r *Repository) SetURL(u *url.URL) { r.url = u }

// Credentials returns the repository's credential block.
func (r *Repository) Credentials() ports.PasswordCredentials { return r.creds }

// Credentials is the username/password block of a Repository.
type Credentials struct {
	username *string
	password *string
}

var _ ports.PasswordCredentials = (*Credentials)(nil)

// Username returns the username, if set.
func (c *Credentials) Username() (string, bool) { return deref(c.username) }

// SetUsername sets the username.
func (c *Credentials) SetUsername(username string) { c.username = &username }

// Password returns the password, if set.
func (c *Credentials) Password() (string, bool) { return deref(c.password) }

// SetPassword sets the password.
func (c *Credentials) SetPassword(password string) { c.password = &password }

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
