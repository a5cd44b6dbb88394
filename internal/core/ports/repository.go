package ports

import "net/url"

// RepositoryHandler is the host's repository registry.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type RepositoryHandler interface {
	// Maven creates a Maven repository, registers it under a default name and returns it.
	Maven() MavenRepository
}

// MavenRepository is a registered Maven repository that can still be configured.
type MavenRepository interface {
	Name() string
	SetName(name string)
	URL() *url.URL
	SetURL(u *url.URL)
	Credentials() PasswordCredentials
}

// PasswordCredentials is the username/password credential block of a repository.
type PasswordCredentials interface {
	Username() (string, bool)
	SetUsername(username string)
	Password() (string, bool)
	SetPassword(password string)
}
