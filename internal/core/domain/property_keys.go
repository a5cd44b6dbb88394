package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const propertyPrefix = "maven.repo."

// PropertyKeySet holds the property keys a repository's values are read from.
type PropertyKeySet struct {
	URL      string
	Username string
	Password string
}

// KeysFor derives the property keys for the repository with the given name.
// An unnamed repository uses maven.repo.url, a named one maven.repo.<name>.url
// (likewise for username and password).
func KeysFor(name Optional[string]) PropertyKeySet {
	prefix := propertyPrefix
	if n, ok := name.Get(); ok {
		prefix += n + "."
	}
	return PropertyKeySet{
		URL:      prefix + "url",
		Username: prefix + "username",
		Password: prefix + "password",
	}
}

// All returns the keys in url, username, password order.
func (k PropertyKeySet) All() []string {
	return []string{k.URL, k.Username, k.Password}
}

// ValidateRepoName checks that name can be embedded in a property key.
func ValidateRepoName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\r\n\f=:") {
		return zerr.With(zerr.Wrap(ErrInvalidRepoName, "invalid repository name"), "name", name)
	}
	return nil
}
