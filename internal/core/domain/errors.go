package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedPropertyFile is returned when a properties file cannot be parsed.
	ErrMalformedPropertyFile = zerr.New("malformed property file")

	// ErrPropertyFileUnreadable is returned when a properties file exists but cannot be read.
	ErrPropertyFileUnreadable = zerr.New("property file unreadable")

	// ErrInvalidRepoURL is returned when a repository URL cannot be parsed.
	ErrInvalidRepoURL = zerr.New("invalid Maven repository URL")

	// ErrInvalidManifest is returned when the repository manifest is malformed.
	ErrInvalidManifest = zerr.New("invalid repository manifest")

	// ErrDuplicateRepoName is returned when the manifest declares the same repository twice.
	ErrDuplicateRepoName = zerr.New("duplicate repository name")

	// ErrInvalidRepoName is returned when a repository name cannot form a property key.
	ErrInvalidRepoName = zerr.New("repository name cannot contain whitespace, '=' or ':'")

	// ErrInvalidSystemProperty is returned when a system property is not of the form key=value.
	ErrInvalidSystemProperty = zerr.New("system property must be of the form key=value")
)
