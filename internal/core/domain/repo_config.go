package domain

// DefaultPropertyFile is the properties file read when no explicit file is given.
const DefaultPropertyFile = "local.properties"

// Source records where a resolved value came from.
type Source int

const (
	// SourceNone means the value is absent everywhere.
	SourceNone Source = iota
	// SourceFile means the value came from the properties file.
	SourceFile
	// SourceSystem means a system property supplied the value.
	SourceSystem
)

// String returns the human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceSystem:
		return "system"
	default:
		return "none"
	}
}

// ResolvedValue is a single resolved property together with its origin.
type ResolvedValue struct {
	Value  Optional[string]
	Source Source
}

// ResolvedRepoConfig is the outcome of resolving one repository definition.
// It is built once per resolution and never mutated.
type ResolvedRepoConfig struct {
	Name         Optional[string]
	PropertyFile string
	URL          ResolvedValue
	Username     ResolvedValue
	Password     ResolvedValue
}

// HasCredentials reports whether either credential value is present.
func (c ResolvedRepoConfig) HasCredentials() bool {
	return c.Username.Value.IsPresent() || c.Password.Value.IsPresent()
}

// RepoOverrides are values forced onto a repository after it has been configured.
type RepoOverrides struct {
	URL      Optional[string]
	Username Optional[string]
	Password Optional[string]
}

// IsEmpty reports whether no override is set.
func (o RepoOverrides) IsEmpty() bool {
	return !o.URL.IsPresent() && !o.Username.IsPresent() && !o.Password.IsPresent()
}

// RepoRequest declares one repository to configure.
type RepoRequest struct {
	Name         Optional[string]
	PropertyFile Optional[string]
	Overrides    RepoOverrides
}

// ManifestFileName is the repository manifest looked up in the build root.
const ManifestFileName = "mvnrepo.yaml"

// ManifestVersion is the only manifest schema version understood.
const ManifestVersion = "1"

// OptsEnvVar is the environment variable whose -Dkey=value tokens are read as
// system properties.
const OptsEnvVar = "MVNREPO_OPTS"
