package config

// Manifestfile represents the structure of the mvnrepo.yaml manifest.
type Manifestfile struct {
	Version             string          `yaml:"version"`
	DefaultPropertyFile string          `yaml:"defaultPropertyFile"`
	Repositories        []RepositoryDTO `yaml:"repositories"`
}

// RepositoryDTO represents one repository declaration in the manifest.
type RepositoryDTO struct {
	Name         *string `yaml:"name"`
	PropertyFile *string `yaml:"propertyFile"`
	URL          *string `yaml:"url"`
	Username     *string `yaml:"username"`
	Password     *string `yaml:"password"`
}
