package ports

// PropertyFileReader reads properties files.
//
//go:generate mockgen -source=properties.go -destination=mocks/mock_properties.go -package=mocks
type PropertyFileReader interface {
	// Read loads every entry of the properties file at path.
	// found is false, with a nil error, when the file does not exist.
	Read(path string) (entries map[string]string, found bool, err error)
}

// SystemProperties is the process-wide, read-only system-property store.
type SystemProperties interface {
	// Lookup returns the value of the system property key, if set.
	Lookup(key string) (string, bool)
}
