// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// ErrorEntryFields returns the message and metadata of a collected entry.
func ErrorEntryFields(e errorEntry) (string, map[string]any) {
	return e.message, e.metadata
}
