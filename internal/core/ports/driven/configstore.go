package driven

// ConfigStore provides persistent key/value application configuration.
// Keys use dot notation for nested sections, e.g. "converter.font".
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if absent or mistyped.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if absent or mistyped.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if absent or mistyped.
	GetBool(key string) bool

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Path returns the location of the backing file, for diagnostics.
	Path() string
}
