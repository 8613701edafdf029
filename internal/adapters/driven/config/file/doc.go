// Package file implements the ConfigStore port on a TOML file in the
// user's cuneify directory. Nested TOML tables are flattened into
// dot-notation keys ("converter.font") for lookup.
package file
