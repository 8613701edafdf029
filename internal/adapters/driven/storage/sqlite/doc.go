// Package sqlite implements the SignStore port on a local SQLite
// database. The schema is created and upgraded through embedded SQL
// migrations, so a fresh data directory is usable immediately.
package sqlite
