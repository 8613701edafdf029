package driven

import "context"

// SignStore persists sign-to-glyph mappings between invocations.
// It generalises the original flat-file cache: the CLI ships a SQLite
// implementation and an in-memory one for tests.
type SignStore interface {
	// Get returns the glyph for a sign. The boolean reports whether the
	// sign is present; absence is not an error.
	Get(ctx context.Context, sign string) (string, bool, error)

	// Put stores or overwrites the glyph for a sign.
	Put(ctx context.Context, sign, glyph string) error

	// Delete removes a sign. Deleting an absent sign is not an error.
	Delete(ctx context.Context, sign string) error

	// All returns every stored mapping.
	All(ctx context.Context) (map[string]string, error)

	// Count returns the number of stored mappings.
	Count(ctx context.Context) (int, error)
}
