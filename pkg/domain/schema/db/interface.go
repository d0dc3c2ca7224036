package db

import "context"

// SchemaInterface manages the database schema lifecycle.
type SchemaInterface interface {
	// Upgrade upgrades the schema to the latest version.
	Upgrade(ctx context.Context) error

	// Version returns the current version of the schema.
	Version(ctx context.Context) (int, error)

	// Context returns a context which is canceled when the schema
	// in the database is older than the schema repository requires.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
