package repository

import (
	"context"

	"gorm.io/gorm"
)

// runTx runs fn inside a database transaction. A nil db runs fn with a nil
// handle, which lets unit tests exercise transactional services against
// in-memory fakes without a real database.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// RunTx is the exported entry point for services that coordinate writes
// across repositories.
func RunTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return runTx(ctx, db, fn)
}
