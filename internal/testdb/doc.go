// Package testdb provides a migrated PostgreSQL database for integration tests.
//
// The database comes from DATABASE_URL when it is set; otherwise a disposable
// postgres container is started with testcontainers-go. The embedded goose
// migrations, seed dataset included, are applied before the handle is returned.
//
// Everything except this file is behind the integration build tag:
//
//	go test -tags=integration ./...
package testdb
