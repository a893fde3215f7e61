// Package store defines the read-side repository interfaces for skills and
// characters, the DBTX abstraction shared by *sql.DB and *sql.Tx, and the
// transaction helpers services use to keep related queries on one snapshot.
package store
