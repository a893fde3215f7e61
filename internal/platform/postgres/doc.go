// Package postgres provides PostgreSQL-specific implementations of the
// read-only store interfaces defined in internal/store, together with the
// embedded goose migrations that create and seed the schema.
//
// Skill trees are loaded with a single recursive query per call and linked
// in memory by domain.BuildSkillForest. Character skills and relation edges
// are loaded in one query each for the whole page of characters.
package postgres
