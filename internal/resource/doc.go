// Package resource defines the public JSON shapes served by the API and the
// mappers that build them from storage entities. Mappers are pure: they take
// domain values plus the request's base URL and never touch storage.
package resource
