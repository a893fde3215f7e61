// Package domain contains the entities the API reads from storage: skills,
// their type lookup and sub-skill hierarchy, and characters with their
// skills and relation edges. Values are validated at the storage boundary
// so the mapping layer can assume well-formed input.
package domain
