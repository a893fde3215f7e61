// Package service implements the read use cases behind the HTTP API: paging
// through top-level skills and characters, and fetching one of each by ID.
//
// Services run the page query and the total count inside one read-only
// snapshot transaction and shape the results into the public resource
// envelopes. Absence is not an error at this layer: FindOne returns a
// Detail whose Data is nil.
package service
