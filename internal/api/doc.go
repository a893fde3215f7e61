// Package api handles incoming HTTP requests for the /v1 skill and character
// endpoints. It parses paging parameters, derives the base URL used for
// resource links, dispatches to the services and maps their results and
// failures to HTTP responses.
package api
