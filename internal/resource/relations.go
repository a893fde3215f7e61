package resource

import (
	"github.com/phrazzld/avatar-api/internal/domain"
)

// ReduceRelations returns the display name of the character on the other end
// of every edge of type typ: outgoing edges first, then incoming edges, each
// in the order given. Duplicates are kept. Edges whose other side is missing
// are skipped. The result is never nil.
func ReduceRelations(edges []domain.RelationEdge, typ domain.RelationTypeID) []string {
	names := make([]string, 0)
	for _, dir := range []domain.EdgeDirection{domain.EdgeOutgoing, domain.EdgeIncoming} {
		for _, e := range edges {
			if e.Direction != dir || e.TypeID != typ || e.Other == nil {
				continue
			}
			names = append(names, e.Other.Name)
		}
	}
	return names
}
