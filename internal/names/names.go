// Package names provides the identifier model shared by every pipeline
// phase: hierarchical namespaces and fully qualified names.
package names

import (
	"slices"
	"strings"
)

// separator joins namespace segments in rendered names.
const separator = "::"

// Namespace is a hierarchical scope path such as "outer::inner".
// The zero value is the root namespace. Values are immutable; Push
// returns a new Namespace and never aliases the receiver's storage.
type Namespace struct {
	segments []string
}

// NewNamespace builds a namespace from its segments, outermost first.
func NewNamespace(segments ...string) Namespace {
	if len(segments) == 0 {
		return Namespace{}
	}

	owned := make([]string, len(segments))
	copy(owned, segments)

	return Namespace{segments: owned}
}

// Push returns a new namespace nested one level deeper.
func (n Namespace) Push(segment string) Namespace {
	owned := make([]string, 0, len(n.segments)+1)
	owned = append(owned, n.segments...)
	owned = append(owned, segment)

	return Namespace{segments: owned}
}

// IsRoot reports whether this is the root namespace.
func (n Namespace) IsRoot() bool {
	return len(n.segments) == 0
}

// Depth returns the nesting depth; the root namespace has depth 0.
func (n Namespace) Depth() int {
	return len(n.segments)
}

// Segments returns a copy of the path segments, outermost first.
func (n Namespace) Segments() []string {
	out := make([]string, len(n.segments))
	copy(out, n.segments)

	return out
}

// Equal reports whether two namespaces denote the same scope.
func (n Namespace) Equal(other Namespace) bool {
	return slices.Equal(n.segments, other.segments)
}

// String renders the path as "a::b"; the root namespace renders empty.
func (n Namespace) String() string {
	return strings.Join(n.segments, separator)
}

// QualifiedName is an immutable fully qualified identifier: a namespace
// plus the local identifier inside it. It is the human-readable key used
// for diagnostics and for naming synthesized records. Uniqueness across a
// compilation unit is assumed by the pipeline, not enforced here.
type QualifiedName struct {
	ns Namespace
	id string
}

// NewQualifiedName builds a qualified name for id inside ns.
func NewQualifiedName(ns Namespace, id string) QualifiedName {
	return QualifiedName{ns: ns, id: id}
}

// Namespace returns the scope the name lives in.
func (q QualifiedName) Namespace() Namespace {
	return q.ns
}

// Ident returns the final (local) identifier.
func (q QualifiedName) Ident() string {
	return q.id
}

// Equal reports whether two qualified names denote the same item.
func (q QualifiedName) Equal(other QualifiedName) bool {
	return q.id == other.id && q.ns.Equal(other.ns)
}

// String renders "ns::id", or just "id" at the root namespace.
func (q QualifiedName) String() string {
	if q.ns.IsRoot() {
		return q.id
	}

	return q.ns.String() + separator + q.id
}
