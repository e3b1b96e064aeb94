package gamedata

import "strings"

// DefaultNamespace is assumed for identifiers written without a namespace.
const DefaultNamespace = "minecraft"

// Identifier is a namespaced resource location such as "minecraft:torch".
type Identifier struct {
	Namespace string
	Path      string
}

// ParseIdentifier splits s on its first colon. A bare path gets DefaultNamespace.
// Parsing never fails; an identifier nobody registered simply resolves to air.
func ParseIdentifier(s string) Identifier {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		return Identifier{Namespace: DefaultNamespace, Path: s}
	}
	if ns == "" {
		ns = DefaultNamespace
	}
	return Identifier{Namespace: ns, Path: path}
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}
