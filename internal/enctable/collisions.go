package enctable

import (
	"fmt"
	"strings"
)

// CollisionKind classifies an ambiguity in the encoding table.
type CollisionKind string

const (
	// CollisionDuplicateAlias means the alias is listed under several names.
	CollisionDuplicateAlias CollisionKind = "duplicate_alias"
	// CollisionShadowsName means the alias equals another token's canonical name.
	CollisionShadowsName CollisionKind = "shadows_name"
	// CollisionDuplicateName means two rows share a canonical name.
	CollisionDuplicateName CollisionKind = "duplicate_name"
)

// Collision describes one ambiguous key. Names lists every canonical name
// the alias resolves to, in table order; the first one is what std::map keeps
// when the generated initializer list is constructed.
type Collision struct {
	Alias string
	Kind  CollisionKind
	Names []string
	Lines []int
}

func (c Collision) String() string {
	switch c.Kind {
	case CollisionDuplicateName:
		return fmt.Sprintf("encoding %q is defined on lines %d and %d", c.Alias, c.Lines[0], c.Lines[1])
	case CollisionShadowsName:
		return fmt.Sprintf("alias %q of %q is also a canonical encoding name", c.Alias, c.Names[0])
	default:
		return fmt.Sprintf("alias %q maps to %s", c.Alias, strings.Join(quoteAll(c.Names), ", "))
	}
}

// Winner returns the canonical name the generated C++ table resolves the
// alias to.
func (c Collision) Winner() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// FindCollisions reports canonical names defined by more than one row,
// aliases that map to more than one canonical name, and aliases that equal the
// canonical name of a different token. The result is ordered by first
// appearance in the table.
func FindCollisions(tokens []LanguageToken) []Collision {
	type owner struct {
		name string
		line int
	}

	var collisions []Collision
	names := make(map[string]int, len(tokens))
	for _, token := range tokens {
		first, ok := names[token.Name]
		if !ok {
			names[token.Name] = token.Line
			continue
		}
		collisions = append(collisions, Collision{
			Alias: token.Name,
			Kind:  CollisionDuplicateName,
			Names: []string{token.Name, token.Name},
			Lines: []int{first, token.Line},
		})
	}

	owners := make(map[string][]owner)
	var order []string
	for _, token := range tokens {
		for _, alias := range token.Aliases {
			list, seen := owners[alias]
			if !seen {
				order = append(order, alias)
			}
			known := false
			for _, o := range list {
				if o.name == token.Name {
					known = true
					break
				}
			}
			if !known {
				owners[alias] = append(list, owner{name: token.Name, line: token.Line})
			}
		}
	}

	for _, alias := range order {
		list := owners[alias]
		if line, isName := names[alias]; isName && list[0].name != alias {
			collisions = append(collisions, Collision{
				Alias: alias,
				Kind:  CollisionShadowsName,
				Names: []string{list[0].name, alias},
				Lines: []int{list[0].line, line},
			})
		}
		if len(list) < 2 {
			continue
		}
		c := Collision{Alias: alias, Kind: CollisionDuplicateAlias}
		for _, o := range list {
			c.Names = append(c.Names, o.name)
			c.Lines = append(c.Lines, o.line)
		}
		collisions = append(collisions, c)
	}
	return collisions
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}
