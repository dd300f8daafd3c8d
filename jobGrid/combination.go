package jobGrid

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//Entry assigns one value to a parameter
type Entry struct {
	Name  string
	Kind  Kind
	Value string
}

//Combination assigns exactly one value to every parameter of a Registry, in registration order
type Combination struct {
	Entries []Entry
}

//Value returns the value assigned to name
func (c Combination) Value(name string) (string, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

//CommandLine renders the Flagged entries together with extra as "-NAME value" pairs sorted by name, followed
//by the Verbatim values in registration order. A flagged extra entry replaces an entry with the same name
func (c Combination) CommandLine(extra ...Entry) string {
	flagged := make(map[string]string, len(c.Entries)+len(extra))
	verbatim := make([]string, 0)
	for _, e := range append(append([]Entry(nil), c.Entries...), extra...) {
		if e.Kind == Verbatim {
			verbatim = append(verbatim, e.Value)
			continue
		}
		flagged[e.Name] = e.Value
	}
	names := maps.Keys(flagged)
	slices.Sort(names)

	parts := make([]string, 0, len(names)+len(verbatim))
	for _, name := range names {
		parts = append(parts, "-"+name+" "+flagged[name])
	}
	parts = append(parts, verbatim...)
	return strings.Join(parts, " ")
}

//String lists the assignment as NAME=value pairs in registration order
func (c Combination) String() string {
	parts := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		parts[i] = e.Name + "=" + e.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
