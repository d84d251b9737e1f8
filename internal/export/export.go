// Package export renders a resolved catalogue graph into the fixed addon
// file layout consumed by the Chronicles runtime: one declaration script,
// one manifest, per-collection data scripts, and per-language locale
// scripts. Generation is pure string assembly over in-memory domain
// objects; the only I/O happens in the Packager a caller hands the result
// to.
package export

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/pkg/types"
)

// File is one generated output: a relative archive path and its content.
type File struct {
	Path    string
	Content string
}

// Packager consumes the generated file set and persists it somewhere, for
// example as a zip archive. Implementations live outside this package; the
// pipeline itself never touches the filesystem.
type Packager interface {
	Pack(files []File) error
}

// Request is the fully resolved input graph. Collection order is
// significant: it drives the positional folder index of every generated
// path.
type Request struct {
	Collections []*types.Collection
	Events      []*types.Event
	Factions    []*types.Faction
	Characters  []*types.Character
}

// Generator renders a Request into the addon file set.
type Generator struct {
	log *zap.SugaredLogger
}

// NewGenerator returns a generator.
func NewGenerator(log *zap.SugaredLogger) *Generator {
	return &Generator{log: log}
}

// Generate renders the declaration, manifest, data, and locale files, in
// that order. An empty collection list produces no files.
func (g *Generator) Generate(req Request) ([]File, error) {
	if len(req.Collections) == 0 {
		return nil, nil
	}

	collections := indexCollections(req.Collections)

	var files []File
	files = append(files, g.declarationFile(collections, req))
	files = append(files, g.manifestFile(collections, req))
	files = append(files, g.dataFiles(collections, req)...)
	files = append(files, g.localeFiles(collections, req)...)

	g.log.Infow("generated addon files", "count", len(files))
	return files, nil
}

// typeName is an entity type as it appears in generated names.
type typeName string

const (
	typeEvent     typeName = "Event"
	typeFaction   typeName = "Faction"
	typeCharacter typeName = "Character"
)

// typeNames lists the entity types in generation order.
var typeNames = []typeName{typeEvent, typeFaction, typeCharacter}

// indexedCollection pairs a collection with its positional folder index.
type indexedCollection struct {
	ID    int
	Name  string
	Index string
}

// indexCollections assigns the two-digit positional index (wider past 99)
// based on list order.
func indexCollections(collections []*types.Collection) []indexedCollection {
	out := make([]indexedCollection, 0, len(collections))
	for i, c := range collections {
		out = append(out, indexedCollection{
			ID:    c.ID,
			Name:  c.Name,
			Index: fmt.Sprintf("%02d", i+1),
		})
	}
	return out
}

// formatName capitalizes every word of a collection name: first letter
// upper, rest lower. Word characters are letters, digits, and underscore;
// separators pass through unchanged.
func formatName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inWord := false
	for _, r := range name {
		if isWordRune(r) {
			if !inWord {
				b.WriteString(strings.ToUpper(string(r)))
				inWord = true
			} else {
				b.WriteString(strings.ToLower(string(r)))
			}
		} else {
			b.WriteRune(r)
			inWord = false
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// folderName is the per-collection folder: "<NN>_<Name>".
func (c indexedCollection) folderName() string {
	return c.Index + "_" + formatName(c.Name)
}

// dbName is the per-type Lua table and file stem: "<Name><Type>sDB".
func (c indexedCollection) dbName(t typeName) string {
	return formatName(c.Name) + string(t) + "sDB"
}

// lowerName is the collection name as a module key.
func (c indexedCollection) lowerName() string {
	return strings.ToLower(c.Name)
}

// eventsOf returns the events owned by the collection, in input order.
func eventsOf(c indexedCollection, req Request) []*types.Event {
	var out []*types.Event
	for _, e := range req.Events {
		if e.Collection != nil && e.Collection.ID == c.ID {
			out = append(out, e)
		}
	}
	return out
}

// factionsOf returns the factions owned by the collection, in input order.
func factionsOf(c indexedCollection, req Request) []*types.Faction {
	var out []*types.Faction
	for _, f := range req.Factions {
		if f.Collection != nil && f.Collection.ID == c.ID {
			out = append(out, f)
		}
	}
	return out
}

// charactersOf returns the characters owned by the collection, in input
// order.
func charactersOf(c indexedCollection, req Request) []*types.Character {
	var out []*types.Character
	for _, ch := range req.Characters {
		if ch.Collection != nil && ch.Collection.ID == c.ID {
			out = append(out, ch)
		}
	}
	return out
}

// countOf returns how many rows of type t the collection owns.
func countOf(c indexedCollection, t typeName, req Request) int {
	switch t {
	case typeEvent:
		return len(eventsOf(c, req))
	case typeFaction:
		return len(factionsOf(c, req))
	default:
		return len(charactersOf(c, req))
	}
}
