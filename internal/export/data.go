package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dukaforge/chronicler/pkg/types"
)

// dbHeader opens every generated data script. The Locale table is resolved
// through AceLocale at load time.
const dbHeader = "local FOLDER_NAME, private = ...\n" +
	"local Chronicles = private.Chronicles\n" +
	"local modules = Chronicles.Custom.Modules\n" +
	"local Locale = LibStub(\"AceLocale-3.0\"):GetLocale(private.addon_name)"

// dataFiles renders one keyed table script per non-empty (collection,
// type).
func (g *Generator) dataFiles(collections []indexedCollection, req Request) []File {
	var files []File
	for _, c := range collections {
		if events := eventsOf(c, req); len(events) > 0 {
			files = append(files, dataFile(c, typeEvent, mapEntries(events, eventEntry)))
		}
		if factions := factionsOf(c, req); len(factions) > 0 {
			files = append(files, dataFile(c, typeFaction, mapEntries(factions, factionEntry)))
		}
		if characters := charactersOf(c, req); len(characters) > 0 {
			files = append(files, dataFile(c, typeCharacter, mapEntries(characters, characterEntry)))
		}
	}
	return files
}

// dataFile assembles one data script from its rendered entries.
func dataFile(c indexedCollection, t typeName, entries []string) File {
	content := dbHeader + "\n\n    " + c.dbName(t) + " = {\n        " +
		strings.Join(entries, ",\n        ") + "\n    }"
	return File{
		Path:    "Custom/DB/" + c.folderName() + "/" + c.dbName(t) + ".lua",
		Content: content,
	}
}

func mapEntries[T any](items []T, render func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, render(item))
	}
	return out
}

// eventEntry renders one event as a keyed table literal. The empty
// description table is kept for runtime compatibility with older data
// packs.
func eventEntry(e *types.Event) string {
	return fmt.Sprintf("[%d] = {\n"+
		"            id=%d,\n"+
		"            label=Locale[\"%s\"],\n"+
		"            description={},\n"+
		"            chapters={%s},\n"+
		"            yearStart=%d,\n"+
		"            yearEnd=%d,\n"+
		"            eventType=%d,\n"+
		"            timeline=%d,\n"+
		"            order=%d,\n"+
		"            characters={%s},\n"+
		"            factions={%s},\n"+
		"        }",
		e.ID, e.ID, LocaleKey(e.Label), chapterList(e.Chapters),
		e.YearStart, e.YearEnd, e.EventType, e.Timeline, e.Order,
		characterRefList(e.Characters), factionRefList(e.Factions))
}

// factionEntry renders one faction.
func factionEntry(f *types.Faction) string {
	return fmt.Sprintf("[%d] = {\n"+
		"            id = %d,\n"+
		"            name = Locale[\"%s\"],\n"+
		"            chapters = {%s},\n"+
		"            timeline = %d\n"+
		"        }",
		f.ID, f.ID, LocaleKey(f.Label), chapterList(f.Chapters), f.Timeline)
}

// characterEntry renders one character.
func characterEntry(c *types.Character) string {
	return fmt.Sprintf("[%d] = {\n"+
		"            id = %d,\n"+
		"            name = Locale[\"%s\"],\n"+
		"            chapters = {%s},\n"+
		"            timeline = %d,\n"+
		"            factions = {%s}\n"+
		"        }",
		c.ID, c.ID, LocaleKey(c.Label), chapterList(c.Chapters), c.Timeline,
		factionRefList(c.Factions))
}

// chapterList renders an ordered chapter sequence. A chapter without a
// header renders the empty locale key; the runtime treats it as untitled.
func chapterList(chapters []types.Chapter) string {
	entries := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		headerKey := ""
		if ch.Header != nil {
			headerKey = LocaleKey(ch.Header)
		}
		pages := make([]string, 0, len(ch.Pages))
		for _, page := range ch.Pages {
			if page == nil {
				continue
			}
			pages = append(pages, fmt.Sprintf("Locale[\"%s\"]", LocaleKey(page)))
		}
		entries = append(entries, fmt.Sprintf("{\n"+
			"                header = Locale[\"%s\"],\n"+
			"                pages = {%s} }",
			headerKey, strings.Join(pages, ", ")))
	}
	return strings.Join(entries, ", ")
}

// refGroup accumulates referenced entity ids under the referenced entity's
// own collection.
type refGroup struct {
	collection *types.Collection
	ids        []int
}

// groupedRefList renders a cross-entity reference list as a dictionary
// keyed by lowercase collection name, groups ordered by collection id.
// References whose collection is unresolved are skipped.
func groupedRefList(groups map[int]*refGroup) string {
	keys := make([]int, 0, len(groups))
	for id := range groups {
		keys = append(keys, id)
	}
	sort.Ints(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		ids := make([]string, 0, len(g.ids))
		for _, id := range g.ids {
			ids = append(ids, strconv.Itoa(id))
		}
		out = append(out, fmt.Sprintf("[\"%s\"] = {%s}", strings.ToLower(g.collection.Name), strings.Join(ids, ", ")))
	}
	return strings.Join(out, ", ")
}

// factionRefList groups referenced factions by their own collection.
func factionRefList(factions []*types.Faction) string {
	groups := make(map[int]*refGroup)
	for _, f := range factions {
		if f == nil || f.Collection == nil {
			continue
		}
		g, ok := groups[f.Collection.ID]
		if !ok {
			g = &refGroup{collection: f.Collection}
			groups[f.Collection.ID] = g
		}
		g.ids = append(g.ids, f.ID)
	}
	return groupedRefList(groups)
}

// characterRefList groups referenced characters by their own collection.
func characterRefList(characters []*types.Character) string {
	groups := make(map[int]*refGroup)
	for _, c := range characters {
		if c == nil || c.Collection == nil {
			continue
		}
		g, ok := groups[c.Collection.ID]
		if !ok {
			g = &refGroup{collection: c.Collection}
			groups[c.Collection.ID] = g
		}
		g.ids = append(g.ids, c.ID)
	}
	return groupedRefList(groups)
}
