package export

import (
	"fmt"
	"strings"

	"github.com/dukaforge/chronicler/pkg/types"
)

// localeHeader opens every generated locale script. Every file registers
// against the enUS base locale so keys resolve regardless of the client
// language.
const localeHeader = "local AceLocale = LibStub:GetLibrary(\"AceLocale-3.0\")\n" +
	"local L = AceLocale:NewLocale(\"Chronicles\", \"enUS\", true, true)\n" +
	"                \n"

// localeLine is one rendered L[key] assignment; empty when the locale has
// no value in the requested language.
type localeLine struct {
	key   string
	value string
}

// localeGroup is one candidate locale file and its manifest line.
type localeGroup struct {
	fileName string
	lines    []localeLine
}

// localeFiles renders one locale script per non-empty (collection, type,
// language), plus the locale manifest listing exactly the emitted files.
func (g *Generator) localeFiles(collections []indexedCollection, req Request) []File {
	var groups []localeGroup
	for _, c := range collections {
		events := eventsOf(c, req)
		factions := factionsOf(c, req)
		characters := charactersOf(c, req)

		for _, lang := range types.Languages {
			if len(events) > 0 {
				groups = append(groups, localeGroup{
					fileName: localeFileName(c, typeEvent, lang),
					lines:    eventLocaleLines(events, lang),
				})
			}
			if len(factions) > 0 {
				groups = append(groups, localeGroup{
					fileName: localeFileName(c, typeFaction, lang),
					lines:    factionLocaleLines(factions, lang),
				})
			}
			if len(characters) > 0 {
				groups = append(groups, localeGroup{
					fileName: localeFileName(c, typeCharacter, lang),
					lines:    characterLocaleLines(characters, lang),
				})
			}
		}
	}

	var files []File
	var indexLines []string
	for _, group := range groups {
		var kept []string
		for _, line := range group.lines {
			if line.value != "" {
				kept = append(kept, line.value)
			}
		}
		if len(kept) == 0 {
			continue
		}
		files = append(files, File{
			Path:    "DB/Locales/" + strings.ReplaceAll(group.fileName, "\\", "/"),
			Content: localeHeader + strings.Join(kept, "\n"),
		})
		indexLines = append(indexLines, fmt.Sprintf("    <Script file=\"%s\" />", group.fileName))
	}

	manifest := File{
		Path:    localeManifestPath,
		Content: xmlHeader + "\n" + strings.Join(indexLines, "\n") + "\n</Ui>",
	}
	return append(files, manifest)
}

// localeFileName is "<NN>_<Name>\<lowername>_<lowertype>s_<lang>.lua"; the
// backslash form feeds the manifest, the emitted path swaps it for "/".
func localeFileName(c indexedCollection, t typeName, lang types.Language) string {
	return fmt.Sprintf("%s\\%s_%ss_%s.lua",
		c.folderName(), c.lowerName(), strings.ToLower(string(t)), lang)
}

// eventLocaleLines collects every locale reachable from the events: label,
// chapter headers, chapter pages.
func eventLocaleLines(events []*types.Event, lang types.Language) []localeLine {
	var out []localeLine
	for _, e := range events {
		out = append(out, extractLine(e.Label, lang))
		out = append(out, chapterLocaleLines(e.Chapters, lang)...)
	}
	return out
}

// factionLocaleLines collects every locale reachable from the factions.
func factionLocaleLines(factions []*types.Faction, lang types.Language) []localeLine {
	var out []localeLine
	for _, f := range factions {
		out = append(out, extractLine(f.Label, lang))
		out = append(out, chapterLocaleLines(f.Chapters, lang)...)
	}
	return out
}

// characterLocaleLines collects every locale reachable from the characters.
func characterLocaleLines(characters []*types.Character, lang types.Language) []localeLine {
	var out []localeLine
	for _, c := range characters {
		out = append(out, extractLine(c.Label, lang))
		out = append(out, chapterLocaleLines(c.Chapters, lang)...)
	}
	return out
}

func chapterLocaleLines(chapters []types.Chapter, lang types.Language) []localeLine {
	var out []localeLine
	for _, ch := range chapters {
		if ch.Header != nil {
			out = append(out, extractLine(ch.Header, lang))
		}
		for _, page := range ch.Pages {
			out = append(out, extractLine(page, lang))
		}
	}
	return out
}

// extractLine renders one locale in the requested language. Locales with
// no value for the language render empty and are dropped by the caller.
func extractLine(l *types.Locale, lang types.Language) localeLine {
	key := LocaleKey(l)
	return localeLine{key: key, value: formatLocaleValue(key, l.Value(lang), l != nil && l.IsHTML)}
}

// formatLocaleValue renders one L[key] assignment. HTML strings flatten
// newlines to spaces; plain strings keep them as escaped \n so the client
// renders line breaks.
func formatLocaleValue(key, value string, isHTML bool) string {
	if value == "" {
		return ""
	}
	if isHTML {
		value = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(value)
	} else {
		value = strings.NewReplacer("\r\n", "\\n", "\r", "\\n", "\n", "\\n").Replace(value)
	}
	value = strings.ReplaceAll(value, "\"", "\\\"")
	return fmt.Sprintf("        L[\"%s\"] = \"%s\"\n", key, value)
}
