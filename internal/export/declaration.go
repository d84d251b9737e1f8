package export

import (
	"fmt"
	"strings"
)

// Fixed output paths consumed by the addon runtime.
const (
	declarationPath    = "Custom/DB/ChroniclesDB.lua"
	manifestPath       = "Custom/DB/ChroniclesDB.xml"
	localeManifestPath = "DB/Locales/Locales.xml"
)

// xmlHeader opens both manifests. The schema location is fixed by the
// client UI loader.
const xmlHeader = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
	"<Ui xmlns=\"http://www.blizzard.com/wow/ui/\"\n" +
	"    xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\" xsi:schemaLocation=\"http://www.blizzard.com/wow/ui/\">"

// declarationFile renders Custom/DB/ChroniclesDB.lua: the module name
// table plus one registration line per non-empty (collection, type).
func (g *Generator) declarationFile(collections []indexedCollection, req Request) File {
	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, fmt.Sprintf("\t%s = \"%s\"", c.lowerName(), c.lowerName()))
	}

	var declarations []string
	for _, c := range collections {
		var lines []string
		for _, t := range typeNames {
			if countOf(c, t, req) > 0 {
				lines = append(lines, formatDeclaration(c, t))
			}
		}
		if len(lines) > 0 {
			declarations = append(declarations, strings.Join(lines, "\n"))
		}
	}

	content := "local FOLDER_NAME, private = ...\n" +
		"local Chronicles = private.Chronicles\n" +
		"Chronicles.Custom = {}\n" +
		"Chronicles.Custom.DB = {}\n" +
		"Chronicles.Custom.Modules = {\n" +
		strings.Join(names, ",\n") +
		"\n}\n" +
		"function Chronicles.Custom.DB:Init()\n" +
		strings.Join(declarations, "\n") +
		"   \nend"

	return File{Path: declarationPath, Content: content}
}

// formatDeclaration is one registration line of the Init body.
func formatDeclaration(c indexedCollection, t typeName) string {
	return fmt.Sprintf("\tChronicles.DB:Register%sDB(Chronicles.Custom.Modules.%s, %s)",
		t, c.lowerName(), c.dbName(t))
}

// manifestFile renders Custom/DB/ChroniclesDB.xml: one Script line per
// emitted data file. Script paths use backslashes; the client loader
// expects Windows separators.
func (g *Generator) manifestFile(collections []indexedCollection, req Request) File {
	var indexes []string
	for _, c := range collections {
		var lines []string
		for _, t := range typeNames {
			if countOf(c, t, req) > 0 {
				lines = append(lines, fmt.Sprintf("\t<Script file=\"%s\\%s.lua\" />", c.folderName(), c.dbName(t)))
			}
		}
		if len(lines) > 0 {
			indexes = append(indexes, strings.Join(lines, "\n"))
		}
	}

	content := xmlHeader + "\n" +
		"\t<Script file=\"ChroniclesDB.lua\" />\n" +
		strings.Join(indexes, "\n") +
		"\n</Ui>"

	return File{Path: manifestPath, Content: content}
}
