package export

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/pkg/types"
)

func strPtr(s string) *string { return &s }

// warcraftRequest builds a resolved single-collection catalogue: one event
// with a chapter, one faction, one character with a French label
// translation.
func warcraftRequest() Request {
	collection := &types.Collection{ID: 1, Name: "warcraft"}

	faction := &types.Faction{
		ID:         2,
		Name:       "Stormwind",
		Label:      &types.Locale{ID: 6, EnUS: strPtr("Stormwind")},
		Timeline:   1,
		Collection: collection,
	}
	character := &types.Character{
		ID:   3,
		Name: "Anduin Lothar",
		Label: &types.Locale{
			ID:           7,
			EnUS:         strPtr("Anduin Lothar"),
			Translations: map[types.Language]string{types.LangFrFR: "Anduin Lothar le Lion"},
		},
		Timeline:   1,
		Factions:   []*types.Faction{faction},
		Collection: collection,
	}
	event := &types.Event{
		ID:        1,
		Name:      "The Founding of Stormwind",
		YearStart: -10,
		YearEnd:   0,
		EventType: 2,
		Timeline:  1,
		Label:     &types.Locale{ID: 3, EnUS: strPtr("The Founding of Stormwind")},
		Chapters: []types.Chapter{{
			Header: &types.Locale{ID: 4, EnUS: strPtr("Chapter One")},
			Pages:  []*types.Locale{{ID: 5, EnUS: strPtr("In the beginning.")}},
		}},
		Factions:   []*types.Faction{faction},
		Characters: []*types.Character{character},
		Collection: collection,
	}

	return Request{
		Collections: []*types.Collection{collection},
		Events:      []*types.Event{event},
		Factions:    []*types.Faction{faction},
		Characters:  []*types.Character{character},
	}
}

func generate(t *testing.T, req Request) []File {
	t.Helper()
	files, err := NewGenerator(zap.NewNop().Sugar()).Generate(req)
	require.NoError(t, err)
	return files
}

func fileByPath(t *testing.T, files []File, path string) File {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no generated file at %s", path)
	return File{}
}

func paths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestGenerate_EmptyCatalogue(t *testing.T) {
	files := generate(t, Request{})
	assert.Empty(t, files)
}

func TestGenerate_FileSet(t *testing.T) {
	files := generate(t, warcraftRequest())

	assert.Equal(t, []string{
		"Custom/DB/ChroniclesDB.lua",
		"Custom/DB/ChroniclesDB.xml",
		"Custom/DB/01_Warcraft/WarcraftEventsDB.lua",
		"Custom/DB/01_Warcraft/WarcraftFactionsDB.lua",
		"Custom/DB/01_Warcraft/WarcraftCharactersDB.lua",
		"DB/Locales/01_Warcraft/warcraft_events_enUS.lua",
		"DB/Locales/01_Warcraft/warcraft_factions_enUS.lua",
		"DB/Locales/01_Warcraft/warcraft_characters_enUS.lua",
		"DB/Locales/01_Warcraft/warcraft_characters_frFR.lua",
		"DB/Locales/Locales.xml",
	}, paths(files))
}

func TestGenerate_Declaration(t *testing.T) {
	files := generate(t, warcraftRequest())
	decl := fileByPath(t, files, "Custom/DB/ChroniclesDB.lua")

	g := goldie.New(t)
	g.Assert(t, "chronicles_db_declaration", []byte(decl.Content))
}

func TestGenerate_EventData(t *testing.T) {
	files := generate(t, warcraftRequest())
	data := fileByPath(t, files, "Custom/DB/01_Warcraft/WarcraftEventsDB.lua")

	g := goldie.New(t)
	g.Assert(t, "warcraft_events_db", []byte(data.Content))
}

func TestGenerate_Manifest(t *testing.T) {
	files := generate(t, warcraftRequest())
	manifest := fileByPath(t, files, "Custom/DB/ChroniclesDB.xml")

	assert.Contains(t, manifest.Content, `<Script file="ChroniclesDB.lua" />`)
	assert.Contains(t, manifest.Content, `<Script file="01_Warcraft\WarcraftEventsDB.lua" />`)
	assert.Contains(t, manifest.Content, `<Script file="01_Warcraft\WarcraftFactionsDB.lua" />`)
	assert.Contains(t, manifest.Content, `<Script file="01_Warcraft\WarcraftCharactersDB.lua" />`)
}

func TestGenerate_EmptyTypeEmitsNoFiles(t *testing.T) {
	req := warcraftRequest()
	req.Factions = nil
	req.Events[0].Factions = nil
	req.Characters[0].Factions = nil

	files := generate(t, req)
	filePaths := paths(files)
	assert.NotContains(t, filePaths, "Custom/DB/01_Warcraft/WarcraftFactionsDB.lua")
	assert.NotContains(t, filePaths, "DB/Locales/01_Warcraft/warcraft_factions_enUS.lua")

	decl := fileByPath(t, files, "Custom/DB/ChroniclesDB.lua")
	assert.NotContains(t, decl.Content, "RegisterFactionDB")

	manifest := fileByPath(t, files, "Custom/DB/ChroniclesDB.xml")
	assert.NotContains(t, manifest.Content, "WarcraftFactionsDB")
}

func TestGenerate_EventLocaleFile(t *testing.T) {
	files := generate(t, warcraftRequest())
	locale := fileByPath(t, files, "DB/Locales/01_Warcraft/warcraft_events_enUS.lua")

	want := "local AceLocale = LibStub:GetLibrary(\"AceLocale-3.0\")\n" +
		"local L = AceLocale:NewLocale(\"Chronicles\", \"enUS\", true, true)\n" +
		"                \n" +
		"        L[\"3_the_founding_of_stormwind\"] = \"The Founding of Stormwind\"\n" +
		"\n" +
		"        L[\"4_chapter_one\"] = \"Chapter One\"\n" +
		"\n" +
		"        L[\"5_in_the_beginning\"] = \"In the beginning.\"\n"
	assert.Equal(t, want, locale.Content)
}

func TestGenerate_TranslationOnlyLanguageFiles(t *testing.T) {
	files := generate(t, warcraftRequest())

	// Only the character label carries a French translation, so frFR gets
	// exactly one file.
	frFR := fileByPath(t, files, "DB/Locales/01_Warcraft/warcraft_characters_frFR.lua")
	assert.Contains(t, frFR.Content, `L["7_anduin_lothar"] = "Anduin Lothar le Lion"`)
	assert.NotContains(t, paths(files), "DB/Locales/01_Warcraft/warcraft_events_frFR.lua")

	manifest := fileByPath(t, files, "DB/Locales/Locales.xml")
	assert.Contains(t, manifest.Content, `<Script file="01_Warcraft\warcraft_characters_frFR.lua" />`)
	assert.NotContains(t, manifest.Content, "warcraft_events_frFR")
}

func TestGenerate_GroupedCrossCollectionRefs(t *testing.T) {
	req := warcraftRequest()
	other := &types.Collection{ID: 2, Name: "diablo"}
	req.Collections = append(req.Collections, other)
	req.Events[0].Factions = append(req.Events[0].Factions, &types.Faction{
		ID:         9,
		Name:       "Horadrim",
		Label:      &types.Locale{ID: 8, EnUS: strPtr("Horadrim")},
		Collection: other,
	})

	files := generate(t, req)
	data := fileByPath(t, files, "Custom/DB/01_Warcraft/WarcraftEventsDB.lua")
	assert.Contains(t, data.Content, `factions={["warcraft"] = {2}, ["diablo"] = {9}}`)
}

func TestGenerate_TwoCollectionDeclaration(t *testing.T) {
	req := warcraftRequest()
	other := &types.Collection{ID: 2, Name: "diablo"}
	req.Collections = append(req.Collections, other)
	req.Factions = append(req.Factions, &types.Faction{
		ID:         9,
		Name:       "Horadrim",
		Label:      &types.Locale{ID: 8, EnUS: strPtr("Horadrim")},
		Collection: other,
	})

	files := generate(t, req)
	decl := fileByPath(t, files, "Custom/DB/ChroniclesDB.lua")

	g := goldie.New(t)
	g.Assert(t, "two_collection_declaration", []byte(decl.Content))

	assert.Contains(t, paths(files), "Custom/DB/02_Diablo/DiabloFactionsDB.lua")
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"warcraft", "Warcraft"},
		{"WARCRAFT", "Warcraft"},
		{"lost vikings", "Lost Vikings"},
		{"heroes-of_the storm", "Heroes-Of_the Storm"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatName(tt.in), "formatName(%q)", tt.in)
	}
}
