package types

// Locale is the resolved form of a multilingual string. EnUS is nil when the
// canonical text was never set.
type Locale struct {
	ID           int
	IsHTML       bool
	EnUS         *string
	Translations map[Language]string
}

// Value returns the string for the given language, or "" when absent.
func (l *Locale) Value(lang Language) string {
	if l == nil {
		return ""
	}
	if lang == LangEnUS {
		if l.EnUS == nil {
			return ""
		}
		return *l.EnUS
	}
	return l.Translations[lang]
}

// Chapter is an ordered narrative unit: an optional header locale and an
// ordered page sequence. Chapters are embedded in their owning entity.
type Chapter struct {
	Header *Locale
	Pages  []*Locale
}

// Collection is a named grouping of entities. Its position in the collection
// list drives the export folder index.
type Collection struct {
	ID   int
	Name string
}

// Faction is a resolved faction: label locale, chapters, and owning
// collection.
type Faction struct {
	ID         int
	Name       string
	Label      *Locale
	Chapters   []Chapter
	Timeline   int
	Collection *Collection
}

// Character is a resolved character. Factions holds the character's faction
// memberships in row order of the id array.
type Character struct {
	ID         int
	Name       string
	Label      *Locale
	Chapters   []Chapter
	Timeline   int
	Factions   []*Faction
	Collection *Collection
}

// Event is a resolved narrative event.
type Event struct {
	ID         int
	Name       string
	YearStart  int
	YearEnd    int
	EventType  int
	Timeline   int
	Link       string
	Factions   []*Faction
	Characters []*Character
	Label      *Locale
	Chapters   []Chapter
	Collection *Collection
	Order      int
}
