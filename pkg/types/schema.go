package types

// Table names declared by the catalogue schema.
const (
	TableEvents      = "events"
	TableCharacters  = "characters"
	TableFactions    = "factions"
	TableCollections = "collections"
	TableLocales     = "locales"
)

// DeclaredTables lists every table of the catalogue schema in file order.
var DeclaredTables = []string{
	TableEvents,
	TableCharacters,
	TableFactions,
	TableCollections,
	TableLocales,
}

// Schema describes one database instance: its file name stem, the declared
// table set, and the encoding flags of the persisted JSON document.
type Schema struct {
	Name       string   // File name stem; the file is "<Name>.json".
	Tables     []string // Declared table names.
	OneIndexed bool     // First auto-assigned id in an empty table is 1, not 0.
	Compressed bool     // Persist compact JSON instead of two-space indented.
}

// DefaultSchema returns the schema used by the Chronicles catalogue.
func DefaultSchema() Schema {
	return Schema{
		Name:       "chronicles",
		Tables:     DeclaredTables,
		OneIndexed: true,
		Compressed: true,
	}
}

// HasTable reports whether name is declared by the schema.
func (s Schema) HasTable(name string) bool {
	for _, t := range s.Tables {
		if t == name {
			return true
		}
	}
	return false
}
