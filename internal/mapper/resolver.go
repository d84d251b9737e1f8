// Package mapper converts between persisted rows and resolved domain
// graphs. The ToRow direction is pure: nested references flatten to their
// ids. The FromRow direction walks the store, resolving every foreign key
// and recursing into referenced entities. The resolution graph is a DAG
// (Event -> Faction/Character/Locale/Chapter, Character -> Faction, all of
// them -> Locale/Collection), so no cycle detection is carried.
package mapper

import (
	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/internal/jsondb"
)

// Resolver resolves rows into domain objects against one open store. It
// holds no cache: every call rereads the store, so a resolved graph is a
// snapshot, never shared mutable state.
type Resolver struct {
	db  *jsondb.Store
	log *zap.SugaredLogger
}

// NewResolver returns a resolver bound to db.
func NewResolver(db *jsondb.Store, log *zap.SugaredLogger) *Resolver {
	return &Resolver{db: db, log: log}
}
