package mapper

import (
	"fmt"

	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

// CollectionToRow flattens a collection. Pure.
func CollectionToRow(c *types.Collection) *types.CollectionRow {
	return &types.CollectionRow{ID: c.ID, Name: c.Name}
}

// CollectionFromRow resolves a collection row. Collections reference
// nothing.
func CollectionFromRow(row *types.CollectionRow) *types.Collection {
	return &types.Collection{ID: row.ID, Name: row.Name}
}

// Collections resolves a batch of collection rows in input order.
func (r *Resolver) Collections(rows []*types.CollectionRow) []*types.Collection {
	out := make([]*types.Collection, 0, len(rows))
	for _, row := range rows {
		out = append(out, CollectionFromRow(row))
	}
	return out
}

// collection resolves the required owning collection of an entity.
func (r *Resolver) collection(id int, kind, name string) (*types.Collection, error) {
	row, err := jsondb.Get[types.CollectionRow](r.db, id, types.TableCollections)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%s %q: collection %d: %w", kind, name, id, types.ErrMissingReference)
	}
	return CollectionFromRow(row), nil
}

// label resolves the required label locale of an entity.
func (r *Resolver) label(id int, kind, name string) (*types.Locale, error) {
	row, err := jsondb.Get[types.LocaleRow](r.db, id, types.TableLocales)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%s %q: label locale %d: %w", kind, name, id, types.ErrMissingReference)
	}
	return LocaleFromRow(row), nil
}
