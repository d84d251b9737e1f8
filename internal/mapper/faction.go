package mapper

import (
	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

// FactionToRow flattens a faction. Pure.
func FactionToRow(f *types.Faction) *types.FactionRow {
	return &types.FactionRow{
		ID:           f.ID,
		Name:         f.Name,
		LabelID:      f.Label.ID,
		Chapters:     ChaptersToRefs(f.Chapters),
		Timeline:     f.Timeline,
		CollectionID: f.Collection.ID,
	}
}

// Faction resolves a faction row: required label, required collection,
// embedded chapters.
func (r *Resolver) Faction(row *types.FactionRow) (*types.Faction, error) {
	label, err := r.label(row.LabelID, "faction", row.Name)
	if err != nil {
		return nil, err
	}
	collection, err := r.collection(row.CollectionID, "faction", row.Name)
	if err != nil {
		return nil, err
	}
	chapters, err := r.chapters(row.Chapters)
	if err != nil {
		return nil, err
	}
	return &types.Faction{
		ID:         row.ID,
		Name:       row.Name,
		Label:      label,
		Chapters:   chapters,
		Timeline:   row.Timeline,
		Collection: collection,
	}, nil
}

// Factions resolves a batch of faction rows, dropping and reporting rows
// that fail.
func (r *Resolver) Factions(rows []*types.FactionRow) ([]*types.Faction, []Failure) {
	return resolveAll(rows, types.TableFactions, r.Faction, r.log)
}

// factionRefs resolves a faction id array. Ids that match no row contribute
// nothing; a faction that exists but cannot resolve fails.
func (r *Resolver) factionRefs(ids []int) ([]*types.Faction, error) {
	out := make([]*types.Faction, 0, len(ids))
	for _, id := range ids {
		row, err := jsondb.Get[types.FactionRow](r.db, id, types.TableFactions)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		f, err := r.Faction(row)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
