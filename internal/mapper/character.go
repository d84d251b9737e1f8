package mapper

import (
	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

// CharacterToRow flattens a character. Pure.
func CharacterToRow(c *types.Character) *types.CharacterRow {
	factionIDs := make([]int, 0, len(c.Factions))
	for _, f := range c.Factions {
		factionIDs = append(factionIDs, f.ID)
	}
	return &types.CharacterRow{
		ID:           c.ID,
		Name:         c.Name,
		LabelID:      c.Label.ID,
		Chapters:     ChaptersToRefs(c.Chapters),
		Timeline:     c.Timeline,
		FactionIDs:   factionIDs,
		CollectionID: c.Collection.ID,
	}
}

// Character resolves a character row: required label and collection,
// embedded chapters, optional faction memberships.
func (r *Resolver) Character(row *types.CharacterRow) (*types.Character, error) {
	label, err := r.label(row.LabelID, "character", row.Name)
	if err != nil {
		return nil, err
	}
	collection, err := r.collection(row.CollectionID, "character", row.Name)
	if err != nil {
		return nil, err
	}
	chapters, err := r.chapters(row.Chapters)
	if err != nil {
		return nil, err
	}
	factions, err := r.factionRefs(row.FactionIDs)
	if err != nil {
		return nil, err
	}
	return &types.Character{
		ID:         row.ID,
		Name:       row.Name,
		Label:      label,
		Chapters:   chapters,
		Timeline:   row.Timeline,
		Factions:   factions,
		Collection: collection,
	}, nil
}

// Characters resolves a batch of character rows, dropping and reporting
// rows that fail.
func (r *Resolver) Characters(rows []*types.CharacterRow) ([]*types.Character, []Failure) {
	return resolveAll(rows, types.TableCharacters, r.Character, r.log)
}

// characterRefs resolves a character id array with the same policy as
// factionRefs.
func (r *Resolver) characterRefs(ids []int) ([]*types.Character, error) {
	out := make([]*types.Character, 0, len(ids))
	for _, id := range ids {
		row, err := jsondb.Get[types.CharacterRow](r.db, id, types.TableCharacters)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		c, err := r.Character(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
