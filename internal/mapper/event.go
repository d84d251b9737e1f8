package mapper

import (
	"fmt"

	"github.com/dukaforge/chronicler/pkg/types"
)

// EventToRow flattens an event. Pure.
func EventToRow(e *types.Event) *types.EventRow {
	factionIDs := make([]int, 0, len(e.Factions))
	for _, f := range e.Factions {
		factionIDs = append(factionIDs, f.ID)
	}
	characterIDs := make([]int, 0, len(e.Characters))
	for _, c := range e.Characters {
		characterIDs = append(characterIDs, c.ID)
	}
	return &types.EventRow{
		ID:           e.ID,
		Name:         e.Name,
		YearStart:    e.YearStart,
		YearEnd:      e.YearEnd,
		EventType:    e.EventType,
		Timeline:     e.Timeline,
		Link:         e.Link,
		FactionIDs:   factionIDs,
		CharacterIDs: characterIDs,
		LabelID:      e.Label.ID,
		Chapters:     ChaptersToRefs(e.Chapters),
		CollectionID: e.Collection.ID,
		Order:        e.Order,
	}
}

// CheckYears validates an event row's period against the catalogue year
// bounds before it is persisted.
func CheckYears(e *types.EventRow) error {
	if e.YearStart < types.MinYear || e.YearEnd > types.MaxYear {
		return fmt.Errorf("event %q: years %d..%d outside %d..%d", e.Name, e.YearStart, e.YearEnd, types.MinYear, types.MaxYear)
	}
	if e.YearStart > e.YearEnd {
		return fmt.Errorf("event %q: yearStart %d after yearEnd %d", e.Name, e.YearStart, e.YearEnd)
	}
	return nil
}

// Event resolves an event row: required label and collection, embedded
// chapters, optional faction and character references.
func (r *Resolver) Event(row *types.EventRow) (*types.Event, error) {
	label, err := r.label(row.LabelID, "event", row.Name)
	if err != nil {
		return nil, err
	}
	collection, err := r.collection(row.CollectionID, "event", row.Name)
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
	characters, err := r.characterRefs(row.CharacterIDs)
	if err != nil {
		return nil, err
	}
	return &types.Event{
		ID:         row.ID,
		Name:       row.Name,
		YearStart:  row.YearStart,
		YearEnd:    row.YearEnd,
		EventType:  row.EventType,
		Timeline:   row.Timeline,
		Link:       row.Link,
		Factions:   factions,
		Characters: characters,
		Label:      label,
		Chapters:   chapters,
		Collection: collection,
		Order:      row.Order,
	}, nil
}

// Events resolves a batch of event rows, dropping and reporting rows that
// fail.
func (r *Resolver) Events(rows []*types.EventRow) ([]*types.Event, []Failure) {
	return resolveAll(rows, types.TableEvents, r.Event, r.log)
}
