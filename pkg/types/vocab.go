package types

// Year bounds accepted on event rows.
const (
	MinYear = -999999
	MaxYear = 999999
)

// ListEntry is a display vocabulary entry: a stable id and a human name.
type ListEntry struct {
	ID   int
	Name string
}

// EventTypes is the event classification vocabulary consumed by the UI and
// the addon runtime. Ids are persisted in EventRow.EventType.
var EventTypes = []ListEntry{
	{ID: 1, Name: "Event"},
	{ID: 2, Name: "Era"},
	{ID: 3, Name: "War"},
	{ID: 4, Name: "Battle"},
	{ID: 5, Name: "Death"},
	{ID: 6, Name: "Birth"},
	{ID: 7, Name: "Other"},
}

// Timelines is the timeline vocabulary. Ids are persisted in the Timeline
// field of event, character, and faction rows.
var Timelines = []ListEntry{
	{ID: 1, Name: "Main"},
	{ID: 2, Name: "Dreanor"},
}
