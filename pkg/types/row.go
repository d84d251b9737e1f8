package types

// IDUnassigned is the sentinel id carried by rows that have not been
// inserted yet. Insert assigns the next free id when it sees it.
const IDUnassigned = -1

// Row is implemented by every persisted record. Ids are integers, unique
// within one table.
type Row interface {
	RowID() int
	SetRowID(id int)
}

// ChapterRef is the embedded, flat form of a chapter inside an event,
// character, or faction row. Chapters have no table of their own.
type ChapterRef struct {
	HeaderID *int  `json:"headerId,omitempty"`
	PageIDs  []int `json:"pageIds"`
}

// LocaleRow is the persisted form of a multilingual string.
// EnUS is a pointer so an unset canonical string survives round-trips as
// null rather than collapsing to "".
type LocaleRow struct {
	ID           int               `json:"id"`
	IsHTML       bool              `json:"ishtml"`
	EnUS         *string           `json:"enUS"`
	Translations map[string]string `json:"translations"`
}

func (r *LocaleRow) RowID() int      { return r.ID }
func (r *LocaleRow) SetRowID(id int) { r.ID = id }

// CollectionRow is the persisted form of a named entity grouping.
type CollectionRow struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r *CollectionRow) RowID() int      { return r.ID }
func (r *CollectionRow) SetRowID(id int) { r.ID = id }

// EventRow is the persisted form of a narrative event.
type EventRow struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	YearStart    int          `json:"yearStart"`
	YearEnd      int          `json:"yearEnd"`
	EventType    int          `json:"eventType"`
	Timeline     int          `json:"timeline"`
	Link         string       `json:"link"`
	FactionIDs   []int        `json:"factionIds"`
	CharacterIDs []int        `json:"characterIds"`
	LabelID      int          `json:"labelId"`
	Chapters     []ChapterRef `json:"chapters"`
	CollectionID int          `json:"collectionId"`
	Order        int          `json:"order"`
}

func (r *EventRow) RowID() int      { return r.ID }
func (r *EventRow) SetRowID(id int) { r.ID = id }

// CharacterRow is the persisted form of a character.
type CharacterRow struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	LabelID      int          `json:"labelId"`
	Chapters     []ChapterRef `json:"chapters"`
	Timeline     int          `json:"timeline"`
	FactionIDs   []int        `json:"factionIds"`
	CollectionID int          `json:"collectionId"`
}

func (r *CharacterRow) RowID() int      { return r.ID }
func (r *CharacterRow) SetRowID(id int) { r.ID = id }

// FactionRow is the persisted form of a faction.
type FactionRow struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	LabelID      int          `json:"labelId"`
	Chapters     []ChapterRef `json:"chapters"`
	Timeline     int          `json:"timeline"`
	CollectionID int          `json:"collectionId"`
}

func (r *FactionRow) RowID() int      { return r.ID }
func (r *FactionRow) SetRowID(id int) { r.ID = id }
