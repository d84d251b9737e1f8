package jsondb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/pkg/types"
)

// newTestStore opens a store on a fresh database file in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), types.DefaultSchema(), zap.NewNop().Sugar())
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func TestOpen(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("directory location resolves to schema file", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir, types.DefaultSchema(), log)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "chronicles.json"), s.Path())
		assert.FileExists(t, s.Path())
	})

	t.Run("fresh file carries every declared table empty", func(t *testing.T) {
		s := newTestStore(t)
		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)

		var db map[string][]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &db))
		assert.Len(t, db, len(types.DeclaredTables))
		for _, table := range types.DeclaredTables {
			assert.Empty(t, db[table])
		}
	})

	t.Run("existing file is used as-is", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"events":[],"characters":[],"factions":[],"collections":[],"locales":[]}`), 0o644))

		s, err := Open(path, types.DefaultSchema(), log)
		require.NoError(t, err)
		assert.Equal(t, path, s.Path())
	})

	t.Run("missing path with existing parent becomes a file target", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.json")
		s, err := Open(path, types.DefaultSchema(), log)
		require.NoError(t, err)
		assert.Equal(t, path, s.Path())
		assert.FileExists(t, path)
	})

	t.Run("missing parent is ErrLocation", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "no", "such", "dir.json"), types.DefaultSchema(), log)
		assert.ErrorIs(t, err, types.ErrLocation)
	})

	t.Run("empty location is ErrLocation", func(t *testing.T) {
		_, err := Open("", types.DefaultSchema(), log)
		assert.ErrorIs(t, err, types.ErrLocation)
	})
}

func TestInsert(t *testing.T) {
	t.Run("first row in empty table gets id 1", func(t *testing.T) {
		s := newTestStore(t)
		row, err := Insert(s, &types.CollectionRow{ID: types.IDUnassigned, Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, 1, row.ID)
	})

	t.Run("id zero is treated as unassigned", func(t *testing.T) {
		s := newTestStore(t)
		row, err := Insert(s, &types.CollectionRow{Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, 1, row.ID)
	})

	t.Run("next id is max existing plus one", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{ID: 10, Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)

		row, err := Insert(s, &types.CollectionRow{Name: "Diablo"}, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, 11, row.ID)
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		s := newTestStore(t)
		row, err := Insert(s, &types.CollectionRow{ID: 7, Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, 7, row.ID)
	})

	t.Run("id zero doubles as unassigned even when zero-indexed", func(t *testing.T) {
		schema := types.DefaultSchema()
		schema.OneIndexed = false
		s, err := Open(t.TempDir(), schema, zap.NewNop().Sugar())
		require.NoError(t, err)

		first, err := Insert(s, &types.CollectionRow{Name: "first"}, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, 0, first.ID)

		// A row carrying id 0 is indistinguishable from an unassigned
		// one, so it gets the next free id instead of keeping 0.
		again, err := Insert(s, &types.CollectionRow{ID: 0, Name: "again"}, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, 1, again.ID)
	})

	t.Run("sequential inserts never collide", func(t *testing.T) {
		s := newTestStore(t)
		seen := map[int]bool{}
		for i := 0; i < 20; i++ {
			row, err := Insert(s, &types.CollectionRow{Name: "c"}, types.TableCollections)
			require.NoError(t, err)
			assert.False(t, seen[row.ID], "id %d assigned twice", row.ID)
			seen[row.ID] = true
		}
	})

	t.Run("unknown table is ErrUnknownTable", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{Name: "x"}, "chapters")
		assert.ErrorIs(t, err, types.ErrUnknownTable)
	})
}

func TestGet(t *testing.T) {
	t.Run("returns the row with the id", func(t *testing.T) {
		s := newTestStore(t)
		inserted, err := Insert(s, &types.LocaleRow{EnUS: strPtr("The Founding")}, types.TableLocales)
		require.NoError(t, err)

		got, err := Get[types.LocaleRow](s, inserted.ID, types.TableLocales)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "The Founding", *got.EnUS)
	})

	t.Run("missing id returns nil without error", func(t *testing.T) {
		s := newTestStore(t)
		got, err := Get[types.LocaleRow](s, 42, types.TableLocales)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate id is ErrDuplicateID", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{ID: 3, Name: "a"}, types.TableCollections)
		require.NoError(t, err)
		_, err = Insert(s, &types.CollectionRow{ID: 3, Name: "b"}, types.TableCollections)
		require.NoError(t, err)

		_, err = Get[types.CollectionRow](s, 3, types.TableCollections)
		assert.ErrorIs(t, err, types.ErrDuplicateID)
	})
}

func TestGetAll(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"Warcraft", "Diablo", "Starcraft"} {
		_, err := Insert(s, &types.CollectionRow{Name: name}, types.TableCollections)
		require.NoError(t, err)
	}

	t.Run("nil predicate returns every row in stored order", func(t *testing.T) {
		rows, err := GetAll[types.CollectionRow](s, types.TableCollections, nil)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Warcraft", rows[0].Name)
		assert.Equal(t, "Diablo", rows[1].Name)
		assert.Equal(t, "Starcraft", rows[2].Name)
	})

	t.Run("predicate filters rows", func(t *testing.T) {
		rows, err := GetAll(s, types.TableCollections, func(r *types.CollectionRow) bool {
			return r.Name == "Diablo"
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].ID)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		rows, err := GetAll[types.EventRow](s, types.TableEvents, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces the row in place", func(t *testing.T) {
		s := newTestStore(t)
		row, err := Insert(s, &types.CollectionRow{Name: "Warcaft"}, types.TableCollections)
		require.NoError(t, err)

		row.Name = "Warcraft"
		_, err = Update(s, row, types.TableCollections)
		require.NoError(t, err)

		got, err := Get[types.CollectionRow](s, row.ID, types.TableCollections)
		require.NoError(t, err)
		assert.Equal(t, "Warcraft", got.Name)
	})

	t.Run("missing id is ErrNotFound", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Update(s, &types.CollectionRow{ID: 9, Name: "x"}, types.TableCollections)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("duplicate id is ErrDuplicateID", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{ID: 3, Name: "a"}, types.TableCollections)
		require.NoError(t, err)
		_, err = Insert(s, &types.CollectionRow{ID: 3, Name: "b"}, types.TableCollections)
		require.NoError(t, err)

		_, err = Update(s, &types.CollectionRow{ID: 3, Name: "c"}, types.TableCollections)
		assert.ErrorIs(t, err, types.ErrDuplicateID)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		s := newTestStore(t)
		row, err := Insert(s, &types.CollectionRow{Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)

		require.NoError(t, s.Delete(row.ID, types.TableCollections))

		got, err := Get[types.CollectionRow](s, row.ID, types.TableCollections)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("missing id is a silent no-op that leaves the file untouched", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)

		before, err := os.ReadFile(s.Path())
		require.NoError(t, err)

		require.NoError(t, s.Delete(42, types.TableCollections))

		after, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("duplicate id is ErrDuplicateID", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{ID: 3, Name: "a"}, types.TableCollections)
		require.NoError(t, err)
		_, err = Insert(s, &types.CollectionRow{ID: 3, Name: "b"}, types.TableCollections)
		require.NoError(t, err)

		assert.ErrorIs(t, s.Delete(3, types.TableCollections), types.ErrDuplicateID)
	})
}

func TestClearAndCount(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		_, err := Insert(s, &types.CollectionRow{Name: "c"}, types.TableCollections)
		require.NoError(t, err)
	}

	n, err := s.Count(types.TableCollections)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, s.Clear(types.TableCollections))

	n, err = s.Count(types.TableCollections)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUnknownFieldsSurviveRewrites(t *testing.T) {
	// Rows the store never decodes keep fields the row structs do not
	// declare. Mutating one table must not strip them from another.
	path := filepath.Join(t.TempDir(), "db.json")
	seed := `{
		"events": [],
		"characters": [],
		"factions": [],
		"collections": [{"id": 1, "name": "Warcraft", "curator": "dalaran"}],
		"locales": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	s, err := Open(path, types.DefaultSchema(), zap.NewNop().Sugar())
	require.NoError(t, err)

	_, err = Insert(s, &types.LocaleRow{EnUS: strPtr("hello")}, types.TableLocales)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"curator":"dalaran"`)
}

func TestCompressedFlag(t *testing.T) {
	t.Run("compressed schema writes compact JSON", func(t *testing.T) {
		s := newTestStore(t)
		_, err := Insert(s, &types.CollectionRow{Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)

		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.NotContains(t, string(data), "\n")
	})

	t.Run("uncompressed schema writes indented JSON", func(t *testing.T) {
		schema := types.DefaultSchema()
		schema.Compressed = false
		s, err := Open(t.TempDir(), schema, zap.NewNop().Sugar())
		require.NoError(t, err)

		_, err = Insert(s, &types.CollectionRow{Name: "Warcraft"}, types.TableCollections)
		require.NoError(t, err)

		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  ")
	})
}
