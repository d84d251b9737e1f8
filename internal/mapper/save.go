package mapper

import (
	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

// SaveLocale persists a locale: a locale without a positive id is inserted
// and receives one, an existing locale is updated in place. The returned
// locale carries the final id.
func (r *Resolver) SaveLocale(l *types.Locale) (*types.Locale, error) {
	row := LocaleToRow(l)
	if row.ID <= 0 {
		row.ID = types.IDUnassigned
		inserted, err := jsondb.Insert(r.db, row, types.TableLocales)
		if err != nil {
			return nil, err
		}
		l.ID = inserted.ID
		return l, nil
	}
	if _, err := jsondb.Update(r.db, row, types.TableLocales); err != nil {
		return nil, err
	}
	return l, nil
}

// SaveChapterLocales persists every locale a chapter embeds (header and
// pages), assigning ids to fresh ones. The chapter is updated in place so a
// following ToRow flattening sees the final ids.
func (r *Resolver) SaveChapterLocales(c *types.Chapter) error {
	if c.Header != nil {
		saved, err := r.SaveLocale(c.Header)
		if err != nil {
			return err
		}
		c.Header = saved
	}
	for i, page := range c.Pages {
		if page == nil {
			continue
		}
		saved, err := r.SaveLocale(page)
		if err != nil {
			return err
		}
		c.Pages[i] = saved
	}
	return nil
}
