package mapper

import (
	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

// ChapterToRef flattens an embedded chapter to its locale ids. Pure.
func ChapterToRef(c types.Chapter) types.ChapterRef {
	ref := types.ChapterRef{PageIDs: make([]int, 0, len(c.Pages))}
	if c.Header != nil {
		id := c.Header.ID
		ref.HeaderID = &id
	}
	for _, page := range c.Pages {
		ref.PageIDs = append(ref.PageIDs, page.ID)
	}
	return ref
}

// ChaptersToRefs flattens a chapter list in order. Pure.
func ChaptersToRefs(chapters []types.Chapter) []types.ChapterRef {
	refs := make([]types.ChapterRef, 0, len(chapters))
	for _, c := range chapters {
		refs = append(refs, ChapterToRef(c))
	}
	return refs
}

// Chapter resolves an embedded chapter reference. Both the header and the
// pages are optional references: ids that match no locale contribute
// nothing and never fail.
func (r *Resolver) Chapter(ref types.ChapterRef) (types.Chapter, error) {
	var c types.Chapter

	if ref.HeaderID != nil {
		row, err := jsondb.Get[types.LocaleRow](r.db, *ref.HeaderID, types.TableLocales)
		if err != nil {
			return c, err
		}
		if row != nil {
			c.Header = LocaleFromRow(row)
		}
	}

	c.Pages = make([]*types.Locale, 0, len(ref.PageIDs))
	for _, id := range ref.PageIDs {
		row, err := jsondb.Get[types.LocaleRow](r.db, id, types.TableLocales)
		if err != nil {
			return c, err
		}
		if row != nil {
			c.Pages = append(c.Pages, LocaleFromRow(row))
		}
	}
	return c, nil
}

// chapters resolves an embedded chapter list in order.
func (r *Resolver) chapters(refs []types.ChapterRef) ([]types.Chapter, error) {
	out := make([]types.Chapter, 0, len(refs))
	for _, ref := range refs {
		c, err := r.Chapter(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
