package mapper

import (
	"github.com/dukaforge/chronicler/pkg/types"
)

// LocaleToRow flattens a locale. Pure.
func LocaleToRow(l *types.Locale) *types.LocaleRow {
	translations := make(map[string]string, len(l.Translations))
	for lang, value := range l.Translations {
		translations[string(lang)] = value
	}
	return &types.LocaleRow{
		ID:           l.ID,
		IsHTML:       l.IsHTML,
		EnUS:         l.EnUS,
		Translations: translations,
	}
}

// LocaleFromRow resolves a locale row. Locales reference nothing, so this
// direction is pure as well.
func LocaleFromRow(row *types.LocaleRow) *types.Locale {
	translations := make(map[types.Language]string, len(row.Translations))
	for lang, value := range row.Translations {
		translations[types.Language(lang)] = value
	}
	return &types.Locale{
		ID:           row.ID,
		IsHTML:       row.IsHTML,
		EnUS:         row.EnUS,
		Translations: translations,
	}
}

// Locales resolves a batch of locale rows in input order.
func (r *Resolver) Locales(rows []*types.LocaleRow) []*types.Locale {
	out := make([]*types.Locale, 0, len(rows))
	for _, row := range rows {
		out = append(out, LocaleFromRow(row))
	}
	return out
}
