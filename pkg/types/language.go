package types

// Language is a client locale code as consumed by the addon runtime.
type Language string

// Supported languages. EnUS is the canonical language; every other value is
// looked up in a locale's translation map.
const (
	LangEnUS Language = "enUS"
	LangFrFR Language = "frFR"
	LangDeDE Language = "deDE"
	LangEsES Language = "esES"
	LangEsMX Language = "esMX"
	LangItIT Language = "itIT"
	LangPtBR Language = "ptBR"
	LangRuRU Language = "ruRU"
	LangKoKR Language = "koKR"
	LangZhCN Language = "zhCN"
	LangZhTW Language = "zhTW"
)

// Languages lists every supported language in generation order. The order is
// load-bearing: locale files are emitted per language in this sequence.
var Languages = []Language{
	LangEnUS,
	LangFrFR,
	LangDeDE,
	LangEsES,
	LangEsMX,
	LangItIT,
	LangPtBR,
	LangRuRU,
	LangKoKR,
	LangZhCN,
	LangZhTW,
}
