package bergfex

// LabelCategory names a data field that the site renders behind a
// localized term/definition pair.
type LabelCategory string

// Label categories resolvable against a resort page.
const (
	LabelSnowCondition    LabelCategory = "snow_condition"
	LabelLastSnowfall     LabelCategory = "last_snowfall"
	LabelAvalancheWarning LabelCategory = "avalanche_warning"
	LabelLifts            LabelCategory = "lifts"
	LabelSlopes           LabelCategory = "slopes"
	LabelSlopeCondition   LabelCategory = "slope_condition"
	LabelMountain         LabelCategory = "mountain"
	LabelValley           LabelCategory = "valley"
	LabelSnowHeight       LabelCategory = "snow_height"
)

// Labels maps each category to its locale-variant label strings in
// French, English and German, in match-priority order. The site serves
// the same page structure under bergfex.fr, bergfex.com and bergfex.at;
// only these labels differ. Matching is substring-based, so variants are
// kept as data rather than per-language branches: adding a locale means
// adding strings here, not touching the matcher.
var Labels = map[LabelCategory][]string{
	LabelSnowCondition: {
		"État de la neige",
		"Snow condition",
		"Schneezustand",
	},
	LabelLastSnowfall: {
		"Dernière chute de neige Région",
		"Latest snowfall Region",
		"Letzter Schneefall",
	},
	LabelAvalancheWarning: {
		"Niveau d’alerte avalanches",
		"Avalanche alert level",
		"Lawinenwarnstufe",
	},
	LabelLifts: {
		"Remontées ouvertes",
		"Open lifts",
		"Offene Lifte",
	},
	LabelSlopes: {
		"Pistes ouvertes",
		"Open pistes",
		"Offene Pisten",
	},
	LabelSlopeCondition: {
		"État de la piste",
		"Piste conditions",
		"Pistenzustand",
	},
	LabelMountain:   {"Sommet", "Mountain", "Berg"},
	LabelValley:     {"Vallée", "Valley", "Tal"},
	LabelSnowHeight: {"Hauteur de neige", "Snow depth", "Schneehöhe"},
}
