package components

// icons maps the icon identifiers used in config to terminal glyphs.
var icons = map[string]string{
	"clock":  "◷",
	"home":   "⌂",
	"coffee": "☕",
	"plane":  "✈",
	"car":    "⛍",
	"money":  "€",
}

// Icon returns the glyph for name, or a bullet for unknown names.
func Icon(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return "•"
}
