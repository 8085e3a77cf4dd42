package model

// DefaultIcon substitutes for any title without a named icon.
const DefaultIcon = "iOS"

var icons = map[string]string{
	"General":              "⚙",
	"About":                "ℹ",
	"Privacy and Security": "✋",
	"Health":               "♥",
	"Wi-Fi":                "≋",
	"Bluetooth":            "ᛒ",
	"Notifications":        "✉",
	"Sounds":               "♪",
	"Battery":              "▮",
	"Display":              "☀",
	DefaultIcon:            "◆",
}

// ResolveIcon returns the icon named like title, or DefaultIcon.
func ResolveIcon(title string) string {
	if _, ok := icons[title]; ok {
		return title
	}
	return DefaultIcon
}

// Glyph maps an icon name to the character drawn for it.
func Glyph(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return icons[DefaultIcon]
}
