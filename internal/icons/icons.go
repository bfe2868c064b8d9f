package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style, keyed by what a card shows.
type Icons struct {
	Schedule   string
	Transcript string
	Status     string
	KPIs       string
	Queue      string
	Agents     string
	Grip       string // shown next to the dragged card's name
}

var (
	nerdIcons = Icons{
		Schedule:   "\uf073 ", // nf-fa-calendar
		Transcript: "\uf27a ", // nf-fa-commenting
		Status:     "\uf111 ", // nf-fa-circle
		KPIs:       "\uf080 ", // nf-fa-bar_chart
		Queue:      "\uf201 ", // nf-fa-line_chart
		Agents:     "\uf0c0 ", // nf-fa-users
		Grip:       "\uf0b2 ", // nf-fa-arrows_alt
	}

	unicodeIcons = Icons{
		Schedule:   "◷ ",
		Transcript: "✎ ",
		Status:     "● ",
		KPIs:       "▤ ",
		Queue:      "▁▃▅ ",
		Agents:     "☰ ",
		Grip:       "⠿ ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// byComponent maps render surface names to the icon they show.
var byComponent = map[string]func(Icons) string{
	"Schedule":       func(i Icons) string { return i.Schedule },
	"Transcript":     func(i Icons) string { return i.Transcript },
	"StatusSelector": func(i Icons) string { return i.Status },
	"KPIs":           func(i Icons) string { return i.KPIs },
	"QueueOverview":  func(i Icons) string { return i.Queue },
	"QueueList":      func(i Icons) string { return i.Agents },
}

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Valid reports whether style names a known icon style.
func Valid(style string) bool {
	switch Style(style) {
	case StyleNerd, StyleUnicode, StyleNone:
		return true
	}
	return false
}

// FormatTitle prefixes a card title with the icon of its component.
// Unknown components and the "none" style leave the title unchanged.
func FormatTitle(component, title string) string {
	get, ok := byComponent[component]
	if !ok {
		return title
	}
	return get(current) + title
}

// FormatDragging formats the header text for a card being dragged.
func FormatDragging(title string) string {
	return current.Grip + "dragging " + title
}
