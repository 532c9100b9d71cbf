package domain

import "hash/fnv"

// colorHex maps the color names Signal stores on recipients to the hex
// values used in the rendered pages.
var colorHex = map[string]string{
	"red":         "#EF5350",
	"pink":        "#EC407A",
	"purple":      "#AB47BC",
	"deep_purple": "#7E57C2",
	"indigo":      "#5C6BC0",
	"blue":        "#2196F3",
	"light_blue":  "#03A9F4",
	"cyan":        "#00BCD4",
	"teal":        "#009688",
	"green":       "#4CAF50",
	"light_green": "#7CB342",
	"orange":      "#FF9800",
	"deep_orange": "#FF5722",
	"amber":       "#FFB300",
	"blue_grey":   "#607D8B",
	"grey":        "#999999",
}

// colorNames is the pick order for recipients without a stored color. The
// fixed order keeps AssignColor stable across runs.
var colorNames = []string{
	"red", "pink", "purple", "deep_purple", "indigo", "blue",
	"light_blue", "cyan", "teal", "green", "light_green", "orange",
	"deep_orange", "amber", "blue_grey", "grey",
}

// AssignColor derives a palette color for a recipient the database stores no
// color for. The same key always yields the same color.
func AssignColor(key string) string {
	h := fnv.New32a()
	h.Write([]byte(key))
	return colorNames[h.Sum32()%uint32(len(colorNames))]
}

// ColorHex resolves a named color to its hex value. Names outside the
// palette fall back to grey.
func ColorHex(name string) string {
	if hex, ok := colorHex[name]; ok {
		return hex
	}
	return colorHex["grey"]
}
