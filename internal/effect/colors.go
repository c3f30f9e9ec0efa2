package effect

// Scheme is an ordered list of colors effects draw from. The scheduler
// rotates through Schemes modulo their count every few beats.
type Scheme []string

var Schemes = []Scheme{
	{"#ff4444", "#ffff44", "#ffffff"}, // red/yellow/white
	{"#4466ff", "#44ffff", "#ffffff"}, // blue/cyan/white
	{"#44ff44", "#ffff44", "#ffffff"}, // green/yellow/white
	{"#ff44ff", "#ffff44", "#44ffff"}, // magenta/yellow/cyan
}

// SparkColors are used by sub-beat sparkles regardless of the active scheme.
var SparkColors = []string{"#ffffff", "#ffff44", "#44ffff"}

// TextColors are the callout palette.
var TextColors = []string{"#ff4444", "#ffff44", "#ff44ff", "#44ffff"}
