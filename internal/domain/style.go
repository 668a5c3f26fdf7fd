package domain

// Styles is the closed set of image style labels
var Styles = []string{
	"Cartoon",
	"B & W Photo",
	"Charcoal Sketch",
	"Photo",
	"Pixel Art",
	"Painting",
}

// IsStyle reports whether s is one of Styles
func IsStyle(s string) bool {
	for _, style := range Styles {
		if style == s {
			return true
		}
	}
	return false
}

// Describe builds the image description used as prompt and headline
func Describe(q Quote, style string) string {
	return q.Text + " - " + style
}
