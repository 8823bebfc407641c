package model

import "strings"

// Label is a colored tag that can be attached to a project
type Label struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ColorTag string `json:"colorTag" yaml:"colorTag"`
}

// DefaultLabelColor is used for new labels created without a color
const DefaultLabelColor = "bg-gray-500"

// LabelColor is one entry of the palette offered for new labels
type LabelColor struct {
	Name string
	Tag  string
}

// LabelPalette lists the colors a new label can take
var LabelPalette = []LabelColor{
	{Name: "Red", Tag: "bg-red-500"},
	{Name: "Blue", Tag: "bg-blue-500"},
	{Name: "Green", Tag: "bg-green-500"},
	{Name: "Yellow", Tag: "bg-yellow-500"},
	{Name: "Purple", Tag: "bg-purple-500"},
	{Name: "Pink", Tag: "bg-pink-500"},
	{Name: "Gray", Tag: "bg-gray-500"},
}

// DefaultLabels returns the label catalog a new install starts with
func DefaultLabels() []Label {
	return []Label{
		{ID: 1, Name: "Design", ColorTag: "bg-blue-500"},
		{ID: 2, Name: "Frontend", ColorTag: "bg-green-500"},
		{ID: 3, Name: "Backend", ColorTag: "bg-purple-500"},
		{ID: 4, Name: "Bug", ColorTag: "bg-red-500"},
		{ID: 5, Name: "Enhancement", ColorTag: "bg-yellow-500"},
	}
}

// NextColor returns the palette tag after tag, wrapping around.
// Unknown tags start from the beginning of the palette.
func NextColor(tag string) string {
	for i, c := range LabelPalette {
		if c.Tag == tag {
			return LabelPalette[(i+1)%len(LabelPalette)].Tag
		}
	}
	return LabelPalette[0].Tag
}

// ColorName returns the palette name for tag, or the tag itself if unknown
func ColorName(tag string) string {
	for _, c := range LabelPalette {
		if c.Tag == tag {
			return c.Name
		}
	}
	return tag
}

// ColorTag resolves a palette color by name ("red") or by tag ("bg-red-500")
func ColorTag(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, c := range LabelPalette {
		if strings.EqualFold(c.Name, s) || c.Tag == s {
			return c.Tag, true
		}
	}
	return "", false
}
