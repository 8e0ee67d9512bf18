package recipes

import (
	"sort"

	"github.com/iconforge/iconforge"
)

// BaseSize is the canvas edge all recipes are designed for.
const BaseSize = 1024

// DefaultTitle is the app title drawn by the text-bearing variants.
const DefaultTitle = "FURL"

// Builder constructs a recipe. Variants without title text ignore the
// argument.
type Builder func(title string) iconforge.Recipe

var builders = map[string]Builder{
	"classic": func(string) iconforge.Recipe { return Classic() },
	"gold":    Gold,
	"emoji":   func(string) iconforge.Recipe { return EmojiKey() },
	"title":   Title,
	"visible": Visible,
}

// Names returns the registered variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named variant. The bool reports whether the name
// is registered.
func Build(name, title string) (iconforge.Recipe, bool) {
	b, ok := builders[name]
	if !ok {
		return iconforge.Recipe{}, false
	}
	return b(title), true
}

// Shared palette of the variants.
var (
	indigo     = iconforge.RGB(79, 70, 229)  // #4f46e5
	violet     = iconforge.RGB(124, 58, 237) // #7c3aed
	violetSoft = iconforge.RGB(116, 58, 237)
	lavender   = iconforge.RGB(199, 210, 254) // #c7d2fe
	navy       = iconforge.RGB(42, 69, 148)   // #2a4594
	purple     = iconforge.RGB(103, 58, 183)  // #673ab7
	plum       = iconforge.RGB(101, 99, 229)  // #6563e5
	plumLight  = iconforge.RGB(139, 92, 246)  // #8b5cf6
	gold       = iconforge.RGB(255, 215, 0)   // #ffd700
	goldDark   = iconforge.RGB(218, 165, 32)  // #daa520
	silver     = iconforge.RGB(192, 192, 192) // #c0c0c0
)
