package visualize

import (
	"fmt"
	"image/color"
	"sort"
)

// palettes maps palette names to color ramps, dark to light. The names follow
// the matplotlib colormaps users of this kind of tool already know.
var palettes = map[string][]color.Color{
	"viridis": {
		color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
		color.RGBA{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
		color.RGBA{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
		color.RGBA{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
		color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
	},
	"plasma": {
		color.RGBA{R: 0x0d, G: 0x08, B: 0x87, A: 0xff},
		color.RGBA{R: 0x7e, G: 0x03, B: 0xa8, A: 0xff},
		color.RGBA{R: 0xcc, G: 0x47, B: 0x78, A: 0xff},
		color.RGBA{R: 0xf8, G: 0x96, B: 0x41, A: 0xff},
		color.RGBA{R: 0xf0, G: 0xf9, B: 0x21, A: 0xff},
	},
	"blues": {
		color.RGBA{R: 0x08, G: 0x30, B: 0x6b, A: 0xff},
		color.RGBA{R: 0x21, G: 0x71, B: 0xb5, A: 0xff},
		color.RGBA{R: 0x6b, G: 0xae, B: 0xd6, A: 0xff},
		color.RGBA{R: 0xc6, G: 0xdb, B: 0xef, A: 0xff},
	},
	"greens": {
		color.RGBA{R: 0x00, G: 0x44, B: 0x1b, A: 0xff},
		color.RGBA{R: 0x23, G: 0x8b, B: 0x45, A: 0xff},
		color.RGBA{R: 0x74, G: 0xc4, B: 0x76, A: 0xff},
		color.RGBA{R: 0xc7, G: 0xe9, B: 0xc0, A: 0xff},
	},
	"oranges": {
		color.RGBA{R: 0x7f, G: 0x27, B: 0x04, A: 0xff},
		color.RGBA{R: 0xd9, G: 0x48, B: 0x01, A: 0xff},
		color.RGBA{R: 0xfd, G: 0x8d, B: 0x3c, A: 0xff},
		color.RGBA{R: 0xfd, G: 0xd0, B: 0xa2, A: 0xff},
	},
	"reds": {
		color.RGBA{R: 0x67, G: 0x00, B: 0x0d, A: 0xff},
		color.RGBA{R: 0xcb, G: 0x18, B: 0x1d, A: 0xff},
		color.RGBA{R: 0xfb, G: 0x6a, B: 0x4a, A: 0xff},
		color.RGBA{R: 0xfc, G: 0xbb, B: 0xa1, A: 0xff},
	},
}

// PaletteNames returns the available palette names, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func paletteColors(name string) ([]color.Color, error) {
	colors, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (available: %v)", name, PaletteNames())
	}
	return colors, nil
}

func backgroundColor(name string) (color.Color, error) {
	switch name {
	case "", "white":
		return color.White, nil
	case "black":
		return color.Black, nil
	default:
		colors, err := paletteColors(name)
		if err != nil {
			return nil, fmt.Errorf("unknown background %q", name)
		}
		return colors[0], nil
	}
}
