package model

import (
	"fmt"
	"strconv"
	"strings"
)

// BoxPalette is the default colour cycle assigned to boxes without a colour.
var BoxPalette = []string{
	"#4CAF50", // green
	"#2196F3", // blue
	"#FF9800", // orange
	"#9C27B0", // purple
	"#00BCD4", // cyan
	"#F44336", // red
	"#FFEB3B", // yellow
	"#795548", // brown
}

// PaletteColor returns the palette entry for the i-th box.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return BoxPalette[i%len(BoxPalette)]
}

// ParseHexColor converts "#RRGGBB" (the leading # is optional) into its
// components.
func ParseHexColor(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return int(v>>16&0xFF), int(v>>8&0xFF), int(v&0xFF), nil
}

// DisplayColor returns the box's own colour when it parses, otherwise the
// palette entry for index i.
func (b BoxSpec) DisplayColor(i int) (r, g, bl int) {
	r, g, bl, err := ParseHexColor(b.Color)
	if err != nil {
		r, g, bl, _ = ParseHexColor(PaletteColor(i))
	}
	return r, g, bl
}
