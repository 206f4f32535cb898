package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/eyes/pkg/eyes"
)

// DefaultPaletteName 默认配色（琥珀色，与固件一致）
const DefaultPaletteName = "amber"

// paletteHex 预设配色：内色 / 光晕色
var paletteHex = map[string][2]string{
	"amber": {"#FFFDE7", "#FFC21C"},
	"ice":   {"#E0F7FF", "#1C9BFF"},
	"mint":  {"#E8FFF3", "#1CFF8E"},
	"rose":  {"#FFEBEE", "#FF4F81"},
}

// PaletteNames 返回所有预设名称，默认配色排在第一位，其余按字母序
func PaletteNames() []string {
	names := make([]string, 0, len(paletteHex))
	for name := range paletteHex {
		if name != DefaultPaletteName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultPaletteName}, names...)
}

// LookupPalette 按名称查找预设配色（不区分大小写）
func LookupPalette(name string) (eyes.Palette, bool) {
	hex, ok := paletteHex[strings.ToLower(name)]
	if !ok {
		return eyes.Palette{}, false
	}
	inner, err := ParseHexColor(hex[0])
	if err != nil {
		return eyes.Palette{}, false
	}
	glow, err := ParseHexColor(hex[1])
	if err != nil {
		return eyes.Palette{}, false
	}
	return eyes.Palette{Inner: inner, Glow: glow}, true
}

// ParseHexColor 解析 "#RRGGBB"（"#" 可省略），返回不透明颜色
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// FormatHexColor 把颜色格式化为 "#RRGGBB"
func FormatHexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
