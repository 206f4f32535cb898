package eyes

import (
	"image/color"

	"github.com/decker502/eyes/pkg/utils"
)

// Palette 两只眼睛共用的配色
type Palette struct {
	// Inner 发光中心（核心和渐变底部）
	Inner color.RGBA
	// Glow 外圈与光晕
	Glow color.RGBA
}

// DefaultPalette 默认琥珀色配色
var DefaultPalette = Palette{
	Inner: color.RGBA{R: 0xFF, G: 0xFD, B: 0xE7, A: 0xFF},
	Glow:  color.RGBA{R: 0xFF, G: 0xC2, B: 0x1C, A: 0xFF},
}

// 核心高光阴影
var highlightColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

const highlightShadowWidth = 14

// 光晕调节范围
const (
	GlowTrimMin = -60
	GlowTrimMax = 40
)

// baseStyle 外圈样式：glow 在上、inner 在下的竖直渐变，外加同色光晕
func baseStyle(p Palette) Style {
	return Style{
		BgOpa:        OpaCover,
		Radius:       RadiusCircle,
		OutlineWidth: 0,
		BorderWidth:  0,
		BgColor:      p.Glow,
		BgGradColor:  p.Inner,
		BgGradDir:    GradVertical,
		ShadowColor:  p.Glow,
		ShadowWidth:  28,
		ShadowSpread: 2,
		ShadowOpa:    Opa70,
	}
}

// coreStyle 核心样式：纯色 inner
func coreStyle(p Palette) Style {
	return Style{
		BgOpa:        OpaCover,
		Radius:       RadiusCircle,
		BgColor:      p.Inner,
		BorderWidth:  0,
		OutlineWidth: 0,
	}
}

// applyPalette 把配色写入两种共享样式并通知重绘
func (e *Eyes) applyPalette() {
	e.base.BgColor = e.palette.Glow
	e.base.BgGradColor = e.palette.Inner
	e.base.ShadowColor = e.palette.Glow
	e.surface.SetStyle(e.baseID, e.base)
	e.surface.ReportStyleChange(e.baseID)

	e.core.BgColor = e.palette.Inner
	e.surface.SetStyle(e.coreID, e.core)
	e.surface.ReportStyleChange(e.coreID)
}

// glowIntensity 返回 glowBase + glowAdd，限制在 [0,100]
func (e *Eyes) glowIntensity() int {
	return utils.ClampInt(e.glowBase+e.glowAdd, 0, 100)
}
