package main

import (
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/eyes/pkg/config"
	"github.com/decker502/eyes/pkg/eyes"
)

// 每次按键的调整量
const (
	lookStep = 0.25
	glowStep = 5
)

// controls 把按键映射到眼睛操作
type controls struct {
	eyes     *eyes.Eyes
	palettes []string
	palette  int

	// manual 用户用方向键控制过视线后停止随机移动，按 C 恢复
	manual bool
}

// newControls current 为当前显示的预设名，自定义颜色时传空字符串
func newControls(e *eyes.Eyes, current string) *controls {
	c := &controls{
		eyes:     e,
		palettes: config.PaletteNames(),
		palette:  -1,
	}
	for i, name := range c.palettes {
		if strings.EqualFold(name, current) {
			c.palette = i
			break
		}
	}
	return c
}

// handleKey 处理一次按键，返回 false 表示退出
func (c *controls) handleKey(ev *tcell.EventKey) bool {
	x, y := c.eyes.LookTarget()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.look(x, y-lookStep)
	case tcell.KeyDown:
		c.look(x, y+lookStep)
	case tcell.KeyLeft:
		c.look(x-lookStep, y)
	case tcell.KeyRight:
		c.look(x+lookStep, y)
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return true
}

func (c *controls) handleRune(r rune) bool {
	switch {
	case r == 'q' || r == 'Q':
		return false
	case r == ' ':
		c.eyes.BlinkNow()
	case r == 'c' || r == 'C':
		c.eyes.Look(0, 0)
		c.manual = false
	case r == 'p' || r == 'P':
		c.selectPalette((c.palette + 1) % len(c.palettes))
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(c.palettes) {
			c.selectPalette(i)
		}
	case r == '+' || r == '=':
		c.eyes.SetGlow(c.eyes.GlowTrim() + glowStep)
	case r == '-' || r == '_':
		c.eyes.SetGlow(c.eyes.GlowTrim() - glowStep)
	}
	return true
}

func (c *controls) look(x, y float64) {
	c.eyes.Look(x, y)
	c.manual = true
}

func (c *controls) selectPalette(i int) {
	p, ok := config.LookupPalette(c.palettes[i])
	if !ok {
		return
	}
	c.palette = i
	c.eyes.SetColors(p.Inner, p.Glow)
	log.Printf("[Terminal] Palette -> %s", c.palettes[i])
}
