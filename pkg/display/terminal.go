package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock 上半块字符：前景色画上半格，背景色画下半格
const halfBlock = '▀'

// Terminal 终端输出端，每个字符格显示上下两个像素
type Terminal struct {
	screen tcell.Screen
	bg     color.RGBA
	buf    *image.RGBA
}

// NewTerminal 初始化终端屏幕
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen 使用已初始化的屏幕
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		bg:     color.RGBA{A: 255},
	}
}

// Screen 返回底层屏幕，用于读取输入事件
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Present 实现 Sink
func (t *Terminal) Present(frame image.Image) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	pw, ph := cols, rows*2
	if t.buf == nil || t.buf.Bounds().Dx() != pw || t.buf.Bounds().Dy() != ph {
		t.buf = image.NewRGBA(image.Rect(0, 0, pw, ph))
	}
	fitInto(t.buf, frame, t.bg)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := t.buf.RGBAAt(x, y*2)
			bottom := t.buf.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Close 实现 Sink，恢复终端
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
