package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 一帧内收集到的输入
type Input struct {
	// HasPointer 指针在窗口内，LookX/LookY 有效
	HasPointer   bool
	LookX, LookY float64

	// Blink 空格或点击触发立即眨眼
	Blink bool

	// Palette 数字键选择的配色下标，-1 表示未选择
	Palette int
	// NextPalette P 键或触摸设备上的双指切换到下一个配色
	NextPalette bool

	// GlowDelta 光晕调整方向：+1 增强，-1 减弱
	GlowDelta int

	ToggleFullscreen bool
}

// noInput 没有任何操作的输入
func noInput() Input {
	return Input{Palette: -1}
}

var paletteKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// pollInput 读取当前帧的键盘、鼠标和触摸状态
// w, h 为逻辑屏幕尺寸，指针位置按屏幕中心归一化
func pollInput(w, h int) Input {
	in := noInput()

	p := getPointerState()
	if p.IsTouching || (p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h) {
		in.HasPointer = true
		in.LookX, in.LookY = pointerToLook(p.X, p.Y, w/2, h/2, w/2, h/2)
	}

	in.Blink = p.JustPressed || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	for i, key := range paletteKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Palette = i
			break
		}
	}
	in.NextPalette = inpututil.IsKeyJustPressed(ebiten.KeyP) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 1

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		in.GlowDelta = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		in.GlowDelta = -1
	}

	in.ToggleFullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	return in
}
