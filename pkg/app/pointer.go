package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入
type pointerState struct {
	// JustPressed 是否刚刚点击/触摸
	JustPressed bool
	// X, Y 指针位置
	X, Y int
	// IsTouching 是否有活动的触摸
	IsTouching bool
}

// getPointerState 获取当前帧的指针状态，优先检测触摸
func getPointerState() pointerState {
	var state pointerState

	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// pointerToLook 把屏幕坐标换算成以 (cx, cy) 为中心的归一化视线方向
// 距中心 halfW / halfH 处为 ±1，超出部分不截断，由调用方决定
func pointerToLook(x, y, cx, cy, halfW, halfH int) (float64, float64) {
	if halfW <= 0 || halfH <= 0 {
		return 0, 0
	}
	nx := float64(x-cx) / float64(halfW)
	ny := float64(y-cy) / float64(halfH)
	return nx, ny
}
