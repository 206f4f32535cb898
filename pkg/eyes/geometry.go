package eyes

import "github.com/decker502/eyes/pkg/utils"

// 眨眼压缩百分比范围
// 下限不为 0，避免出现高度为 0 的退化图形
const (
	SquashMin = 8
	SquashMax = 100
)

// 几何比例（相对于眼睛宽度）
const (
	heightRatio = 0.86
	radiusRatio = 0.28
	coreRatio   = 0.66
	lookRatio   = 0.16
)

// Eye 单只眼睛的几何信息
// base/core 尺寸在创建时确定，之后所有压缩都基于它们计算，不会累积误差
type Eye struct {
	parent Handle
	outer  Handle // 外圈光晕
	inner  Handle // 白色核心

	baseW, baseH int
	coreW, coreH int
}

// Outer 返回外圈句柄
func (eye *Eye) Outer() Handle { return eye.outer }

// Inner 返回核心句柄
func (eye *Eye) Inner() Handle { return eye.inner }

// BaseSize 返回外圈原始尺寸
func (eye *Eye) BaseSize() (int, int) { return eye.baseW, eye.baseH }

// CoreSize 返回核心原始尺寸
func (eye *Eye) CoreSize() (int, int) { return eye.coreW, eye.coreH }

// makeEye 在 parent 内以 (x, y) 为中心创建宽度为 w 的眼睛
func makeEye(s Surface, eye *Eye, parent Handle, baseID, coreID StyleID, x, y, w int) {
	h := int(float64(w) * heightRatio)
	r := int(float64(w) * radiusRatio)

	eye.parent = parent
	eye.outer = s.Create(parent)
	s.AddStyle(eye.outer, baseID)
	s.SetSize(eye.outer, w, h)
	eye.baseW, eye.baseH = w, h

	s.SetRadius(eye.outer, r)
	s.SetPos(eye.outer, x-w/2, y-h/2)

	eye.inner = s.Create(eye.outer)
	s.AddStyle(eye.inner, coreID)
	cw := int(float64(w) * coreRatio)
	ch := int(float64(h) * coreRatio)
	s.SetSize(eye.inner, cw, ch)
	eye.coreW, eye.coreH = cw, ch
	s.Center(eye.inner)

	// 高光
	s.SetShadowColor(eye.inner, highlightColor)
	s.SetShadowWidth(eye.inner, highlightShadowWidth)
	s.SetShadowOpa(eye.inner, Opa40)
}

// applySquash 不借助变换接口实现"眼皮"压缩：
// 直接修改外圈和核心的高度，并重新定位以保持外圈中心不变。
//
// percent 会被限制在 [SquashMin, SquashMax]，100 为完全睁开。
func applySquash(s Surface, eye *Eye, percent int) {
	percent = utils.ClampInt(percent, SquashMin, SquashMax)

	newH := eye.baseH * percent / 100
	newCH := eye.coreH * percent / 100

	// 读取当前屏幕中心，换算回父对象坐标
	cx, cy := s.Coords(eye.outer).Center()
	p := s.Coords(eye.parent)
	cx -= p.X1
	cy -= p.Y1

	s.SetSize(eye.outer, eye.baseW, newH)
	s.SetPos(eye.outer, cx-eye.baseW/2, cy-newH/2)

	// 核心按相同比例压缩并重新居中
	s.SetSize(eye.inner, eye.coreW, newCH)
	s.Center(eye.inner)
}

// applyLook 在外圈内平移核心，最大偏移为眼睛宽度的 16%
func applyLook(s Surface, eye *Eye, size int, nx, ny float64) {
	maxShift := int(float64(size) * lookRatio)
	dx := int(nx * float64(maxShift))
	dy := int(ny * float64(maxShift))
	s.SetTranslate(eye.inner, dx, dy)
}
