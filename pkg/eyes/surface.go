package eyes

import "image/color"

// Handle 可绘制对象句柄，0 为无效句柄
type Handle uint32

// StyleID 共享样式对象标识，0 为无效标识
type StyleID uint32

// GradDir 背景渐变方向
type GradDir uint8

const (
	// GradNone 纯色填充
	GradNone GradDir = iota
	// GradVertical 自上而下：顶部为 BgColor，底部为 BgGradColor
	GradVertical
)

// 不透明度刻度（0-255）
const (
	OpaTransp uint8 = 0
	Opa40     uint8 = 102
	Opa70     uint8 = 178
	OpaCover  uint8 = 255
)

// RadiusCircle 圆角半径上限，渲染时会被限制为短边的一半
const RadiusCircle = 0x7FFF

// Area 屏幕上的包围盒
// X1/Y1 包含，X2/Y2 不包含，即宽度 = X2 - X1
type Area struct {
	X1, Y1, X2, Y2 int
}

// Width 返回宽度
func (a Area) Width() int { return a.X2 - a.X1 }

// Height 返回高度
func (a Area) Height() int { return a.Y2 - a.Y1 }

// Center 返回中心点坐标
// 以 X1 + W/2 的方式计算，保证 "按中心重新定位" 后中心不漂移
func (a Area) Center() (int, int) {
	return a.X1 + a.Width()/2, a.Y1 + a.Height()/2
}

// Style 共享样式对象的全部字段
// 同一个样式可被多个对象引用，修改后需调用 Surface.ReportStyleChange 才会生效
type Style struct {
	BgColor     color.RGBA
	BgGradColor color.RGBA
	BgGradDir   GradDir
	BgOpa       uint8

	Radius       int
	BorderWidth  int
	OutlineWidth int

	ShadowColor  color.RGBA
	ShadowWidth  int
	ShadowSpread int
	ShadowOpa    uint8
}

// Surface 绘图表面能力接口
//
// 动画核心只通过该接口修改图形，因此可以用记录型的假实现做单元测试。
// 位置（SetPos）相对于父对象，Coords 返回屏幕绝对坐标。
type Surface interface {
	// Root 返回当前活动屏幕
	Root() Handle
	// Create 在 parent 下创建一个无样式（透明）的对象
	Create(parent Handle) Handle

	SetSize(h Handle, w, hgt int)
	SetPos(h Handle, x, y int)
	// Center 将对象置于父对象中心
	Center(h Handle)
	// Coords 返回对象当前的屏幕包围盒
	Coords(h Handle) Area
	// SetTranslate 在布局位置之上附加的平移量
	SetTranslate(h Handle, dx, dy int)

	// NewStyle 注册共享样式对象
	NewStyle(st Style) StyleID
	// SetStyle 覆盖共享样式字段，不会立即触发重绘
	SetStyle(id StyleID, st Style)
	// ReportStyleChange 通知所有引用该样式的对象重新应用样式
	ReportStyleChange(id StyleID)
	AddStyle(h Handle, id StyleID)

	// 对象本地样式，优先级高于共享样式
	SetRadius(h Handle, r int)
	SetShadowColor(h Handle, c color.RGBA)
	SetShadowWidth(h Handle, w int)
	SetShadowOpa(h Handle, opa uint8)
}
