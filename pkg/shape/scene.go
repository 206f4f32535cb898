// Package shape 提供 eyes.Surface 的保留模式实现
//
// Scene 保存对象树（位置、尺寸、平移、共享样式和本地样式），
// 渲染端通过 DrawList 获取已解析的绘制项，再交给具体的光栅化器。
package shape

import (
	"image/color"

	"github.com/decker502/eyes/pkg/eyes"
)

// local 本地样式覆盖
type local struct {
	hasRadius bool
	radius    int

	hasShadowColor bool
	shadowColor    color.RGBA

	hasShadowWidth bool
	shadowWidth    int

	hasShadowOpa bool
	shadowOpa    uint8
}

// node 场景中的一个对象
type node struct {
	parent   eyes.Handle
	children []eyes.Handle

	x, y   int // 相对父对象
	w, h   int
	tx, ty int // 附加平移

	styles []eyes.StyleID
	local  local
}

// Scene 保留模式的对象树
type Scene struct {
	nodes  []node
	styles []eyes.Style
	dirty  bool
}

// NewScene 创建宽 w、高 h 的场景，根对象即屏幕
func NewScene(w, h int) *Scene {
	return &Scene{
		nodes: []node{{w: w, h: h}},
		dirty: true,
	}
}

// Size 返回屏幕尺寸
func (s *Scene) Size() (int, int) {
	return s.nodes[0].w, s.nodes[0].h
}

// Dirty 自上次 ClearDirty 以来是否有可见变化
func (s *Scene) Dirty() bool {
	return s.dirty
}

// ClearDirty 清除脏标记，通常在一帧绘制完成后调用
func (s *Scene) ClearDirty() {
	s.dirty = false
}

func (s *Scene) node(h eyes.Handle) *node {
	if h == 0 || int(h) > len(s.nodes) {
		return nil
	}
	return &s.nodes[h-1]
}

// Root 实现 eyes.Surface
func (s *Scene) Root() eyes.Handle {
	return 1
}

// Create 实现 eyes.Surface
// parent 无效时挂到根对象
func (s *Scene) Create(parent eyes.Handle) eyes.Handle {
	if s.node(parent) == nil {
		parent = s.Root()
	}
	s.nodes = append(s.nodes, node{parent: parent})
	h := eyes.Handle(len(s.nodes))
	p := s.node(parent)
	p.children = append(p.children, h)
	s.dirty = true
	return h
}

// SetSize 实现 eyes.Surface
func (s *Scene) SetSize(h eyes.Handle, w, hgt int) {
	n := s.node(h)
	if n == nil || (n.w == w && n.h == hgt) {
		return
	}
	n.w, n.h = w, hgt
	s.dirty = true
}

// SetPos 实现 eyes.Surface
func (s *Scene) SetPos(h eyes.Handle, x, y int) {
	n := s.node(h)
	if n == nil || (n.x == x && n.y == y) {
		return
	}
	n.x, n.y = x, y
	s.dirty = true
}

// Center 实现 eyes.Surface
func (s *Scene) Center(h eyes.Handle) {
	n := s.node(h)
	if n == nil {
		return
	}
	p := s.node(n.parent)
	if p == nil {
		return
	}
	s.SetPos(h, (p.w-n.w)/2, (p.h-n.h)/2)
}

// Coords 实现 eyes.Surface，包含所有祖先的平移
func (s *Scene) Coords(h eyes.Handle) eyes.Area {
	n := s.node(h)
	if n == nil {
		return eyes.Area{}
	}
	x, y := 0, 0
	for cur := h; cur != 0; {
		c := s.node(cur)
		x += c.x + c.tx
		y += c.y + c.ty
		cur = c.parent
	}
	return eyes.Area{X1: x, Y1: y, X2: x + n.w, Y2: y + n.h}
}

// SetTranslate 实现 eyes.Surface
func (s *Scene) SetTranslate(h eyes.Handle, dx, dy int) {
	n := s.node(h)
	if n == nil || (n.tx == dx && n.ty == dy) {
		return
	}
	n.tx, n.ty = dx, dy
	s.dirty = true
}

// NewStyle 实现 eyes.Surface
func (s *Scene) NewStyle(st eyes.Style) eyes.StyleID {
	s.styles = append(s.styles, st)
	return eyes.StyleID(len(s.styles))
}

// SetStyle 实现 eyes.Surface
// 只修改样式数据，不标记重绘，需配合 ReportStyleChange
func (s *Scene) SetStyle(id eyes.StyleID, st eyes.Style) {
	if id == 0 || int(id) > len(s.styles) {
		return
	}
	s.styles[id-1] = st
}

// ReportStyleChange 实现 eyes.Surface
func (s *Scene) ReportStyleChange(id eyes.StyleID) {
	for i := range s.nodes {
		for _, sid := range s.nodes[i].styles {
			if sid == id {
				s.dirty = true
				return
			}
		}
	}
}

// Style 返回共享样式的当前值
func (s *Scene) Style(id eyes.StyleID) (eyes.Style, bool) {
	if id == 0 || int(id) > len(s.styles) {
		return eyes.Style{}, false
	}
	return s.styles[id-1], true
}

// AddStyle 实现 eyes.Surface
func (s *Scene) AddStyle(h eyes.Handle, id eyes.StyleID) {
	n := s.node(h)
	if n == nil {
		return
	}
	n.styles = append(n.styles, id)
	s.dirty = true
}

// SetRadius 实现 eyes.Surface
func (s *Scene) SetRadius(h eyes.Handle, r int) {
	if n := s.node(h); n != nil {
		n.local.hasRadius, n.local.radius = true, r
		s.dirty = true
	}
}

// SetShadowColor 实现 eyes.Surface
func (s *Scene) SetShadowColor(h eyes.Handle, c color.RGBA) {
	if n := s.node(h); n != nil {
		n.local.hasShadowColor, n.local.shadowColor = true, c
		s.dirty = true
	}
}

// SetShadowWidth 实现 eyes.Surface
func (s *Scene) SetShadowWidth(h eyes.Handle, w int) {
	n := s.node(h)
	if n == nil || (n.local.hasShadowWidth && n.local.shadowWidth == w) {
		return
	}
	n.local.hasShadowWidth, n.local.shadowWidth = true, w
	s.dirty = true
}

// SetShadowOpa 实现 eyes.Surface
func (s *Scene) SetShadowOpa(h eyes.Handle, opa uint8) {
	n := s.node(h)
	if n == nil || (n.local.hasShadowOpa && n.local.shadowOpa == opa) {
		return
	}
	n.local.hasShadowOpa, n.local.shadowOpa = true, opa
	s.dirty = true
}

// resolve 合并共享样式（按添加顺序）和本地样式
// 没有任何样式的对象是透明的
func (s *Scene) resolve(n *node) eyes.Style {
	var st eyes.Style
	for _, id := range n.styles {
		if shared, ok := s.Style(id); ok {
			st = shared
		}
	}
	if n.local.hasRadius {
		st.Radius = n.local.radius
	}
	if n.local.hasShadowColor {
		st.ShadowColor = n.local.shadowColor
	}
	if n.local.hasShadowWidth {
		st.ShadowWidth = n.local.shadowWidth
	}
	if n.local.hasShadowOpa {
		st.ShadowOpa = n.local.shadowOpa
	}
	return st
}

var _ eyes.Surface = (*Scene)(nil)
