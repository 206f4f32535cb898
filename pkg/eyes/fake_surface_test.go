package eyes

import (
	"fmt"
	"image/color"
)

// fakeNode 记录型假表面中的对象
type fakeNode struct {
	parent      Handle
	x, y, w, h  int
	tx, ty      int
	styles      []StyleID
	radius      int
	shadowColor color.RGBA
	shadowWidth int
	shadowOpa   uint8
}

// fakeSurface 记录所有调用的 Surface 实现
type fakeSurface struct {
	nodes    []fakeNode
	styles   []Style
	reported []StyleID
	calls    []string
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{nodes: []fakeNode{{w: w, h: h}}}
}

func (f *fakeSurface) node(h Handle) *fakeNode {
	return &f.nodes[h-1]
}

func (f *fakeSurface) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// resetCalls 清空调用记录并返回之前的记录
func (f *fakeSurface) resetCalls() []string {
	calls := f.calls
	f.calls = nil
	return calls
}

func (f *fakeSurface) Root() Handle { return 1 }

func (f *fakeSurface) Create(parent Handle) Handle {
	f.nodes = append(f.nodes, fakeNode{parent: parent})
	h := Handle(len(f.nodes))
	f.record("create %d parent=%d", h, parent)
	return h
}

func (f *fakeSurface) SetSize(h Handle, w, hgt int) {
	n := f.node(h)
	n.w, n.h = w, hgt
	f.record("size %d %dx%d", h, w, hgt)
}

func (f *fakeSurface) SetPos(h Handle, x, y int) {
	n := f.node(h)
	n.x, n.y = x, y
	f.record("pos %d %d,%d", h, x, y)
}

func (f *fakeSurface) Center(h Handle) {
	n := f.node(h)
	p := f.node(n.parent)
	n.x = (p.w - n.w) / 2
	n.y = (p.h - n.h) / 2
	f.record("center %d", h)
}

func (f *fakeSurface) Coords(h Handle) Area {
	x, y := 0, 0
	for cur := h; cur != 0; cur = f.node(cur).parent {
		n := f.node(cur)
		x += n.x + n.tx
		y += n.y + n.ty
	}
	n := f.node(h)
	return Area{X1: x, Y1: y, X2: x + n.w, Y2: y + n.h}
}

func (f *fakeSurface) SetTranslate(h Handle, dx, dy int) {
	n := f.node(h)
	n.tx, n.ty = dx, dy
	f.record("translate %d %d,%d", h, dx, dy)
}

func (f *fakeSurface) NewStyle(st Style) StyleID {
	f.styles = append(f.styles, st)
	return StyleID(len(f.styles))
}

func (f *fakeSurface) SetStyle(id StyleID, st Style) {
	f.styles[id-1] = st
	f.record("style %d", id)
}

func (f *fakeSurface) ReportStyleChange(id StyleID) {
	f.reported = append(f.reported, id)
	f.record("report %d", id)
}

func (f *fakeSurface) AddStyle(h Handle, id StyleID) {
	n := f.node(h)
	n.styles = append(n.styles, id)
}

func (f *fakeSurface) SetRadius(h Handle, r int) {
	f.node(h).radius = r
}

func (f *fakeSurface) SetShadowColor(h Handle, c color.RGBA) {
	f.node(h).shadowColor = c
}

func (f *fakeSurface) SetShadowWidth(h Handle, w int) {
	f.node(h).shadowWidth = w
	f.record("shadow-width %d %d", h, w)
}

func (f *fakeSurface) SetShadowOpa(h Handle, opa uint8) {
	f.node(h).shadowOpa = opa
	f.record("shadow-opa %d %d", h, opa)
}

// fixedRandom 总是返回固定值（对 max 取模）
type fixedRandom uint32

func (r fixedRandom) Bounded(max uint32) uint32 {
	if max == 0 {
		return 0
	}
	return uint32(r) % max
}

// newTestEyes 创建一对已初始化的眼睛：屏幕 320x240，中心 (160,120)，默认尺寸
func newTestEyes(startMs uint32) (*Eyes, *fakeSurface, *ManualClock) {
	surface := newFakeSurface(320, 240)
	clock := &ManualClock{Now: startMs}
	e := New(surface, clock, fixedRandom(500), DefaultOptions())
	e.CreateDefault(0, 160, 120)
	return e, surface, clock
}
