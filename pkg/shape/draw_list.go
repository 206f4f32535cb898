package shape

import "github.com/decker502/eyes/pkg/eyes"

// Item 一个已解析的绘制项
type Item struct {
	Handle eyes.Handle
	Area   eyes.Area
	Style  eyes.Style
}

// Visible 是否有任何可见内容
func (it Item) Visible() bool {
	if it.Area.Width() <= 0 || it.Area.Height() <= 0 {
		return false
	}
	return it.Style.BgOpa > 0 || (it.Style.ShadowOpa > 0 && it.Style.ShadowWidth > 0)
}

// DrawList 按绘制顺序（父对象先于子对象）返回所有可见对象
func (s *Scene) DrawList() []Item {
	items := make([]Item, 0, len(s.nodes))
	s.walk(s.Root(), func(h eyes.Handle, n *node) {
		it := Item{Handle: h, Area: s.Coords(h), Style: s.resolve(n)}
		if it.Visible() {
			items = append(items, it)
		}
	})
	return items
}

func (s *Scene) walk(h eyes.Handle, fn func(eyes.Handle, *node)) {
	n := s.node(h)
	if n == nil {
		return
	}
	fn(h, n)
	for _, c := range n.children {
		s.walk(c, fn)
	}
}
