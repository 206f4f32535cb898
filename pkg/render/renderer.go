// Package render 使用 gg 软件光栅化器把 shape.Scene 画成位图
//
// 受限设备上没有 GPU，所有输出端（窗口、OLED、终端、PNG）都共用这一份 CPU 渲染结果。
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/shape"
)

// shadowLayers 光晕由多层逐渐外扩、逐渐变淡的圆角矩形叠加而成
const shadowLayers = 6

// Renderer 场景光栅化器
type Renderer struct {
	dc         *gg.Context
	background gg.RGBA
	frame      *image.RGBA
}

// NewRenderer 创建 w×h 的渲染器
func NewRenderer(w, h int, background color.Color) *Renderer {
	return &Renderer{
		dc:         gg.NewContext(w, h),
		background: gg.FromColor(background),
	}
}

// Close 释放 gg 上下文
func (r *Renderer) Close() error {
	return r.dc.Close()
}

// Frame 返回最近一次 Render 的结果，尚未渲染时为 nil
func (r *Renderer) Frame() *image.RGBA {
	return r.frame
}

// Render 绘制场景并清除脏标记
// 场景未变化且已有结果时直接返回上一帧
func (r *Renderer) Render(scene *shape.Scene) (*image.RGBA, error) {
	if r.frame != nil && !scene.Dirty() {
		return r.frame, nil
	}

	r.dc.ClearWithColor(r.background)
	for _, it := range scene.DrawList() {
		if err := r.drawItem(it); err != nil {
			return nil, fmt.Errorf("failed to draw object %d: %w", it.Handle, err)
		}
	}

	img, ok := r.dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type %T", r.dc.Image())
	}
	r.frame = img
	scene.ClearDirty()
	return img, nil
}

// EncodePNG 把当前画布编码为 PNG
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Renderer) drawItem(it shape.Item) error {
	st := it.Style
	x := float64(it.Area.X1)
	y := float64(it.Area.Y1)
	w := float64(it.Area.Width())
	h := float64(it.Area.Height())
	radius := clampRadius(st.Radius, it.Area.Width(), it.Area.Height())

	if st.ShadowWidth > 0 && st.ShadowOpa > 0 {
		if err := r.drawShadow(x, y, w, h, radius, st); err != nil {
			return err
		}
	}

	if st.BgOpa == 0 {
		return nil
	}
	r.dc.DrawRoundedRectangle(x, y, w, h, radius)
	if st.BgGradDir == eyes.GradVertical {
		top := withOpa(st.BgColor, st.BgOpa)
		bottom := withOpa(st.BgGradColor, st.BgOpa)
		r.dc.SetFillBrush(gg.NewLinearGradientBrush(x, y, x, y+h).
			AddColorStop(0, top).
			AddColorStop(1, bottom))
	} else {
		r.dc.SetFillBrush(gg.Solid(withOpa(st.BgColor, st.BgOpa)))
	}
	return r.dc.Fill()
}

// drawShadow 从外向内绘制逐层加深的圆角矩形，近似高斯光晕
// 最外层外扩 spread + width/2，总不透明度约为 ShadowOpa
func (r *Renderer) drawShadow(x, y, w, h, radius float64, st eyes.Style) error {
	extent := float64(st.ShadowSpread) + float64(st.ShadowWidth)/2
	layerOpa := float64(st.ShadowOpa) / 255 / shadowLayers
	c := gg.FromColor(st.ShadowColor)

	for i := shadowLayers; i >= 1; i-- {
		grow := extent * float64(i) / shadowLayers
		r.dc.DrawRoundedRectangle(x-grow, y-grow, w+2*grow, h+2*grow, radius+grow)
		r.dc.SetFillBrush(gg.Solid(gg.RGBA{R: c.R, G: c.G, B: c.B, A: layerOpa}))
		if err := r.dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// clampRadius 圆角半径不超过短边的一半
func clampRadius(r, w, h int) float64 {
	limit := w
	if h < limit {
		limit = h
	}
	limit /= 2
	if r > limit {
		r = limit
	}
	if r < 0 {
		r = 0
	}
	return float64(r)
}

func withOpa(c color.RGBA, opa uint8) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(opa) / 255,
	}
}
