// Package display 把渲染好的帧输出到具体设备
//
// 支持的输出端：
//   - OLED: I2C 接口的 SSD1306 单色屏（periph.io）
//   - Terminal: 终端半块字符（tcell）
//   - PNGWriter: 逐帧写入 PNG 文件
//
// 桌面窗口和移动端由 pkg/app 通过 ebiten 直接显示，不经过这里。
package display

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Sink 帧输出端
type Sink interface {
	// Present 显示一帧，帧尺寸与输出端不同时等比缩放并居中
	Present(frame image.Image) error
	// Close 释放设备
	Close() error
}

// fitRect 在 dst 内等比放置 w×h 的内容，返回居中的目标矩形
func fitRect(dst image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || dst.Empty() {
		return image.Rectangle{}
	}
	dw, dh := dst.Dx(), dst.Dy()
	sw, sh := dw, h*dw/w
	if sh > dh {
		sw, sh = w*dh/h, dh
	}
	x := dst.Min.X + (dw-sw)/2
	y := dst.Min.Y + (dh-sh)/2
	return image.Rect(x, y, x+sw, y+sh)
}

// fitInto 把 frame 缩放后合成到 dst 上，dst 先用 bg 填充
func fitInto(dst *image.RGBA, frame image.Image, bg color.Color) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	sb := frame.Bounds()
	r := fitRect(dst.Bounds(), sb.Dx(), sb.Dy())
	if r.Empty() {
		return
	}
	if r.Dx() == sb.Dx() && r.Dy() == sb.Dy() {
		xdraw.Draw(dst, r, frame, sb.Min, xdraw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, r, frame, sb, xdraw.Over, nil)
}
