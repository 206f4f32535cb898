package display

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// PNGWriter 把每一帧写成 <Dir>/<Prefix>_0000.png 形式的文件
type PNGWriter struct {
	Dir    string
	Prefix string

	count int
}

// NewPNGWriter 创建输出目录
func NewPNGWriter(dir, prefix string) (*PNGWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}
	if prefix == "" {
		prefix = "frame"
	}
	return &PNGWriter{Dir: dir, Prefix: prefix}, nil
}

// Present 实现 Sink
func (w *PNGWriter) Present(frame image.Image) error {
	path := w.Path(w.count)
	if err := gg.FromImage(frame).SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	w.count++
	return nil
}

// Path 返回第 i 帧的文件路径
func (w *PNGWriter) Path(i int) string {
	return filepath.Join(w.Dir, fmt.Sprintf("%s_%04d.png", w.Prefix, i))
}

// Count 已写入的帧数
func (w *PNGWriter) Count() int {
	return w.count
}

// Close 实现 Sink
func (w *PNGWriter) Close() error {
	log.Printf("[PNG] Wrote %d frames to %s", w.count, w.Dir)
	return nil
}
