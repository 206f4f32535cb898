package display

import (
	"context"
	"fmt"
	"time"

	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/render"
	"github.com/decker502/eyes/pkg/shape"
)

// DefaultInterval 约 60 帧每秒
const DefaultInterval = 16 * time.Millisecond

// Loop 以固定间隔驱动动画，并把渲染结果送到输出端
type Loop struct {
	Scene    *shape.Scene
	Eyes     *eyes.Eyes
	Renderer *render.Renderer
	Sink     Sink

	// Interval 两次 Step 之间的间隔，0 表示 DefaultInterval
	Interval time.Duration
	// BeforeStep 每次 Step 前在同一 goroutine 中调用，用于处理输入
	// 返回 false 时 Run 正常结束
	BeforeStep func() bool
}

// Step 推进一帧：Update → Render → Present
func (l *Loop) Step() error {
	l.Eyes.Update()
	frame, err := l.Renderer.Render(l.Scene)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := l.Sink.Present(frame); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Run 循环执行 Step，直到 ctx 结束、BeforeStep 返回 false 或出错
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if l.BeforeStep != nil && !l.BeforeStep() {
			return nil
		}
		if err := l.Step(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
