package display

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// OLED SSD1306 单色屏输出端
type OLED struct {
	mu   sync.Mutex
	bus  i2c.BusCloser
	dev  *ssd1306.Dev
	buf  *image.RGBA
	last image.Image
}

// OLEDOptions OLED 参数
type OLEDOptions struct {
	Bus    string // I2C 总线名，空字符串表示第一个可用总线
	Width  int
	Height int
	Rotate bool // 旋转 180 度
}

// OpenOLED 初始化主机驱动并打开 I2C 上的 SSD1306
func OpenOLED(opts OLEDOptions) (*OLED, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to init periph host: %w", err)
	}

	bus, err := i2creg.Open(opts.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", opts.Bus, err)
	}

	devOpts := ssd1306.DefaultOpts
	if opts.Width > 0 {
		devOpts.W = opts.Width
	}
	if opts.Height > 0 {
		devOpts.H = opts.Height
	}
	devOpts.Rotated = opts.Rotate

	dev, err := ssd1306.NewI2C(bus, &devOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to init ssd1306: %w", err)
	}

	log.Printf("[OLED] Opened %s (%dx%d)", dev, devOpts.W, devOpts.H)
	return &OLED{
		bus: bus,
		dev: dev,
		buf: image.NewRGBA(dev.Bounds()),
	}, nil
}

// Present 实现 Sink
// 同一帧重复提交时跳过 I2C 传输
func (o *OLED) Present(frame image.Image) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dev == nil {
		return fmt.Errorf("oled is closed")
	}
	if frame == o.last {
		return nil
	}

	fitInto(o.buf, frame, color.Black)
	if err := o.dev.Draw(o.dev.Bounds(), o.buf, image.Point{}); err != nil {
		return fmt.Errorf("failed to draw oled frame: %w", err)
	}
	o.last = frame
	return nil
}

// Close 实现 Sink，关闭屏幕并释放总线
func (o *OLED) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dev == nil {
		return nil
	}
	haltErr := o.dev.Halt()
	busErr := o.bus.Close()
	o.dev = nil
	if haltErr != nil {
		return fmt.Errorf("failed to halt oled: %w", haltErr)
	}
	if busErr != nil {
		return fmt.Errorf("failed to close i2c bus: %w", busErr)
	}
	return nil
}
