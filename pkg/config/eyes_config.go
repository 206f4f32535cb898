package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/eyes/pkg/embedded"
	"github.com/decker502/eyes/pkg/eyes"
)

// EmbeddedEyesConfigPath 嵌入的默认配置文件
const EmbeddedEyesConfigPath = "data/eyes.yaml"

// EyesConfig 眼睛配置
//
// 配置文件位置: data/eyes.yaml（已嵌入二进制），也可以用 -config 指定外部文件。
// Validate 只检查文件本身的一致性，几何尺寸的截断由 eyes 包在运行时处理。
type EyesConfig struct {
	// Geometry 眼睛尺寸和间距
	Geometry GeometryConfig `yaml:"geometry"`

	// Timing 眨眼与呼吸时间参数（毫秒）
	Timing TimingConfig `yaml:"timing"`

	// Glow 光晕基础强度
	Glow GlowConfig `yaml:"glow"`

	// Palette 预设配色名称（amber / ice / mint / rose）
	Palette string `yaml:"palette"`

	// Colors 自定义配色，设置后覆盖 Palette
	Colors *ColorsConfig `yaml:"colors,omitempty"`

	// Window 桌面窗口和渲染画布
	Window WindowConfig `yaml:"window"`

	// OLED SSD1306 参数
	OLED OLEDConfig `yaml:"oled"`
}

// GeometryConfig 几何参数
type GeometryConfig struct {
	Size    int `yaml:"size"`
	Spacing int `yaml:"spacing"`
}

// TimingConfig 时间参数
type TimingConfig struct {
	BlinkDurationMs    uint32 `yaml:"blinkDurationMs"`
	BreathePeriodMs    uint32 `yaml:"breathePeriodMs"`
	BlinkIntervalMinMs uint32 `yaml:"blinkIntervalMinMs"`
	BlinkIntervalMaxMs uint32 `yaml:"blinkIntervalMaxMs"`
}

// GlowConfig 光晕参数
type GlowConfig struct {
	// Base 基础强度 0-100，运行时微调叠加在其上
	Base int `yaml:"base"`
}

// ColorsConfig 自定义颜色（#RRGGBB）
type ColorsConfig struct {
	Inner string `yaml:"inner"`
	Glow  string `yaml:"glow"`
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
}

// OLEDConfig OLED 参数
type OLEDConfig struct {
	Bus    string `yaml:"bus"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Rotate bool   `yaml:"rotate"`
}

// DefaultEyesConfig 返回与固件常量一致的默认配置
func DefaultEyesConfig() *EyesConfig {
	opts := eyes.DefaultOptions()
	return &EyesConfig{
		Geometry: GeometryConfig{
			Size:    eyes.DefaultSize,
			Spacing: eyes.DefaultSpacing,
		},
		Timing: TimingConfig{
			BlinkDurationMs:    opts.BlinkDurationMs,
			BreathePeriodMs:    opts.BreathePeriodMs,
			BlinkIntervalMinMs: opts.BlinkIntervalMinMs,
			BlinkIntervalMaxMs: opts.BlinkIntervalMinMs + opts.BlinkIntervalSpanMs,
		},
		Glow:    GlowConfig{Base: opts.GlowBase},
		Palette: DefaultPaletteName,
		Window: WindowConfig{
			Width:      320,
			Height:     240,
			Title:      "Eyes",
			Background: "#000000",
		},
		OLED: OLEDConfig{
			Width:  128,
			Height: 64,
		},
	}
}

// LoadEyesConfig 从文件加载配置
//
// 文件中未出现的字段保留默认值。
func LoadEyesConfig(path string) (*EyesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read eyes config: %w", err)
	}
	return ParseEyesConfig(data)
}

// LoadEmbeddedEyesConfig 加载嵌入的 data/eyes.yaml
func LoadEmbeddedEyesConfig() (*EyesConfig, error) {
	data, err := embedded.ReadFile(EmbeddedEyesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded eyes config: %w", err)
	}
	return ParseEyesConfig(data)
}

// ResolveEyesConfig path 非空时加载外部文件，否则加载嵌入配置
func ResolveEyesConfig(path string) (*EyesConfig, error) {
	if path != "" {
		return LoadEyesConfig(path)
	}
	return LoadEmbeddedEyesConfig()
}

// ParseEyesConfig 解析 YAML 配置
func ParseEyesConfig(data []byte) (*EyesConfig, error) {
	config := DefaultEyesConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse eyes config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid eyes config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 眨眼时长、呼吸周期为正
//   - 眨眼间隔 min <= max
//   - 光晕基础强度在 0-100
//   - 配色名称存在，自定义颜色可以解析
//   - 窗口尺寸为正
func (c *EyesConfig) Validate() error {
	if c.Timing.BlinkDurationMs == 0 {
		return fmt.Errorf("blinkDurationMs must be positive")
	}
	if c.Timing.BreathePeriodMs == 0 {
		return fmt.Errorf("breathePeriodMs must be positive")
	}
	if c.Timing.BlinkIntervalMinMs > c.Timing.BlinkIntervalMaxMs {
		return fmt.Errorf("blink interval invalid: min(%d) > max(%d)",
			c.Timing.BlinkIntervalMinMs, c.Timing.BlinkIntervalMaxMs)
	}

	if c.Glow.Base < 0 || c.Glow.Base > 100 {
		return fmt.Errorf("glow base should be in [0, 100], got %d", c.Glow.Base)
	}

	if c.Colors != nil {
		if _, err := ParseHexColor(c.Colors.Inner); err != nil {
			return fmt.Errorf("colors.inner: %w", err)
		}
		if _, err := ParseHexColor(c.Colors.Glow); err != nil {
			return fmt.Errorf("colors.glow: %w", err)
		}
	} else if _, ok := LookupPalette(c.Palette); !ok {
		return fmt.Errorf("unknown palette '%s'", c.Palette)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size invalid: %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("window.background: %w", err)
	}

	return nil
}

// EyePalette 返回生效的配色：自定义颜色优先，否则使用预设
func (c *EyesConfig) EyePalette() eyes.Palette {
	if c.Colors != nil {
		inner, errInner := ParseHexColor(c.Colors.Inner)
		glow, errGlow := ParseHexColor(c.Colors.Glow)
		if errInner == nil && errGlow == nil {
			return eyes.Palette{Inner: inner, Glow: glow}
		}
	}
	if p, ok := LookupPalette(c.Palette); ok {
		return p
	}
	return eyes.DefaultPalette
}

// BackgroundColor 返回画布背景色，解析失败时为黑色
func (c *EyesConfig) BackgroundColor() color.RGBA {
	bg, err := ParseHexColor(c.Window.Background)
	if err != nil {
		return color.RGBA{A: 0xFF}
	}
	return bg
}

// Options 转换为 eyes.Options
func (c *EyesConfig) Options() eyes.Options {
	return eyes.Options{
		BlinkDurationMs:     c.Timing.BlinkDurationMs,
		BreathePeriodMs:     c.Timing.BreathePeriodMs,
		BlinkIntervalMinMs:  c.Timing.BlinkIntervalMinMs,
		BlinkIntervalSpanMs: c.Timing.BlinkIntervalMaxMs - c.Timing.BlinkIntervalMinMs,
		GlowBase:            c.Glow.Base,
		Palette:             c.EyePalette(),
	}
}
