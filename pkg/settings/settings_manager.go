// Package settings 保存用户在运行时调整过的偏好（配色、光晕微调、全屏）
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/eyes/pkg/config"
	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/utils"
)

// Settings 用户偏好
type Settings struct {
	Palette    string `yaml:"palette"`    // 预设配色名称，空表示沿用配置文件
	GlowTrim   int    `yaml:"glowTrim"`   // 光晕微调 -60 ~ 40
	Fullscreen bool   `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
// 配色留空，首次启动时使用配置文件中的 palette
func DefaultSettings() *Settings {
	return &Settings{}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *Settings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "eyes"
)

// NewSettingsManager 创建设置管理器并加载已保存的设置
//
// gdataManager 为 nil 时进入降级模式，设置只保存在内存中。
// 加载失败不是致命错误，使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 无法识别的配色名称和越界的微调值会被修正，而不是报错。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	sm.SetPalette(loaded.Palette)
	sm.SetGlowTrim(loaded.GlowTrim)
	log.Printf("[SettingsManager] Settings loaded: palette=%s glowTrim=%d", loaded.Palette, loaded.GlowTrim)
	return nil
}

// Save 保存设置到 gdata，降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetPalette 设置配色，未知名称视为未设置（沿用配置文件）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPalette(name string) {
	if _, ok := config.LookupPalette(name); !ok {
		name = ""
	}
	sm.settings.Palette = name
}

// PaletteOr 返回保存的配色，未设置时返回 fallback
func (sm *SettingsManager) PaletteOr(fallback string) string {
	if sm.settings.Palette == "" {
		return fallback
	}
	return sm.settings.Palette
}

// SetGlowTrim 设置光晕微调，限制在 eyes.GlowTrimMin ~ eyes.GlowTrimMax
func (sm *SettingsManager) SetGlowTrim(trim int) {
	sm.settings.GlowTrim = utils.ClampInt(trim, eyes.GlowTrimMin, eyes.GlowTrimMax)
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
