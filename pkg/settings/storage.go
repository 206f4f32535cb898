package settings

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/eyes/pkg/utils"
)

// OpenStorage 打开跨平台存储
// 失败时返回 nil，SettingsManager 随后进入降级模式
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[SettingsManager] Warning: %v (settings will not persist)", err)
		return nil
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: Failed to open storage: %v (settings will not persist)", err)
		return nil
	}
	if dir := utils.GetStoragePath(appName); dir != "" {
		log.Printf("[SettingsManager] Storage: %s", dir)
	}
	return manager
}
