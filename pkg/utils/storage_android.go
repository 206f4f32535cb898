//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// androidDataRoot 应用私有数据目录的根
const androidDataRoot = "/data/data"

// EnsureStorageDir 在打开 gdata 之前创建并检查设置目录
// gdata 在 Android 上不会自己创建 /data/data/{package}/{appName}
func EnsureStorageDir(appName string) error {
	dir := GetStoragePath(appName)
	if dir == "" {
		return fmt.Errorf("cannot resolve android package name")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings dir %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("settings dir %s not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回设置目录，无法识别包名时返回空字符串
func GetStoragePath(appName string) string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg, appName)
}

// androidPackage 从 /proc/self/cmdline 读取包名
func androidPackage() (string, error) {
	raw, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(strings.ReplaceAll(string(raw), "\x00", ""))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
