//go:build mobile

package utils

// IsMobile gomobile 构建总是移动模式
func IsMobile() bool {
	return true
}
