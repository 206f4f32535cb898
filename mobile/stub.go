//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// ebitenmobile 绑定代码只在 -tags mobile 时编译，
// 这里保留同名导出函数，使 ./... 在桌面端也能正常构建。
package mobile

// Dummy 桌面端的空实现
func Dummy() {}
