//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时始终返回 true，触摸操作始终启用
func IsMobile() bool {
	return true
}
