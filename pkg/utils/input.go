// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchZone 屏幕横向三等分的触摸区域
type TouchZone int

const (
	// ZoneLeft 左侧三分之一：向左移动
	ZoneLeft TouchZone = iota
	// ZoneFire 中间三分之一：射击
	ZoneFire
	// ZoneRight 右侧三分之一：向右移动
	ZoneRight
)

// ZoneAt 返回横坐标 x 所在的触摸区域
// 超出屏幕的坐标归入最近的一侧
func ZoneAt(x, screenWidth int) TouchZone {
	if screenWidth <= 0 || x*3 < screenWidth {
		return ZoneLeft
	}
	if x*3 >= screenWidth*2 {
		return ZoneRight
	}
	return ZoneFire
}

// PointerState 当前帧的指针状态（触摸优先，其次鼠标）
type PointerState struct {
	// 是否有按下中的指针
	Pressed bool
	// 是否刚刚按下
	JustPressed bool
	// 指针位置（逻辑屏幕坐标）
	X, Y int
}

// GetPointerState 获取当前帧的指针状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetPointerState() PointerState {
	// 首先检查新的触摸
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{Pressed: true, JustPressed: true, X: x, Y: y}
	}

	// 持续按住的触摸
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{Pressed: true, X: x, Y: y}
	}

	// 其次检查鼠标输入（桌面模拟）
	x, y := ebiten.CursorPosition()
	return PointerState{
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
	}
}
