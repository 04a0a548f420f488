package systems

import (
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 单帧的玩家输入
type Input struct {
	Left  bool // A 或 ←
	Right bool // D 或 →
	Fire  bool // 空格或鼠标左键（按下瞬间）
	Start bool // 回车（按下瞬间），游戏结束后开始新游戏
}

// InputReader 输入来源
type InputReader interface {
	Read() Input
}

// KeyboardInput 从 ebiten 读取键盘和鼠标输入
//
// 移动端（或设置了 INVADERS_MOBILE_EMULATE）额外启用触摸操作：
// 按住屏幕左/右三分之一移动，点击中间射击，游戏结束后点击任意位置重新开始。
type KeyboardInput struct {
	ScreenWidth int // 逻辑屏幕宽度，用于划分触摸区域
}

// Read 读取当前帧输入
func (k KeyboardInput) Read() Input {
	in := Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Start: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}

	if !utils.IsMobile() {
		in.Fire = in.Fire || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		return in
	}
	return mergePointer(in, utils.GetPointerState(), k.ScreenWidth)
}

// mergePointer 把指针状态按触摸区域合并到键盘输入
func mergePointer(in Input, p utils.PointerState, screenWidth int) Input {
	if !p.Pressed {
		return in
	}
	switch utils.ZoneAt(p.X, screenWidth) {
	case utils.ZoneLeft:
		in.Left = true
	case utils.ZoneRight:
		in.Right = true
	case utils.ZoneFire:
		in.Fire = in.Fire || p.JustPressed
	}
	in.Start = in.Start || p.JustPressed
	return in
}
