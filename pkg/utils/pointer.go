// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入，拖拽翻页在两类设备上走同一条路径
type PointerState struct {
	// 指针是否处于按下状态（按住拖动中）
	Pressed bool
	// 本帧是否刚刚按下
	JustPressed bool
	// 本帧是否刚刚抬起
	JustReleased bool
	// 指针位置
	X, Y int
	// 是否来自触摸屏
	IsTouch bool
}

// touchTracker 跨帧追踪单点触摸的生命周期
// ebiten 的触摸 API 按 ID 查询，抬起事件需要自己对比前后帧
type touchTracker struct {
	activeID ebiten.TouchID
	tracking bool
	lastX    int
	lastY    int
}

var defaultTracker touchTracker

// PollPointer 获取当前帧的指针状态
// 优先检测触摸（移动设备），其次鼠标左键（桌面设备）
func PollPointer() PointerState {
	if state, ok := defaultTracker.pollTouch(); ok {
		return state
	}
	return pollMouse()
}

func (t *touchTracker) pollTouch() (PointerState, bool) {
	justPressed := inpututil.AppendJustPressedTouchIDs(nil)
	if !t.tracking && len(justPressed) > 0 {
		t.activeID = justPressed[0]
		t.tracking = true
		x, y := ebiten.TouchPosition(t.activeID)
		t.lastX, t.lastY = x, y
		return PointerState{Pressed: true, JustPressed: true, X: x, Y: y, IsTouch: true}, true
	}

	if !t.tracking {
		return PointerState{}, false
	}

	if inpututil.IsTouchJustReleased(t.activeID) {
		t.tracking = false
		// 抬起帧位置不可查，沿用最后一次采样
		return PointerState{JustReleased: true, X: t.lastX, Y: t.lastY, IsTouch: true}, true
	}

	x, y := ebiten.TouchPosition(t.activeID)
	t.lastX, t.lastY = x, y
	return PointerState{Pressed: true, X: x, Y: y, IsTouch: true}, true
}

func pollMouse() PointerState {
	x, y := ebiten.CursorPosition()
	return PointerState{
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		X:            x,
		Y:            y,
	}
}
