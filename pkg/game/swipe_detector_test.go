package game

import (
	"testing"
	"time"

	"github.com/decker502/pageturn/pkg/types"
)

// trace 构造一段等间隔的指针轨迹并返回判定结果
func trace(d *SwipeDetector, dx, dy float64, duration time.Duration) types.SwipeDirection {
	start := time.Now()
	steps := 5
	d.PointerDown(0, 0, start)
	for i := 1; i < steps; i++ {
		frac := float64(i) / float64(steps)
		at := start.Add(time.Duration(frac * float64(duration)))
		d.PointerMove(dx*frac, dy*frac, at)
	}
	return d.PointerUp(dx, dy, start.Add(duration))
}

// TestSwipeLeft 快速向左拖动判定为左滑
func TestSwipeLeft(t *testing.T) {
	var got types.SwipeDirection
	d := NewSwipeDetector(func(dir types.SwipeDirection) { got = dir })

	// 60ms 内移动 -200px：约 3300px/s，远超阈值
	result := trace(d, -200, 0, 60*time.Millisecond)

	if result != types.SwipeLeft {
		t.Errorf("判定 = %v, 期望 SwipeLeft", result)
	}
	if got != types.SwipeLeft {
		t.Errorf("监听器收到 %v, 期望 SwipeLeft", got)
	}
}

// TestSwipeRight 快速向右拖动判定为右滑
func TestSwipeRight(t *testing.T) {
	d := NewSwipeDetector(nil)
	if got := trace(d, 250, 10, 60*time.Millisecond); got != types.SwipeRight {
		t.Errorf("判定 = %v, 期望 SwipeRight", got)
	}
}

// TestSlowDragIsNotSwipe 缓慢拖动不构成滑动
func TestSlowDragIsNotSwipe(t *testing.T) {
	d := NewSwipeDetector(nil)
	// 200ms 移动 40px：约 200px/s，低于阈值
	if got := trace(d, -40, 0, 200*time.Millisecond); got != types.SwipeNone {
		t.Errorf("判定 = %v, 期望 SwipeNone", got)
	}
}

// TestVerticalDominantIsNotSwipe 垂直分量占优时不判定为水平滑动
func TestVerticalDominantIsNotSwipe(t *testing.T) {
	d := NewSwipeDetector(nil)
	if got := trace(d, -150, 400, 60*time.Millisecond); got != types.SwipeNone {
		t.Errorf("判定 = %v, 期望 SwipeNone（垂直占优）", got)
	}
}

// TestPointerUpWithoutDown 没有按下时抬起不产生事件
func TestPointerUpWithoutDown(t *testing.T) {
	d := NewSwipeDetector(nil)
	if got := d.PointerUp(100, 0, time.Now()); got != types.SwipeNone {
		t.Errorf("判定 = %v, 期望 SwipeNone", got)
	}
}

// TestCustomThreshold 自定义速度阈值
func TestCustomThreshold(t *testing.T) {
	d := NewSwipeDetector(nil)
	d.SetVelocityThreshold(50)

	// 80ms 移动 -20px：约 250px/s，低于默认阈值但超过自定义阈值
	if got := trace(d, -20, 0, 80*time.Millisecond); got != types.SwipeLeft {
		t.Errorf("判定 = %v, 期望 SwipeLeft（阈值 50px/s）", got)
	}
}
