package game

import (
	"log"
	"time"

	"github.com/decker502/pageturn/pkg/types"
)

// 滑动手势判定常量
const (
	// swipeVelocityThreshold 触发滑动事件的最小水平速度（像素/秒）
	swipeVelocityThreshold = 500.0
	// swipeSampleWindow 速度计算只回看这段时间内的指针轨迹
	swipeSampleWindow = 100 * time.Millisecond
	// swipeMaxSamples 轨迹样本上限（FIFO 淘汰）
	swipeMaxSamples = 32
)

// SwipeListener 滑动事件监听器
// 事件是给导航宿主的建议性输入，本身不触发任何变换
type SwipeListener func(direction types.SwipeDirection)

// pointerSample 一帧的指针轨迹点
type pointerSample struct {
	x, y float64
	at   time.Time
}

// SwipeDetector 滑动手势检测器
//
// 跟踪一段按下-移动-抬起的指针轨迹，在抬起时计算窗口内的
// 平均速度：水平速度超过阈值且明显大于垂直速度时判定为一次
// 水平滑动。鼠标与触摸输入共用同一套轨迹数据。
//
// 检测器只在输入线程上访问，不做内部加锁。
type SwipeDetector struct {
	listener  SwipeListener
	threshold float64
	tracking  bool
	samples   []pointerSample
}

// NewSwipeDetector 创建滑动手势检测器
// listener 为 nil 时检测器照常跟踪轨迹，只是不发出事件
func NewSwipeDetector(listener SwipeListener) *SwipeDetector {
	return &SwipeDetector{
		listener:  listener,
		threshold: swipeVelocityThreshold,
		samples:   make([]pointerSample, 0, swipeMaxSamples),
	}
}

// SetVelocityThreshold 覆盖默认的速度阈值（像素/秒）
func (d *SwipeDetector) SetVelocityThreshold(pxPerSecond float64) {
	d.threshold = pxPerSecond
}

// PointerDown 指针按下，开始跟踪一段新轨迹
func (d *SwipeDetector) PointerDown(x, y float64, at time.Time) {
	d.tracking = true
	d.samples = d.samples[:0]
	d.record(x, y, at)
}

// PointerMove 指针移动，追加轨迹点
func (d *SwipeDetector) PointerMove(x, y float64, at time.Time) {
	if !d.tracking {
		return
	}
	d.record(x, y, at)
}

// PointerUp 指针抬起，完成轨迹并判定是否构成滑动
// 返回判定出的方向（非滑动时为 SwipeNone）
func (d *SwipeDetector) PointerUp(x, y float64, at time.Time) types.SwipeDirection {
	if !d.tracking {
		return types.SwipeNone
	}
	d.record(x, y, at)
	d.tracking = false

	direction := d.classify(at)
	if direction != types.SwipeNone {
		log.Printf("[SwipeDetector] 检测到滑动: %s", direction)
		if d.listener != nil {
			d.listener(direction)
		}
	}
	return direction
}

// record 追加一个轨迹点，超出容量时 FIFO 淘汰
func (d *SwipeDetector) record(x, y float64, at time.Time) {
	if len(d.samples) >= swipeMaxSamples {
		d.samples = d.samples[1:]
	}
	d.samples = append(d.samples, pointerSample{x: x, y: y, at: at})
}

// classify 按窗口内的平均速度判定滑动方向
func (d *SwipeDetector) classify(now time.Time) types.SwipeDirection {
	// 找到窗口起点：只统计最近 swipeSampleWindow 内的轨迹
	start := 0
	for i, s := range d.samples {
		if now.Sub(s.at) <= swipeSampleWindow {
			start = i
			break
		}
	}

	first := d.samples[start]
	last := d.samples[len(d.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return types.SwipeNone
	}

	vx := (last.x - first.x) / dt
	vy := (last.y - first.y) / dt

	// 水平速度必须超过阈值并且压过垂直分量
	if abs(vx) < d.threshold || abs(vx) <= abs(vy) {
		return types.SwipeNone
	}
	if vx < 0 {
		return types.SwipeLeft
	}
	return types.SwipeRight
}

// abs 返回绝对值
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
