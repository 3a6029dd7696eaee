package transition

import (
	"math"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/types"
)

// flipMaxAngle 行程终点的翻转角度（度）
const flipMaxAngle = 90.0

// FlipStrategy 翻转过渡
//
// 页面围绕垂直轴（翻书）或水平轴（翻日历）旋转离开。
// 旋转角度 = 90° × position，同时施加水平平移补偿抵消宿主的
// 默认布局，使页面在原位转动。透明度随 |position| 线性衰减，
// 保证跨越 position = 0 时无跳变。
type FlipStrategy struct {
	baseStrategy
	axis types.FlipAxis
}

// NewFlip 创建翻转过渡策略
func NewFlip(axis types.FlipAxis) *FlipStrategy {
	return &FlipStrategy{
		baseStrategy: baseStrategy{
			name: "Flip(" + axis.String() + ")",
			cfg: Config{
				DurationMs:     400,
				Easing:         easing.TypeEaseInOut,
				GPUAccelerated: true,
				CachingEnabled: true,
			},
			hwLayers: true,
			caching:  true,
		},
		axis: axis,
	}
}

// ApplyTransform 写入翻转变换
func (s *FlipStrategy) ApplyTransform(target render.Target, position float64) error {
	if position <= -1 || position >= 1 {
		render.Hide(target)
		return nil
	}

	w, h := target.Size()
	render.Reset(target)
	target.SetPivot(w/2, h/2)

	angle := flipMaxAngle * position
	if s.axis == types.FlipHorizontalAxis {
		target.SetRotation(angle, 0)
	} else {
		target.SetRotation(0, angle)
	}

	// 水平平移补偿：抵消宿主布局，让页面留在原位转动
	target.SetTranslation(-position*w, 0)

	// 越居中的页面叠放越靠上
	target.SetElevation(1 - math.Abs(position))
	target.SetOpacity(1 - math.Abs(position))
	return nil
}

// OnTransitionStart 过渡开始钩子
func (s *FlipStrategy) OnTransitionStart(outgoing, incoming render.Target) {
	s.startTargets(outgoing, incoming)
}

// OnTransitionEnd 过渡结束钩子
func (s *FlipStrategy) OnTransitionEnd(outgoing, incoming render.Target) {
	s.endTargets(outgoing, incoming)
}
