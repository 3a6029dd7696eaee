package transition

import (
	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/types"
)

// SlideStrategy 滑动过渡
//
// 水平方向是降级链的永久基线：变换本身为空操作，页面定位完全
// 交给导航宿主的默认布局，因此它永远不会失败，也不允许被禁用。
// 垂直方向用于条漫阅读模式：抵消宿主的水平布局，再施加垂直平移。
type SlideStrategy struct {
	baseStrategy
	orientation types.SlideOrientation
}

// NewSlide 创建滑动过渡策略
func NewSlide(orientation types.SlideOrientation) *SlideStrategy {
	return &SlideStrategy{
		baseStrategy: baseStrategy{
			name: "Slide(" + orientation.String() + ")",
			cfg: Config{
				DurationMs:     250,
				Easing:         easing.TypeEaseOut,
				GPUAccelerated: false,
				CachingEnabled: false,
			},
			hwLayers: false,
			caching:  false,
		},
		orientation: orientation,
	}
}

// ApplyTransform 写入滑动变换
//
// 水平方向不写任何属性（宿主默认定位即是滑动效果）。
// 垂直方向把宿主的水平偏移折算成垂直偏移。
func (s *SlideStrategy) ApplyTransform(target render.Target, position float64) error {
	if s.orientation == types.SlideHorizontal {
		// 基线空操作：永不失败
		return nil
	}

	if position <= -1 || position >= 1 {
		render.Hide(target)
		return nil
	}

	w, h := target.Size()
	render.Reset(target)
	// 抵消宿主的水平布局，再施加等比例的垂直平移
	target.SetTranslation(-position*w, position*h)
	return nil
}

// OnTransitionStart 过渡开始钩子
func (s *SlideStrategy) OnTransitionStart(outgoing, incoming render.Target) {
	s.startTargets(outgoing, incoming)
}

// OnTransitionEnd 过渡结束钩子
func (s *SlideStrategy) OnTransitionEnd(outgoing, incoming render.Target) {
	s.endTargets(outgoing, incoming)
}
