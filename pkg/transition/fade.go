package transition

import (
	"math"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/render"
)

// FadeStrategy 淡入淡出过渡
//
// 页面停留在原位交叉淡化：alpha = 1 - |position|，几何属性保持
// 中性。这是降级链中最便宜的非空过渡。
type FadeStrategy struct {
	baseStrategy
}

// NewFade 创建淡入淡出过渡策略
func NewFade() *FadeStrategy {
	return &FadeStrategy{
		baseStrategy: baseStrategy{
			name: "Fade",
			cfg: Config{
				DurationMs:     300,
				Easing:         easing.TypeEaseInOut,
				GPUAccelerated: true,
				CachingEnabled: false,
			},
			hwLayers: true,
			caching:  false,
		},
	}
}

// ApplyTransform 写入淡化变换
// position = 0.5 时 alpha = 0.5，缩放与平移保持恒等
func (s *FadeStrategy) ApplyTransform(target render.Target, position float64) error {
	if position <= -1 || position >= 1 {
		render.Hide(target)
		return nil
	}

	render.Reset(target)
	target.SetOpacity(1 - math.Abs(position))
	return nil
}

// OnTransitionStart 过渡开始钩子
func (s *FadeStrategy) OnTransitionStart(outgoing, incoming render.Target) {
	s.startTargets(outgoing, incoming)
}

// OnTransitionEnd 过渡结束钩子
func (s *FadeStrategy) OnTransitionEnd(outgoing, incoming render.Target) {
	s.endTargets(outgoing, incoming)
}
