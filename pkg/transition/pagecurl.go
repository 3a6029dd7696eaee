package transition

import (
	"math"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/render"
)

// 卷页过渡的公式常量
const (
	// curlMaxAngle 行程终点围绕垂直轴的掀起角度（度）
	curlMaxAngle = 60.0
	// curlDragFactor 页面跟随宿主布局的比例（其余部分留在原位掀起）
	curlDragFactor = 0.25
)

// PageCurlStrategy 卷页过渡
//
// 模拟纸页从外侧边缘掀起：锚点钉在书脊一侧的边缘，页面围绕
// 垂直轴掀起并轻微拖拽。透明度按 1 - position² 衰减，使页面在掀起
// 初期保持近乎不透明。
//
// 锚点在 position 正负两侧分别取左右边缘；由于 position = 0 时
// 旋转与平移均为零，锚点切换不产生视觉跳变，公式在全域数值稳定。
type PageCurlStrategy struct {
	baseStrategy
}

// NewPageCurl 创建卷页过渡策略
func NewPageCurl() *PageCurlStrategy {
	return &PageCurlStrategy{
		baseStrategy: baseStrategy{
			name: "PageCurl",
			cfg: Config{
				DurationMs:     450,
				Easing:         easing.TypeEaseOut,
				GPUAccelerated: true,
				CachingEnabled: true,
			},
			hwLayers: true,
			caching:  true,
		},
	}
}

// ApplyTransform 写入卷页变换
func (s *PageCurlStrategy) ApplyTransform(target render.Target, position float64) error {
	if position <= -1 || position >= 1 {
		render.Hide(target)
		return nil
	}

	w, h := target.Size()
	render.Reset(target)

	// 锚点钉在书脊一侧，对侧边缘被掀起：
	// 正向翻页钉左边（右缘掀起），反向翻页钉右边（左缘掀起）
	if position >= 0 {
		target.SetPivot(0, h/2)
	} else {
		target.SetPivot(w, h/2)
	}

	target.SetRotation(0, curlMaxAngle*position)
	// 页面只跟随宿主布局的一小部分，其余留在原位被"掀开"
	target.SetTranslation(-position*w*(1-curlDragFactor), 0)

	// 掀起的页面始终叠放在上层
	target.SetElevation(1 - math.Abs(position))
	// 平方衰减：掀起初期近乎不透明，贴近纸页的视觉直感
	target.SetOpacity(1 - position*position)
	return nil
}

// OnTransitionStart 过渡开始钩子
func (s *PageCurlStrategy) OnTransitionStart(outgoing, incoming render.Target) {
	s.startTargets(outgoing, incoming)
}

// OnTransitionEnd 过渡结束钩子
func (s *PageCurlStrategy) OnTransitionEnd(outgoing, incoming render.Target) {
	s.endTargets(outgoing, incoming)
}
