package transition

import (
	"math"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/types"
)

// 缩放过渡的公式常量
const (
	// zoomScaleFactor 每单位位置的缩放衰减量
	zoomScaleFactor = 0.25
	// zoomAlphaFactor 每单位位置的透明度衰减量
	zoomAlphaFactor = 0.5
	// minZoomScale 缩放下限
	minZoomScale = 0.75
	// minZoomAlpha 边界内的透明度下限
	minZoomAlpha = 0.5
)

// ZoomStrategy 缩放过渡
//
// 页面离开时围绕中心缩放并淡化。ZoomIn 模式收缩（页面远去），
// ZoomOut 模式膨胀（页面向观察者飞来）。
//
// 边界外（|position| >= 1）透明度为 0，但保留行程终点的缩放值，
// 作为"远离屏幕"的景深残留（避免页面重新进入时缩放跳变）。
type ZoomStrategy struct {
	baseStrategy
	mode types.ZoomMode
}

// NewZoom 创建缩放过渡策略
func NewZoom(mode types.ZoomMode) *ZoomStrategy {
	return &ZoomStrategy{
		baseStrategy: baseStrategy{
			name: "Zoom(" + mode.String() + ")",
			cfg: Config{
				DurationMs:     350,
				Easing:         easing.TypeEaseInOut,
				GPUAccelerated: true,
				CachingEnabled: false,
			},
			hwLayers: true,
			caching:  false,
		},
		mode: mode,
	}
}

// scaleFor 计算给定行程进度（0 ~ 1）下的缩放值
func (s *ZoomStrategy) scaleFor(progress float64) float64 {
	if s.mode == types.ZoomOut {
		return 1 + progress*zoomScaleFactor
	}
	return math.Max(minZoomScale, 1-progress*zoomScaleFactor)
}

// ApplyTransform 写入缩放变换
//
// position = 0 时恒等；|position| 增大时缩放与透明度线性衰减：
//
//	scale = max(minScale, 1 - |position|·0.25)
//	alpha = max(minAlpha, 1 - |position|·0.5)
func (s *ZoomStrategy) ApplyTransform(target render.Target, position float64) error {
	progress := math.Min(math.Abs(position), 1)

	w, h := target.Size()
	render.Reset(target)
	target.SetPivot(w/2, h/2)

	scale := s.scaleFor(progress)
	target.SetScale(scale, scale)

	if position <= -1 || position >= 1 {
		// 边界外完全透明，缩放保留为景深残留
		target.SetOpacity(0)
		return nil
	}

	target.SetOpacity(math.Max(minZoomAlpha, 1-progress*zoomAlphaFactor))
	return nil
}

// OnTransitionStart 过渡开始钩子
func (s *ZoomStrategy) OnTransitionStart(outgoing, incoming render.Target) {
	s.startTargets(outgoing, incoming)
}

// OnTransitionEnd 过渡结束钩子
func (s *ZoomStrategy) OnTransitionEnd(outgoing, incoming render.Target) {
	s.endTargets(outgoing, incoming)
}
