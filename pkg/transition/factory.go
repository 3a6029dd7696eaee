package transition

import (
	"log"

	"github.com/decker502/pageturn/pkg/types"
)

// New 根据过渡类型构造对应的策略实例
//
// 类型到策略的分发只发生在这里（策略构造时），每帧的热路径上
// 不做任何类型判断。Depth、Cube、Accordion 是声明的占位类型，
// 构造结果等同 Slide。
func New(t types.TransitionType) Strategy {
	switch t {
	case types.TransitionFade:
		return NewFade()
	case types.TransitionZoom:
		return NewZoom(types.ZoomIn)
	case types.TransitionFlip:
		return NewFlip(types.FlipVerticalAxis)
	case types.TransitionPageCurl:
		return NewPageCurl()
	case types.TransitionSlide:
		return NewSlide(types.SlideHorizontal)
	default:
		if t.IsPlaceholder() {
			log.Printf("[Transition] 占位类型 %s 回退为 Slide", t)
		} else {
			log.Printf("[Transition] 未知类型 %d 回退为 Slide", int(t))
		}
		return NewSlide(types.SlideHorizontal)
	}
}
