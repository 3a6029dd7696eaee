package types

// SwipeDirection 定义滑动手势的方向
type SwipeDirection int

const (
	// SwipeNone 无有效滑动
	SwipeNone SwipeDirection = iota
	// SwipeLeft 向左滑动（前往下一页）
	SwipeLeft
	// SwipeRight 向右滑动（返回上一页）
	SwipeRight
)

// String 返回滑动方向的字符串表示
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "Left"
	case SwipeRight:
		return "Right"
	default:
		return "None"
	}
}

// ZoomMode 定义缩放过渡的模式
type ZoomMode int

const (
	// ZoomIn 页面离开时缩小（中心收缩）
	ZoomIn ZoomMode = iota
	// ZoomOut 页面离开时放大（向观察者膨胀）
	ZoomOut
)

// String 返回缩放模式的字符串表示
func (m ZoomMode) String() string {
	if m == ZoomOut {
		return "ZoomOut"
	}
	return "ZoomIn"
}

// FlipAxis 定义翻转过渡的旋转轴
type FlipAxis int

const (
	// FlipVerticalAxis 围绕垂直轴翻转（左右翻书效果）
	FlipVerticalAxis FlipAxis = iota
	// FlipHorizontalAxis 围绕水平轴翻转（上下翻日历效果）
	FlipHorizontalAxis
)

// String 返回旋转轴的字符串表示
func (a FlipAxis) String() string {
	if a == FlipHorizontalAxis {
		return "HorizontalAxis"
	}
	return "VerticalAxis"
}

// SlideOrientation 定义滑动过渡的方向性
type SlideOrientation int

const (
	// SlideHorizontal 水平滑动，策略本身为空操作，由导航宿主直接定位
	SlideHorizontal SlideOrientation = iota
	// SlideVertical 垂直滑动（条漫/长图阅读模式）
	SlideVertical
)

// String 返回滑动方向性的字符串表示
func (o SlideOrientation) String() string {
	if o == SlideVertical {
		return "Vertical"
	}
	return "Horizontal"
}
