// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// TransitionType 定义翻页过渡动画的类型
// 序号值会被持久化到设置存档，新类型只能追加在末尾
type TransitionType int

const (
	// TransitionSlide 滑动翻页（水平方向为默认行为，由导航宿主直接定位）
	TransitionSlide TransitionType = iota
	// TransitionFade 淡入淡出
	TransitionFade
	// TransitionZoom 缩放翻页
	TransitionZoom
	// TransitionFlip 翻转翻页（围绕垂直或水平轴旋转）
	TransitionFlip
	// TransitionPageCurl 卷页翻页
	TransitionPageCurl
	// TransitionDepth 景深翻页（占位类型，实际效果等同 Slide）
	TransitionDepth
	// TransitionCube 立方体翻页（占位类型，实际效果等同 Slide）
	TransitionCube
	// TransitionAccordion 手风琴翻页（占位类型，实际效果等同 Slide）
	TransitionAccordion
)

// String 返回过渡类型的字符串表示
func (t TransitionType) String() string {
	switch t {
	case TransitionSlide:
		return "Slide"
	case TransitionFade:
		return "Fade"
	case TransitionZoom:
		return "Zoom"
	case TransitionFlip:
		return "Flip"
	case TransitionPageCurl:
		return "PageCurl"
	case TransitionDepth:
		return "Depth"
	case TransitionCube:
		return "Cube"
	case TransitionAccordion:
		return "Accordion"
	default:
		return "Unknown"
	}
}

// IsValid 检查序号是否对应一个已定义的过渡类型
// 用于校验从设置存档读取的原始 int 值
func (t TransitionType) IsValid() bool {
	return t >= TransitionSlide && t <= TransitionAccordion
}

// IsPlaceholder 返回该类型是否为占位类型
// Depth、Cube、Accordion 已在枚举中声明，但工厂会构造 Slide 策略
func (t TransitionType) IsPlaceholder() bool {
	return t == TransitionDepth || t == TransitionCube || t == TransitionAccordion
}

// Degraded 返回性能降级链中的下一级类型
//
// 降级链固定为 {Flip, PageCurl, Zoom} → Fade → Slide → 禁用。
// 占位类型等同 Slide，已处于链底。
//
// 返回：
//   - TransitionType: 降级后的类型
//   - bool: false 表示已到达链底（调用方应整体禁用过渡）
func (t TransitionType) Degraded() (TransitionType, bool) {
	switch t {
	case TransitionFlip, TransitionPageCurl, TransitionZoom:
		return TransitionFade, true
	case TransitionFade:
		return TransitionSlide, true
	default:
		// Slide 与占位类型没有更低一级
		return t, false
	}
}
