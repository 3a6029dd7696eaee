// Package render 定义过渡引擎操作的渲染目标抽象
//
// 引擎本身只做算术和属性写入，不负责实际像素绘制。
// 任何图形后端（ebiten、软件合成、离屏导出）只要实现 Target
// 接口即可接入过渡策略。
package render

// Target 是过渡策略写入视觉变换的渲染目标
//
// 一次过渡涉及两个相邻的目标（移出页和移入页），目标的创建与
// 销毁由渲染侧负责，引擎只读写其属性。
//
// 属性语义：
//   - Opacity: 不透明度，0 为完全透明，1 为完全不透明
//   - Scale: 水平/垂直缩放倍率，1 为原始尺寸
//   - Rotation: 围绕垂直轴(Y)与水平轴(X)的旋转角度（度）
//   - Translation: 相对于宿主默认布局位置的平移（像素）
//   - Pivot: 缩放与旋转的锚点（像素，相对目标左上角）
//   - Elevation: 叠放次序，数值大者绘制在上层
//   - HardwareLayer: 是否提升为硬件加速图层
type Target interface {
	// SetOpacity 设置不透明度（0.0 ~ 1.0）
	SetOpacity(alpha float64)
	// Opacity 返回当前不透明度
	Opacity() float64

	// SetScale 设置水平与垂直缩放
	SetScale(sx, sy float64)
	// Scale 返回当前缩放
	Scale() (sx, sy float64)

	// SetRotation 设置围绕水平轴(rx)与垂直轴(ry)的旋转角度（度）
	SetRotation(rx, ry float64)
	// Rotation 返回当前旋转角度
	Rotation() (rx, ry float64)

	// SetTranslation 设置相对默认位置的平移（像素）
	SetTranslation(tx, ty float64)
	// Translation 返回当前平移
	Translation() (tx, ty float64)

	// SetPivot 设置变换锚点（像素，相对目标左上角）
	SetPivot(px, py float64)
	// Pivot 返回当前锚点
	Pivot() (px, py float64)

	// SetElevation 设置叠放次序
	SetElevation(z float64)
	// Elevation 返回当前叠放次序
	Elevation() float64

	// SetHardwareLayer 切换硬件加速图层提升
	SetHardwareLayer(enabled bool)
	// HardwareLayer 返回硬件图层是否已提升
	HardwareLayer() bool

	// Size 返回目标的逻辑尺寸（像素）
	// 策略用它计算锚点和平移补偿
	Size() (width, height float64)
}

// Reset 将目标恢复到中性静止状态
// 完全不透明、无缩放、无旋转、无平移，锚点居中，叠放次序归零
func Reset(t Target) {
	w, h := t.Size()
	t.SetOpacity(1)
	t.SetScale(1, 1)
	t.SetRotation(0, 0)
	t.SetTranslation(0, 0)
	t.SetPivot(w/2, h/2)
	t.SetElevation(0)
}

// Hide 将目标置为完全不可见的中性状态
// 过渡边界（|position| >= 1）之外的页面必须处于此状态
func Hide(t Target) {
	Reset(t)
	t.SetOpacity(0)
}
