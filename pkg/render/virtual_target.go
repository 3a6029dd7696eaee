package render

// VirtualTarget 是 Target 的纯内存实现
// 用于单元测试、属性校验工具和离屏帧导出，不依赖任何图形后端
type VirtualTarget struct {
	Width  float64
	Height float64

	AlphaValue   float64
	ScaleX       float64
	ScaleY       float64
	RotationX    float64
	RotationY    float64
	TranslationX float64
	TranslationY float64
	PivotX       float64
	PivotY       float64
	ElevationZ   float64
	HardwareFlag bool
}

// NewVirtualTarget 创建一个处于中性静止状态的虚拟目标
func NewVirtualTarget(width, height float64) *VirtualTarget {
	t := &VirtualTarget{Width: width, Height: height}
	Reset(t)
	return t
}

// SetOpacity 设置不透明度
func (t *VirtualTarget) SetOpacity(alpha float64) { t.AlphaValue = alpha }

// Opacity 返回当前不透明度
func (t *VirtualTarget) Opacity() float64 { return t.AlphaValue }

// SetScale 设置缩放
func (t *VirtualTarget) SetScale(sx, sy float64) { t.ScaleX, t.ScaleY = sx, sy }

// Scale 返回当前缩放
func (t *VirtualTarget) Scale() (float64, float64) { return t.ScaleX, t.ScaleY }

// SetRotation 设置旋转角度（度）
func (t *VirtualTarget) SetRotation(rx, ry float64) { t.RotationX, t.RotationY = rx, ry }

// Rotation 返回当前旋转角度
func (t *VirtualTarget) Rotation() (float64, float64) { return t.RotationX, t.RotationY }

// SetTranslation 设置平移
func (t *VirtualTarget) SetTranslation(tx, ty float64) { t.TranslationX, t.TranslationY = tx, ty }

// Translation 返回当前平移
func (t *VirtualTarget) Translation() (float64, float64) { return t.TranslationX, t.TranslationY }

// SetPivot 设置锚点
func (t *VirtualTarget) SetPivot(px, py float64) { t.PivotX, t.PivotY = px, py }

// Pivot 返回当前锚点
func (t *VirtualTarget) Pivot() (float64, float64) { return t.PivotX, t.PivotY }

// SetElevation 设置叠放次序
func (t *VirtualTarget) SetElevation(z float64) { t.ElevationZ = z }

// Elevation 返回当前叠放次序
func (t *VirtualTarget) Elevation() float64 { return t.ElevationZ }

// SetHardwareLayer 切换硬件图层标志
func (t *VirtualTarget) SetHardwareLayer(enabled bool) { t.HardwareFlag = enabled }

// HardwareLayer 返回硬件图层标志
func (t *VirtualTarget) HardwareLayer() bool { return t.HardwareFlag }

// Size 返回逻辑尺寸
func (t *VirtualTarget) Size() (float64, float64) { return t.Width, t.Height }
