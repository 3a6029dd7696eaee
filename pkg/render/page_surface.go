package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PageSurface 是基于 ebiten.Image 的页面渲染目标
//
// 过渡策略写入的属性在 Draw 时一次性合成为 GeoM 与 ColorScale。
// ebiten 没有真正的 3D 旋转，围绕垂直/水平轴的旋转用对应方向的
// 余弦压缩近似（经典 2D 卡片翻转效果）。
type PageSurface struct {
	image *ebiten.Image

	alpha        float64
	scaleX       float64
	scaleY       float64
	rotationX    float64
	rotationY    float64
	translationX float64
	translationY float64
	pivotX       float64
	pivotY       float64
	elevation    float64
	hwLayer      bool
}

// NewPageSurface 包装一张页面图片为渲染目标
// 初始状态为中性静止状态（完全不透明、锚点居中）
func NewPageSurface(img *ebiten.Image) *PageSurface {
	s := &PageSurface{image: img}
	Reset(s)
	return s
}

// Image 返回底层页面图片
func (s *PageSurface) Image() *ebiten.Image { return s.image }

// SetOpacity 设置不透明度
func (s *PageSurface) SetOpacity(alpha float64) { s.alpha = alpha }

// Opacity 返回当前不透明度
func (s *PageSurface) Opacity() float64 { return s.alpha }

// SetScale 设置缩放
func (s *PageSurface) SetScale(sx, sy float64) { s.scaleX, s.scaleY = sx, sy }

// Scale 返回当前缩放
func (s *PageSurface) Scale() (float64, float64) { return s.scaleX, s.scaleY }

// SetRotation 设置旋转角度（度）
func (s *PageSurface) SetRotation(rx, ry float64) { s.rotationX, s.rotationY = rx, ry }

// Rotation 返回当前旋转角度
func (s *PageSurface) Rotation() (float64, float64) { return s.rotationX, s.rotationY }

// SetTranslation 设置平移
func (s *PageSurface) SetTranslation(tx, ty float64) { s.translationX, s.translationY = tx, ty }

// Translation 返回当前平移
func (s *PageSurface) Translation() (float64, float64) { return s.translationX, s.translationY }

// SetPivot 设置锚点
func (s *PageSurface) SetPivot(px, py float64) { s.pivotX, s.pivotY = px, py }

// Pivot 返回当前锚点
func (s *PageSurface) Pivot() (float64, float64) { return s.pivotX, s.pivotY }

// SetElevation 设置叠放次序
func (s *PageSurface) SetElevation(z float64) { s.elevation = z }

// Elevation 返回当前叠放次序
func (s *PageSurface) Elevation() float64 { return s.elevation }

// SetHardwareLayer 切换硬件图层标志
// ebiten 的图片本身常驻 GPU，这里仅做状态记录
func (s *PageSurface) SetHardwareLayer(enabled bool) { s.hwLayer = enabled }

// HardwareLayer 返回硬件图层标志
func (s *PageSurface) HardwareLayer() bool { return s.hwLayer }

// Size 返回页面图片的逻辑尺寸
func (s *PageSurface) Size() (float64, float64) {
	if s.image == nil {
		return 0, 0
	}
	bounds := s.image.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

// Draw 将页面按当前属性绘制到屏幕
//
// baseX/baseY 是导航宿主给出的默认布局位置（页面左上角），
// 过渡引擎写入的平移在此基础上叠加。
func (s *PageSurface) Draw(screen *ebiten.Image, baseX, baseY float64) {
	if s.image == nil || s.alpha <= 0 {
		return
	}

	// 旋转的 2D 近似：绕垂直轴旋转压缩宽度，绕水平轴旋转压缩高度
	squashX := math.Abs(math.Cos(s.rotationY * math.Pi / 180))
	squashY := math.Abs(math.Cos(s.rotationX * math.Pi / 180))

	op := &ebiten.DrawImageOptions{}
	// 以锚点为中心缩放
	op.GeoM.Translate(-s.pivotX, -s.pivotY)
	op.GeoM.Scale(s.scaleX*squashX, s.scaleY*squashY)
	op.GeoM.Translate(s.pivotX, s.pivotY)
	// 移动到目标位置
	op.GeoM.Translate(baseX+s.translationX, baseY+s.translationY)

	op.ColorScale.ScaleAlpha(float32(s.alpha))

	screen.DrawImage(s.image, op)
}

// DrawOrdered 按叠放次序绘制两个页面
// Elevation 大者后绘制（显示在上层），PageCurl/Flip 依赖此次序
func DrawOrdered(screen *ebiten.Image, outgoing, incoming *PageSurface, outX, outY, inX, inY float64) {
	if outgoing.Elevation() > incoming.Elevation() {
		incoming.Draw(screen, inX, inY)
		outgoing.Draw(screen, outX, outY)
		return
	}
	outgoing.Draw(screen, outX, outY)
	incoming.Draw(screen, inX, inY)
}
