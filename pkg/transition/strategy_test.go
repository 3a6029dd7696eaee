package transition

import (
	"math"
	"testing"

	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/types"
)

const (
	testPageW = 800.0
	testPageH = 1200.0
)

// allStrategies 返回全部策略变体
// 水平 Slide 是空操作基线，单独标记以便跳过只对"会写属性的
// 策略"有意义的检查
func allStrategies() []struct {
	name string
	s    Strategy
	noop bool
} {
	return []struct {
		name string
		s    Strategy
		noop bool
	}{
		{"Slide(Horizontal)", NewSlide(types.SlideHorizontal), true},
		{"Slide(Vertical)", NewSlide(types.SlideVertical), false},
		{"Fade", NewFade(), false},
		{"Zoom(ZoomIn)", NewZoom(types.ZoomIn), false},
		{"Zoom(ZoomOut)", NewZoom(types.ZoomOut), false},
		{"Flip(VerticalAxis)", NewFlip(types.FlipVerticalAxis), false},
		{"Flip(HorizontalAxis)", NewFlip(types.FlipHorizontalAxis), false},
		{"PageCurl", NewPageCurl(), false},
	}
}

// TestBoundaryProperty 边界性质：|position| >= 1 时透明度必须为 0
// 水平 Slide 把隐藏交给宿主的默认定位，不参与此检查
func TestBoundaryProperty(t *testing.T) {
	positions := []float64{-2.0, -1.5, -1.0, 1.0, 1.5, 2.0}

	for _, entry := range allStrategies() {
		if entry.noop {
			continue
		}
		t.Run(entry.name, func(t *testing.T) {
			for _, pos := range positions {
				target := render.NewVirtualTarget(testPageW, testPageH)
				if err := entry.s.ApplyTransform(target, pos); err != nil {
					t.Fatalf("ApplyTransform(%v) 报错: %v", pos, err)
				}
				if target.Opacity() != 0 {
					t.Errorf("position=%v 时透明度 = %v, 期望恰好为 0", pos, target.Opacity())
				}
			}
		})
	}
}

// TestCenteringProperty 居中性质：position == 0 时完全不透明且几何恒等
func TestCenteringProperty(t *testing.T) {
	for _, entry := range allStrategies() {
		t.Run(entry.name, func(t *testing.T) {
			target := render.NewVirtualTarget(testPageW, testPageH)
			if err := entry.s.ApplyTransform(target, 0); err != nil {
				t.Fatalf("ApplyTransform(0) 报错: %v", err)
			}

			if target.Opacity() != 1 {
				t.Errorf("透明度 = %v, 期望 1", target.Opacity())
			}
			sx, sy := target.Scale()
			if sx != 1 || sy != 1 {
				t.Errorf("缩放 = (%v, %v), 期望 (1, 1)", sx, sy)
			}
			rx, ry := target.Rotation()
			if rx != 0 || ry != 0 {
				t.Errorf("旋转 = (%v, %v), 期望 (0, 0)", rx, ry)
			}
			tx, ty := target.Translation()
			if tx != 0 || ty != 0 {
				t.Errorf("平移 = (%v, %v), 期望 (0, 0)", tx, ty)
			}
		})
	}
}

// TestContinuityProperty 连续性性质：跨越 position = 0 时无跳变
func TestContinuityProperty(t *testing.T) {
	const epsilon = 0.001
	const maxJump = 0.5 // 属性值在 ±ε 间允许的最大差异

	for _, entry := range allStrategies() {
		t.Run(entry.name, func(t *testing.T) {
			left := render.NewVirtualTarget(testPageW, testPageH)
			right := render.NewVirtualTarget(testPageW, testPageH)

			if err := entry.s.ApplyTransform(left, -epsilon); err != nil {
				t.Fatalf("ApplyTransform(-ε) 报错: %v", err)
			}
			if err := entry.s.ApplyTransform(right, epsilon); err != nil {
				t.Fatalf("ApplyTransform(+ε) 报错: %v", err)
			}

			if d := math.Abs(left.Opacity() - right.Opacity()); d > maxJump {
				t.Errorf("透明度跳变 %v", d)
			}
			lsx, _ := left.Scale()
			rsx, _ := right.Scale()
			if d := math.Abs(lsx - rsx); d > maxJump {
				t.Errorf("缩放跳变 %v", d)
			}
			_, lry := left.Rotation()
			_, rry := right.Rotation()
			if d := math.Abs(lry - rry); d > maxJump {
				t.Errorf("旋转跳变 %v", d)
			}
		})
	}
}

// TestFadeScenario 淡化场景：position = 0.5 ⇒ alpha = 0.5，几何恒等
func TestFadeScenario(t *testing.T) {
	s := NewFade()
	target := render.NewVirtualTarget(testPageW, testPageH)

	if err := s.ApplyTransform(target, 0.5); err != nil {
		t.Fatalf("ApplyTransform 报错: %v", err)
	}

	if math.Abs(target.Opacity()-0.5) > 0.001 {
		t.Errorf("alpha = %v, 期望 0.5", target.Opacity())
	}
	sx, sy := target.Scale()
	if sx != 1 || sy != 1 {
		t.Errorf("缩放 = (%v, %v), 期望 (1, 1)", sx, sy)
	}
	tx, _ := target.Translation()
	if tx != 0 {
		t.Errorf("translationX = %v, 期望 0", tx)
	}
}

// TestZoomScenario 缩放场景
func TestZoomScenario(t *testing.T) {
	s := NewZoom(types.ZoomIn)

	t.Run("行程中点", func(t *testing.T) {
		target := render.NewVirtualTarget(testPageW, testPageH)
		if err := s.ApplyTransform(target, 0.5); err != nil {
			t.Fatalf("ApplyTransform 报错: %v", err)
		}
		sx, _ := target.Scale()
		if math.Abs(sx-0.875) > 0.001 {
			t.Errorf("scale = %v, 期望 0.875", sx) // 1 - 0.5*0.25
		}
		if math.Abs(target.Opacity()-0.75) > 0.001 {
			t.Errorf("alpha = %v, 期望 0.75", target.Opacity()) // 1 - 0.5*0.5
		}
	})

	t.Run("行程终点", func(t *testing.T) {
		// position = 1.0：缩放停在公式终值 0.75（景深残留），
		// 透明度按边界性质归零
		target := render.NewVirtualTarget(testPageW, testPageH)
		if err := s.ApplyTransform(target, 1.0); err != nil {
			t.Fatalf("ApplyTransform 报错: %v", err)
		}
		sx, _ := target.Scale()
		if math.Abs(sx-0.75) > 0.001 {
			t.Errorf("scale = %v, 期望 0.75", sx) // max(0.75, 1 - 1*0.25)
		}
		if target.Opacity() != 0 {
			t.Errorf("alpha = %v, 期望 0", target.Opacity())
		}
	})

	t.Run("缩放下限", func(t *testing.T) {
		target := render.NewVirtualTarget(testPageW, testPageH)
		if err := s.ApplyTransform(target, 3.0); err != nil {
			t.Fatalf("ApplyTransform 报错: %v", err)
		}
		sx, _ := target.Scale()
		if sx < minZoomScale {
			t.Errorf("scale = %v 低于下限 %v", sx, minZoomScale)
		}
	})
}

// TestSlideHorizontalIsNoop 水平滑动必须是严格的空操作
func TestSlideHorizontalIsNoop(t *testing.T) {
	s := NewSlide(types.SlideHorizontal)

	for _, pos := range []float64{-2, -1, -0.5, 0, 0.5, 1, 2} {
		target := render.NewVirtualTarget(testPageW, testPageH)
		before := *target
		if err := s.ApplyTransform(target, pos); err != nil {
			t.Fatalf("空操作基线不允许失败，position=%v: %v", pos, err)
		}
		if *target != before {
			t.Errorf("position=%v 时目标被修改: %+v", pos, target)
		}
	}
}

// TestSlideVertical 垂直滑动把宿主的水平布局折算为垂直平移
func TestSlideVertical(t *testing.T) {
	s := NewSlide(types.SlideVertical)
	target := render.NewVirtualTarget(testPageW, testPageH)

	if err := s.ApplyTransform(target, 0.5); err != nil {
		t.Fatalf("ApplyTransform 报错: %v", err)
	}

	tx, ty := target.Translation()
	if math.Abs(tx-(-0.5*testPageW)) > 0.001 {
		t.Errorf("translationX = %v, 期望 %v（抵消宿主布局）", tx, -0.5*testPageW)
	}
	if math.Abs(ty-0.5*testPageH) > 0.001 {
		t.Errorf("translationY = %v, 期望 %v", ty, 0.5*testPageH)
	}
}

// TestFlipTransform 翻转变换：角度与平移补偿
func TestFlipTransform(t *testing.T) {
	s := NewFlip(types.FlipVerticalAxis)
	target := render.NewVirtualTarget(testPageW, testPageH)

	if err := s.ApplyTransform(target, 0.5); err != nil {
		t.Fatalf("ApplyTransform 报错: %v", err)
	}

	_, ry := target.Rotation()
	if math.Abs(ry-45) > 0.001 {
		t.Errorf("rotationY = %v, 期望 45（90° × 0.5）", ry)
	}
	tx, _ := target.Translation()
	if math.Abs(tx-(-0.5*testPageW)) > 0.001 {
		t.Errorf("translationX = %v, 期望 %v", tx, -0.5*testPageW)
	}

	// 水平轴变体写 rotationX
	sh := NewFlip(types.FlipHorizontalAxis)
	target2 := render.NewVirtualTarget(testPageW, testPageH)
	if err := sh.ApplyTransform(target2, -0.5); err != nil {
		t.Fatalf("ApplyTransform 报错: %v", err)
	}
	rx, ry2 := target2.Rotation()
	if math.Abs(rx-(-45)) > 0.001 || ry2 != 0 {
		t.Errorf("旋转 = (%v, %v), 期望 (-45, 0)", rx, ry2)
	}
}

// TestPageCurlPivot 卷页的锚点钉在被掀起的一侧边缘
func TestPageCurlPivot(t *testing.T) {
	s := NewPageCurl()

	forward := render.NewVirtualTarget(testPageW, testPageH)
	if err := s.ApplyTransform(forward, 0.3); err != nil {
		t.Fatalf("ApplyTransform 报错: %v", err)
	}
	px, _ := forward.Pivot()
	if px != 0 {
		t.Errorf("正向翻页 pivotX = %v, 期望 0", px)
	}

	backward := render.NewVirtualTarget(testPageW, testPageH)
	if err := s.ApplyTransform(backward, -0.3); err != nil {
		t.Fatalf("ApplyTransform 报错: %v", err)
	}
	px, _ = backward.Pivot()
	if px != testPageW {
		t.Errorf("反向翻页 pivotX = %v, 期望 %v", px, testPageW)
	}

	// 掀起的页面必须叠放在上层
	if forward.Elevation() <= 0 {
		t.Errorf("elevation = %v, 期望 > 0", forward.Elevation())
	}
}

// TestLifecycleHooks 生命周期钩子：硬件图层按 GPU 配置切换
func TestLifecycleHooks(t *testing.T) {
	for _, entry := range allStrategies() {
		t.Run(entry.name, func(t *testing.T) {
			outgoing := render.NewVirtualTarget(testPageW, testPageH)
			incoming := render.NewVirtualTarget(testPageW, testPageH)

			// 弄脏两个目标，验证钩子会重置
			outgoing.SetOpacity(0.3)
			incoming.SetScale(2, 2)

			entry.s.OnTransitionStart(outgoing, incoming)

			if outgoing.Opacity() != 1 {
				t.Errorf("开始钩子后 outgoing 透明度 = %v, 期望 1", outgoing.Opacity())
			}
			sx, sy := incoming.Scale()
			if sx != 1 || sy != 1 {
				t.Errorf("开始钩子后 incoming 缩放 = (%v, %v), 期望 (1, 1)", sx, sy)
			}

			wantLayer := entry.s.Config().GPUAccelerated && entry.s.SupportsHardwareLayers()
			if outgoing.HardwareLayer() != wantLayer {
				t.Errorf("开始钩子后硬件图层 = %v, 期望 %v", outgoing.HardwareLayer(), wantLayer)
			}

			entry.s.OnTransitionEnd(outgoing, incoming)

			if outgoing.HardwareLayer() || incoming.HardwareLayer() {
				t.Error("结束钩子后硬件图层应已撤销")
			}
			if outgoing.Opacity() != 1 || incoming.Opacity() != 1 {
				t.Error("结束钩子后目标应恢复完全可见")
			}
		})
	}
}

// TestConfigure 配置更新往返
func TestConfigure(t *testing.T) {
	s := NewFade()
	original := s.Config()

	updated := original
	updated.DurationMs = 999
	updated.GPUAccelerated = false
	s.Configure(updated)

	got := s.Config()
	if got.DurationMs != 999 {
		t.Errorf("DurationMs = %v, 期望 999", got.DurationMs)
	}
	if got.GPUAccelerated {
		t.Error("GPUAccelerated 应已关闭")
	}
}

// TestPrepareCleanup 准备与清理钩子配对
func TestPrepareCleanup(t *testing.T) {
	s := NewPageCurl()
	s.Prepare()
	if !s.prepared {
		t.Error("Prepare 后应处于就绪状态")
	}
	s.Cleanup()
	if s.prepared {
		t.Error("Cleanup 后应已释放")
	}
}
