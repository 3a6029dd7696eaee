// verify_transitions.go - 翻页过渡系统验证程序
// 在无窗口环境下用 VirtualTarget 验证各过渡策略的核心性质
// 以及性能降级链的行为
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/game"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/transition"
	"github.com/decker502/pageturn/pkg/types"
)

var verbose = flag.Bool("verbose", false, "详细日志")

// slowFrameNanos 远超 60fps 预算的合成样本
const slowFrameNanos = int64(30 * time.Millisecond)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-30s | %s", status, testName, message)
}

// allStrategies 返回参与验证的策略实例
// 水平滑动是交给宿主分页器的空操作基线，单独验证
func allStrategies() []transition.Strategy {
	return []transition.Strategy{
		transition.NewSlide(types.SlideVertical),
		transition.NewFade(),
		transition.NewZoom(types.ZoomIn),
		transition.NewZoom(types.ZoomOut),
		transition.NewFlip(types.FlipVerticalAxis),
		transition.NewFlip(types.FlipHorizontalAxis),
		transition.NewPageCurl(),
	}
}

// ========== 验证函数 ==========

// validateBoundary 验证边界性质：|position| >= 1 时透明度必须为 0
func validateBoundary() {
	for _, s := range allStrategies() {
		for _, pos := range []float64{-1.5, -1.0, 1.0, 1.5} {
			vt := render.NewVirtualTarget(400, 600)
			if err := s.ApplyTransform(vt, pos); err != nil {
				addReport("边界性质", false, s.Name()+": ApplyTransform 返回错误")
				return
			}
			if vt.AlphaValue != 0 {
				addReport("边界性质", false,
					fmt.Sprintf("%s: position=%.1f 透明度 %.2f，期望 0", s.Name(), pos, vt.AlphaValue))
				return
			}
		}
	}
	addReport("边界性质", true, "所有策略越界位置透明度为 0")
}

// validateCentering 验证居中性质：position = 0 时不透明、无缩放、
// 无旋转、无平移。叠放次序与锚点是各变体自有的静止状态，不参与判定
func validateCentering() {
	for _, s := range allStrategies() {
		vt := render.NewVirtualTarget(400, 600)
		// 先施加一个中间位置再回到 0，确认可见属性被复位
		if err := s.ApplyTransform(vt, 0.5); err != nil {
			addReport("居中性质", false, s.Name()+": ApplyTransform 返回错误")
			return
		}
		if err := s.ApplyTransform(vt, 0); err != nil {
			addReport("居中性质", false, s.Name()+": ApplyTransform 返回错误")
			return
		}
		switch {
		case vt.AlphaValue != 1:
			addReport("居中性质", false,
				fmt.Sprintf("%s: position=0 透明度 %.2f，期望 1", s.Name(), vt.AlphaValue))
			return
		case vt.ScaleX != 1 || vt.ScaleY != 1:
			addReport("居中性质", false, s.Name()+": position=0 残留缩放")
			return
		case vt.RotationX != 0 || vt.RotationY != 0:
			addReport("居中性质", false, s.Name()+": position=0 残留旋转")
			return
		case vt.TranslationX != 0 || vt.TranslationY != 0:
			addReport("居中性质", false, s.Name()+": position=0 残留平移")
			return
		}
	}
	addReport("居中性质", true, "所有策略 position=0 不透明且几何恒等")
}

// validateContinuity 验证连续性：跨越 position = 0 时透明度、
// 缩放、旋转都无跳变（±1 边界处的隐藏切换是规定行为，不在此检查）
func validateContinuity() {
	const epsilon = 0.001
	const maxJump = 0.5
	for _, s := range allStrategies() {
		left := render.NewVirtualTarget(400, 600)
		right := render.NewVirtualTarget(400, 600)
		if err := s.ApplyTransform(left, -epsilon); err != nil {
			addReport("连续性", false, s.Name()+": ApplyTransform 返回错误")
			return
		}
		if err := s.ApplyTransform(right, epsilon); err != nil {
			addReport("连续性", false, s.Name()+": ApplyTransform 返回错误")
			return
		}
		switch {
		case math.Abs(left.AlphaValue-right.AlphaValue) > maxJump:
			addReport("连续性", false, s.Name()+": 透明度跨零跳变")
			return
		case math.Abs(left.ScaleX-right.ScaleX) > maxJump:
			addReport("连续性", false, s.Name()+": 缩放跨零跳变")
			return
		case math.Abs(left.RotationY-right.RotationY) > maxJump:
			addReport("连续性", false, s.Name()+": 旋转跨零跳变")
			return
		}
	}
	addReport("连续性", true, "所有策略跨越 position=0 无跳变")
}

// validateHorizontalSlideNoop 验证水平滑动是严格空操作
func validateHorizontalSlideNoop() {
	s := transition.NewSlide(types.SlideHorizontal)
	vt := render.NewVirtualTarget(400, 600)
	before := *vt
	for _, pos := range []float64{-1.0, -0.5, 0, 0.5, 1.0} {
		if err := s.ApplyTransform(vt, pos); err != nil {
			addReport("水平滑动空操作", false, "ApplyTransform 返回错误")
			return
		}
	}
	if *vt != before {
		addReport("水平滑动空操作", false, "目标状态被修改")
		return
	}
	addReport("水平滑动空操作", true, "目标状态保持不变")
}

// newManager 创建降级模式（无持久化）的编排器
func newManager(typ types.TransitionType) (*game.TransitionManager, error) {
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		return nil, err
	}
	sm.SetTransitionType(typ)
	return game.NewTransitionManager(sm, game.StaticReducedMotion(false)), nil
}

// validateDegradationChain 验证降级链：Flip → Fade → Slide → 禁用，且不写回设置
func validateDegradationChain() {
	m, err := newManager(types.TransitionFlip)
	if err != nil {
		addReport("降级链", false, "创建编排器失败: "+err.Error())
		return
	}
	defer m.Close()

	feed := func() {
		for i := 0; i < 10; i++ {
			m.RecordSample(slowFrameNanos)
		}
	}

	for _, want := range []types.TransitionType{types.TransitionFade, types.TransitionSlide} {
		feed()
		if m.ActiveType() != want {
			addReport("降级链", false, "降级目标与预期不符: "+m.ActiveType().String())
			return
		}
	}
	feed()
	if m.ActiveStrategyName() != "" {
		addReport("降级链", false, "链尾未禁用过渡")
		return
	}
	addReport("降级链", true, "Flip → Fade → Slide → 禁用")
}

// validateTimerCancellation 验证重启过渡会取消前一个自动结束定时器
func validateTimerCancellation() {
	m, err := newManager(types.TransitionFade)
	if err != nil {
		addReport("定时器取消", false, "创建编排器失败: "+err.Error())
		return
	}
	defer m.Close()

	var ends atomic.Int32
	m.SetCallbacks(nil, func(string) { ends.Add(1) }, nil)
	m.ConfigureTransition(30, easing.TypeLinear, true, false)

	out := render.NewVirtualTarget(400, 600)
	in := render.NewVirtualTarget(400, 600)
	m.StartTransition(out, in)
	time.Sleep(5 * time.Millisecond)
	m.StartTransition(out, in)
	time.Sleep(120 * time.Millisecond)

	if got := ends.Load(); got != 1 {
		addReport("定时器取消", false, fmt.Sprintf("结束回调 %d 次，期望 1", got))
		return
	}
	addReport("定时器取消", true, "重启过渡只触发一次自动结束")
}

// validateApplyPath 验证正常应用路径不触发保底回退
func validateApplyPath() {
	m, err := newManager(types.TransitionPageCurl)
	if err != nil {
		addReport("应用路径", false, "创建编排器失败: "+err.Error())
		return
	}
	defer m.Close()

	vt := render.NewVirtualTarget(400, 600)
	for pos := -1.0; pos <= 1.0+1e-9; pos += 0.1 {
		m.ApplyTransition(vt, pos)
	}
	if m.ActiveType() != types.TransitionPageCurl {
		addReport("应用路径", false, "正常应用后策略被意外替换: "+m.ActiveType().String())
		return
	}
	if m.Monitor().FrameCount() == 0 {
		addReport("应用路径", false, "性能监控器未记录样本")
		return
	}
	addReport("应用路径", true,
		fmt.Sprintf("记录 %d 个样本，策略保持 PageCurl", m.Monitor().FrameCount()))
}

func printFinalReport() {
	log.Println("\n========================================")
	log.Println("       过渡验证报告摘要")
	log.Println("========================================")

	passCount := 0
	for _, r := range validationReports {
		status := "✗"
		if r.Passed {
			status = "✓"
			passCount++
		}
		log.Printf("%s | %-30s | %s", status, r.TestName, r.Message)
	}

	log.Println("========================================")
	log.Printf("总计: %d 通过, %d 失败", passCount, len(validationReports)-passCount)

	if passCount == len(validationReports) {
		log.Println("🎉 所有验证通过！")
	} else {
		log.Println("⚠️  部分验证失败")
	}
	log.Println("========================================")
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetFlags(0)
	}

	log.Println("========== 翻页过渡系统验证 ==========")

	validateBoundary()
	validateCentering()
	validateContinuity()
	validateHorizontalSlideNoop()
	validateDegradationChain()
	validateTimerCancellation()
	validateApplyPath()

	printFinalReport()

	for _, r := range validationReports {
		if !r.Passed {
			os.Exit(1)
		}
	}
}
