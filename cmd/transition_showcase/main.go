// transition_showcase.go - 翻页过渡交互演示程序
//
// 用鼠标拖拽或方向键翻页，数字键切换过渡策略，实时查看
// 性能监控与降级行为。
//
// 用法：
//
//	go run cmd/transition_showcase/main.go
//
// 按键：
//
//	1-8       切换过渡类型（6-8 为占位类型，回落到 Slide）
//	←/→       翻到上一页/下一页
//	T         开关过渡动画
//	M         开关"尊重减弱动态效果"
//	H         开关性能 HUD
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/pageturn/pkg/config"
	"github.com/decker502/pageturn/pkg/game"
	"github.com/decker502/pageturn/pkg/perf"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/types"
	"github.com/decker502/pageturn/pkg/utils"
)

var (
	pageCount = flag.Int("pages", 6, "演示页数")
	pageW     = flag.Int("width", 400, "页面宽度")
	pageH     = flag.Int("height", 600, "页面高度")
	verbose   = flag.Bool("verbose", false, "详细日志")
)

// 演示状态机
type showcaseState int

const (
	stateIdle showcaseState = iota
	stateDragging
	stateAnimating
)

// Showcase 演示主结构
type Showcase struct {
	manager  *game.TransitionManager
	settings *game.SettingsManager
	detector *game.SwipeDetector

	pages       []*ebiten.Image
	currentPage int

	state    showcaseState
	outgoing *render.PageSurface
	incoming *render.PageSurface
	// incomingIdx 当前进入页的页码
	incomingIdx int
	// gestureSign 本次手势方向，+1 向前翻（进入页在右侧）
	gestureSign float64
	posOut      float64
	posIn       float64

	dragStartX float64

	animStart time.Time
	animDur   time.Duration
	animFrom  float64
	animTo    float64
	ease      func(float64) float64

	showHUD    bool
	lastSample perf.Sample
	hasSample  bool
}

// makePage 生成一张带编号和色带的演示页面
func makePage(index, w, h int) *ebiten.Image {
	palette := []color.NRGBA{
		{R: 70, G: 130, B: 240, A: 255},
		{R: 240, G: 130, B: 70, A: 255},
		{R: 90, G: 200, B: 120, A: 255},
		{R: 200, G: 90, B: 180, A: 255},
		{R: 230, G: 200, B: 80, A: 255},
		{R: 110, G: 110, B: 220, A: 255},
	}
	base := palette[index%len(palette)]

	img := ebiten.NewImage(w, h)
	img.Fill(base)

	// 左缘色带便于观察平移与旋转
	stripe := ebiten.NewImage(w/12, h)
	stripe.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 200})
	var opts ebiten.DrawImageOptions
	img.DrawImage(stripe, &opts)

	ebitenutil.DebugPrintAt(img, fmt.Sprintf("PAGE %d", index+1), w/2-24, h/2)
	return img
}

// NewShowcase 创建演示实例并恢复持久化设置
func NewShowcase() (*Showcase, error) {
	gdataManager, err := gdata.Open(gdata.Config{AppName: "pageturn_showcase"})
	if err != nil {
		log.Printf("[Showcase] 存储不可用，设置不会持久化: %v", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[Showcase] 设置加载失败，使用默认值: %v", err)
	}

	reduced := game.StaticReducedMotion(os.Getenv("PAGETURN_REDUCED_MOTION") == "1")
	manager := game.NewTransitionManager(settings, reduced)

	s := &Showcase{
		manager:  manager,
		settings: settings,
		showHUD:  true,
	}
	s.detector = game.NewSwipeDetector(nil)

	manager.SetCallbacks(
		func(name string) {
			if *verbose {
				log.Printf("[Showcase] 过渡开始: %s", name)
			}
		},
		func(name string) {
			if *verbose {
				log.Printf("[Showcase] 过渡结束: %s", name)
			}
		},
		func(sample perf.Sample) {
			s.lastSample = sample
			s.hasSample = true
		},
	)

	s.pages = make([]*ebiten.Image, *pageCount)
	for i := range s.pages {
		s.pages[i] = makePage(i, *pageW, *pageH)
	}
	return s, nil
}

// pageIndex 把任意页码折回有效范围
func (s *Showcase) pageIndex(i int) int {
	n := len(s.pages)
	return ((i % n) + n) % n
}

// beginGesture 为一次拖拽/翻页手势准备两张页面
// sign > 0 表示向前翻（下一页从右侧进入）
func (s *Showcase) beginGesture(sign float64) {
	next := s.pageIndex(s.currentPage + 1)
	if sign < 0 {
		next = s.pageIndex(s.currentPage - 1)
	}
	s.incomingIdx = next
	s.gestureSign = math.Copysign(1, sign)
	s.outgoing = render.NewPageSurface(s.pages[s.currentPage])
	s.incoming = render.NewPageSurface(s.pages[next])
	s.manager.StartTransition(s.outgoing, s.incoming)
}

// applyPositions 把位置值同时推给离开页与进入页
// 进入页始终停在手势方向的一侧，相差一个页宽
func (s *Showcase) applyPositions(p float64) {
	s.posOut = p
	s.posIn = p + s.gestureSign
	s.manager.ApplyTransition(s.outgoing, s.posOut)
	s.manager.ApplyTransition(s.incoming, s.posIn)
}

// startAnimation 从当前位置动画到目标位置
func (s *Showcase) startAnimation(from, to float64) {
	cfg, ok := s.manager.ActiveConfig()
	if !ok {
		// 过渡被禁用：直接落到目标位置
		s.finishGesture(to)
		return
	}

	total := time.Duration(cfg.DurationMs) * time.Millisecond
	s.animDur = time.Duration(float64(total) * math.Abs(to-from))
	if s.animDur <= 0 {
		s.finishGesture(to)
		return
	}
	s.ease = cfg.Easing.Func()
	s.animFrom = from
	s.animTo = to
	s.animStart = time.Now()
	s.state = stateAnimating
}

// finishGesture 结束本次手势，|to| = 1 表示翻页成立
func (s *Showcase) finishGesture(to float64) {
	s.manager.EndTransition(s.outgoing, s.incoming)
	if math.Abs(to) >= 1 {
		s.currentPage = s.incomingIdx
	}
	s.outgoing = nil
	s.incoming = nil
	s.posOut = 0
	s.posIn = 0
	s.state = stateIdle
}

// flingTo 由方向键发起一次完整翻页
func (s *Showcase) flingTo(sign float64) {
	if s.state != stateIdle {
		return
	}
	if !s.manager.TransitionsEnabled() {
		s.currentPage = s.pageIndex(s.currentPage + int(sign))
		return
	}
	s.beginGesture(sign)
	s.applyPositions(0)
	s.startAnimation(0, -sign)
}

// handleKeys 处理过渡类型与开关按键
func (s *Showcase) handleKeys() {
	typeKeys := map[ebiten.Key]types.TransitionType{
		ebiten.KeyDigit1: types.TransitionSlide,
		ebiten.KeyDigit2: types.TransitionFade,
		ebiten.KeyDigit3: types.TransitionZoom,
		ebiten.KeyDigit4: types.TransitionFlip,
		ebiten.KeyDigit5: types.TransitionPageCurl,
		ebiten.KeyDigit6: types.TransitionDepth,
		ebiten.KeyDigit7: types.TransitionCube,
		ebiten.KeyDigit8: types.TransitionAccordion,
	}
	for key, t := range typeKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.manager.SetTransitionType(t)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.manager.SetTransitionsEnabled(!s.manager.TransitionsEnabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.settings.SetRespectReducedMotion(!s.settings.Snapshot().RespectReducedMotion)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.showHUD = !s.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.flingTo(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.flingTo(-1)
	}
}

// handleDrag 处理拖拽翻页，鼠标与触摸走同一条路径
func (s *Showcase) handleDrag() {
	pointer := utils.PollPointer()
	fx, fy := float64(pointer.X), float64(pointer.Y)
	now := time.Now()

	if pointer.JustPressed && s.state == stateIdle {
		if !s.manager.TransitionsEnabled() {
			return
		}
		s.detector.PointerDown(fx, fy, now)
		s.dragStartX = fx
		s.state = stateDragging
		s.outgoing = nil
		return
	}

	if s.state != stateDragging {
		return
	}

	p := (fx - s.dragStartX) / float64(*pageW)
	p = math.Max(-0.999, math.Min(0.999, p))

	if pointer.Pressed {
		s.detector.PointerMove(fx, fy, now)
		// 首次产生有效位移时才确定翻页方向
		if s.outgoing == nil {
			if p == 0 {
				return
			}
			// 向左拖（p < 0）是向前翻页
			if p < 0 {
				s.beginGesture(1)
			} else {
				s.beginGesture(-1)
			}
		}
		s.applyPositions(p)
		return
	}

	// 指针抬起：按速度或位移判定提交还是回弹
	dir := s.detector.PointerUp(fx, fy, now)
	if s.outgoing == nil {
		s.state = stateIdle
		return
	}
	// 只有与手势方向一致的滑动或位移才提交翻页，否则回弹
	commit := -s.gestureSign
	switch {
	case dir == types.SwipeLeft && s.gestureSign > 0:
		s.startAnimation(p, commit)
	case dir == types.SwipeRight && s.gestureSign < 0:
		s.startAnimation(p, commit)
	case math.Abs(p) > 0.5 && math.Copysign(1, p) == commit:
		s.startAnimation(p, commit)
	default:
		s.startAnimation(p, 0)
	}
}

// Update 实现 ebiten.Game
func (s *Showcase) Update() error {
	s.handleKeys()
	s.handleDrag()

	if s.state == stateAnimating {
		elapsed := time.Since(s.animStart)
		t := float64(elapsed) / float64(s.animDur)
		if t >= 1 {
			s.applyPositions(s.animTo)
			s.finishGesture(s.animTo)
		} else {
			p := s.animFrom + (s.animTo-s.animFrom)*s.ease(t)
			s.applyPositions(p)
		}
	}
	return nil
}

// Draw 实现 ebiten.Game
// 页面基准位置遵循分页宿主的约定 x = position * 宽度，
// 需要钉在原地的策略自己抵消这一偏移
func (s *Showcase) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 24, G: 24, B: 24, A: 255})

	w := float64(*pageW)
	if s.state == stateIdle || s.outgoing == nil {
		current := render.NewPageSurface(s.pages[s.currentPage])
		current.Draw(screen, 0, 0)
	} else {
		render.DrawOrdered(screen, s.outgoing, s.incoming,
			s.posOut*w, 0, s.posIn*w, 0)
	}

	if s.showHUD {
		s.drawHUD(screen)
	}
}

// drawHUD 绘制性能与状态面板
func (s *Showcase) drawHUD(screen *ebiten.Image) {
	snapshot := s.settings.Snapshot()
	name := s.manager.ActiveStrategyName()
	if name == "" {
		name = "(disabled)"
	}

	monitor := s.manager.Monitor()
	lines := fmt.Sprintf(
		"strategy: %s\navg frame: %.3f ms\nframes: %d\ndropping: %v\nreduced motion: %v\noptimization: %v\npage: %d/%d",
		name,
		monitor.AverageFrameTimeMs(),
		monitor.FrameCount(),
		monitor.IsDroppingFrames(),
		snapshot.RespectReducedMotion,
		snapshot.PerformanceOptimizationEnabled,
		s.currentPage+1, len(s.pages),
	)
	if s.hasSample {
		lines += fmt.Sprintf("\nlast apply: %.3f ms", float64(s.lastSample.RenderNanos)/1e6)
	}
	lines += "\n\n[1-8] type  [T] toggle  [M] motion  [H] hud  [arrows] page"
	ebitenutil.DebugPrintAt(screen, lines, 8, 8)
}

// Layout 实现 ebiten.Game
func (s *Showcase) Layout(outsideWidth, outsideHeight int) (int, int) {
	return *pageW, *pageH
}

func main() {
	flag.Parse()

	if err := config.LoadTransitionPresets(); err != nil {
		log.Printf("[Showcase] 预设加载失败: %v", err)
	}

	s, err := NewShowcase()
	if err != nil {
		log.Fatalf("[Showcase] 初始化失败: %v", err)
	}
	defer s.manager.Close()

	ebiten.SetWindowSize(*pageW, *pageH)
	ebiten.SetWindowTitle("翻页过渡演示")
	if err := ebiten.RunGame(s); err != nil {
		log.Fatal(err)
	}
}
