package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/decker502/pageturn/pkg/config"
	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/perf"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/transition"
	"github.com/decker502/pageturn/pkg/types"
)

// StrategyCallback 过渡生命周期通知（即发即弃）
type StrategyCallback func(strategyName string)

// PerformanceCallback 性能样本通知（即发即弃）
type PerformanceCallback func(sample perf.Sample)

// TransitionManager 过渡编排器
//
// 持有当前激活的过渡策略，驱动其生命周期（开始/应用/结束），
// 为每次变换计时并交给性能监控器，在持续掉帧时沿降级链自动
// 切换更便宜的策略，直至整体禁用。降级在会话内单调：引擎
// 从不自动升回更昂贵的过渡，只有用户显式操作才能恢复。
//
// 帧驱动路径（ApplyTransition）与设置更新（SetTransitionType 等）
// 可能来自不同 goroutine，内部用单把互斥锁保护活动策略引用与
// 性能样本缓冲。
type TransitionManager struct {
	mu sync.Mutex

	settings      *SettingsManager
	reducedMotion ReducedMotionQuery
	monitor       *perf.Monitor

	// 活动策略；禁用状态下为 nil
	strategy   transition.Strategy
	activeType types.TransitionType

	// 过渡开始时策略激活瞬间轮询到的无障碍状态
	reducedMotionActive bool

	// 运行时禁用标志（降级链触底或策略失败后置位）
	// 与设置中的总开关正交，只有显式重新启用才能清除
	autoDisabled bool

	// 自动结束定时器及其代数；新的 StartTransition 会使旧
	// 定时器作废，避免过期的 EndTransition 乱序触发
	endTimer *time.Timer
	timerGen uint64

	// 当前过渡涉及的两个目标（自动结束时使用）
	pendingOutgoing render.Target
	pendingIncoming render.Target

	// 外部回调
	onStart StrategyCallback
	onEnd   StrategyCallback
	onPerf  PerformanceCallback

	// 后台持久化队列
	saveCh chan struct{}
	done   chan struct{}
	closed bool
}

// NewTransitionManager 创建过渡编排器
//
// 从设置存档恢复配置的过渡类型并构造对应策略。
// reducedMotion 可为 nil（视为未请求减弱动态效果）。
func NewTransitionManager(settings *SettingsManager, reducedMotion ReducedMotionQuery) *TransitionManager {
	m := &TransitionManager{
		settings:      settings,
		reducedMotion: reducedMotion,
		monitor:       perf.NewMonitor(0),
		saveCh:        make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
	m.monitor.SetDropCallback(m.degradeLocked)

	// 后台持久化循环：帧路径只投递信号，绝不直接做 I/O
	go m.saveLoop()

	snapshot := settings.Snapshot()
	if snapshot.TransitionsEnabled {
		m.mu.Lock()
		m.installStrategy(types.TransitionType(snapshot.TransitionType))
		m.mu.Unlock()
	} else {
		log.Printf("[TransitionManager] 过渡动画已禁用（按设置）")
	}
	return m
}

// SetCallbacks 注册生命周期与性能通知回调
// 回调在编排器内部锁之外触发，可安全地回调引擎方法
func (m *TransitionManager) SetCallbacks(onStart, onEnd StrategyCallback, onPerf PerformanceCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStart = onStart
	m.onEnd = onEnd
	m.onPerf = onPerf
}

// installStrategy 构造并安装给定类型的策略
// 必须在持锁状态下调用；旧策略先执行 Cleanup 再被替换
func (m *TransitionManager) installStrategy(t types.TransitionType) {
	if m.strategy != nil {
		m.strategy.Cleanup()
	}

	m.strategy = transition.New(t)
	m.activeType = t
	// 预设文件已加载时把调校值合并到策略默认配置上
	config.ApplyPreset(m.strategy, t)
	m.strategy.Prepare()
	m.monitor.Reset()

	// 无障碍状态在策略激活时轮询一次，不做持续查询
	m.reducedMotionActive = m.reducedMotion != nil && m.reducedMotion.ReducedMotionRequested()

	log.Printf("[TransitionManager] 激活过渡策略: %s", m.strategy.Name())
}

// SetTransitionType 切换过渡类型
//
// 与当前配置类型相同时为空操作。切换会重置降级状态
// （显式的用户操作可以恢复更昂贵的过渡），并重新持久化设置。
func (m *TransitionManager) SetTransitionType(t types.TransitionType) {
	if !t.IsValid() {
		log.Printf("[TransitionManager] 忽略非法过渡类型 %d", int(t))
		return
	}

	m.mu.Lock()
	if m.settings.TransitionType() == t && m.strategy != nil && m.activeType == t {
		m.mu.Unlock()
		return
	}

	m.settings.SetTransitionType(t)
	m.autoDisabled = false
	if m.settings.Snapshot().TransitionsEnabled {
		m.installStrategy(t)
	}
	m.mu.Unlock()

	m.requestSave()
}

// SetTransitionsEnabled 切换过渡动画总开关
//
// 关闭时置空活动策略（渲染回到宿主默认定位）；
// 开启时从持久化的类型重新初始化（恢复用户配置的类型，
// 而不是降级后的类型）。
func (m *TransitionManager) SetTransitionsEnabled(enabled bool) {
	m.mu.Lock()
	m.settings.SetTransitionsEnabled(enabled)
	if enabled {
		m.autoDisabled = false
		m.installStrategy(m.settings.TransitionType())
	} else {
		m.cancelEndTimer()
		if m.strategy != nil {
			m.strategy.Cleanup()
			m.strategy = nil
		}
		log.Printf("[TransitionManager] 过渡动画已禁用")
	}
	m.mu.Unlock()

	m.requestSave()
}

// TransitionsEnabled 返回过渡当前是否生效
// 同时考虑设置开关与运行时自动禁用状态
func (m *TransitionManager) TransitionsEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.strategy != nil && !m.autoDisabled
}

// ActiveType 返回当前激活的过渡类型（可能已被降级）
func (m *TransitionManager) ActiveType() types.TransitionType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeType
}

// ActiveStrategyName 返回当前策略名称，禁用时返回空串
func (m *TransitionManager) ActiveStrategyName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.strategy == nil {
		return ""
	}
	return m.strategy.Name()
}

// ActiveConfig 返回当前策略的配置，禁用时 ok 为 false
func (m *TransitionManager) ActiveConfig() (transition.Config, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.strategy == nil {
		return transition.Config{}, false
	}
	return m.strategy.Config(), true
}

// Monitor 返回性能监控器，仅限读取（HUD 展示用）
// 监控器本身不加锁，带外喂入样本必须走 RecordSample
func (m *TransitionManager) Monitor() *perf.Monitor {
	return m.monitor
}

// RecordSample 在编排器锁内记录一个带外性能样本
// 掉帧翻转时的降级回调要求持有编排器锁，宿主自行计时的
// 帧样本从这里进入而不是直接调用监控器
func (m *TransitionManager) RecordSample(renderNanos int64) perf.Sample {
	m.mu.Lock()
	sample := m.monitor.Record(renderNanos)
	onPerf := m.onPerf
	m.mu.Unlock()

	if onPerf != nil {
		onPerf(sample)
	}
	return sample
}

// shouldApply 检查当前是否应该应用过渡变换
// 必须在持锁状态下调用
func (m *TransitionManager) shouldApply() bool {
	if m.strategy == nil || m.autoDisabled {
		return false
	}
	if m.settings.Snapshot().RespectReducedMotion && m.reducedMotionActive {
		return false
	}
	return true
}

// ApplyTransition 把位置值转换为目标的视觉变换
//
// 每帧由导航宿主调用一次。调用被计时并送入性能监控器；
// 策略返回错误或 panic 时按失效处理：当前策略在本会话内
// 不再重试，引擎回退到 Slide 基线，目标恢复可交互的中性
// 状态（故障开放，而不是冻结在半截动画上）。
func (m *TransitionManager) ApplyTransition(target render.Target, position float64) {
	m.mu.Lock()
	if !m.shouldApply() {
		m.mu.Unlock()
		return
	}
	strategy := m.strategy

	start := time.Now()
	err := m.applyGuarded(strategy, target, position)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[TransitionManager] 策略 %s 应用失败: %v（回退到 Slide 基线）",
			strategy.Name(), err)
		render.Reset(target)
		m.failActiveStrategy()
		m.mu.Unlock()
		return
	}

	sample := m.monitor.Record(elapsed.Nanoseconds())
	onPerf := m.onPerf
	m.mu.Unlock()

	if onPerf != nil {
		onPerf(sample)
	}
}

// applyGuarded 调用策略并把 panic 收敛为错误
// 策略代码只做算术，panic 意味着公式实现有缺陷，
// 不能让它打穿帧循环
func (m *TransitionManager) applyGuarded(s transition.Strategy, target render.Target, position float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &strategyPanicError{strategy: s.Name(), value: r}
		}
	}()
	return s.ApplyTransform(target, position)
}

// failActiveStrategy 策略失效处理
// 必须在持锁状态下调用：清理失效策略并安装 Slide 基线
func (m *TransitionManager) failActiveStrategy() {
	m.cancelEndTimer()
	m.installStrategy(types.TransitionSlide)
}

// StartTransition 开始一次过渡
//
// 调用策略的开始钩子，并调度一个自动结束任务：配置的时长
// 之后若还没有收到显式的 EndTransition，则自动补发。新的
// StartTransition 会先取消上一次仍未触发的自动结束任务。
func (m *TransitionManager) StartTransition(outgoing, incoming render.Target) {
	m.mu.Lock()
	if !m.shouldApply() {
		m.mu.Unlock()
		return
	}

	m.cancelEndTimer()

	m.strategy.OnTransitionStart(outgoing, incoming)
	m.pendingOutgoing = outgoing
	m.pendingIncoming = incoming

	duration := time.Duration(m.strategy.Config().DurationMs) * time.Millisecond
	m.timerGen++
	gen := m.timerGen
	m.endTimer = time.AfterFunc(duration, func() {
		m.autoEnd(gen)
	})

	name := m.strategy.Name()
	onStart := m.onStart
	m.mu.Unlock()

	if onStart != nil {
		onStart(name)
	}
}

// EndTransition 结束一次过渡
// 取消未触发的自动结束任务并调用策略的结束钩子
func (m *TransitionManager) EndTransition(outgoing, incoming render.Target) {
	m.mu.Lock()
	m.cancelEndTimer()

	if m.strategy == nil {
		m.mu.Unlock()
		return
	}

	m.strategy.OnTransitionEnd(outgoing, incoming)
	m.pendingOutgoing = nil
	m.pendingIncoming = nil

	name := m.strategy.Name()
	onEnd := m.onEnd
	m.mu.Unlock()

	if onEnd != nil {
		onEnd(name)
	}
}

// autoEnd 自动结束任务的定时器回调
// 代数不匹配说明任务已被新的 StartTransition 取代，直接丢弃
func (m *TransitionManager) autoEnd(gen uint64) {
	m.mu.Lock()
	if gen != m.timerGen || m.strategy == nil {
		m.mu.Unlock()
		return
	}

	outgoing := m.pendingOutgoing
	incoming := m.pendingIncoming
	m.pendingOutgoing = nil
	m.pendingIncoming = nil
	m.endTimer = nil

	var name string
	var onEnd StrategyCallback
	if outgoing != nil && incoming != nil {
		m.strategy.OnTransitionEnd(outgoing, incoming)
		name = m.strategy.Name()
		onEnd = m.onEnd
	}
	m.mu.Unlock()

	if onEnd != nil {
		onEnd(name)
	}
}

// cancelEndTimer 取消未触发的自动结束任务
// 必须在持锁状态下调用；递增代数使已经并发触发的回调失效
func (m *TransitionManager) cancelEndTimer() {
	m.timerGen++
	if m.endTimer != nil {
		m.endTimer.Stop()
		m.endTimer = nil
	}
}

// ConfigureTransition 更新活动策略的配置并持久化
func (m *TransitionManager) ConfigureTransition(durationMs int, easingType easing.Type, gpuAccelerated, cachingEnabled bool) {
	m.mu.Lock()
	if m.strategy == nil {
		m.mu.Unlock()
		return
	}
	m.strategy.Configure(transition.Config{
		DurationMs:     durationMs,
		Easing:         easingType,
		GPUAccelerated: gpuAccelerated,
		CachingEnabled: cachingEnabled,
	})
	m.mu.Unlock()

	m.requestSave()
}

// degradeLocked 性能降级：沿降级链下移一级
//
// 由性能监控器在掉帧状态翻转时调用，此时已持有编排器锁
// （监控器只在 ApplyTransition 内被访问）。Slide 已是链底，
// 再降级就整体禁用过渡。自动优化关闭时忽略信号。
func (m *TransitionManager) degradeLocked() {
	if !m.settings.Snapshot().PerformanceOptimizationEnabled {
		return
	}

	next, ok := m.activeType.Degraded()
	if !ok {
		log.Printf("[TransitionManager] 持续掉帧且已到降级链底，禁用过渡动画")
		m.cancelEndTimer()
		if m.strategy != nil {
			m.strategy.Cleanup()
			m.strategy = nil
		}
		m.autoDisabled = true
		return
	}

	log.Printf("[TransitionManager] 持续掉帧，过渡降级: %s → %s", m.activeType, next)
	m.installStrategy(next)
}

// requestSave 请求后台持久化（帧路径上绝不直接做 I/O）
// 信号通道容量为 1，密集的设置变更会被合并为一次保存
func (m *TransitionManager) requestSave() {
	select {
	case m.saveCh <- struct{}{}:
	default:
	}
}

// saveLoop 后台持久化循环
func (m *TransitionManager) saveLoop() {
	for {
		select {
		case <-m.saveCh:
			if err := m.settings.Save(); err != nil {
				// 持久化失败不致命：下次变更会重试，读取侧有默认值兜底
				log.Printf("[TransitionManager] Warning: failed to persist settings: %v", err)
			}
		case <-m.done:
			return
		}
	}
}

// Close 销毁编排器
// 取消所有调度中的任务，清理活动策略，停止后台持久化循环
func (m *TransitionManager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.cancelEndTimer()
	if m.strategy != nil {
		m.strategy.Cleanup()
		m.strategy = nil
	}
	m.mu.Unlock()

	close(m.done)
}

// strategyPanicError 把策略 panic 包装为错误
type strategyPanicError struct {
	strategy string
	value    any
}

// Error 实现 error 接口
func (e *strategyPanicError) Error() string {
	return fmt.Sprintf("strategy %s panicked during ApplyTransform: %v", e.strategy, e.value)
}
