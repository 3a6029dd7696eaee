// Package perf 提供过渡渲染的性能监控
//
// 监控器把每次变换应用的耗时分类为"帧预算内"或"掉帧"，
// 并维护一条指数平滑的平均帧时间曲线。平滑平均越过预算时
// 触发一次降级信号，由编排器沿降级链切换更便宜的策略。
package perf

import "time"

const (
	// DefaultFrameBudget 60fps 的单帧预算
	DefaultFrameBudget = 16670 * time.Microsecond

	// sampleCap 滚动样本缓冲的容量（FIFO 淘汰）
	sampleCap = 100

	// decimation 指数平滑的抽样间隔：每 10 帧更新一次均值，
	// 把监控本身的开销排除在帧预算之外
	decimation = 10

	// 指数平滑系数：avg = avg*0.9 + sample*0.1
	smoothKeep = 0.9
	smoothNew  = 0.1
)

// Sample 单次变换应用的性能样本
type Sample struct {
	// RenderNanos 本次变换应用耗时（纳秒）
	RenderNanos int64
	// Dropped 耗时是否超出帧预算
	Dropped bool
	// Timestamp 采样时刻
	Timestamp time.Time
}

// Monitor 渲染性能监控器
//
// 只在帧驱动路径上访问，不做内部加锁；多线程调用方（编排器）
// 用自己的互斥锁保护它。
type Monitor struct {
	budget     time.Duration
	samples    []Sample
	frameCount uint64
	avgMs      float64
	hasAvg     bool
	dropping   bool
	onDrop     func()
}

// NewMonitor 创建性能监控器
// budget <= 0 时使用 60fps 默认预算
func NewMonitor(budget time.Duration) *Monitor {
	if budget <= 0 {
		budget = DefaultFrameBudget
	}
	return &Monitor{
		budget:  budget,
		samples: make([]Sample, 0, sampleCap),
	}
}

// SetDropCallback 注册掉帧状态翻转回调
// 回调只在 IsDroppingFrames 从 false 变为 true 的边沿触发一次
func (m *Monitor) SetDropCallback(fn func()) {
	m.onDrop = fn
}

// Record 记录一次变换应用的耗时并返回生成的样本
//
// 样本进入容量 100 的滚动缓冲（FIFO 淘汰）；每 10 帧把最新
// 样本并入指数平滑均值，均值越过预算时触发降级回调。
func (m *Monitor) Record(renderNanos int64) Sample {
	sample := Sample{
		RenderNanos: renderNanos,
		Dropped:     renderNanos > m.budget.Nanoseconds(),
		Timestamp:   time.Now(),
	}

	if len(m.samples) >= sampleCap {
		m.samples = m.samples[1:]
	}
	m.samples = append(m.samples, sample)
	m.frameCount++

	if m.frameCount%decimation == 0 {
		m.updateAverage(float64(renderNanos) / 1e6)
	}

	return sample
}

// updateAverage 更新指数平滑均值并检查掉帧状态翻转
func (m *Monitor) updateAverage(sampleMs float64) {
	if !m.hasAvg {
		m.avgMs = sampleMs
		m.hasAvg = true
	} else {
		m.avgMs = m.avgMs*smoothKeep + sampleMs*smoothNew
	}

	budgetMs := float64(m.budget.Nanoseconds()) / 1e6
	wasDropping := m.dropping
	m.dropping = m.avgMs > budgetMs

	if m.dropping && !wasDropping && m.onDrop != nil {
		m.onDrop()
	}
}

// AverageFrameTimeMs 返回指数平滑后的平均帧时间（毫秒）
func (m *Monitor) AverageFrameTimeMs() float64 {
	return m.avgMs
}

// FrameCount 返回累计记录的帧数
func (m *Monitor) FrameCount() uint64 {
	return m.frameCount
}

// IsDroppingFrames 返回平滑平均是否超出帧预算
func (m *Monitor) IsDroppingFrames() bool {
	return m.dropping
}

// Samples 返回滚动缓冲中样本的副本（调试与 HUD 展示用）
func (m *Monitor) Samples() []Sample {
	out := make([]Sample, len(m.samples))
	copy(out, m.samples)
	return out
}

// Reset 清空样本与平滑状态
// 策略切换后调用，避免旧策略的耗时影响新策略的降级判定
func (m *Monitor) Reset() {
	m.samples = m.samples[:0]
	m.frameCount = 0
	m.avgMs = 0
	m.hasAvg = false
	m.dropping = false
}
