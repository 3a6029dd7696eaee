// Package transition 实现翻页过渡策略
//
// 每个策略是一个无状态（按调用而言）的变换策略：给定渲染目标和
// 归一化位置，确定性地写入透明度、缩放、旋转、平移等属性。
// 策略可以持有可变的配置（时长、缓动、GPU、缓存开关），但
// ApplyTransform 本身必须是 (目标, 位置, 配置) 的纯函数。
//
// 位置语义（由导航宿主每帧产生）：
//   - 0:  页面完全居中可见
//   - -1: 页面完全占据上一页的槽位
//   - +1: 页面完全占据下一页的槽位
//   - |position| >= 1: 页面必须完全透明
package transition

import (
	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/render"
)

// Config 保存策略的可变配置
// 随策略创建时取该策略的默认值，通过 Configure 修改，
// 由设置管理器负责持久化
type Config struct {
	// DurationMs 自动完成过渡的时长（毫秒）
	DurationMs int `yaml:"durationMs"`
	// Easing 自动完成过渡使用的缓动曲线
	Easing easing.Type `yaml:"easing"`
	// GPUAccelerated 过渡期间是否提升硬件加速图层
	GPUAccelerated bool `yaml:"gpuAccelerated"`
	// CachingEnabled 是否启用渲染表面缓存
	CachingEnabled bool `yaml:"cachingEnabled"`
}

// Strategy 是所有过渡策略实现的统一能力接口
//
// 策略实例的生命周期由编排器管理：构造后调用 Prepare，
// 替换或销毁前调用 Cleanup，两者在策略的活动周期内各调用一次。
type Strategy interface {
	// Name 返回策略名称（用于日志与回调）
	Name() string

	// ApplyTransform 根据位置写入目标的视觉变换
	// 必须非阻塞且在帧预算内完成，只做算术和属性写入
	ApplyTransform(target render.Target, position float64) error

	// OnTransitionStart 过渡开始钩子
	// 将两个目标置于明确的起始状态；GPU 配置开启时提升硬件图层
	OnTransitionStart(outgoing, incoming render.Target)

	// OnTransitionEnd 过渡结束钩子
	// 将两个目标恢复中性状态；GPU 配置开启时撤销硬件图层
	OnTransitionEnd(outgoing, incoming render.Target)

	// Prepare 作用域资源的准备钩子
	// 引擎自身不持有渲染表面，钩子给渲染宿主按 UsesCaching
	// 声明预热表面缓存的机会
	Prepare()

	// Cleanup 作用域资源的释放钩子
	Cleanup()

	// Configure 更新策略配置
	Configure(cfg Config)

	// Config 返回当前配置的副本
	Config() Config

	// SupportsHardwareLayers 返回该策略是否支持硬件加速图层
	SupportsHardwareLayers() bool

	// UsesCaching 返回该策略是否受益于渲染表面缓存
	// 这是给渲染宿主的能力声明：引擎不创建也不持有缓存表面，
	// 宿主据此决定是否把页面内容预渲染到离屏表面
	UsesCaching() bool
}

// baseStrategy 提供各策略共享的配置与能力声明
// 具体策略嵌入它，只需实现自己的变换公式
type baseStrategy struct {
	name     string
	cfg      Config
	hwLayers bool
	caching  bool
	prepared bool
}

// Name 返回策略名称
func (b *baseStrategy) Name() string { return b.name }

// Configure 更新策略配置
func (b *baseStrategy) Configure(cfg Config) { b.cfg = cfg }

// Config 返回当前配置的副本
func (b *baseStrategy) Config() Config { return b.cfg }

// SupportsHardwareLayers 返回硬件图层能力声明
func (b *baseStrategy) SupportsHardwareLayers() bool { return b.hwLayers }

// UsesCaching 返回缓存能力声明
func (b *baseStrategy) UsesCaching() bool { return b.caching }

// Prepare 默认准备钩子（标记缓存就绪）
func (b *baseStrategy) Prepare() { b.prepared = true }

// Cleanup 默认释放钩子
func (b *baseStrategy) Cleanup() { b.prepared = false }

// startTargets 通用的过渡开始处理
// 两个目标重置为中性状态；配置启用 GPU 且策略支持时提升硬件图层
func (b *baseStrategy) startTargets(outgoing, incoming render.Target) {
	render.Reset(outgoing)
	render.Reset(incoming)
	if b.cfg.GPUAccelerated && b.hwLayers {
		outgoing.SetHardwareLayer(true)
		incoming.SetHardwareLayer(true)
	}
}

// endTargets 通用的过渡结束处理
// 两个目标恢复中性状态并撤销硬件图层
func (b *baseStrategy) endTargets(outgoing, incoming render.Target) {
	render.Reset(outgoing)
	render.Reset(incoming)
	outgoing.SetHardwareLayer(false)
	incoming.SetHardwareLayer(false)
}
