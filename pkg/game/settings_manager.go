// Package game 提供过渡引擎的编排层
//
// 包含设置管理器（gdata 持久化）、过渡编排器（生命周期与性能
// 降级状态机）和滑动手势检测器。
package game

import (
	"fmt"
	"log"
	"sync"

	"github.com/decker502/pageturn/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// TransitionSettings 过渡引擎的全局设置
// 注意：这些设置是全局的，不绑定到特定阅读档案
type TransitionSettings struct {
	// TransitionType 配置的过渡类型（持久化为序号值）
	TransitionType int `yaml:"transitionType"`
	// TransitionsEnabled 过渡动画总开关
	TransitionsEnabled bool `yaml:"transitionsEnabled"`
	// RespectReducedMotion 是否遵循系统的减弱动态效果设置
	RespectReducedMotion bool `yaml:"respectReducedMotion"`
	// PerformanceOptimizationEnabled 是否启用自动性能降级
	PerformanceOptimizationEnabled bool `yaml:"performanceOptimizationEnabled"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *TransitionSettings {
	return &TransitionSettings{
		TransitionType:                 int(types.TransitionSlide),
		TransitionsEnabled:             true,
		RespectReducedMotion:           true,
		PerformanceOptimizationEnabled: true,
	}
}

// SettingsManager 设置管理器
// 负责过渡设置的加载、保存和内存管理
//
// 保存可能发生在后台 goroutine，内部用互斥锁保护
type SettingsManager struct {
	mu           sync.Mutex
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *TransitionSettings
}

// 存储路径常量
const (
	settingsObject   = "transition"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 读取到非法的过渡类型序号时回退为 Slide。
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认设置
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings TransitionSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 校验过渡类型序号（存档可能来自更新的版本）
	if !types.TransitionType(loadedSettings.TransitionType).IsValid() {
		log.Printf("[SettingsManager] Warning: invalid transition type %d, falling back to Slide",
			loadedSettings.TransitionType)
		loadedSettings.TransitionType = int(types.TransitionSlide)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// Snapshot 返回当前设置的副本
func (sm *SettingsManager) Snapshot() TransitionSettings {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return *sm.settings
}

// TransitionType 返回配置的过渡类型
func (sm *SettingsManager) TransitionType() types.TransitionType {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return types.TransitionType(sm.settings.TransitionType)
}

// SetTransitionType 设置过渡类型
//
// 非法序号会被忽略。
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTransitionType(t types.TransitionType) {
	if !t.IsValid() {
		log.Printf("[SettingsManager] Warning: ignoring invalid transition type %d", int(t))
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.settings.TransitionType = int(t)
}

// SetTransitionsEnabled 设置过渡动画总开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTransitionsEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.settings.TransitionsEnabled = enabled
}

// SetRespectReducedMotion 设置是否遵循减弱动态效果
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetRespectReducedMotion(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.settings.RespectReducedMotion = enabled
}

// SetPerformanceOptimizationEnabled 设置自动性能降级开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPerformanceOptimizationEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.settings.PerformanceOptimizationEnabled = enabled
}
