// Package config 提供过渡引擎的外部配置加载
//
// 预设文件允许阅读器应用为每种过渡类型发布调校好的时长与缓动，
// 而不必改动代码。文件缺失或解析失败时回退到编译期默认值。
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/transition"
	"github.com/decker502/pageturn/pkg/types"
	"gopkg.in/yaml.v3"
)

// TransitionPresetFile 定义过渡预设配置文件结构
type TransitionPresetFile struct {
	Version string                      `yaml:"version"`
	Presets map[string]TransitionPreset `yaml:"presets"`
}

// TransitionPreset 定义单个过渡类型的预设
type TransitionPreset struct {
	DurationMs     int    `yaml:"durationMs"`     // 自动完成过渡的时长（毫秒）
	Easing         string `yaml:"easing"`         // 缓动曲线名称（如 "EaseInOut"）
	GPUAccelerated *bool  `yaml:"gpuAccelerated"` // 是否提升硬件图层，nil 表示沿用策略默认值
	CachingEnabled *bool  `yaml:"cachingEnabled"` // 是否启用表面缓存，nil 表示沿用策略默认值
}

// TransitionPresets 是全局的过渡预设配置实例
// 为 nil 时表示没有加载到预设文件，策略使用各自的默认配置
var TransitionPresets *TransitionPresetFile

// LoadTransitionPresets 加载过渡预设配置文件
//
// 配置文件路径：data/transition_presets.yaml
//
// 如果配置文件不存在或加载失败，策略将使用编译期默认配置。
func LoadTransitionPresets() error {
	configPath := "data/transition_presets.yaml"

	// 读取配置文件
	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("[TransitionPresets] Warning: Failed to load config file '%s': %v", configPath, err)
		log.Printf("[TransitionPresets] Will use built-in strategy defaults")
		return err
	}

	// 解析 YAML
	cfg := &TransitionPresetFile{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[TransitionPresets] Error: Failed to parse config file '%s': %v", configPath, err)
		return fmt.Errorf("failed to parse transition presets: %w", err)
	}

	// 验证配置
	if cfg.Version == "" {
		log.Printf("[TransitionPresets] Warning: Config file has no version field")
	}
	if len(cfg.Presets) == 0 {
		log.Printf("[TransitionPresets] Warning: Config file has no presets defined")
	}

	TransitionPresets = cfg
	log.Printf("[TransitionPresets] Loaded %d presets", len(cfg.Presets))
	return nil
}

// ApplyPreset 把预设合并到策略的当前配置上
//
// 预设按过渡类型名称（TransitionType.String()）查找；没有对应
// 预设或预设未加载时保持策略默认配置不变。
func ApplyPreset(s transition.Strategy, t types.TransitionType) {
	if TransitionPresets == nil {
		return
	}
	preset, ok := TransitionPresets.Presets[t.String()]
	if !ok {
		return
	}

	cfg := s.Config()
	if preset.DurationMs > 0 {
		cfg.DurationMs = preset.DurationMs
	}
	if preset.Easing != "" {
		cfg.Easing = easing.Parse(preset.Easing)
	}
	if preset.GPUAccelerated != nil {
		cfg.GPUAccelerated = *preset.GPUAccelerated
	}
	if preset.CachingEnabled != nil {
		cfg.CachingEnabled = *preset.CachingEnabled
	}
	s.Configure(cfg)
}
