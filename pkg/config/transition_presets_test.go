package config

import (
	"testing"

	"github.com/decker502/pageturn/pkg/easing"
	"github.com/decker502/pageturn/pkg/transition"
	"github.com/decker502/pageturn/pkg/types"
)

// boolPtr 测试辅助
func boolPtr(v bool) *bool { return &v }

// TestApplyPresetMergesConfig 预设合并到策略的默认配置上
func TestApplyPresetMergesConfig(t *testing.T) {
	defer func() { TransitionPresets = nil }()

	TransitionPresets = &TransitionPresetFile{
		Version: "1",
		Presets: map[string]TransitionPreset{
			"Fade": {
				DurationMs: 500,
				Easing:     "Bounce",
				// GPU/缓存未给出，沿用策略默认值
			},
		},
	}

	s := transition.NewFade()
	defaults := s.Config()
	ApplyPreset(s, types.TransitionFade)

	got := s.Config()
	if got.DurationMs != 500 {
		t.Errorf("DurationMs = %v, 期望 500", got.DurationMs)
	}
	if got.Easing != easing.TypeBounce {
		t.Errorf("Easing = %v, 期望 Bounce", got.Easing)
	}
	if got.GPUAccelerated != defaults.GPUAccelerated {
		t.Error("未配置的 GPU 开关应沿用策略默认值")
	}
}

// TestApplyPresetOverridesFlags 显式给出的开关覆盖默认值
func TestApplyPresetOverridesFlags(t *testing.T) {
	defer func() { TransitionPresets = nil }()

	TransitionPresets = &TransitionPresetFile{
		Presets: map[string]TransitionPreset{
			"PageCurl": {
				GPUAccelerated: boolPtr(false),
				CachingEnabled: boolPtr(false),
			},
		},
	}

	s := transition.NewPageCurl()
	ApplyPreset(s, types.TransitionPageCurl)

	got := s.Config()
	if got.GPUAccelerated {
		t.Error("GPUAccelerated 应被预设覆盖为 false")
	}
	if got.CachingEnabled {
		t.Error("CachingEnabled 应被预设覆盖为 false")
	}
}

// TestApplyPresetMissing 没有对应预设时保持默认配置
func TestApplyPresetMissing(t *testing.T) {
	defer func() { TransitionPresets = nil }()

	TransitionPresets = &TransitionPresetFile{
		Presets: map[string]TransitionPreset{},
	}

	s := transition.NewFlip(types.FlipVerticalAxis)
	defaults := s.Config()
	ApplyPreset(s, types.TransitionFlip)

	if s.Config() != defaults {
		t.Error("缺失预设时配置不应变化")
	}
}

// TestApplyPresetNotLoaded 预设未加载时为空操作
func TestApplyPresetNotLoaded(t *testing.T) {
	TransitionPresets = nil

	s := transition.NewZoom(types.ZoomIn)
	defaults := s.Config()
	ApplyPreset(s, types.TransitionZoom)

	if s.Config() != defaults {
		t.Error("预设未加载时配置不应变化")
	}
}
