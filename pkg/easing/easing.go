// Package easing 提供动画缓动函数
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 大多数函数的返回值也在 [0, 1] 内，但 Elastic、Bounce 等
// 弹性曲线允许越界回弹。
//
// 参考：https://easings.net/
package easing

import "math"

// Linear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func Linear(t float64) float64 {
	return t
}

// InQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"飞向目标"动画）
// 公式：f(t) = 1 - (1-t)³
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutExpo 指数缓出
// 特点：开始非常快，结束非常慢
// 公式：f(t) = 1 - 2^(-10t)
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1] 范围内
// 供各策略在把位置值转换为进度值时使用
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
