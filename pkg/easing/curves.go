package easing

import "math"

// 本文件提供带参数的缓动曲线构造器。
// 构造器返回无状态的纯函数，可以在多个动画间安全共享。

// CubicBezier 构造三次贝塞尔缓动曲线
//
// 控制点为 (0,0)、(x1,y1)、(x2,y2)、(1,1)。采用简化公式，
// 将参数 t 直接作为水平分量（近似 x(t) = t），只计算纵向分量：
//
//	y(t) = 3(1-t)²t·y1 + 3(1-t)t²·y2 + t³
//
// x1、x2 仅为与标准 CSS cubic-bezier 签名保持一致而保留。
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	_ = x1
	_ = x2
	return func(t float64) float64 {
		u := 1 - t
		return 3*u*u*t*y1 + 3*u*t*t*y2 + t*t*t
	}
}

// Spring 构造弹簧缓动曲线
//
// tension 控制衰减速度，friction 控制振荡幅度：
//
//	f(t) = 1 - e^(-tension·t)·sin(2π·t)·friction
func Spring(tension, friction float64) func(float64) float64 {
	return func(t float64) float64 {
		return 1 - math.Exp(-tension*t)*math.Sin(2*math.Pi*t)*friction
	}
}

// Bounce 弹跳缓出曲线
//
// 标准四段二次方 bounce-out 曲线，分段点为
// t = 1/2.75、2/2.75、2.5/2.75。
func Bounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Elastic 构造弹性缓动曲线
//
// amplitude 控制振荡幅度，period 控制振荡周期。
// 0 和 1 是固定点，其余位置：
//
//	f(t) = -(amplitude·2^(-10(t-1))·sin((t-1-period/4)·2π/period)) + 1
func Elastic(amplitude, period float64) func(float64) float64 {
	return func(t float64) float64 {
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		return -(amplitude * math.Pow(2, -10*(t-1)) * math.Sin((t-1-period/4)*2*math.Pi/period)) + 1
	}
}
