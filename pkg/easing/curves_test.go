package easing

import (
	"math"
	"testing"
)

// TestCubicBezier 测试贝塞尔曲线的端点与单调性
func TestCubicBezier(t *testing.T) {
	f := CubicBezier(0.25, 0.1, 0.25, 1.0)

	t.Run("端点固定", func(t *testing.T) {
		if got := f(0); math.Abs(got) > 0.001 {
			t.Errorf("f(0) = %v, 期望 0", got)
		}
		if got := f(1); math.Abs(got-1) > 0.001 {
			t.Errorf("f(1) = %v, 期望 1", got)
		}
	})

	t.Run("简化公式", func(t *testing.T) {
		// y(t) = 3(1-t)²t·y1 + 3(1-t)t²·y2 + t³
		y1, y2 := 0.1, 1.0
		for _, tv := range []float64{0.2, 0.5, 0.8} {
			u := 1 - tv
			want := 3*u*u*tv*y1 + 3*u*tv*tv*y2 + tv*tv*tv
			if got := f(tv); math.Abs(got-want) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tv, got, want)
			}
		}
	})

	t.Run("单调递增", func(t *testing.T) {
		prev := f(0)
		for tv := 0.05; tv <= 1.0; tv += 0.05 {
			cur := f(tv)
			if cur < prev-0.001 {
				t.Errorf("f(%v) = %v 出现回退（前值 %v）", tv, cur, prev)
			}
			prev = cur
		}
	})
}

// TestSpring 测试弹簧曲线
func TestSpring(t *testing.T) {
	f := Spring(6.0, 0.25)

	// f(t) = 1 - e^(-tension·t)·sin(2π·t)·friction
	t.Run("公式复现", func(t *testing.T) {
		for _, tv := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
			want := 1 - math.Exp(-6.0*tv)*math.Sin(2*math.Pi*tv)*0.25
			if got := f(tv); math.Abs(got-want) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tv, got, want)
			}
		}
	})

	t.Run("终点收敛", func(t *testing.T) {
		if got := f(1.0); math.Abs(got-1) > 0.01 {
			t.Errorf("f(1) = %v, 期望收敛到 1", got)
		}
	})
}

// TestBounce 测试弹跳曲线的分段与端点
func TestBounce(t *testing.T) {
	t.Run("端点固定", func(t *testing.T) {
		if got := Bounce(0); math.Abs(got) > 0.001 {
			t.Errorf("Bounce(0) = %v, 期望 0", got)
		}
		if got := Bounce(1); math.Abs(got-1) > 0.001 {
			t.Errorf("Bounce(1) = %v, 期望 1", got)
		}
	})

	t.Run("第一段顶点", func(t *testing.T) {
		// 第一段在 t = 1/2.75 处到达 1
		if got := Bounce(1 / 2.75); math.Abs(got-1) > 0.001 {
			t.Errorf("Bounce(1/2.75) = %v, 期望 1", got)
		}
	})

	t.Run("回弹不越过 1", func(t *testing.T) {
		for tv := 0.0; tv <= 1.0; tv += 0.01 {
			if got := Bounce(tv); got > 1.001 {
				t.Errorf("Bounce(%v) = %v 超过 1", tv, got)
			}
		}
	})

	t.Run("分段连续", func(t *testing.T) {
		// 在分段点两侧取极近的值，检查无跳变
		for _, bp := range []float64{1 / 2.75, 2 / 2.75, 2.5 / 2.75} {
			lo := Bounce(bp - 1e-6)
			hi := Bounce(bp + 1e-6)
			if math.Abs(hi-lo) > 0.001 {
				t.Errorf("Bounce 在 %v 处不连续: %v vs %v", bp, lo, hi)
			}
		}
	})
}

// TestElastic 测试弹性曲线
func TestElastic(t *testing.T) {
	f := Elastic(1.0, 0.3)

	t.Run("固定点", func(t *testing.T) {
		if got := f(0); got != 0 {
			t.Errorf("f(0) = %v, 期望 0", got)
		}
		if got := f(1); got != 1 {
			t.Errorf("f(1) = %v, 期望 1", got)
		}
	})

	t.Run("公式复现", func(t *testing.T) {
		amplitude, period := 1.0, 0.3
		for _, tv := range []float64{0.1, 0.4, 0.7, 0.95} {
			want := -(amplitude * math.Pow(2, -10*(tv-1)) *
				math.Sin((tv-1-period/4)*2*math.Pi/period)) + 1
			if got := f(tv); math.Abs(got-want) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tv, got, want)
			}
		}
	})
}

// TestTypeFunc 测试枚举到函数的映射
func TestTypeFunc(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
	}{
		{"Linear", TypeLinear},
		{"EaseIn", TypeEaseIn},
		{"EaseOut", TypeEaseOut},
		{"EaseInOut", TypeEaseInOut},
		{"CubicBezier", TypeCubicBezier},
		{"Spring", TypeSpring},
		{"Bounce", TypeBounce},
		{"Elastic", TypeElastic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.typ.Func()
			if f == nil {
				t.Fatalf("%s.Func() 返回 nil", tt.typ)
			}
			// 所有曲线的终点都应接近 1（Spring 允许微小残余振荡）
			if got := f(1.0); math.Abs(got-1) > 0.01 {
				t.Errorf("%s 终点 = %v, 期望接近 1", tt.typ, got)
			}
		})
	}
}

// TestParse 测试缓动名称解析
func TestParse(t *testing.T) {
	if got := Parse("EaseInOut"); got != TypeEaseInOut {
		t.Errorf("Parse(EaseInOut) = %v", got)
	}
	if got := Parse("bounce"); got != TypeBounce {
		t.Errorf("Parse(bounce) = %v", got)
	}
	// 未知名称回退为线性
	if got := Parse("whatever"); got != TypeLinear {
		t.Errorf("Parse(whatever) = %v, 期望 TypeLinear", got)
	}
}
