package easing

// 默认曲线参数
// CubicBezier 取 CSS 标准 "ease" 控制点，Spring/Elastic 取手感较温和的参数
const (
	defaultSpringTension    = 6.0
	defaultSpringFriction   = 0.25
	defaultElasticAmplitude = 1.0
	defaultElasticPeriod    = 0.3
)

// Type 定义缓动曲线的枚举标识
// 序号值会被写入设置与预设文件，新曲线只能追加在末尾
type Type int

const (
	// TypeLinear 线性
	TypeLinear Type = iota
	// TypeEaseIn 三次方缓入
	TypeEaseIn
	// TypeEaseOut 三次方缓出
	TypeEaseOut
	// TypeEaseInOut 三次方缓入缓出
	TypeEaseInOut
	// TypeCubicBezier 标准贝塞尔 "ease" 曲线
	TypeCubicBezier
	// TypeSpring 弹簧曲线
	TypeSpring
	// TypeBounce 弹跳曲线
	TypeBounce
	// TypeElastic 弹性曲线
	TypeElastic
)

// String 返回缓动类型的字符串表示
func (e Type) String() string {
	switch e {
	case TypeLinear:
		return "Linear"
	case TypeEaseIn:
		return "EaseIn"
	case TypeEaseOut:
		return "EaseOut"
	case TypeEaseInOut:
		return "EaseInOut"
	case TypeCubicBezier:
		return "CubicBezier"
	case TypeSpring:
		return "Spring"
	case TypeBounce:
		return "Bounce"
	case TypeElastic:
		return "Elastic"
	default:
		return "Unknown"
	}
}

// Parse 将字符串解析为缓动类型
// 解析失败时返回 TypeLinear（配置文件的降级默认值）
func Parse(name string) Type {
	switch name {
	case "Linear", "linear":
		return TypeLinear
	case "EaseIn", "easeIn":
		return TypeEaseIn
	case "EaseOut", "easeOut":
		return TypeEaseOut
	case "EaseInOut", "easeInOut":
		return TypeEaseInOut
	case "CubicBezier", "cubicBezier":
		return TypeCubicBezier
	case "Spring", "spring":
		return TypeSpring
	case "Bounce", "bounce":
		return TypeBounce
	case "Elastic", "elastic":
		return TypeElastic
	default:
		return TypeLinear
	}
}

// Func 返回该类型对应的缓动函数
//
// 带参数的曲线使用包级默认参数；需要自定义参数时
// 直接调用 CubicBezier、Spring、Elastic 构造器。
func (e Type) Func() func(float64) float64 {
	switch e {
	case TypeEaseIn:
		return InCubic
	case TypeEaseOut:
		return OutCubic
	case TypeEaseInOut:
		return InOutCubic
	case TypeCubicBezier:
		return CubicBezier(0.25, 0.1, 0.25, 1.0)
	case TypeSpring:
		return Spring(defaultSpringTension, defaultSpringFriction)
	case TypeBounce:
		return Bounce
	case TypeElastic:
		return Elastic(defaultElasticAmplitude, defaultElasticPeriod)
	default:
		return Linear
	}
}
