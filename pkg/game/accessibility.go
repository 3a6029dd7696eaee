package game

// ReducedMotionQuery 是无障碍服务的抽象
//
// 引擎只在策略激活时（类型切换、重新启用、过渡开始）查询一次，
// 不做持续轮询。
type ReducedMotionQuery interface {
	// ReducedMotionRequested 返回系统是否要求减弱动态效果
	ReducedMotionRequested() bool
}

// StaticReducedMotion 是 ReducedMotionQuery 的常量实现
// 用于测试和没有系统级无障碍查询的平台
type StaticReducedMotion bool

// ReducedMotionRequested 返回固定值
func (s StaticReducedMotion) ReducedMotionRequested() bool { return bool(s) }
