// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Vector2 二维向量（屏幕坐标，像素）
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 构造 Vector2
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add 分量相加
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 分量相减（v - o）
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// InRect 检测点是否在矩形内
//
// 使用半开区间：左/上边界包含，右/下边界不包含。
// 宽或高 <= 0 时任何点都不在矩形内。
//
// 参数：
//   - x, y: 矩形左上角
//   - w, h: 矩形宽高
func (v Vector2) InRect(x, y, w, h float64) bool {
	return v.X >= x && v.X < x+w &&
		v.Y >= y && v.Y < y+h
}
