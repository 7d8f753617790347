package states

import "errors"

// 状态表错误定义
var (
	// ErrInvalidShape 构造参数非法（链长度或状态数量不大于0）
	ErrInvalidShape = errors.New("states: invalid shape")
	// ErrShapeMismatch 输入行/列/表与状态表形状不一致
	ErrShapeMismatch = errors.New("states: shape mismatch")
	// ErrIndexOutOfRange 行或列索引越界
	ErrIndexOutOfRange = errors.New("states: index out of range")
)
