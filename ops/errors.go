package ops

import "errors"

// ErrUnknownKind 未知的观测点布局类型
var ErrUnknownKind = errors.New("ops: unknown observation point kind")
