package ops

import (
	"fmt"
	"strings"
)

// Kind 观测点状态布局
type Kind int

const (
	KindFLORIDyn4 Kind = iota + 1 // x,y,z,下游距离
	KindFLORIDyn6                 // x,y,z,尾流坐标 x,y,z
)

// Width 布局对应的状态数量
func (k Kind) Width() int {
	switch k {
	case KindFLORIDyn4:
		return 4
	case KindFLORIDyn6:
		return 6
	}
	return 0
}

// String 布局名称
func (k Kind) String() string {
	switch k {
	case KindFLORIDyn4:
		return "FLORIDynOPs4"
	case KindFLORIDyn6:
		return "FLORIDynOPs6"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind 解析配置中的布局名称
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "floridynops4", "ops4", "4":
		return KindFLORIDyn4, nil
	case "floridynops6", "ops6", "6":
		return KindFLORIDyn6, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New 按布局创建长度为 numberOfTimeSteps 的观测点链
func New(kind Kind, numberOfTimeSteps int) (ObservationPoints, error) {
	var (
		o   ObservationPoints
		err error
	)
	switch kind {
	case KindFLORIDyn4:
		o, err = NewOPs4(numberOfTimeSteps)
	case KindFLORIDyn6:
		o, err = NewOPs6(numberOfTimeSteps)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
