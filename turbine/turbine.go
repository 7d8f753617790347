package turbine

import (
	"fmt"
	"off/ops"

	"gonum.org/v1/gonum/spatial/r3"
)

// Turbine 风机：当前入流条件与自身独占的观测点链
type Turbine struct {
	Name          string                // 风机名称
	RotorPos      r3.Vec                // 转子中心世界坐标
	WindSpeed     float64               // 当前风速 m/s
	WindDirection float64               // 当前风向 度
	OPs           ops.ObservationPoints // 观测点链
}

// New 创建风机并分配指定布局与长度的观测点链
func New(name string, pos r3.Vec, kind ops.Kind, chainLength int) (*Turbine, error) {
	chain, err := ops.New(kind, chainLength)
	if err != nil {
		return nil, fmt.Errorf("turbine %s: %w", name, err)
	}
	return &Turbine{Name: name, RotorPos: pos, OPs: chain}, nil
}

// SetWind 更新入流条件
func (t *Turbine) SetWind(speed, direction float64) {
	t.WindSpeed = speed
	t.WindDirection = direction
}

// InitOPs 以当前入流条件重建整条观测点链（冷启动/重启）
func (t *Turbine) InitOPs(timeStep float64) {
	t.OPs.InitAllStates(t.WindSpeed, t.WindDirection, t.RotorPos, timeStep)
}

// String 格式化输出
func (t *Turbine) String() string {
	return fmt.Sprintf("%s@(%g,%g,%g) ws=%g wd=%g %v[%d]",
		t.Name, t.RotorPos.X, t.RotorPos.Y, t.RotorPos.Z,
		t.WindSpeed, t.WindDirection, t.OPs.Kind(), t.OPs.Len())
}
