package ops

import (
	"off/states"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ObservationPoints 观测点（尾流示踪粒子）链接口
// 继承状态表的行/整表/推进操作，前三列始终为世界坐标 x,y,z。
type ObservationPoints interface {
	states.States

	Kind() Kind                // 状态布局类型
	GetWorldCoord() *mat.Dense // 所有观测点的世界坐标 N×3（副本）

	// InitAllStates 假设风速风向恒定，生成从转子向下游延伸的整条观测点链
	// windSpeed 单位 m/s，windDirection 单位度，rotorPos 为转子世界坐标，
	// timeStep 为仿真步长（s），仅为保持接口一致，不参与计算。
	InitAllStates(windSpeed, windDirection float64, rotorPos r3.Vec, timeStep float64)
}
