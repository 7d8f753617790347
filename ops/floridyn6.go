package ops

import (
	"off/states"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// 六状态布局中尾流坐标列
const (
	colWakeY = 4
	colWakeZ = 5
)

// OPs6 六状态观测点链：世界坐标 x,y,z 与尾流坐标 x,y,z
// 多占两列内存，换取读取时不必重复做世界/尾流坐标变换。
type OPs6 struct {
	states.States
}

// NewOPs6 创建长度为 numberOfTimeSteps 的六状态观测点链
func NewOPs6(numberOfTimeSteps int) (*OPs6, error) {
	s, err := states.New(numberOfTimeSteps, KindFLORIDyn6.Width())
	if err != nil {
		return nil, err
	}
	return &OPs6{States: s}, nil
}

func (*OPs6) Kind() Kind { return KindFLORIDyn6 }

// GetWorldCoord 返回前三列，尾流坐标列不参与
func (o *OPs6) GetWorldCoord() *mat.Dense { return worldCoord(o.States) }

// InitAllStates 世界坐标与四状态布局一致，尾流坐标 x 写入下游距离；
// 尾流坐标 y,z 置零，由外部的尾流坐标变换负责填充。
func (o *OPs6) InitAllStates(windSpeed, windDirection float64, rotorPos r3.Vec, timeStep float64) {
	initChain(o.States, windSpeed, windDirection, rotorPos)
	zero := make([]float64, o.Len())
	_ = o.SetColumn(colWakeY, zero)
	_ = o.SetColumn(colWakeZ, zero)
}

// WakeCoord 尾流坐标系下的坐标 N×3
func (o *OPs6) WakeCoord() *mat.Dense {
	m, _ := o.Columns(colDW, colWakeZ+1)
	return m
}
