package ops

import (
	"off/states"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// OPs4 四状态观测点链：世界坐标 x,y,z 与尾流坐标系中的下游距离
type OPs4 struct {
	states.States
}

// NewOPs4 创建长度为 numberOfTimeSteps 的四状态观测点链
func NewOPs4(numberOfTimeSteps int) (*OPs4, error) {
	s, err := states.New(numberOfTimeSteps, KindFLORIDyn4.Width())
	if err != nil {
		return nil, err
	}
	return &OPs4{States: s}, nil
}

func (*OPs4) Kind() Kind { return KindFLORIDyn4 }

// GetWorldCoord 直接返回前三列
func (o *OPs4) GetWorldCoord() *mat.Dense { return worldCoord(o.States) }

// InitAllStates 生成沿风向、间距为 windSpeed 的直线观测点链，所有点位于轮毂高度
func (o *OPs4) InitAllStates(windSpeed, windDirection float64, rotorPos r3.Vec, timeStep float64) {
	initChain(o.States, windSpeed, windDirection, rotorPos)
}

// DownstreamDistance 各观测点距转子的下游距离
func (o *OPs4) DownstreamDistance() []float64 {
	dw, _ := o.Column(colDW)
	return dw
}
