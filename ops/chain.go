package ops

import (
	"math"
	"off/states"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// 各布局共用的列索引
const (
	colX  = 0 // 世界坐标 x
	colY  = 1 // 世界坐标 y
	colZ  = 2 // 世界坐标 z
	colDW = 3 // 下游距离（6状态布局中即尾流坐标 x）
)

// downstream 生成下游距离序列 dw[i] = i*windSpeed
func downstream(n int, windSpeed float64) []float64 {
	dw := make([]float64, n)
	for i := range dw {
		dw[i] = float64(i) * windSpeed
	}
	return dw
}

// initChain 沿风向写入直线观测点链的世界坐标与下游距离，返回下游距离序列
func initChain(s states.States, windSpeed, windDirection float64, rotorPos r3.Vec) []float64 {
	n := s.Len()
	dw := downstream(n, windSpeed)
	phi := windDirection * math.Pi / 180

	x := make([]float64, n)
	floats.ScaleTo(x, math.Cos(phi), dw)
	floats.AddConst(rotorPos.X, x)

	y := make([]float64, n)
	floats.ScaleTo(y, math.Sin(phi), dw)
	floats.AddConst(rotorPos.Y, y)

	z := make([]float64, n)
	floats.AddConst(rotorPos.Z, z)

	// 列长度与链长度一致，不会出错
	_ = s.SetColumn(colX, x)
	_ = s.SetColumn(colY, y)
	_ = s.SetColumn(colZ, z)
	_ = s.SetColumn(colDW, dw)
	return dw
}

// worldCoord 取前三列世界坐标
func worldCoord(s states.States) *mat.Dense {
	m, _ := s.Columns(colX, colZ+1)
	return m
}
