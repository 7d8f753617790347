package debug

import (
	"encoding/json"
	"io"
	"off/windfarm"

	"gonum.org/v1/gonum/mat"
)

// Record 记录观测点链历史
type Record struct {
	Turbines []string         // 风机列表
	Kinds    []string         // 观测点布局
	Steps    []int            // 时间步列
	World    [][][][3]float64 // 世界坐标：时间步/风机/观测点
}

// Init 初始化风机信息并清空历史
func (list *Record) Init(wf *windfarm.WindFarm) {
	list.Turbines = list.Turbines[:0]
	list.Kinds = list.Kinds[:0]
	for _, t := range wf.Turbines {
		list.Turbines = append(list.Turbines, t.Name)
		list.Kinds = append(list.Kinds, t.OPs.Kind().String())
	}
	list.Steps = nil
	list.World = nil
}

// Update 记录当前时间步所有观测点的世界坐标
func (list *Record) Update(wf *windfarm.WindFarm) {
	list.Steps = append(list.Steps, wf.TimeStep)
	snap := make([][][3]float64, len(wf.Turbines))
	for i, t := range wf.Turbines {
		snap[i] = points(t.OPs.GetWorldCoord())
	}
	list.World = append(list.World, snap)
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

// points N×3 矩阵转坐标列表
func points(m *mat.Dense) [][3]float64 {
	r, _ := m.Dims()
	out := make([][3]float64, r)
	for i := range out {
		out[i] = [3]float64{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
	}
	return out
}
