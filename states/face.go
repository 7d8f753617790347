package states

import (
	"iter"

	"gonum.org/v1/gonum/mat"
)

// States 时间索引状态表接口
// 每行对应链上的一个位置（第0行为最新释放的点，行号越大越靠下游/越旧），
// 每列对应一个状态量；表的形状在构造时固定为 N×W。
type States interface {
	// 基础属性方法
	Len() int       // 链长度 N（时间步数量）
	Width() int     // 每行状态数量 W
	String() string // 格式化字符串输出

	// 行访问方法
	GetState(index int) ([]float64, error)   // 获取指定位置的状态行（副本）
	SetState(index int, row []float64) error // 覆盖指定位置的状态行
	GetCurrentState() []float64              // 获取第0行（最新状态）
	SetCurrentState(row []float64) error     // 覆盖第0行
	Rows() iter.Seq2[int, []float64]         // 按链顺序 0→N-1 遍历（副本）

	// 整表访问方法
	GetAllStates() *mat.Dense            // 获取整表副本 N×W
	SetAllStates(table mat.Matrix) error // 整表替换（形状必须为 N×W）
	Fill(row []float64) error            // 用同一行填充整条链

	// 列访问方法
	Column(j int) ([]float64, error)          // 获取第j列（副本）
	SetColumn(j int, col []float64) error     // 覆盖第j列
	Columns(from, to int) (*mat.Dense, error) // 获取 [from,to) 列组成的 N×(to-from) 副本

	// 时间推进方法
	IterateStates(row []float64) error // 整链后移一步，row 写入第0行，丢弃最旧一行
	IterateStatesAndKeep()             // 整链后移一步，第0行保持原值
}
