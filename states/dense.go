package states

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/mat"
)

// dense 基于连续行优先缓冲区的状态表实现
type dense struct {
	data *mat.Dense // N×W 状态表
	n, w int        // 链长度与状态数量
}

// New 创建 numberOfTimeSteps×numberOfStates 的全零状态表
func New(numberOfTimeSteps, numberOfStates int) (States, error) {
	if numberOfTimeSteps <= 0 || numberOfStates <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidShape, numberOfTimeSteps, numberOfStates)
	}
	return &dense{
		data: mat.NewDense(numberOfTimeSteps, numberOfStates, nil),
		n:    numberOfTimeSteps,
		w:    numberOfStates,
	}, nil
}

// Len 返回链长度
func (d *dense) Len() int { return d.n }

// Width 返回每行状态数量
func (d *dense) Width() int { return d.w }

// String 返回状态表的字符串表示
func (d *dense) String() string {
	return fmt.Sprintf("%v", mat.Formatted(d.data, mat.Squeeze()))
}

// checkRow 校验行索引
func (d *dense) checkRow(index int) error {
	if index < 0 || index >= d.n {
		return fmt.Errorf("%w: row %d not in [0,%d)", ErrIndexOutOfRange, index, d.n)
	}
	return nil
}

// checkCol 校验列索引
func (d *dense) checkCol(j int) error {
	if j < 0 || j >= d.w {
		return fmt.Errorf("%w: column %d not in [0,%d)", ErrIndexOutOfRange, j, d.w)
	}
	return nil
}

// checkWidth 校验行宽度
func (d *dense) checkWidth(row []float64) error {
	if len(row) != d.w {
		return fmt.Errorf("%w: row has %d states, want %d", ErrShapeMismatch, len(row), d.w)
	}
	return nil
}

// GetState 获取指定位置的状态行
func (d *dense) GetState(index int) ([]float64, error) {
	if err := d.checkRow(index); err != nil {
		return nil, err
	}
	return mat.Row(nil, index, d.data), nil
}

// SetState 覆盖指定位置的状态行
func (d *dense) SetState(index int, row []float64) error {
	if err := d.checkRow(index); err != nil {
		return err
	}
	if err := d.checkWidth(row); err != nil {
		return err
	}
	d.data.SetRow(index, row)
	return nil
}

// GetCurrentState 获取最新状态（第0行）
func (d *dense) GetCurrentState() []float64 {
	return mat.Row(nil, 0, d.data)
}

// SetCurrentState 覆盖最新状态（第0行）
func (d *dense) SetCurrentState(row []float64) error {
	return d.SetState(0, row)
}

// Rows 按链顺序遍历所有状态行
func (d *dense) Rows() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(i, mat.Row(nil, i, d.data)) {
				return
			}
		}
	}
}

// GetAllStates 获取整表副本
func (d *dense) GetAllStates() *mat.Dense {
	return mat.DenseCopyOf(d.data)
}

// SetAllStates 整表替换，形状不一致时不做任何修改
func (d *dense) SetAllStates(table mat.Matrix) error {
	r, c := table.Dims()
	if r != d.n || c != d.w {
		return fmt.Errorf("%w: table is %d×%d, want %d×%d", ErrShapeMismatch, r, c, d.n, d.w)
	}
	d.data.Copy(table)
	return nil
}

// Fill 用同一行填充整条链
func (d *dense) Fill(row []float64) error {
	if err := d.checkWidth(row); err != nil {
		return err
	}
	for i := 0; i < d.n; i++ {
		d.data.SetRow(i, row)
	}
	return nil
}

// Column 获取第j列
func (d *dense) Column(j int) ([]float64, error) {
	if err := d.checkCol(j); err != nil {
		return nil, err
	}
	return mat.Col(nil, j, d.data), nil
}

// SetColumn 覆盖第j列
func (d *dense) SetColumn(j int, col []float64) error {
	if err := d.checkCol(j); err != nil {
		return err
	}
	if len(col) != d.n {
		return fmt.Errorf("%w: column has %d rows, want %d", ErrShapeMismatch, len(col), d.n)
	}
	d.data.SetCol(j, col)
	return nil
}

// Columns 获取 [from,to) 列组成的子表副本
func (d *dense) Columns(from, to int) (*mat.Dense, error) {
	if from < 0 || to > d.w || from >= to {
		return nil, fmt.Errorf("%w: columns [%d,%d) not in [0,%d)", ErrIndexOutOfRange, from, to, d.w)
	}
	return mat.DenseCopyOf(d.data.Slice(0, d.n, from, to)), nil
}

// shift 整链后移一行，最旧一行被覆盖
func (d *dense) shift() {
	raw := d.data.RawMatrix()
	// 新建的 Dense 行跨度等于列数，缓冲区连续
	copy(raw.Data[raw.Stride:d.n*raw.Stride], raw.Data[:(d.n-1)*raw.Stride])
}

// IterateStates 推进一步：所有行后移，row 成为第0行
func (d *dense) IterateStates(row []float64) error {
	if err := d.checkWidth(row); err != nil {
		return err
	}
	d.shift()
	d.data.SetRow(0, row)
	return nil
}

// IterateStatesAndKeep 推进一步，第0行保留原值（第0、1行相同）
func (d *dense) IterateStatesAndKeep() {
	d.shift()
}
