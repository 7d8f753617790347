package ops

import (
	"testing"

	"off/states"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

// newBoth 创建两种布局的同长度观测点链
func newBoth(t *testing.T, n int) []ObservationPoints {
	t.Helper()
	var list []ObservationPoints
	for _, k := range []Kind{KindFLORIDyn4, KindFLORIDyn6} {
		o, err := New(k, n)
		require.NoError(t, err)
		list = append(list, o)
	}
	return list
}

func TestNewShape(t *testing.T) {
	for _, n := range []int{1, 5, 300} {
		for _, o := range newBoth(t, n) {
			r, c := o.GetAllStates().Dims()
			assert.Equal(t, n, r)
			assert.Equal(t, o.Kind().Width(), c)
			assert.Equal(t, o.Kind().Width(), o.Width())

			r, c = o.GetWorldCoord().Dims()
			assert.Equal(t, n, r)
			assert.Equal(t, 3, c)
		}
	}

	_, err := New(Kind(9), 5)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = New(KindFLORIDyn4, 0)
	assert.ErrorIs(t, err, states.ErrInvalidShape)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("FLORIDynOPs4")
	require.NoError(t, err)
	assert.Equal(t, KindFLORIDyn4, k)

	k, err = ParseKind(" 6 ")
	require.NoError(t, err)
	assert.Equal(t, KindFLORIDyn6, k)
	assert.Equal(t, "FLORIDynOPs6", k.String())

	_, err = ParseKind("OPs5")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, 0, Kind(0).Width())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

// TestInitScenario 风向 0°、风速 8m/s 的五点链
func TestInitScenario(t *testing.T) {
	rotor := r3.Vec{X: 100, Y: 200, Z: 50}
	for _, o := range newBoth(t, 5) {
		o.InitAllStates(8, 0, rotor, 1)
		world := o.GetWorldCoord()
		assert.Equal(t, []float64{100, 108, 116, 124, 132}, mat.Col(nil, 0, world))
		assert.Equal(t, []float64{200, 200, 200, 200, 200}, mat.Col(nil, 1, world))
		assert.Equal(t, []float64{50, 50, 50, 50, 50}, mat.Col(nil, 2, world))

		dw, err := o.Column(3)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 8, 16, 24, 32}, dw)
	}
}

// TestWorldCoordMatchesTable 世界坐标等于整表前三列
func TestWorldCoordMatchesTable(t *testing.T) {
	for _, o := range newBoth(t, 7) {
		o.InitAllStates(9.5, 37, r3.Vec{X: -3, Y: 12, Z: 90}, 4)
		all := o.GetAllStates()
		assert.True(t, mat.Equal(all.Slice(0, 7, 0, 3), o.GetWorldCoord()))
	}
}

func TestInitIdempotent(t *testing.T) {
	for _, o := range newBoth(t, 20) {
		o.InitAllStates(7.2, 255, r3.Vec{X: 600, Y: 2400, Z: 119}, 4)
		first := o.GetAllStates()
		o.InitAllStates(7.2, 255, r3.Vec{X: 600, Y: 2400, Z: 119}, 4)
		assert.True(t, mat.Equal(first, o.GetAllStates()))
	}
}

// TestInitRamp 下游距离从0开始，间距恒为风速
func TestInitRamp(t *testing.T) {
	o, err := NewOPs4(50)
	require.NoError(t, err)
	o.InitAllStates(6.5, 123, r3.Vec{X: 1, Y: 2, Z: 3}, 10)
	dw := o.DownstreamDistance()
	assert.Equal(t, 0.0, dw[0])
	for i := 1; i < len(dw); i++ {
		assert.InDelta(t, 6.5, dw[i]-dw[i-1], tol)
	}
}

// TestInitDirection 0°沿 x 轴，90°沿 y 轴
func TestInitDirection(t *testing.T) {
	rotor := r3.Vec{X: 10, Y: 20, Z: 30}
	for _, o := range newBoth(t, 10) {
		o.InitAllStates(5, 0, rotor, 1)
		for i, row := range o.Rows() {
			assert.InDelta(t, rotor.Y, row[1], tol)
			if i > 0 {
				prev, _ := o.GetState(i - 1)
				assert.Greater(t, row[0], prev[0])
			}
		}

		o.InitAllStates(5, 90, rotor, 1)
		for i, row := range o.Rows() {
			assert.InDelta(t, rotor.X, row[0], tol)
			if i > 0 {
				prev, _ := o.GetState(i - 1)
				assert.Greater(t, row[1], prev[1])
			}
		}
	}
}

func TestInitHeight(t *testing.T) {
	for _, o := range newBoth(t, 12) {
		o.InitAllStates(11, 300, r3.Vec{X: 0, Y: 0, Z: 119}, 1)
		for _, z := range mat.Col(nil, 2, o.GetWorldCoord()) {
			assert.Equal(t, 119.0, z)
		}
	}
}

// TestOPs6WakeColumns 尾流坐标 y,z 在初始化后为零
func TestOPs6WakeColumns(t *testing.T) {
	o, err := NewOPs6(4)
	require.NoError(t, err)
	require.NoError(t, o.Fill([]float64{1, 1, 1, 1, 1, 1}))

	o.InitAllStates(3, 45, r3.Vec{}, 1)
	wake := o.WakeCoord()
	assert.Equal(t, []float64{0, 3, 6, 9}, mat.Col(nil, 0, wake))
	assert.Equal(t, []float64{0, 0, 0, 0}, mat.Col(nil, 1, wake))
	assert.Equal(t, []float64{0, 0, 0, 0}, mat.Col(nil, 2, wake))
}

// TestChainErrors 越界与形状错误透传到观测点链
func TestChainErrors(t *testing.T) {
	for _, o := range newBoth(t, 5) {
		o.InitAllStates(8, 0, r3.Vec{X: 100, Y: 200, Z: 50}, 1)
		before := o.GetAllStates()

		_, err := o.GetState(5)
		assert.ErrorIs(t, err, states.ErrIndexOutOfRange)

		err = o.SetAllStates(mat.NewDense(5, o.Width()+1, nil))
		assert.ErrorIs(t, err, states.ErrShapeMismatch)
		assert.True(t, mat.Equal(before, o.GetAllStates()))
	}
}

// TestAdvance 推进后新释放点位于第0行，原链整体后移
func TestAdvance(t *testing.T) {
	o, err := NewOPs4(4)
	require.NoError(t, err)
	o.InitAllStates(8, 0, r3.Vec{X: 100, Y: 200, Z: 50}, 1)

	require.NoError(t, o.IterateStates([]float64{100, 200, 50, 0}))
	assert.Equal(t, []float64{0, 0, 8, 16}, o.DownstreamDistance())
}
