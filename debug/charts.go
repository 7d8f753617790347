package debug

import (
	"fmt"
	"io"
	"off/windfarm"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// 默认图像尺寸
const (
	defaultWidth  = 16 * vg.Centimeter
	defaultHeight = 12 * vg.Centimeter
)

// Charts 观测点链俯视图绘制
type Charts struct {
	Title  string    // 标题
	Width  vg.Length // 图像宽度
	Height vg.Length // 图像高度
}

// Plot 生成所有风机观测点链的 x-y 俯视图，转子位置单独标记
func (c *Charts) Plot(wf *windfarm.WindFarm) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	if p.Title.Text == "" {
		p.Title.Text = "Observation points"
	}
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Add(plotter.NewGrid())

	rotors := make(plotter.XYs, 0, len(wf.Turbines))
	for i, t := range wf.Turbines {
		xys := chainXYs(t.OPs.GetWorldCoord())
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("debug: turbine %s: %w", t.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(1.5)
		p.Add(line, points)
		p.Legend.Add(t.Name, line, points)
		rotors = append(rotors, plotter.XY{X: t.RotorPos.X, Y: t.RotorPos.Y})
	}
	if len(rotors) > 0 {
		s, err := plotter.NewScatter(rotors)
		if err != nil {
			return nil, fmt.Errorf("debug: rotors: %w", err)
		}
		s.Shape = draw.CrossGlyph{}
		s.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add("rotor", s)
	}
	return p, nil
}

// Render 按格式（png、svg、pdf 等）输出俯视图
func (c *Charts) Render(w io.Writer, wf *windfarm.WindFarm, format string) error {
	p, err := c.Plot(wf)
	if err != nil {
		return err
	}
	width, height := c.Width, c.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// chainXYs 取世界坐标前两列
func chainXYs(world *mat.Dense) plotter.XYs {
	r, _ := world.Dims()
	xys := make(plotter.XYs, r)
	for i := range xys {
		xys[i].X = world.At(i, 0)
		xys[i].Y = world.At(i, 1)
	}
	return xys
}
