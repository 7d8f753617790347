package off

import (
	"bufio"
	"fmt"
	"io"
	"off/windfarm"
	"strconv"
)

// DefaultTimeStep 配置未给出 solver.time_step 时使用的仿真步长（s）
const DefaultTimeStep = 4.0

// Load 读取风电场配置，创建风机并以各自入流条件初始化观测点链
func Load(filename string, opts ...windfarm.Option) (*windfarm.WindFarm, error) {
	c, err := windfarm.LoadConfigFile(filename)
	if err != nil {
		return nil, err
	}
	wf, err := c.Build(opts...)
	if err != nil {
		return nil, err
	}
	if err := wf.InitOPs(wf.Settings.Float("time_step", DefaultTimeStep)); err != nil {
		return nil, err
	}
	return wf, nil
}

// Export 导出所有观测点链，每台风机一段，每行一个观测点
func Export(w io.Writer, wf *windfarm.WindFarm) error {
	writer := bufio.NewWriter(w)
	for _, t := range wf.Turbines {
		fmt.Fprintf(writer, "# %s %s %d\n", t.Name, t.OPs.Kind(), t.OPs.Len())
		for i, row := range t.OPs.Rows() {
			writer.WriteString(strconv.Itoa(i))
			for _, v := range row {
				writer.WriteRune(' ')
				writer.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			writer.WriteRune('\n')
		}
	}
	return writer.Flush()
}
