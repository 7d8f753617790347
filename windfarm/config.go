package windfarm

import (
	"errors"
	"fmt"
	"io"
	"off/ops"
	"off/turbine"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 风电场配置不合法
var ErrInvalidConfig = errors.New("windfarm: invalid config")

// Config 风电场 YAML 配置
type Config struct {
	Solver   map[string]any  `yaml:"solver"`   // 求解器设置
	OPs      OPsConfig       `yaml:"ops"`      // 观测点链
	Turbines []TurbineConfig `yaml:"turbines"` // 风机列表
}

// OPsConfig 观测点链配置
type OPsConfig struct {
	Kind   string `yaml:"kind"`   // 布局名称，默认 FLORIDynOPs4
	Length int    `yaml:"length"` // 链长度，缺省取 solver.n_op
}

// TurbineConfig 单台风机配置
type TurbineConfig struct {
	Name          string    `yaml:"name"`
	Position      []float64 `yaml:"position"` // 转子中心 x,y,z
	WindSpeed     float64   `yaml:"wind_speed"`
	WindDirection float64   `yaml:"wind_direction"`
}

// LoadConfig 从 YAML 读取配置
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("windfarm: decode config: %w", err)
	}
	return &c, nil
}

// LoadConfigFile 从文件读取配置
func LoadConfigFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Build 按配置创建风电场及各风机的观测点链（链尚未初始化）
func (c *Config) Build(opts ...Option) (*WindFarm, error) {
	if len(c.Turbines) == 0 {
		return nil, ErrNoTurbines
	}
	settings := Settings(c.Solver)
	if settings == nil {
		settings = Settings{}
	}
	kindName := c.OPs.Kind
	if kindName == "" {
		kindName = ops.KindFLORIDyn4.String()
	}
	kind, err := ops.ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	length := c.OPs.Length
	if length == 0 {
		length = settings.Int("n_op", 0)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: observation point chain length %d", ErrInvalidConfig, length)
	}
	turbines := make([]*turbine.Turbine, 0, len(c.Turbines))
	for i, tc := range c.Turbines {
		if len(tc.Position) != 3 {
			return nil, fmt.Errorf("%w: turbine %d position has %d components, want 3", ErrInvalidConfig, i, len(tc.Position))
		}
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("T%d", i)
		}
		pos := r3.Vec{X: tc.Position[0], Y: tc.Position[1], Z: tc.Position[2]}
		t, err := turbine.New(name, pos, kind, length)
		if err != nil {
			return nil, err
		}
		t.SetWind(tc.WindSpeed, tc.WindDirection)
		turbines = append(turbines, t)
	}
	return New(turbines, settings, opts...), nil
}
