package windfarm

import (
	"errors"
	"log/slog"
	"off/turbine"
)

// TimeStepUnset 仿真尚未开始时的时间步计数
const TimeStepUnset = -1

// ErrNoTurbines 风电场中没有风机
var ErrNoTurbines = errors.New("windfarm: no turbines")

// WindFarm 风电场：风机列表、求解器设置与仿真时间步计数
type WindFarm struct {
	Turbines []*turbine.Turbine // 风机列表（按顺序）
	Settings Settings           // 求解器设置
	TimeStep int                // 当前时间步，未开始为 TimeStepUnset

	log *slog.Logger
}

// Option 风电场构造选项
type Option func(*WindFarm)

// WithLogger 注入日志
func WithLogger(l *slog.Logger) Option {
	return func(wf *WindFarm) {
		if l != nil {
			wf.log = l
		}
	}
}

// New 创建风电场
func New(turbines []*turbine.Turbine, settings Settings, opts ...Option) *WindFarm {
	if settings == nil {
		settings = Settings{}
	}
	wf := &WindFarm{
		Turbines: turbines,
		Settings: settings,
		TimeStep: TimeStepUnset,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(wf)
	}
	return wf
}

// Len 风机数量
func (wf *WindFarm) Len() int { return len(wf.Turbines) }

// Turbine 第 i 台风机，越界返回 nil
func (wf *WindFarm) Turbine(i int) *turbine.Turbine {
	if i < 0 || i >= len(wf.Turbines) {
		return nil
	}
	return wf.Turbines[i]
}

// InitOPs 以各风机当前入流条件重建全部观测点链，并把时间步计数置零
func (wf *WindFarm) InitOPs(timeStep float64) error {
	if len(wf.Turbines) == 0 {
		return ErrNoTurbines
	}
	for i, t := range wf.Turbines {
		t.InitOPs(timeStep)
		wf.log.Debug("observation points initialised",
			"turbine", i,
			"name", t.Name,
			"kind", t.OPs.Kind().String(),
			"length", t.OPs.Len(),
			"wind_speed", t.WindSpeed,
			"wind_direction", t.WindDirection,
		)
	}
	wf.TimeStep = 0
	wf.log.Info("wind farm initialised", "turbines", len(wf.Turbines), "time_step", timeStep)
	return nil
}
