package windfarm

import (
	"time"

	"github.com/spf13/cast"
)

// Settings 求解器设置，键为设置名，值为任意类型
// 取值时按需转换，缺失或无法转换时返回默认值。
type Settings map[string]any

// Float 浮点设置
func (s Settings) Float(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

// Int 整数设置
func (s Settings) Int(key string, def int) int {
	v, ok := s[key]
	if !ok {
		return def
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return i
}

// String 字符串设置
func (s Settings) String(key string, def string) string {
	v, ok := s[key]
	if !ok {
		return def
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return def
	}
	return str
}

// Bool 布尔设置
func (s Settings) Bool(key string, def bool) bool {
	v, ok := s[key]
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// Duration 时长设置，纯数字按秒处理
func (s Settings) Duration(key string, def time.Duration) time.Duration {
	v, ok := s[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int, int64, float64:
		return time.Duration(cast.ToFloat64(n) * float64(time.Second))
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return def
	}
	return d
}
