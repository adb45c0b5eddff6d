package particle

import (
	"math"
	"strconv"
	"strings"

	"github.com/gonewx/uforaid/pkg/utils"
)

// Source 粒子参数采样用的随机源
// pkg/utils.Random 满足该接口
type Source interface {
	Float64() float64
}

// Keyframe represents a single keyframe in an animation curve.
// Used for animating particle properties over time (e.g., alpha).
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// ParseValue parses a value string from particle configuration.
// Supports multiple formats:
//   - Fixed value: "1500" → min=1500, max=1500, keyframes=nil
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9, keyframes=nil
//   - Keyframes: "0,1 0.5,0.8 1,0" → keyframes=[{0,1} {0.5,0.8} {1,0}]
//   - Interpolation: "EaseOut 0,1 1,0" → keyframes with interpolation="EaseOut"
//
// Returns:
//   - min, max: Range values (if not keyframes)
//   - keyframes: Parsed keyframe array (if keyframes format)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", etc.)
func ParseValue(s string) (min, max float64, keyframes []Keyframe, interpolation string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, ""
	}

	// Check for range format: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		rangeStr := strings.TrimPrefix(s, "[")
		rangeStr = strings.TrimSuffix(rangeStr, "]")
		parts := strings.Fields(rangeStr)
		if len(parts) == 2 {
			min, err1 := strconv.ParseFloat(parts[0], 64)
			max, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 == nil && err2 == nil {
				if min > max {
					min, max = max, min
				}
				return min, max, nil, ""
			}
		} else if len(parts) == 1 {
			// 单值格式："[value]" - 作为固定值处理
			val, err := strconv.ParseFloat(parts[0], 64)
			if err == nil {
				return val, val, nil, ""
			}
		}
		return 0, 0, nil, ""
	}

	// 插值关键字只能出现在第一个字段
	if fields := strings.Fields(s); len(fields) > 0 && utils.IsEaseName(fields[0]) {
		interpolation = fields[0]
		s = strings.TrimSpace(strings.TrimPrefix(s, fields[0]))
	}

	// Keyframes format: "time,value" pairs
	if strings.Contains(s, ",") {
		for _, part := range strings.Fields(s) {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				continue
			}
			tm, err1 := strconv.ParseFloat(pair[0], 64)
			val, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			keyframes = append(keyframes, Keyframe{Time: tm, Value: val})
		}
		if len(keyframes) > 0 {
			return 0, 0, keyframes, interpolation
		}
		return 0, 0, nil, ""
	}

	// Fixed value format
	value, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return value, value, nil, ""
	}

	return 0, 0, nil, ""
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", etc.)
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	// Clamp t to [0, 1]
	t = math.Max(0, math.Min(1, t))
	ease := utils.EaseByName(interpolation)

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := ease((t - k0.Time) / duration)
			return utils.Lerp(k0.Value, k1.Value, ratio)
		}
	}

	// If t is beyond the last keyframe, return the last value
	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(rng Source, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// Sample 按值字符串采样一个数：固定值直接返回，范围随机取值，
// 关键帧取第一帧的值。
func Sample(rng Source, s string) float64 {
	min, max, keyframes, _ := ParseValue(s)
	if len(keyframes) > 0 {
		return keyframes[0].Value
	}
	return RandomInRange(rng, min, max)
}
