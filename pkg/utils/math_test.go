package utils

import (
	"math"
	"testing"
)

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 16, 28, 0, 16},
		{"中点", 16, 28, 0.5, 22},
		{"终点", 16, 28, 1, 28},
		{"反向", 100, 12, 0.5, 56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp 测试浮点截断
func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"范围内", 0.3, 0.3},
		{"下界", -1, -1},
		{"低于下界", -3, -1},
		{"高于上界", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, -1, 1); got != tt.expected {
				t.Errorf("Clamp(%v, -1, 1) = %v, 期望 %v", tt.v, got, tt.expected)
			}
		})
	}
}

// TestClampInt 测试整数截断
func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		expected int
	}{
		{"范围内", 50, 50},
		{"低于下界", 0, 8},
		{"高于上界", 150, 100},
		{"上界", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt(tt.v, 8, 100); got != tt.expected {
				t.Errorf("ClampInt(%d, 8, 100) = %d, 期望 %d", tt.v, got, tt.expected)
			}
		})
	}
}
