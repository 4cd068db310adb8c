package utils_test

import (
	"testing"

	"unity-bridge/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"String", "Assets/A.cs", "Assets/A.cs"},
		{"Nil", nil, ""},
		{"Bytes", []byte("x"), "x"},
		{"Number", 42, "42"},
		{"Bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToString(tt.in))
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 7, 7},
		{"JSONNumber", float64(25), 25},
		{"Truncated", 3.9, 3},
		{"String", "12", 12},
		{"Garbage", "twelve", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}
