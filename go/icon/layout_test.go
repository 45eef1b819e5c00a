package icon

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name string
		size int
		want Layout
	}{
		{"reference size", 1024, Layout{Size: 1024, Margin: 61, Radius: 225, Inner: 184, WaveWidth: 76, OutlineWidth: 12}},
		{"half size", 512, Layout{Size: 512, Margin: 30, Radius: 112, Inner: 92, WaveWidth: 38, OutlineWidth: 6}},
		{"small", 64, Layout{Size: 64, Margin: 3, Radius: 14, Inner: 11, WaveWidth: 4, OutlineWidth: 1}},
		{"single pixel uses minimum widths", 1, Layout{Size: 1, Margin: 0, Radius: 0, Inner: 0, WaveWidth: 2, OutlineWidth: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewLayout(tt.size))
		})
	}
}

func TestLayoutScalesMonotonically(t *testing.T) {
	prev := NewLayout(1)
	for size := 2; size <= 2048; size++ {
		l := NewLayout(size)
		require.GreaterOrEqual(t, l.Margin, prev.Margin, "margin at %d", size)
		require.GreaterOrEqual(t, l.Radius, prev.Radius, "radius at %d", size)
		require.GreaterOrEqual(t, l.Inner, prev.Inner, "inner at %d", size)
		require.GreaterOrEqual(t, l.WaveWidth, prev.WaveWidth, "wave width at %d", size)
		require.GreaterOrEqual(t, l.OutlineWidth, prev.OutlineWidth, "outline width at %d", size)
		prev = l
	}
}

func TestLayoutBoxes(t *testing.T) {
	l := NewLayout(1024)
	require.Equal(t, image.Rect(61, 61, 964, 964), l.Box())
	require.Equal(t, image.Rect(3, 3, 62, 62), NewLayout(64).Box())
	require.Equal(t, image.Rect(184, 184, 840, 840), l.InnerBox())
}

func TestLayoutWaveform(t *testing.T) {
	want := []Point{
		{11, 32.84},
		{16.04, 20.24},
		{21.08, 44.6},
		{26.12, 30.74},
		{31.16, 22.76},
		{37.04, 41.24},
		{42.92, 29.48},
		{47.96, 39.56},
		{53, 26.12},
	}
	got := NewLayout(64).Waveform()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("waveform mismatch (-want +got):\n%s", diff)
	}
}
