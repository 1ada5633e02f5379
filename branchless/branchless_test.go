package branchless

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsInt8Exhaustive(t *testing.T) {
	for v := math.MinInt8 + 1; v <= math.MaxInt8; v++ {
		want := int8(v)
		if want < 0 {
			want = -want
		}
		if got := Abs(int8(v)); got != want {
			t.Fatalf("Abs(%d) = %d, want %d", v, got, want)
		}
	}
}

// The most negative value of each width has no positive counterpart and
// wraps to itself.
func TestAbsMostNegativeWraps(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), Abs(int8(math.MinInt8)))
	assert.Equal(t, int16(math.MinInt16), Abs(int16(math.MinInt16)))
	assert.Equal(t, int32(math.MinInt32), Abs(int32(math.MinInt32)))
	assert.Equal(t, int64(math.MinInt64), Abs(int64(math.MinInt64)))
	assert.Equal(t, math.MinInt, Abs(math.MinInt))
}

func TestAbsWidths(t *testing.T) {
	assert.Equal(t, int16(12345), Abs(int16(-12345)))
	assert.Equal(t, int32(0), Abs(int32(0)))
	assert.Equal(t, int64(math.MaxInt64), Abs(int64(math.MinInt64+1)))
	assert.Equal(t, 42, Abs(-42))
	assert.Equal(t, 42, Abs(42))
}

func TestMinMaxInt8Exhaustive(t *testing.T) {
	for x := math.MinInt8; x <= math.MaxInt8; x++ {
		for y := math.MinInt8; y <= math.MaxInt8; y++ {
			wantMin, wantMax := int8(y), int8(x)
			if x < y {
				wantMin, wantMax = int8(x), int8(y)
			}
			if got := Min(int8(x), int8(y)); got != wantMin {
				t.Fatalf("Min(%d, %d) = %d, want %d", x, y, got, wantMin)
			}
			if got := Max(int8(x), int8(y)); got != wantMax {
				t.Fatalf("Max(%d, %d) = %d, want %d", x, y, got, wantMax)
			}
		}
	}
}

func TestMinMaxUint8Exhaustive(t *testing.T) {
	for x := 0; x <= math.MaxUint8; x++ {
		for y := 0; y <= math.MaxUint8; y++ {
			wantMin, wantMax := uint8(y), uint8(x)
			if x < y {
				wantMin, wantMax = uint8(x), uint8(y)
			}
			if got := Min(uint8(x), uint8(y)); got != wantMin {
				t.Fatalf("Min(%d, %d) = %d, want %d", x, y, got, wantMin)
			}
			if got := Max(uint8(x), uint8(y)); got != wantMax {
				t.Fatalf("Max(%d, %d) = %d, want %d", x, y, got, wantMax)
			}
		}
	}
}

func TestMinMaxInt64Boundaries(t *testing.T) {
	tests := []struct{ x, y int64 }{
		{0, 0},
		{1, -1},
		{-1, 1},
		{math.MinInt64, math.MaxInt64},
		{math.MaxInt64, math.MinInt64},
		{math.MinInt64, math.MinInt64},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, 0},
		{-5, -5},
	}

	for _, tt := range tests {
		wantMin, wantMax := tt.y, tt.x
		if tt.x < tt.y {
			wantMin, wantMax = tt.x, tt.y
		}
		assert.Equal(t, wantMin, Min(tt.x, tt.y), "Min(%d, %d)", tt.x, tt.y)
		assert.Equal(t, wantMax, Max(tt.x, tt.y), "Max(%d, %d)", tt.x, tt.y)
	}
}

func TestMinMaxUint64Boundaries(t *testing.T) {
	tests := []struct{ x, y uint64 }{
		{0, 0},
		{0, math.MaxUint64},
		{math.MaxUint64, 0},
		{math.MaxUint64, math.MaxUint64},
		{1 << 63, 1<<63 - 1},
		{7, 7},
	}

	for _, tt := range tests {
		wantMin, wantMax := tt.y, tt.x
		if tt.x < tt.y {
			wantMin, wantMax = tt.x, tt.y
		}
		assert.Equal(t, wantMin, Min(tt.x, tt.y), "Min(%d, %d)", tt.x, tt.y)
		assert.Equal(t, wantMax, Max(tt.x, tt.y), "Max(%d, %d)", tt.x, tt.y)
	}
}

func TestSwap(t *testing.T) {
	x, y := 3, -9
	Swap(&x, &y)
	assert.Equal(t, -9, x)
	assert.Equal(t, 3, y)

	a, b := uint64(math.MaxUint64), uint64(0)
	Swap(&a, &b)
	assert.Equal(t, uint64(0), a)
	assert.Equal(t, uint64(math.MaxUint64), b)

	p, q := int8(math.MinInt8), int8(math.MaxInt8)
	Swap(&p, &q)
	assert.Equal(t, int8(math.MaxInt8), p)
	assert.Equal(t, int8(math.MinInt8), q)
}

var (
	sinkInt64  int64
	sinkUint32 uint32
)

func BenchmarkAbs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt64 = Abs(int64(i) - int64(b.N)/2)
	}
}

func BenchmarkMin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt64 = Min(int64(i), sinkInt64)
	}
}

func BenchmarkRoundupPow2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkUint32 = RoundupPow2(uint32(i) & 0xFFFF)
	}
}
