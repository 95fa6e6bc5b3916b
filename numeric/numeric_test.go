package numeric

import (
	"math"
	"strconv"
	"testing"
)

func TestNeg(t *testing.T) {
	if got := Neg(3.5); got != -3.5 {
		t.Fatalf("expected -3.5, got %v", got)
	}
	if got := Neg(-2); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := Neg(int8(-127)); got != 127 {
		t.Fatalf("expected 127, got %v", got)
	}
	if got := Neg(int64(math.MinInt64 + 1)); got != math.MaxInt64 {
		t.Fatalf("expected %d, got %v", int64(math.MaxInt64), got)
	}
	if got := Neg(float32(0.25)); got != -0.25 {
		t.Fatalf("expected -0.25, got %v", got)
	}
}

func TestAvg(t *testing.T) {
	if got := Avg(1, 4); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
}

func TestSumAndMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		sum  float64
		mean float64
	}{
		{
			name: "four elements",
			xs:   []float64{1, 2, 3, 4},
			sum:  10,
			mean: 2.5,
		},
		{
			name: "single element",
			xs:   []float64{-7},
			sum:  -7,
			mean: -7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.xs); got != tt.sum {
				t.Fatalf("expected sum %v, got %v", tt.sum, got)
			}
			if got := Mean(tt.xs); got != tt.mean {
				t.Fatalf("expected mean %v, got %v", tt.mean, got)
			}
		})
	}
}

func TestSumMeanEmpty(t *testing.T) {
	if got := Sum([]float64{}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Mean([]int{}); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
}

func TestCompose(t *testing.T) {
	double := func(x int) int { return x * 2 }
	f := Compose(strconv.Itoa, double)
	if got := f(21); got != "42" {
		t.Fatalf("expected \"42\", got %q", got)
	}
	g := Compose(Neg[float64], Neg[float64])
	if got := g(1.5); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}

func TestRankPet(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Atom
		first  Atom
		second Atom
	}{
		{
			name:   "chipmunk first",
			p1:     Chipmunk,
			p2:     True,
			first:  Chipmunk,
			second: True,
		},
		{
			name:   "chipmunk second",
			p1:     True,
			p2:     Chipmunk,
			first:  Chipmunk,
			second: True,
		},
		{
			name:   "no chipmunk",
			p1:     False,
			p2:     True,
			first:  True,
			second: False,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := RankPet(tt.p1, tt.p2)
			if first != tt.first || second != tt.second {
				t.Fatalf("expected (%s, %s), got (%s, %s)", tt.first, tt.second, first, second)
			}
		})
	}
}
