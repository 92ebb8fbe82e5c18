package geo

import (
	"math"
	"testing"
)

func TestDistanceMetersZero(t *testing.T) {
	points := []Coordinate{
		{0, 0},
		{-90, 0},
		{90, 0},
		{-6.2088, 106.8456},
		{51.5074, -0.1278},
	}
	for _, p := range points {
		if d := DistanceMeters(p, p); d != 0 {
			t.Errorf("DistanceMeters(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceMetersSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{0, 0}, {0.0001, 0}},
		{{-6.2088, 106.8456}, {-6.1751, 106.8650}},
		{{51.5074, -0.1278}, {48.8566, 2.3522}},
		{{89.9, 179.9}, {-89.9, -179.9}},
	}
	for _, pair := range pairs {
		ab := DistanceMeters(pair[0], pair[1])
		ba := DistanceMeters(pair[1], pair[0])
		if ab != ba {
			t.Errorf("DistanceMeters not symmetric: %v vs %v", ab, ba)
		}
		if ab < 0 || math.IsNaN(ab) {
			t.Errorf("DistanceMeters(%v, %v) = %v, want non-negative finite", pair[0], pair[1], ab)
		}
	}
}

func TestDistanceMetersKnownValues(t *testing.T) {
	cases := []struct {
		name      string
		a, b      Coordinate
		want      float64
		tolerance float64
	}{
		// 0.0001 degrees of latitude is ~11.1m at the equator.
		{"small latitude offset", Coordinate{0, 0}, Coordinate{0.0001, 0}, 11.1, 0.2},
		// 0.001 degrees of latitude is ~111m.
		{"hundred meter offset", Coordinate{0, 0}, Coordinate{0.001, 0}, 111.2, 1},
		// One degree of latitude is ~111.2km.
		{"one degree latitude", Coordinate{0, 0}, Coordinate{1, 0}, 111195, 100},
		// Quarter circumference between equator and pole.
		{"equator to pole", Coordinate{0, 0}, Coordinate{90, 0}, 10007543, 1000},
	}
	for _, c := range cases {
		got := DistanceMeters(c.a, c.b)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: DistanceMeters = %v, want %v ± %v", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestCoordinateValid(t *testing.T) {
	cases := []struct {
		coord Coordinate
		want  bool
	}{
		{Coordinate{0, 0}, true},
		{Coordinate{-90, -180}, true},
		{Coordinate{90, 180}, true},
		{Coordinate{90.0001, 0}, false},
		{Coordinate{0, 180.0001}, false},
		{Coordinate{math.NaN(), 0}, false},
		{Coordinate{0, math.Inf(1)}, false},
	}
	for _, c := range cases {
		if got := c.coord.Valid(); got != c.want {
			t.Errorf("Valid(%v) = %v, want %v", c.coord, got, c.want)
		}
	}
}
