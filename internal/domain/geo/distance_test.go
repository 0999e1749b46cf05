package geo

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// randPoint produces valid coordinates for quick checks.
type randPoint orb.Point

func (randPoint) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(randPoint{r.Float64()*360 - 180, r.Float64()*180 - 90})
}

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	oneDegree := EarthRadiusKm * math.Pi / 180

	tests := []struct {
		name string
		a, b orb.Point
		want float64
		tol  float64
	}{
		{"identical points", orb.Point{-70.65, -33.45}, orb.Point{-70.65, -33.45}, 0, 1e-9},
		{"one degree of latitude at the equator", orb.Point{0, 0}, orb.Point{0, 1}, oneDegree, oneDegree * 0.01},
		{"one degree of longitude at the equator", orb.Point{0, 0}, orb.Point{1, 0}, oneDegree, oneDegree * 0.01},
		{"antipodal points", orb.Point{0, 0}, orb.Point{180, 0}, EarthRadiusKm * math.Pi, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, DistanceKm(tt.a, tt.b), tt.tol)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	f := func(a, b randPoint) bool {
		return math.Abs(DistanceKm(orb.Point(a), orb.Point(b))-DistanceKm(orb.Point(b), orb.Point(a))) < 1e-9
	}
	assert.NoError(t, quick.Check(f, nil))
}

func TestDistanceKm_Bounded(t *testing.T) {
	t.Parallel()

	f := func(a, b randPoint) bool {
		d := DistanceKm(orb.Point(a), orb.Point(b))
		return d >= 0 && d <= EarthRadiusKm*math.Pi+1e-6
	}
	assert.NoError(t, quick.Check(f, nil))
}
