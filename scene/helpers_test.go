package scene

import (
	"testing"

	"github.com/achilleasa/lumen/types"
	"github.com/chewxy/math32"
)

// Replays a fixed sequence of values.
type seqRand struct {
	values []float32
	next   int
}

func (r *seqRand) Float32() float32 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// Fails the test if any random value is requested.
type noRand struct {
	t *testing.T
}

func (r noRand) Float32() float32 {
	r.t.Fatal("unexpected random draw")
	return 0
}

func vecApproxEqual(v1, v2 types.Vec3, tolerance float32) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(v1[i]-v2[i]) > tolerance {
			return false
		}
	}
	return true
}

func unboundedRange() types.Interval[float32] {
	return types.NewInterval(0, math32.Inf(1))
}
