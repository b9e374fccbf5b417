package tracer

import (
	"image"
	"testing"
	"time"

	"github.com/achilleasa/lumen/scene"
)

func TestNaiveScheduler(t *testing.T) {
	type spec struct {
		speed1   float32
		speed2   float32
		frameH   uint32
		expRows1 uint32
		expRows2 uint32
	}
	specs := []spec{
		{1, 2, 10, 4, 6},
		{2, 1, 10, 7, 3},
		{1, 1000, 10, 1, 9},
		{0, 0, 10, 5, 5},
		{1, 1, 1, 1, 0},
	}

	for index, s := range specs {
		tr1 := makeMockTracer("mock-1", s.speed1)
		tr2 := makeMockTracer("mock-2", s.speed2)
		tracers := []Tracer{tr1, tr2}

		sch := NaiveScheduler()
		blockAssignment := sch.Schedule(tracers, s.frameH)

		if blockAssignment[0] != s.expRows1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rows; got %d", index, s.expRows1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expRows2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rows; got %d", index, s.expRows2, blockAssignment[1])
		}
	}
}

func TestPerfectScheduler(t *testing.T) {
	type spec struct {
		frameH   uint32
		rTime1   time.Duration
		rTime2   time.Duration
		expRows1 uint32
		expRows2 uint32
	}
	specs := []spec{
		// First call always behaves like the naive scheduler
		{10, time.Duration(1), time.Duration(5), 5, 5},
		// Second call should use the render times to assign rows
		{10, time.Duration(1), time.Duration(5), 9, 1},
		// This time tracer 2 performed much better
		{10, time.Duration(5), time.Duration(1), 7, 3},
	}

	// Tracers have same speed
	tr1 := makeMockTracer("mock-1", 1)
	tr2 := makeMockTracer("mock-2", 1)
	tracers := []Tracer{tr1, tr2}

	sch := PerfectScheduler()
	for index, s := range specs {
		tr1.stats.BlockTime = s.rTime1
		tr2.stats.BlockTime = s.rTime2

		blockAssignment := sch.Schedule(tracers, s.frameH)

		if blockAssignment[0] != s.expRows1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rows; got %d", index, s.expRows1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expRows2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rows; got %d", index, s.expRows2, blockAssignment[1])
		}

		tr1.stats.BlockH = blockAssignment[0]
		tr2.stats.BlockH = blockAssignment[1]
	}
}

func TestPerfectSchedulerTracerCountChange(t *testing.T) {
	tr1 := makeMockTracer("mock-1", 1)
	tr2 := makeMockTracer("mock-2", 1)
	tr3 := makeMockTracer("mock-3", 1)

	sch := PerfectScheduler()
	sch.Schedule([]Tracer{tr1, tr2}, 10)
	tr1.stats = &Stats{BlockH: 5, BlockTime: 1}
	tr2.stats = &Stats{BlockH: 5, BlockTime: 10}

	blockAssignment := sch.Schedule([]Tracer{tr1, tr2, tr3}, 9)
	for index, rows := range blockAssignment {
		if rows != 3 {
			t.Fatalf("expected tracer %d to be assigned 3 rows after tracer count change; got %d", index, rows)
		}
	}
}

func TestSchedulersCoverFrame(t *testing.T) {
	tracers := []Tracer{
		makeMockTracer("mock-1", 3),
		makeMockTracer("mock-2", 7),
		makeMockTracer("mock-3", 11),
	}

	for _, sch := range []BlockScheduler{NaiveScheduler(), PerfectScheduler()} {
		for frameH := uint32(1); frameH < 200; frameH++ {
			var total uint32
			for _, rows := range sch.Schedule(tracers, frameH) {
				total += rows
			}
			if total != frameH {
				t.Fatalf("expected assigned rows to add up to %d; got %d", frameH, total)
			}
		}
	}
}

type mockTracer struct {
	id    string
	speed float32
	stats *Stats
}

func makeMockTracer(id string, speed float32) *mockTracer {
	return &mockTracer{
		id:    id,
		speed: speed,
		stats: &Stats{},
	}
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) SpeedEstimate() float32 {
	return mt.speed
}

func (mt *mockTracer) Setup(*scene.Scene, *scene.Camera, scene.Shader, *image.RGBA) error {
	return nil
}

func (mt *mockTracer) Close() {
}

func (mt *mockTracer) Enqueue(_ BlockRequest) {
}

func (mt *mockTracer) Stats() *Stats {
	return mt.stats
}
