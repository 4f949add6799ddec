package life

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.Set(2, 1)
	life.Set(2, 2)
	life.Set(2, 3)

	life.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != life.Alive(x, y) {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, life.Alive(x, y), shouldBeAlive)
			}
		}
	}

	life.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != life.Alive(x, y) {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, life.Alive(x, y), shouldBeAlive)
			}
		}
	}
}

func TestWrapAcrossEdge(t *testing.T) {
	life := New(6, 6)
	// A blinker straddling the right edge.
	life.Set(5, 2)
	life.Set(0, 2)
	life.Set(1, 2)

	life.Step()

	for _, y := range []int{1, 2, 3} {
		if !life.Alive(0, y) {
			t.Fatalf("expected (0,%d) alive after wrap step", y)
		}
	}
	if life.Population() != 3 {
		t.Fatalf("population = %d, want 3", life.Population())
	}
}
