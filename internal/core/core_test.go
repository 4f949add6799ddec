package core

import (
	"testing"
	"time"
)

func TestPacerSteps(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(10, 5)
	p.now = func() time.Time { return clock }

	if n := p.Steps(); n != 0 {
		t.Fatalf("first call should prime the clock, got %d steps", n)
	}
	clock = clock.Add(250 * time.Millisecond)
	if n := p.Steps(); n != 2 {
		t.Fatalf("expected 2 steps after 250ms at 10/s, got %d", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := p.Steps(); n != 1 {
		t.Fatalf("expected carried remainder to yield 1 step, got %d", n)
	}
	clock = clock.Add(10 * time.Second)
	if n := p.Steps(); n != 5 {
		t.Fatalf("expected backlog capped at 5, got %d", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := p.Steps(); n != 0 {
		t.Fatalf("expected dropped backlog, got %d", n)
	}
}

func TestPacerRate(t *testing.T) {
	p := NewPacer(0, 1)
	if p.Rate() != 60 {
		t.Fatalf("default rate = %d, want 60", p.Rate())
	}
	p.SetRate(250)
	if p.Rate() != 250 {
		t.Fatalf("rate = %d, want 250", p.Rate())
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 9)
	g.Set(3, 0, 7)
	g.Set(-1, 0, 7)
	if g.At(2, 1) != 9 {
		t.Fatalf("At(2,1) = %d, want 9", g.At(2, 1))
	}
	if g.At(5, 5) != 0 {
		t.Fatal("out of range reads must return 0")
	}
	sum := 0
	for _, v := range g.Cells() {
		sum += int(v)
	}
	if sum != 9 {
		t.Fatalf("out of range writes leaked into the grid, sum=%d", sum)
	}
	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear did not reset the grid")
	}
}

func TestParameterLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := s.Lookup("y")
	if !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
