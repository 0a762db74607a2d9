package core

import (
	"testing"
	"time"
)

func TestPacerSleepsRemainder(t *testing.T) {
	clock := time.Unix(0, 0)
	var slept []time.Duration
	p := NewPacer(50)
	p.now = func() time.Time { return clock }
	p.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	p.Wait()
	clock = clock.Add(5 * time.Millisecond)
	p.Wait()

	if len(slept) != 2 || slept[0] != 20*time.Millisecond || slept[1] != 15*time.Millisecond {
		t.Fatalf("slept %v, expected [20ms 15ms]", slept)
	}
}

func TestPacerDropsDebt(t *testing.T) {
	clock := time.Unix(0, 0)
	slept := 0
	p := NewPacer(100)
	p.now = func() time.Time { return clock }
	p.sleep = func(d time.Duration) { slept++; clock = clock.Add(d) }

	p.Wait()
	clock = clock.Add(time.Second)
	p.Wait()
	if slept != 1 {
		t.Fatalf("slept %d times, expected the late frame to skip sleeping", slept)
	}
	p.Wait()
	if slept != 2 {
		t.Fatalf("slept %d times, expected pacing to resume", slept)
	}
}

func TestPacerDisabled(t *testing.T) {
	p := NewPacer(0)
	p.sleep = func(time.Duration) { t.Fatal("disabled pacer slept") }
	p.Wait()
	if p.Step() != 0 {
		t.Fatalf("step = %v, expected 0", p.Step())
	}
}
