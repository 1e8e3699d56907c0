package quiz

import "testing"

func TestCountdownTickSequence(t *testing.T) {
	cd := NewCountdown(7)

	var ticks []int
	warnings, timeouts := 0, 0
	cd.OnTick = func(r int) { ticks = append(ticks, r) }
	cd.OnWarning = func() { warnings++ }
	cd.OnTimeout = func() { timeouts++ }

	for i := 0; i < 10; i++ {
		cd.Tick()
	}

	want := []int{6, 5, 4, 3, 2, 1, 0}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks %v, want %v", len(ticks), ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("tick %d = %d, want %d", i, ticks[i], want[i])
		}
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
	if timeouts != 1 {
		t.Errorf("timeouts = %d, want 1", timeouts)
	}
	if cd.Active() {
		t.Error("countdown still active after expiry")
	}
}

func TestCountdownWarningFiresAtThreshold(t *testing.T) {
	cd := NewCountdown(WarningThreshold + 3)
	warnedAt := -1
	cd.OnWarning = func() { warnedAt = cd.Remaining() }

	for cd.Active() {
		cd.Tick()
	}
	if warnedAt != WarningThreshold {
		t.Fatalf("warning fired at %d remaining, want %d", warnedAt, WarningThreshold)
	}
}

func TestCountdownStopSuppressesCallbacks(t *testing.T) {
	cd := NewCountdown(3)
	fired := false
	cd.OnTick = func(int) { fired = true }
	cd.OnWarning = func() { fired = true }
	cd.OnTimeout = func() { fired = true }

	cd.Stop()
	for i := 0; i < 5; i++ {
		cd.Tick()
	}
	if fired {
		t.Fatal("callback fired after Stop")
	}
	if cd.Remaining() != 3 {
		t.Errorf("remaining = %d after Stop, want 3", cd.Remaining())
	}
	cd.Stop() // idempotent
}

func TestCountdownNonPositiveDurationInert(t *testing.T) {
	for _, secs := range []int{0, -4} {
		cd := NewCountdown(secs)
		if cd.Active() {
			t.Errorf("NewCountdown(%d) active", secs)
		}
		cd.OnTimeout = func() { t.Errorf("NewCountdown(%d) fired timeout", secs) }
		cd.Tick()
	}
}

func TestCountdownNilSafe(t *testing.T) {
	var cd *Countdown
	cd.Tick()
	cd.Stop()
	if cd.Remaining() != 0 || cd.Active() || cd.Warning() {
		t.Fatal("nil countdown not inert")
	}
}
