package quiz

// WarningThreshold is the remaining-seconds mark at or below which the
// countdown flags urgency (the fuel gauge turns red).
const WarningThreshold = 5

// Countdown is the per-question timer. It does not own a clock: the host
// event loop calls Tick once per second, which keeps the engine
// single-threaded and the callbacks free of interleaving hazards. Once
// stopped or expired it is inert; no callback fires afterwards.
type Countdown struct {
	remaining int
	active    bool
	warned    bool

	// OnTick is invoked after every decrement with the seconds remaining.
	OnTick func(remaining int)
	// OnWarning is invoked once, the first time remaining is at or below
	// WarningThreshold but above zero.
	OnWarning func()
	// OnTimeout is invoked exactly once when remaining reaches zero.
	OnTimeout func()
}

// NewCountdown creates a countdown of the given duration. A non-positive
// duration yields an inert countdown.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{remaining: seconds, active: seconds > 0}
}

// Tick advances the countdown by one second.
func (c *Countdown) Tick() {
	if c == nil || !c.active {
		return
	}
	c.remaining--
	if c.OnTick != nil {
		c.OnTick(c.remaining)
	}
	if !c.warned && c.remaining <= WarningThreshold && c.remaining > 0 {
		c.warned = true
		if c.OnWarning != nil {
			c.OnWarning()
		}
	}
	if c.remaining <= 0 {
		// Deactivate before the callback so a re-entrant Tick or Stop
		// cannot fire the timeout twice.
		c.active = false
		if c.OnTimeout != nil {
			c.OnTimeout()
		}
	}
}

// Stop cancels the countdown. Safe to call at any point, any number of
// times; pending ticks and the timeout are suppressed from here on.
func (c *Countdown) Stop() {
	if c != nil {
		c.active = false
	}
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	if c == nil {
		return 0
	}
	return c.remaining
}

// Active reports whether the countdown is still running.
func (c *Countdown) Active() bool {
	return c != nil && c.active
}

// Warning reports whether the urgency threshold has been crossed.
func (c *Countdown) Warning() bool {
	return c != nil && c.warned
}
