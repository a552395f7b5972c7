package implpass

import "fmt"

// FlipFlopClockSourceError reports a flip-flop whose clock input is not
// driven directly by a module input port.
type FlipFlopClockSourceError struct {
	FlipFlop    string
	ClockSource string
}

func (e *FlipFlopClockSourceError) Error() string {
	return fmt.Sprintf("implpass: flip-flop %q is clocked from %q, not a module input port", e.FlipFlop, e.ClockSource)
}

// MultipleClockDomainsError reports a flip-flop clocked from a different net
// than the design's first-seen clock. Only one clock domain is supported.
type MultipleClockDomainsError struct {
	FlipFlop            string
	ExpectedClockSource string
	ActualClockSource   string
}

func (e *MultipleClockDomainsError) Error() string {
	return fmt.Sprintf("implpass: flip-flop %q is clocked from %q, but the design's clock is %q",
		e.FlipFlop, e.ActualClockSource, e.ExpectedClockSource)
}
