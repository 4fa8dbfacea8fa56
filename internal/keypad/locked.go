package keypad

import "sync"

// Locked serializes access to a Calculator so each event runs to completion
// before the next one starts.
type Locked struct {
	mu         sync.Mutex
	calculator *Calculator
}

// NewLocked wraps c
func NewLocked(c *Calculator) *Locked {
	return &Locked{calculator: c}
}

// Press presses one key
func (l *Locked) Press(name string) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calculator.Press(name)
}

// PressSequence presses names in order without interleaving other events.
// It stops at the first unknown key and returns the outcomes so far.
func (l *Locked) PressSequence(names []string) ([]Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		outcome, err := l.calculator.Press(name)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// Display returns the current display text
func (l *Locked) Display() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calculator.Display()
}
