package chain

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Replay feeds the human presses to the outermost of `layers` directional
// keypads, passes each keypad's output on to the next, and returns what the
// arm on the final keypad types. Every arm starts on its keypad's start key.
func Replay(presses []keypad.Symbol, layers int, final, directional *keypad.Layout) (string, error) {
	if layers < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeLayers, layers)
	}
	seq := presses
	for i := 0; i < layers; i++ {
		typed, err := press(directional, seq)
		if err != nil {
			return "", fmt.Errorf("layer %d: %w", layers-i, err)
		}
		seq = make([]keypad.Symbol, len(typed))
		for j, r := range typed {
			seq[j] = keypad.Symbol(r)
		}
	}
	typed, err := press(final, seq)
	if err != nil {
		return "", fmt.Errorf("%s keypad: %w", final.Name(), err)
	}
	return string(typed), nil
}

// press moves an arm over l as seq dictates and collects the keys it presses.
func press(l *keypad.Layout, seq []keypad.Symbol) ([]rune, error) {
	pos := l.Start()
	out := make([]rune, 0, len(seq)/2)
	for i, sym := range seq {
		if m, ok := sym.Move(); ok {
			pos = pos.Add(m)
			if !l.InBounds(pos) || l.IsGap(pos) {
				return nil, fmt.Errorf("%w: press %d moves to %v", ErrArmOverGap, i, pos)
			}
			continue
		}
		if sym != keypad.SymActivate {
			return nil, fmt.Errorf("%w: %q at press %d", keypad.ErrUnknownKey, rune(sym), i)
		}
		k, _ := l.KeyAt(pos)
		out = append(out, k)
	}
	return out, nil
}
