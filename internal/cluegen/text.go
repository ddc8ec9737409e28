package cluegen

import "fmt"

var ordinals = [...]string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth"}

// ordinal spells a zero-based index as a position word.
func ordinal(i int) string {
	if i >= 0 && i < len(ordinals) {
		return ordinals[i]
	}
	return fmt.Sprintf("%dth", i+1)
}
