package planetary

import "fmt"

// IncompatibleSetError reports a sun/planet/ring tooth count combination
// whose planets cannot be evenly spaced. ValidCounts lists the planet
// counts that would be geometrically achievable for the same tooth counts.
type IncompatibleSetError struct {
	SunTeeth    int
	RingTeeth   int
	PlanetCount int
	ValidCounts []int
}

func (e *IncompatibleSetError) Error() string {
	if e.PlanetCount < 1 {
		return fmt.Sprintf("incompatible gear set: planet count %d < 1", e.PlanetCount)
	}
	return fmt.Sprintf(
		"incompatible gear set: sun+ring teeth (%d) not evenly divisible by %d planets; valid planet counts: %v",
		e.SunTeeth+e.RingTeeth, e.PlanetCount, e.ValidCounts)
}
