package core

import "strconv"

// Agent is one simulated point entity
type Agent struct {
	// ID is the creation index, stable until the next population reset
	ID     int
	Kind   Kind
	Active bool
	Kinetic
}

// Label returns the display identifier
func (a Agent) Label() string {
	return "nano-" + strconv.Itoa(a.ID)
}
