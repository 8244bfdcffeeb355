package main

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/status"
	"github.com/lixenwraith/nanoswarm/swarm"
)

// runHeadless steps the engine synchronously and writes the final aggregate and metrics to w
func runHeadless(eng *swarm.Engine, reg *status.Registry, ticks int, w io.Writer) error {
	if ticks < 0 {
		return fmt.Errorf("headless: negative tick count %d", ticks)
	}

	var bounced int
	for i := 0; i < ticks; i++ {
		stats := eng.Step()
		bounced += stats.Bounced
	}
	log.Printf("headless: ran %d ticks, %d reflections", ticks, bounced)

	counts := eng.CountActiveByKind()
	if _, err := fmt.Fprintf(w, "epoch %s after %d ticks\n", eng.Epoch(), eng.Ticks()); err != nil {
		return err
	}
	for k := core.Kind(0); k < core.KindCount; k++ {
		if _, err := fmt.Fprintf(w, "%-14s %d\n", k.String(), counts.Get(k)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%-14s %d\n", "total", counts.Total); err != nil {
		return err
	}
	for _, line := range reg.Dump() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
