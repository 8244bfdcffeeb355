package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nanoswarm/audio"
	"github.com/lixenwraith/nanoswarm/config"
	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/engine"
	"github.com/lixenwraith/nanoswarm/parameter"
	"github.com/lixenwraith/nanoswarm/status"
	"github.com/lixenwraith/nanoswarm/swarm"
	"github.com/lixenwraith/nanoswarm/vmath"
)

var (
	configFlag   = flag.String("config", "", "path to TOML config file")
	seedFlag     = flag.Uint64("seed", 0, "random seed, 0 keeps the configured seed")
	agentsFlag   = flag.Int("agents", -1, "agent count, -1 keeps the configured count")
	targetFlag   = flag.String("target", "", "initial target as x,y")
	debugFlag    = flag.Bool("debug", false, "write debug log to logs/")
	muteFlag     = flag.Bool("mute", false, "disable audio cues")
	headlessFlag = flag.Bool("headless", false, "run without terminal UI and print aggregates")
	ticksFlag    = flag.Int("ticks", 200, "ticks to run in headless mode")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nanoswarm: %v\n", err)
		os.Exit(1)
	}

	eng := swarm.NewEngine(cfg.EngineOptions(), vmath.NewFastRand(cfg.Swarm.Seed))
	reg := status.NewRegistry()
	eng.AttachStatus(reg)
	log.Printf("nanoswarm: %d agents, seed %#x, epoch %s", cfg.Swarm.Agents, cfg.Swarm.Seed, eng.Epoch())

	if *targetFlag != "" {
		x, y, err := parseTarget(*targetFlag)
		if err == nil {
			err = eng.SetTarget(x, y)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "nanoswarm: target: %v\n", err)
			os.Exit(1)
		}
	}

	if *headlessFlag {
		if err := runHeadless(eng, reg, *ticksFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "nanoswarm: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(cfg, eng, reg); err != nil {
		fmt.Fprintf(os.Stderr, "nanoswarm: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file when given and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	applyOverrides(&cfg, *seedFlag, *agentsFlag, *muteFlag)
	return cfg, cfg.Validate()
}

// applyOverrides layers command-line values over the file config
func applyOverrides(cfg *config.Config, seed uint64, agents int, mute bool) {
	if seed != 0 {
		cfg.Swarm.Seed = seed
	}
	if agents >= 0 {
		cfg.Swarm.Agents = agents
	}
	if mute {
		cfg.Audio.Enabled = false
	}
}

// parseTarget accepts "x,y" with optional surrounding spaces
func parseTarget(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("x: %w", err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("y: %w", err)
	}
	return x, y, nil
}

func runInteractive(cfg config.Config, eng *swarm.Engine, reg *status.Registry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before a crash report is printed
	core.SetCrashHandler(func(any) {
		screen.Fini()
	})

	screen.EnableMouse()
	screen.HideCursor()

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Initialize(); err != nil {
			log.Printf("audio: disabled: %v", err)
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	driver := engine.NewDriver(eng, cfg.TickInterval(), reg)
	ticked := make(chan struct{}, 1)
	driver.OnTick(func(uint64, swarm.StepStats) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	s := newSession(screen, eng, driver, player)

	driver.Start()
	defer driver.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	s.draw()
	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				log.Printf("nanoswarm: quit after %d ticks", eng.Ticks())
				return nil
			}
		case <-ticked:
			s.markDirty()
		case <-frameTicker.C:
			s.draw()
		}
	}
}
