package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/chaoscope/audio"
	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/display"
	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/export"
	"github.com/lixenwraith/chaoscope/render"
	"github.com/lixenwraith/chaoscope/render/renderers"
	"github.com/lixenwraith/chaoscope/web"
)

var (
	windowFlag = flag.Bool("window", false, "Open a desktop window instead of the terminal viewer")
	colorFlag  = flag.String("color", "auto", "Terminal color mode: auto, truecolor, 256")
	serveFlag  = flag.String("serve", "", "Serve the live browser mirror on this address (e.g. :8080)")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	rateFlag   = flag.Int("rate", constants.DefaultPointsPerFrame, "Points generated per frame")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/")
)

func main() {
	// Panic recovery: release the surface so the trace lands on a sane
	// terminal, then re-raise to stderr
	var surface display.Backend
	defer func() {
		if r := recover(); r != nil {
			if surface != nil {
				surface.Close()
			}
			fmt.Fprintf(os.Stderr, "\nCHAOSCOPE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if *windowFlag {
		surface = display.NewWindow()
	} else {
		var mode display.ColorMode
		switch *colorFlag {
		case "256":
			mode = display.ColorMode256
		case "truecolor", "true", "24bit":
			mode = display.ColorModeTrueColor
		default:
			mode = display.DetectColorMode()
		}

		term, err := display.NewTerminal(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
		surface = term
	}
	defer surface.Close()

	sounds := audio.NewPlayer()
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := surface.Size()
	eng := engine.New(width, height, sounds, seed, *rateFlag)

	// Optional browser mirror; remote clicks merge into the frame loop
	var webEvents <-chan display.Event
	if *serveFlag != "" {
		mirror := web.NewServer(*serveFlag, eng.Snapshot)
		if err := mirror.Start(); err != nil {
			surface.Close()
			fmt.Fprintf(os.Stderr, "Failed to start web mirror: %v\n", err)
			os.Exit(1)
		}
		log.Printf("web mirror listening on %s", mirror.Addr())
		webEvents = mirror.Events()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			mirror.Shutdown(ctx)
		}()
	}

	orchestrator := render.NewOrchestrator(surface, width, height)

	type rendererDef struct {
		factory  func(*engine.Context) render.Renderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{func(c *engine.Context) render.Renderer { return renderers.NewPointsRenderer(c) }, render.PriorityPoints},
		{func(c *engine.Context) render.Renderer { return renderers.NewHullRenderer(c) }, render.PriorityHull},
		{func(c *engine.Context) render.Renderer { return renderers.NewAnchorsRenderer(c) }, render.PriorityAnchors},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.factory(eng), def.priority)
	}
	orchestrator.SetStatusSource(renderers.NewStatusLine(eng))

	step := func() error {
	drain:
		for {
			select {
			case ev := <-surface.Events():
				if err := eng.HandleEvent(ev); err != nil {
					return err
				}
			case ev := <-webEvents:
				if err := eng.HandleEvent(ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}

		now := time.Now()
		eng.Advance(now)

		if eng.TakeSnapshotRequest() {
			saveSnapshot(eng)
		}

		return orchestrator.RenderFrame(render.NewContextFromEngine(eng, now))
	}

	if err := surface.Run(step); err != nil {
		surface.Close()
		fmt.Fprintf(os.Stderr, "chaoscope: %v\n", err)
		os.Exit(1)
	}
}

// saveSnapshot writes the visible density field next to the binary
func saveSnapshot(eng *engine.Context) {
	name := fmt.Sprintf("chaoscope-%s.png", time.Now().Format("20060102-150405"))
	if err := export.SavePNG(name, eng.Field(), export.StyleHeat); err != nil {
		log.Printf("snapshot failed: %v", err)
		eng.ShowMessage("snapshot failed")
		return
	}
	eng.ShowMessage("saved " + name)
}
