package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/tagboard/audio"
	"github.com/lixenwraith/tagboard/config"
	"github.com/lixenwraith/tagboard/editor"
	"github.com/lixenwraith/tagboard/export"
	"github.com/lixenwraith/tagboard/input"
	"github.com/lixenwraith/tagboard/mode"
	"github.com/lixenwraith/tagboard/render"
	"github.com/lixenwraith/tagboard/store"
	"github.com/lixenwraith/tagboard/tag"
)

var (
	fileFlag   = flag.String("file", "", "Tag collection file (default from TAGBOARD_FILE or tags.json)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the log file")
	listFlag   = flag.Bool("list", false, "Print the collection and exit")
	exportFlag = flag.String("export", "", "Write saved markup to the given file and exit")
	muteFlag   = flag.Bool("mute", false, "Start with interaction cues disabled")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *fileFlag != "" {
		cfg.Store.Path = *fileFlag
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, closeLog := setupLogging(cfg.Log.Debug, cfg.Log.Path)
	defer closeLog()

	file := store.NewFile(cfg.Store.Path)
	tags, err := file.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tags: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *listFlag:
		listTags(os.Stdout, tags)
		return
	case *exportFlag != "":
		if err := writeExport(*exportFlag, tags); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runEditor(cfg, file, tags, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func writeExport(path string, tags tag.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(f, tags); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runEditor(cfg config.Config, file *store.File, tags tag.Collection, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTAGBOARD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	player := audio.NewPlayer(audio.Config{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.MasterVolume,
		SampleRate:   cfg.Audio.SampleRate,
	})
	if err := player.Start(); err != nil {
		logger.Warn("audio unavailable, continuing without cues", zap.Error(err))
	}
	defer player.Stop()

	opts := editor.DefaultOptions()
	opts.DragThreshold = cfg.Editor.DragThreshold
	opts.HandleRadius = cfg.Editor.HandleRadius
	opts.Logger = logger.Named("editor")
	opts.OnChange = func(c tag.Collection) {
		if err := file.Save(c); err != nil {
			logger.Error("save failed", zap.String("path", file.Path), zap.Error(err))
			return
		}
		logger.Debug("collection saved", zap.Int("tags", len(c)))
	}

	ed := editor.New(tags, opts)
	machine := input.NewMachine()
	router := mode.NewRouter(ed, machine, player, render.CanvasSize, logger.Named("router"))
	renderer := render.NewRenderer(screen)

	w, h := screen.Size()
	router.Handle(&input.Intent{Type: input.IntentResize, Width: w, Height: h})
	renderer.Draw(render.FrameOf(router, file.Path))

	eventChan := make(chan tcell.Event, 64)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for ev := range eventChan {
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if !router.Handle(machine.Process(ev)) {
			return nil
		}
		renderer.Draw(render.FrameOf(router, file.Path))
	}
	return nil
}
