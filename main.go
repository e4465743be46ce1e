package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"worldofbits/pkg/engine/input"
	"worldofbits/pkg/game/config"
	"worldofbits/pkg/game/devtools"
	"worldofbits/pkg/game/gameplay"
	"worldofbits/pkg/game/journal"
	"worldofbits/pkg/game/locale"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/renderer/ebiten"
	"worldofbits/pkg/game/renderer/remote"
	"worldofbits/pkg/game/renderer/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run parses args and plays until the chosen frontend exits. Errors are
// returned rather than fatal so deferred cleanup, such as flushing the
// journal, always runs.
func run(args []string) error {
	fs := flag.NewFlagSet("worldofbits", flag.ContinueOnError)
	var (
		rendererName = fs.String("renderer", "tui", "frontend: tui, ebiten or remote")
		configPath   = fs.String("config", "", "path to a YAML config file (optional)")
		lat          = fs.Float64("lat", 0, "starting latitude (overrides config)")
		lng          = fs.Float64("lng", 0, "starting longitude (overrides config)")
		seed         = fs.Int64("seed", 0, "generator seed (overrides config)")
		addr         = fs.String("addr", ":8080", "listen address for the remote frontend")
		journalDir   = fs.String("journal", "", "directory for the zstd event journal (empty to disable)")
		lang         = fs.String("lang", "", "message language (overrides config)")
		dumpDir      = fs.String("dump", ".", "directory for viewport dumps and screenshots")
		devMap       = fs.Bool("devmap", false, "start on the developer layout instead of generated tokens")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.Start.Lat = *lat
		case "lng":
			cfg.Start.Lng = *lng
		case "seed":
			cfg.Seed = *seed
		case "lang":
			cfg.Locale = *lang
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	catalog, err := locale.Load(cfg.Locale)
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	locale.SetDefault(catalog)

	var rec journal.Recorder = journal.Nop
	if *journalDir != "" {
		w := journal.NewWriter(*journalDir, "events")
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("journal: close: %v", err)
			}
		}()
		rec = w
		log.Printf("journal: writing to %s", *journalDir)
	}

	newEngine := func(s renderer.Surface) *gameplay.Engine {
		opts := gameplay.Options{
			Surface: s,
			Journal: rec,
			Catalog: catalog,
			DumpDir: *dumpDir,
		}
		if *devMap {
			opts.Generator = devtools.DevLayout(cfg.Mapper().ToCell(cfg.StartLatLng()))
		}
		return gameplay.NewEngine(cfg, opts)
	}

	switch *rendererName {
	case "tui":
		t := tui.New(os.Stdout)
		e := newEngine(t)
		e.Start()
		if err := t.Run(e, input.NewStdinReader()); err != nil {
			return fmt.Errorf("tui: %w", err)
		}

	case "ebiten":
		g := ebiten.New()
		e := newEngine(g)
		e.Start()
		if err := g.Run(e); err != nil {
			return fmt.Errorf("ebiten: %w", err)
		}

	case "remote":
		logger := log.New(os.Stdout, "[remote] ", log.LstdFlags|log.Lmicroseconds)
		srv := remote.NewServer(newEngine, logger)
		if err := srv.ListenAndServe(*addr); err != nil {
			return fmt.Errorf("serve: %w", err)
		}

	default:
		return fmt.Errorf("unknown renderer %q (want tui, ebiten or remote)", *rendererName)
	}
	return nil
}
