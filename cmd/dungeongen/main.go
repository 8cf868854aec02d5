// dungeongen builds dungeon levels and prints them as ASCII maps or JSON,
// or browses them in the terminal. Build:
//
//	go build -o dungeongen ./cmd/dungeongen
//
// Usage:
//
//	./dungeongen [-seed N] [-dungeon 0] [-level 1] [-count 1] [-special name]
//	             [-role name] [-color auto|always|never] [-json] [-legend]
//	./dungeongen -list
//	./dungeongen -view [-emoji]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"golang.org/x/term"

	"dungeongen/internal/dungeon"
	"dungeongen/internal/gamemap"
	"dungeongen/internal/mapdump"
	"dungeongen/internal/render"
	"dungeongen/internal/special"
	"dungeongen/internal/viewer"
)

type options struct {
	seed    uint64
	at      gamemap.DLevel
	count   int
	special *special.ID
	role    special.Role
	color   string
	json    bool
	legend  bool
	list    bool
	view    bool
	emoji   bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr, func() uint64 { return uint64(time.Now().UnixNano()) })
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.view {
		if err := view(ctx, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	useColor, err := colorOn(opts.color, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		log.Fatal(err)
	}
	if useColor {
		color.ForceColor()
	} else {
		color.Disable()
	}
	if err := run(ctx, opts, useColor, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// parseFlags reads the command line. newSeed supplies the seed when -seed
// is not given.
func parseFlags(args []string, stderr io.Writer, newSeed func() uint64) (options, error) {
	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Uint64("seed", 0, "Game seed (random if not set)")
	dn := fs.Int("dungeon", gamemap.DungeonsOfDoom, "Dungeon number (0 Doom, 1 Gehennom, 2 Mines, 3 Sokoban, 4 Quest, 5 Ludios, 6 Vlad, 7 Endgame)")
	level := fs.Int("level", 1, "Level within the dungeon")
	count := fs.Int("count", 1, "Number of consecutive levels to build")
	tmpl := fs.String("special", "", "Force a special level template (see -list)")
	role := fs.String("role", "", "Quest role name or abbreviation")
	colorMode := fs.String("color", "auto", "Colour output: auto, always or never")
	asJSON := fs.Bool("json", false, "Print levels as JSON")
	legend := fs.Bool("legend", false, "Print a glyph legend under each map")
	list := fs.Bool("list", false, "List special level templates and exit")
	viewMode := fs.Bool("view", false, "Browse levels interactively")
	emoji := fs.Bool("emoji", false, "Start the viewer with emoji tiles")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	opts := options{
		seed:   *seed,
		at:     gamemap.DLevel{Dungeon: *dn, Level: *level},
		count:  *count,
		color:  *colorMode,
		json:   *asJSON,
		legend: *legend,
		list:   *list,
		view:   *viewMode,
		emoji:  *emoji,
	}
	seedSet := false
	fs.Visit(func(f *flag.Flag) { seedSet = seedSet || f.Name == "seed" })
	if !seedSet {
		opts.seed = newSeed()
	}
	if *tmpl != "" {
		id, err := special.ParseID(*tmpl)
		if err != nil {
			return options{}, err
		}
		opts.special = &id
	}
	if *role != "" {
		r, err := special.ParseRole(*role)
		if err != nil {
			return options{}, err
		}
		opts.role = r
	}
	if _, err := colorOn(opts.color, false); err != nil {
		return options{}, err
	}
	if !opts.at.Valid() {
		return options{}, fmt.Errorf("%w: %s has no level %d", dungeon.ErrBadLocation, gamemap.DungeonName(*dn), *level)
	}
	if opts.count < 1 || opts.at.Level+opts.count-1 > gamemap.LevelCount(*dn) {
		return options{}, fmt.Errorf("%w: -count %d from level %d runs past the bottom of %s",
			dungeon.ErrBadLocation, opts.count, *level, gamemap.DungeonName(*dn))
	}
	if opts.special != nil && opts.count > 1 {
		return options{}, errors.New("-special builds a single level; drop -count")
	}
	return opts, nil
}

// colorOn resolves the -color mode against whether stdout is a terminal.
func colorOn(mode string, tty bool) (bool, error) {
	switch mode {
	case "auto":
		return tty, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("bad -color %q: want auto, always or never", mode)
}

// run builds the requested levels and writes them to w.
func run(ctx context.Context, opts options, useColor bool, w io.Writer) error {
	if opts.list {
		return listTemplates(w)
	}

	var levels []*gamemap.Level
	if opts.count == 1 {
		lvl, err := dungeon.Build(dungeon.Params{
			Seed:    dungeon.LevelSeed(opts.seed, opts.at),
			DLevel:  opts.at,
			Special: opts.special,
			Role:    opts.role,
		})
		if err != nil {
			return err
		}
		levels = append(levels, lvl)
	} else {
		var err error
		levels, err = dungeon.BuildBranch(ctx, opts.seed, opts.at.Dungeon, opts.at.Level,
			opts.at.Level+opts.count-1, dungeon.BranchOptions{Role: opts.role})
		if err != nil {
			return err
		}
	}

	if opts.json {
		if len(levels) == 1 {
			return mapdump.WriteJSON(w, levels[0])
		}
		views := make([]mapdump.View, len(levels))
		for i, lvl := range levels {
			views[i] = mapdump.NewView(lvl)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	fmt.Fprintf(w, "seed %d\n", opts.seed)
	for _, lvl := range levels {
		write := mapdump.Write
		if useColor {
			write = mapdump.WriteColor
		}
		if err := write(w, lvl); err != nil {
			return err
		}
		if opts.legend {
			if err := mapdump.WriteLegend(w, lvl); err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

func listTemplates(w io.Writer) error {
	for _, id := range special.IDs() {
		at := "anywhere"
		if d, ok := id.Location(); ok {
			at = d.String()
		}
		if _, err := fmt.Fprintf(w, "%-12s %-26s %s\n", id, id.Title(), at); err != nil {
			return err
		}
	}
	return nil
}

// view runs the interactive browser on the controlling terminal.
func view(ctx context.Context, opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	mode := render.ASCII
	if opts.emoji {
		mode = render.Emoji
	}
	viewer.New(screen, viewer.Options{
		Seed:  opts.seed,
		Start: opts.at,
		Role:  opts.role,
		Mode:  mode,
	}).Run(ctx)
	return nil
}
