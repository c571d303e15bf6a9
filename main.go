package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/catalog"
	"github.com/tonearm/tonearm/internal/config"
	"github.com/tonearm/tonearm/internal/device"
	"github.com/tonearm/tonearm/internal/engine"
	"github.com/tonearm/tonearm/internal/errmsg"
	"github.com/tonearm/tonearm/internal/playlists"
	"github.com/tonearm/tonearm/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tonearm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var st *store.Manager
	if cfg.DBPath != "" {
		st, err = store.OpenAt(cfg.DBPath)
	} else {
		st, err = store.Open()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStoreOpen, err))
	}
	defer st.Close()

	cat := catalog.New(nil)
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpCatalogLoad, err))
		}
		log.Info().Int("tracks", cat.Len()).Str("path", cfg.CatalogPath).Msg("catalog loaded")
	}

	dev := device.NewBeep()
	e := engine.New(dev, st, engine.Options{
		Owner:           cfg.Owner,
		Curator:         cfg.Playlists.Curator,
		RecommendedSize: cfg.Playlists.RecommendedSize,
		DefaultLifespan: cfg.Notifications.Lifespan(),
		Catalog:         cat.Tracks(),
		Logger:          log,
	})
	defer e.Close()

	sub := e.Subscribe()
	go func() {
		for {
			select {
			case <-sub.Done:
				return
			case ev := <-sub.TrackChanged:
				if ev.Current != nil {
					log.Info().Str("title", ev.Current.Title).Str("artist", ev.Current.Artist).Msg("now playing")
				}
			}
		}
	}()

	return shell(e, cat)
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("play"),
	readline.PcItem("pause"),
	readline.PcItem("next"),
	readline.PcItem("prev"),
	readline.PcItem("seek"),
	readline.PcItem("vol"),
	readline.PcItem("mute"),
	readline.PcItem("shuffle"),
	readline.PcItem("repeat"),
	readline.PcItem("queue"),
	readline.PcItem("add"),
	readline.PcItem("playall"),
	readline.PcItem("recent"),
	readline.PcItem("like"),
	readline.PcItem("follow"),
	readline.PcItem("lists"),
	readline.PcItem("mklist"),
	readline.PcItem("dellist"),
	readline.PcItem("addto"),
	readline.PcItem("rmfrom"),
	readline.PcItem("move"),
	readline.PcItem("mix"),
	readline.PcItem("tracks"),
	readline.PcItem("status"),
	readline.PcItem("close"),
	readline.PcItem("quit"),
)

func shell(e *engine.Engine, cat *catalog.Catalog) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "tonearm> ",
		AutoComplete: completer,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit", "q":
			return nil
		case "play":
			if len(args) == 0 {
				e.TogglePlay()
				break
			}
			if t := lookup(cat, args[0]); t != nil {
				e.PlayTrack(*t)
			} else {
				fmt.Println("unknown track:", args[0])
			}
		case "pause", "p":
			e.TogglePlay()
		case "next", "n":
			e.NextTrack()
		case "prev":
			e.PrevTrack()
		case "seek":
			if len(args) == 1 {
				if pct, err := strconv.ParseFloat(args[0], 64); err == nil {
					e.Seek(pct)
				}
			}
		case "vol":
			switch {
			case len(args) == 0:
				fmt.Printf("volume %.0f%%\n", e.State().Volume*100)
			case args[0] == "+":
				e.VolumeUp()
			case args[0] == "-":
				e.VolumeDown()
			default:
				if v, err := strconv.ParseFloat(args[0], 64); err == nil {
					e.SetVolume(v / 100)
				}
			}
		case "mute":
			e.ToggleMute()
		case "shuffle":
			e.ToggleShuffle()
			fmt.Println("shuffle:", onOff(e.State().Shuffle))
		case "repeat":
			e.ToggleRepeat()
			fmt.Println("repeat:", onOff(e.State().Repeat))
		case "queue":
			printTracks(e.QueueTracks())
		case "add":
			if len(args) == 1 {
				if t := lookup(cat, args[0]); t != nil {
					e.AddToQueue(*t)
				}
			}
		case "playall":
			e.PlayAll(cat.Tracks())
		case "recent":
			printTracks(e.RecentTracks())
		case "like":
			if len(args) == 1 {
				e.ToggleLikeTrack(args[0])
			}
		case "follow":
			if len(args) == 1 {
				e.ToggleFollowUser(args[0])
			}
		case "lists":
			for _, p := range e.Playlists() {
				fmt.Printf("%s  %s (%d tracks, by %s)\n", p.ID, p.Title, p.TrackCount, p.Creator)
			}
		case "mklist":
			if len(args) > 0 {
				p := e.CreateNewPlaylist(strings.Join(args, " "), "", nil)
				fmt.Println("created", p.ID)
			}
		case "dellist":
			if len(args) == 1 {
				e.DeletePlaylist(args[0])
			}
		case "addto":
			if len(args) == 2 {
				if t := lookup(cat, args[1]); t != nil {
					e.AddTrackToPlaylist(args[0], *t)
				}
			}
		case "rmfrom":
			if len(args) == 2 {
				e.RemoveTrackFromPlaylist(args[0], args[1])
			}
		case "move":
			if len(args) == 3 && (args[2] == "up" || args[2] == "down") {
				e.ReorderTrackInPlaylist(args[0], args[1], playlists.Direction(args[2]))
			}
		case "mix":
			if p := e.CreateRecommendedPlaylist(); p != nil {
				fmt.Printf("created %s with %d tracks\n", p.Title, p.TrackCount)
			} else {
				fmt.Println("catalog is empty")
			}
		case "tracks":
			printTracks(cat.Tracks())
		case "status":
			printStatus(e.State())
		case "close":
			e.ClosePlayer()
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// lookup resolves a catalog index or a track ID.
func lookup(cat *catalog.Catalog, arg string) *catalog.Track {
	if i, err := strconv.Atoi(arg); err == nil {
		return cat.Track(i)
	}
	return cat.ByID(arg)
}

func printTracks(tracks []catalog.Track) {
	for i, t := range tracks {
		fmt.Printf("%3d  %s - %s (%s)\n", i, t.Artist, t.Title, t.ID)
	}
}

func printStatus(s engine.State) {
	if s.CurrentTrack == nil {
		fmt.Println("nothing loaded")
		return
	}
	state := "paused"
	if s.IsPlaying {
		state = "playing"
	}
	fmt.Printf("%s  %s - %s  %.0f%%  vol %.0f%%", state, s.CurrentTrack.Artist, s.CurrentTrack.Title, s.Progress, s.Volume*100)
	if s.Muted {
		fmt.Print("  muted")
	}
	if s.Shuffle {
		fmt.Print("  shuffle")
	}
	if s.Repeat {
		fmt.Print("  repeat")
	}
	fmt.Println()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
