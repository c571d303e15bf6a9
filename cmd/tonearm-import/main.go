// tonearm-import scans a directory of audio files and writes a JSON
// track catalog usable as catalog_path in the tonearm config.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/catalog"
	"github.com/tonearm/tonearm/internal/errmsg"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".wav":  true,
	".ogg":  true,
}

func main() {
	out := flag.String("o", "catalog.json", "output catalog file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	root := flag.Arg(0)
	if root == "" {
		fmt.Fprintln(os.Stderr, "usage: tonearm-import [-o catalog.json] <music-dir>")
		os.Exit(2)
	}

	var tracks []catalog.Track
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		t, err := catalog.ImportFile(path)
		if err != nil {
			log.Warn().Msg(errmsg.FormatWith(errmsg.OpImportFile, path, err))
			return nil
		}
		tracks = append(tracks, t)
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("scan failed")
	}
	if len(tracks) == 0 {
		log.Fatal().Str("dir", root).Msg("no audio files found")
	}

	data, err := json.MarshalIndent(tracks, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode catalog")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write catalog")
	}

	log.Info().Int("tracks", len(tracks)).Str("output", *out).Msg("catalog written")
}
