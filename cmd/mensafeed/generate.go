package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tileh/mensafeed"
	"github.com/tileh/mensafeed/config"
	"github.com/tileh/mensafeed/feed"
	"github.com/tileh/mensafeed/render"
)

var (
	flagFormat string
	flagOut    string
	flagPDF    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch the menu page and write the feed file",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&flagFormat, "format", "openmensa", "feed format: openmensa or ical")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output file (defaults to the configured feed file)")
	generateCmd.Flags().StringVar(&flagPDF, "pdf", "", "additionally write a printable menu card to this path")
}

func getConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Get(flagConfig)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	conf, errConf := getConfig()
	if errConf != nil {
		return fmt.Errorf("config error: %w", errConf)
	}
	if flagVerbose {
		spew.Fdump(os.Stderr, conf)
	}

	var builder mensafeed.FeedBuilder
	switch flagFormat {
	case "openmensa":
		builder = feed.NewOpenMensa()
	case "ical":
		builder = feed.NewICal()
	default:
		return fmt.Errorf("unknown feed format %q", flagFormat)
	}

	ctx := context.Background()
	fetcher := mensafeed.NewFetcher(conf.Agent, conf.Timeout.Std())
	doc, errFetch := fetcher.FetchDocument(ctx, conf.Source)
	if errFetch != nil {
		return errFetch
	}

	assembler := mensafeed.NewAssembler(conf)
	if err := assembler.BuildFeed(doc, time.Now(), builder); err != nil {
		return err
	}

	document, errDoc := builder.ToFeedDocument()
	if errDoc != nil {
		return errDoc
	}

	out := flagOut
	if out == "" {
		out = conf.FeedFile
		if flagFormat == "ical" {
			out = out[:len(out)-len(filepath.Ext(out))] + ".ics"
		}
	}
	if err := writeFile(out, []byte(document)); err != nil {
		return err
	}
	fmt.Println("wrote feed to", out)

	if flagPDF != "" {
		recorder := feed.NewRecorder()
		// the normalize pass is idempotent, running the engine again
		// over the same tree is safe
		if err := assembler.BuildFeed(doc, time.Now(), recorder); err != nil {
			return err
		}
		card, errCard := render.MenuCard(conf.AnchorHeading, recorder.Entries)
		if errCard != nil {
			return errCard
		}
		if err := writeFile(flagPDF, card); err != nil {
			return err
		}
		fmt.Println("wrote menu card to", flagPDF)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
