package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tileh/mensafeed"
	"github.com/tileh/mensafeed/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch the menu page and print it as Markdown",
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	conf, errConf := getConfig()
	if errConf != nil {
		return fmt.Errorf("config error: %w", errConf)
	}
	if flagVerbose {
		spew.Fdump(os.Stderr, conf)
	}

	fetcher := mensafeed.NewFetcher(conf.Agent, conf.Timeout.Std())
	doc, errFetch := fetcher.FetchDocument(context.Background(), conf.Source)
	if errFetch != nil {
		return errFetch
	}

	html, errHTML := doc.Html()
	if errHTML != nil {
		return fmt.Errorf("rendering fetched document: %w", errHTML)
	}
	markdown, errMarkdown := render.MenuMarkdown(html)
	if errMarkdown != nil {
		return errMarkdown
	}
	fmt.Println(markdown)
	return nil
}
