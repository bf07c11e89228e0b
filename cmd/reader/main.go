// ABOUTME: Command line entry point printing the entries of an Atom file as JSON
// ABOUTME: Wires configuration, logging and the reader library together

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/entry"
	digests "digests-feedreader/digests-lib"
	"digests-feedreader/infrastructure/logger"
	"digests-feedreader/pkg/config"
	"digests-feedreader/pkg/utils/html"
)

// entryOutput is the JSON shape of one entry
type entryOutput struct {
	Index           int               `json:"index"`
	ID              string            `json:"id,omitempty"`
	Title           string            `json:"title,omitempty"`
	Permalink       string            `json:"permalink,omitempty"`
	Links           []string          `json:"links"`
	Authors         []domain.Author   `json:"authors"`
	Published       *time.Time        `json:"published,omitempty"`
	Updated         *time.Time        `json:"updated,omitempty"`
	Description     string            `json:"description,omitempty"`
	Content         string            `json:"content,omitempty"`
	Enclosure       *domain.Enclosure `json:"enclosure,omitempty"`
	CommentCount    int               `json:"comment_count"`
	CommentLink     string            `json:"comment_link,omitempty"`
	CommentFeedLink string            `json:"comment_feed_link,omitempty"`
}

func main() {
	text := flag.Bool("text", false, "render description and content as plain text")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-text] FEED.xml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	client, err := digests.NewClient(
		digests.WithLogger(appLogger),
		digests.WithReaderConfig(cfg.Reader),
	)
	if err != nil {
		appLogger.Error("Failed to create reader", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	doc, err := client.LoadFile(flag.Arg(0))
	if err != nil {
		appLogger.Error("Failed to load feed", map[string]interface{}{
			"path":  flag.Arg(0),
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if err := writeEntries(os.Stdout, doc.Entries, *text); err != nil {
		appLogger.Error("Failed to write output", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func writeEntries(w io.Writer, entries []*entry.Atom, plainText bool) error {
	out := make([]entryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toOutput(e, plainText))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toOutput(e *entry.Atom, plainText bool) entryOutput {
	permalink, _ := e.Permalink()
	description := e.Description()
	content := e.Content()
	if plainText {
		description = html.ToText(description)
		content = html.ToText(content)
	}

	return entryOutput{
		Index:           e.Index(),
		ID:              e.ID(),
		Title:           e.Title(),
		Permalink:       permalink,
		Links:           e.Links(),
		Authors:         e.Authors(),
		Published:       e.DateCreated(),
		Updated:         e.DateModified(),
		Description:     description,
		Content:         content,
		Enclosure:       e.Enclosure(),
		CommentCount:    e.CommentCount(),
		CommentLink:     e.CommentLink(),
		CommentFeedLink: e.CommentFeedLink(),
	}
}
