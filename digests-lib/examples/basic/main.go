// ABOUTME: Basic example showing how to read Atom entries with the Digests library
// ABOUTME: Loads a local file and prints a few fields of every entry

package main

import (
	"fmt"
	"log"
	"os"

	digests "digests-feedreader/digests-lib"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: basic FEED.xml")
	}

	client, err := digests.NewClient(digests.WithLogger(digests.QuietLogger()))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	doc, err := client.LoadFile(os.Args[1])
	if err != nil {
		log.Fatal("Failed to load feed:", err)
	}

	fmt.Printf("Dialect: %s, entries: %d\n", doc.Dialect, doc.Len())
	for _, e := range doc.Entries {
		link, _ := e.Permalink()
		fmt.Printf("- %s <%s> (%d comments)\n", e.Title(), link, e.CommentCount())
	}
}
