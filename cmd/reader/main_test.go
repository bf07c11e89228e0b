package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	digests "digests-feedreader/digests-lib"
)

const feed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example</title>
  <entry>
    <title>Hello</title>
    <id>urn:1</id>
    <link href="https://example.com/hello"/>
    <author><name>Ada</name></author>
    <content type="html">&lt;p&gt;Hello &lt;b&gt;there&lt;/b&gt;&lt;/p&gt;</content>
  </entry>
</feed>`

func loadEntries(t *testing.T) *digests.Document {
	t.Helper()
	client, err := digests.NewClient(digests.WithLogger(digests.QuietLogger()))
	require.NoError(t, err)
	doc, err := client.Load([]byte(feed))
	require.NoError(t, err)
	return doc
}

func TestWriteEntries(t *testing.T) {
	doc := loadEntries(t)

	var buf bytes.Buffer
	require.NoError(t, writeEntries(&buf, doc.Entries, false))

	var out []entryOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)

	assert.Equal(t, "urn:1", out[0].ID)
	assert.Equal(t, "Hello", out[0].Title)
	assert.Equal(t, "https://example.com/hello", out[0].Permalink)
	assert.Equal(t, "Ada", out[0].Authors[0].Name)
	assert.Equal(t, "<p>Hello <b>there</b></p>", out[0].Content)
	assert.Nil(t, out[0].Enclosure)
}

func TestWriteEntries_PlainText(t *testing.T) {
	doc := loadEntries(t)

	var buf bytes.Buffer
	require.NoError(t, writeEntries(&buf, doc.Entries, true))

	var out []entryOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Hello there", out[0].Content)
}
