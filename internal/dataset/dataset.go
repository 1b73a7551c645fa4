// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/jgrep/internal/log"
)

// SampleName is the built-in dataset.
const SampleName = "sample.jsonl"

//go:embed data/sample.jsonl
var builtin embed.FS

var (
	// ErrUnsupported is returned for names outside the whitelist.
	ErrUnsupported = errors.New("unsupported file")
	// ErrMissing is returned when a whitelisted dataset cannot be read.
	ErrMissing = errors.New("missing sample file")
)

// Source backs one whitelisted dataset name.
type Source struct {
	Name string
	// Path is the file to read. Empty for the built-in sample.
	Path string
	read func() ([]byte, error)
}

// Sample returns the embedded sample.jsonl source.
func Sample() Source {
	return Source{
		Name: SampleName,
		read: func() ([]byte, error) { return builtin.ReadFile("data/" + SampleName) },
	}
}

// File returns a source reading name from path.
func File(name, path string) Source {
	return Source{
		Name: name,
		Path: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// FromMap returns one file source per entry, ordered by name.
func FromMap(paths map[string]string) []Source {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, File(name, paths[name]))
	}
	return sources
}

// Entry is a loaded dataset.
type Entry struct {
	Name     string
	Path     string
	Lines    []string
	Size     int
	LoadedAt time.Time
}

// Cache maps dataset names to their lines for the life of the process.
type Cache struct {
	mu      sync.Mutex
	sources map[string]Source
	entries map[string]*Entry
}

// New builds a cache whose whitelist is exactly the given sources. A later
// source with the same name replaces an earlier one.
func New(sources ...Source) *Cache {
	c := &Cache{
		sources: make(map[string]Source, len(sources)),
		entries: make(map[string]*Entry),
	}
	for _, s := range sources {
		c.sources[s.Name] = s
	}
	return c
}

// Names returns the whitelisted dataset names in sorted order.
func (c *Cache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name is whitelisted.
func (c *Cache) Supported(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.sources[name]
	return ok
}

// Lines returns the lines of the named dataset, loading them on first use.
// Errors wrap ErrUnsupported or ErrMissing.
func (c *Cache) Lines(name string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, ok := c.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}

	if entry, ok := c.entries[name]; ok {
		log.Debugf("cache hit: name=%s, loaded=%s", name, humanize.Time(entry.LoadedAt))
		return entry.Lines, nil
	}

	data, err := src.read()
	if err != nil {
		log.WithError(err).Warnf("dataset unreadable: name=%s, path=%s", name, src.Path)
		return nil, fmt.Errorf("%w: %s", ErrMissing, name)
	}

	entry := &Entry{
		Name:     name,
		Path:     src.Path,
		Lines:    SplitLines(string(data)),
		Size:     len(data),
		LoadedAt: time.Now(),
	}
	c.entries[name] = entry
	log.Debugf("dataset loaded: name=%s, lines=%s, size=%s",
		name, humanize.Comma(int64(len(entry.Lines))), humanize.Bytes(uint64(entry.Size)))

	return entry.Lines, nil
}

// SplitLines splits text at \n, \r\n and \r. A trailing line break does not
// produce a final empty line.
func SplitLines(text string) []string {
	lines := []string{}
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}

		lines = append(lines, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	return lines
}
