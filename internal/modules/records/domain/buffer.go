package domain

import (
	"strings"

	"pitwall/internal/platform/keys"
)

// Buffer names one set of record keys. The working buffer is the live data the
// app reads and writes; session snapshots are moved into and out of it.
type Buffer struct {
	Name   string
	Prefix string
}

var Working = Buffer{Name: "working", Prefix: keys.Prefix}

func (b Buffer) Key(name string) string {
	return b.Prefix + name
}

func (b Buffer) Valid() bool {
	return strings.TrimSpace(b.Prefix) != ""
}
