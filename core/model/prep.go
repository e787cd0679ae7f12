package model

import (
	"fmt"
	"strings"
	"time"
)

// PrepType classifies a preparation. Medias and buffers are never produced
// on the same day.
type PrepType int

const (
	Media PrepType = iota
	Buffer
)

// String returns a human-readable representation of the preparation type.
func (t PrepType) String() string {
	switch t {
	case Media:
		return "Media"
	case Buffer:
		return "Buffer"
	default:
		return "unknown"
	}
}

// ParsePrepType reads a preparation type from its textual form. The legacy
// "is media?" Y/N flag from the planning workbook is accepted as well.
func ParsePrepType(s string) (PrepType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "media", "y", "yes":
		return Media, nil
	case "buffer", "n", "no":
		return Buffer, nil
	default:
		return Media, fmt.Errorf("unknown preparation type %q", s)
	}
}

// Prep describes a media or buffer preparation produced ahead of a task.
type Prep struct {
	Name string
	Type PrepType
	// Expiration is how long before use the preparation may be produced.
	Expiration time.Duration
}

// Batch is a single production run of a preparation. It doubles as the
// placement entry stored in a Schedule.
type Batch struct {
	Prep   string `json:"prep"`
	Volume int    `json:"volume"`
}

// UnplacedBatch records a batch that found no available day within its
// valid production window.
type UnplacedBatch struct {
	Task   string `json:"task"`
	Prep   string `json:"prep"`
	Volume int    `json:"volume"`
}
