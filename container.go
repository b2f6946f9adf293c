package gwyfile

import (
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/channel"
	"github.com/gwyddion/go-gwyfile/graph"
)

// Container is one fully decoded measurement file: the channels and
// graphs it holds plus the optional name of the file it came from.
// Encode assigns ids purely by position, channels from 0 and graphs
// from 1, regardless of the ids a decoded tree carried.
type Container struct {
	Channels []*channel.Channel
	Graphs   []*graph.Model

	// Filename is the base name recorded in the tree, never a full
	// path. Save writes the key itself; Encode leaves it out.
	Filename option.Generic[string]
}
