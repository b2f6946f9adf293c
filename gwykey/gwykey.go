// Package gwykey builds and parses the item paths of a measurement container.
//
// All functions are pure: channel keys are derived from a 0-based channel id,
// graph keys from a 1-based graph id, and the parse functions accept only the
// canonical forms the build functions emit.
package gwykey

import (
	"strconv"
	"strings"
)

// Mask color component names, stored directly under the mask key.
const (
	MaskRed   = "red"
	MaskGreen = "green"
	MaskBlue  = "blue"
	MaskAlpha = "alpha"
)

const graphPrefix = "/0/graph/graph"

func channelRoot(id int) string {
	return "/" + strconv.Itoa(id)
}

// ChannelData returns the key of a channel's primary data field object.
func ChannelData(id int) string {
	return channelRoot(id) + "/data"
}

// ChannelTitle returns the key of a channel's title string.
func ChannelTitle(id int) string {
	return channelRoot(id) + "/data/title"
}

// ChannelVisible returns the key of a channel's visibility flag.
func ChannelVisible(id int) string {
	return channelRoot(id) + "/data/visible"
}

// ChannelPalette returns the key of the false color gradient name.
func ChannelPalette(id int) string {
	return channelRoot(id) + "/base/palette"
}

// ChannelRangeType returns the key of the color range mapping type.
func ChannelRangeType(id int) string {
	return channelRoot(id) + "/base/range-type"
}

// ChannelRangeMin returns the key of the user-set display range minimum.
func ChannelRangeMin(id int) string {
	return channelRoot(id) + "/base/min"
}

// ChannelRangeMax returns the key of the user-set display range maximum.
func ChannelRangeMax(id int) string {
	return channelRoot(id) + "/base/max"
}

// ChannelMask returns the key of a channel's mask data field object.
func ChannelMask(id int) string {
	return channelRoot(id) + "/mask"
}

// ChannelMaskColor returns the key of one mask color component.
// The component is one of MaskRed, MaskGreen, MaskBlue or MaskAlpha.
func ChannelMaskColor(id int, component string) string {
	return channelRoot(id) + "/mask/" + component
}

// ChannelShow returns the key of a channel's presentation data field object.
func ChannelShow(id int) string {
	return channelRoot(id) + "/show"
}

// ChannelSelection returns the key of one selection object of a channel.
// The word is the path form of the selection kind, e.g. "point" or "line".
func ChannelSelection(id int, word string) string {
	return channelRoot(id) + "/select/" + word
}

// Graph returns the key of a graph model object.
func Graph(id int) string {
	return graphPrefix + "/" + strconv.Itoa(id)
}

// GraphVisible returns the key of a graph's visibility flag, a sibling of
// the graph object itself.
func GraphVisible(id int) string {
	return Graph(id) + "/visible"
}

// Filename returns the key of the container's source file name.
func Filename() string {
	return "/filename"
}

// ParseChannelData extracts the channel id from a key of the exact form
// "/{id}/data". Any other key, including subkeys such as "/{id}/data/title",
// reports false.
func ParseChannelData(path string) (int, bool) {
	rest, found := strings.CutPrefix(path, "/")
	if !found {
		return 0, false
	}

	number, found := strings.CutSuffix(rest, "/data")
	if !found {
		return 0, false
	}

	return parseID(number)
}

// ParseGraph extracts the graph id from a key of the exact form
// "/0/graph/graph/{id}". Any other key, including the sibling visibility
// key, reports false.
func ParseGraph(path string) (int, bool) {
	number, found := strings.CutPrefix(path, graphPrefix+"/")
	if !found {
		return 0, false
	}

	return parseID(number)
}

// parseID accepts only the canonical decimal form emitted by the build
// functions, so "007" never aliases id 7.
func parseID(number string) (int, bool) {
	id, err := strconv.Atoi(number)
	if err != nil || id < 0 || strconv.Itoa(id) != number {
		return 0, false
	}

	return id, true
}
