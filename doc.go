// Package gwyfile converts between the flat item tree a measurement
// container file is persisted as and the typed object model application
// code works with: channels carrying data grids, masks and selections,
// and graphs carrying curves.
//
// Reading goes tree to objects: ReadFile produces the tree and Decode
// walks it. Writing goes objects to tree: Encode builds a brand-new
// tree that WriteFile or Save persists. Nested graph objects created
// while encoding stay reachable for as long as the enclosing tree is;
// closing the tree releases them.
//
// See the [github.com/gwyddion/go-gwyfile/tree] package for the item
// store itself and [github.com/gwyddion/go-gwyfile/marshaller] for the
// byte format.
package gwyfile
