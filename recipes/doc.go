// Package recipes holds the published icon variants as data.
//
// Each variant is an ordered iconforge.Layer list built over the same
// primitive vocabulary; there is deliberately no per-variant drawing
// code. All recipes target a 1024×1024 canvas and are resized to the
// platform density buckets downstream.
package recipes
