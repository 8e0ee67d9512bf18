// Package iconforge procedurally renders application icons and
// store-listing graphics by compositing geometric primitives onto a
// pixel canvas.
//
// # Overview
//
// iconforge replaces a pile of near-identical one-shot icon scripts with
// a single data-driven renderer. An icon variant is described as a Recipe:
// an ordered list of layers (gradients, ellipses, rounded rectangles,
// polygons, arcs, lines, text) that are replayed in strict order onto a
// shared Canvas using src-over compositing. Layer order is the only
// z-ordering mechanism (painter's algorithm).
//
// # Quick Start
//
//	recipe := recipes.Classic()
//
//	canvas, err := iconforge.Render(recipe, 1024, 1024)
//	if err != nil {
//	    return err
//	}
//
//	err = export.SavePNG("assets/icons/app_icon.png", canvas.Image())
//
// # Rendering Model
//
// The renderer deliberately reproduces the layered-approximation
// techniques the published assets were generated with, rather than
// analytic anti-aliased rendering:
//
//   - Radial gradients are stacks of concentric filled circles drawn from
//     the largest radius down to zero, producing discrete color bands.
//   - Thick arc strokes are built from repeated thin arc passes at
//     successive thickness offsets, giving a soft density falloff at the
//     stroke edges.
//
// Substituting analytic equivalents changes pixel output. Render is pure
// and deterministic: identical inputs always produce byte-identical
// pixel buffers.
//
// # Coordinate System
//
// Standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arc angles in degrees, 0 at 3 o'clock, increasing clockwise
//
// # Structure
//
// The library is organized into:
//   - Root package: Canvas, compositing, gradients, primitive rasterizer,
//     scene model
//   - text: font loading, fallback resolution, measurement, glyph drawing
//   - recipes: the published icon variants, expressed as data
//   - export: Lanczos resizing, PNG encoding, feature-graphic composition
package iconforge
