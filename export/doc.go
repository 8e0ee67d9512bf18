// Package export turns rendered canvases into the published artifact
// set: density-bucket launcher icons, the store icon, and the feature
// graphic. Resampling uses a Lanczos filter so fine strokes survive the
// large downscale ratios; PNG encoding preserves the alpha channel
// losslessly.
package export
