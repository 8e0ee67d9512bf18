package export

// Bucket names one launcher-icon output: an Android density qualifier
// and the square pixel size the launcher expects at that density.
type Bucket struct {
	Density string
	Size    int
}

// LauncherBuckets lists the density ladder for launcher icons, in
// ascending size order.
var LauncherBuckets = []Bucket{
	{Density: "mdpi", Size: 48},
	{Density: "hdpi", Size: 72},
	{Density: "xhdpi", Size: 96},
	{Density: "xxhdpi", Size: 144},
	{Density: "xxxhdpi", Size: 192},
}

// Store listing artwork dimensions.
const (
	StoreIconSize = 512

	BannerWidth  = 1024
	BannerHeight = 500
)
