package export

import (
	"image"
	"image/color"

	"github.com/iconforge/iconforge"
	"github.com/iconforge/iconforge/text"
)

// Banner describes the text content of a store feature graphic. A nil
// Source falls back to the embedded default font, which keeps the
// output reproducible on machines with no fonts installed.
type Banner struct {
	Title    string
	Subtitle string
	Bullets  []string
	Source   *text.Source
}

func (b Banner) face(size float64) text.Face {
	if b.Source != nil {
		return b.Source.Face(size)
	}
	return text.Default(size)
}

// Feature graphic layout constants. The icon sits in the left column,
// text flows in the right column from textX.
const (
	bannerIconSize = 300
	bannerIconX    = 50
	bannerTextX    = 430
)

// FeatureGraphic composes the 1024x500 store banner: a vertical
// gradient background, the app icon cropped to a circle on the left,
// and the title, subtitle and bullet lines on the right.
func FeatureGraphic(icon image.Image, b Banner) (*iconforge.Canvas, error) {
	c, err := iconforge.NewCanvas(BannerWidth, BannerHeight)
	if err != nil {
		return nil, err
	}

	iconforge.FillLinearGradient(c,
		iconforge.R(0, 0, BannerWidth-1, BannerHeight-1),
		iconforge.RGB(79, 70, 229),
		iconforge.RGB(116, 58, 237))

	if err := drawBannerIcon(c, icon); err != nil {
		return nil, err
	}

	midY := BannerHeight / 2

	titleFace := b.face(72)
	drawBannerText(c, b.Title, titleFace, bannerTextX, midY-60, color.NRGBA{255, 255, 255, 255})

	bodyFace := b.face(36)
	drawBannerText(c, b.Subtitle, bodyFace, bannerTextX, midY+20, color.NRGBA{255, 255, 255, 200})

	y := midY + 80
	for _, line := range b.Bullets {
		drawBannerText(c, line, bodyFace, bannerTextX, y, color.NRGBA{255, 255, 255, 180})
		y += 40
	}
	return c, nil
}

// drawBannerIcon scales the icon to the banner column, punches it into
// a circle and blends it over the gradient, vertically centered.
func drawBannerIcon(c *iconforge.Canvas, icon image.Image) error {
	scaled := Resize(icon, bannerIconSize, bannerIconSize)

	tile, err := iconforge.NewCanvas(bannerIconSize, bannerIconSize)
	if err != nil {
		return err
	}
	for y := 0; y < bannerIconSize; y++ {
		for x := 0; x < bannerIconSize; x++ {
			n := scaled.NRGBAAt(x, y)
			tile.Blend(x, y, iconforge.Color{R: n.R, G: n.G, B: n.B, A: n.A})
		}
	}

	mask := iconforge.EllipseMask(bannerIconSize, bannerIconSize,
		iconforge.R(20, 20, bannerIconSize-20, bannerIconSize-20))
	if err := tile.ApplyAlphaMask(mask); err != nil {
		return err
	}

	offY := (BannerHeight - bannerIconSize) / 2
	for y := 0; y < bannerIconSize; y++ {
		for x := 0; x < bannerIconSize; x++ {
			px := tile.Get(x, y)
			if px.A == 0 {
				continue
			}
			c.Blend(bannerIconX+x, offY+y, px)
		}
	}
	return nil
}

// drawBannerText places a single line with its top edge at top,
// skipping empty strings so optional fields cost nothing.
func drawBannerText(c *iconforge.Canvas, line string, face text.Face, x, top int, col color.NRGBA) {
	if line == "" {
		return
	}
	baseline := float64(top) + face.Metrics().Ascent
	text.Draw(c, line, face, float64(x), baseline, col)
}
