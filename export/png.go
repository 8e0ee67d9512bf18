package export

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create output dir for %q", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %q", path)
	}
	return nil
}

// LoadPNG reads a previously exported PNG back as NRGBA. A missing
// file maps to ErrMissingSourceAsset so callers can skip the output
// and keep going.
func LoadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMissingSourceAsset, "%q", path)
		}
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %q", path)
	}
	return toNRGBA(img), nil
}
