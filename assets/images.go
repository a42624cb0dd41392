package assets

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageCache decodes sprites from an fs.FS.
type ImageCache struct {
	*Cache[*ebiten.Image]
}

// NewImageCache reads images from fsys, usually os.DirFS of the sprite
// directory.
func NewImageCache(fsys fs.FS) *ImageCache {
	return &ImageCache{
		Cache: NewCache(func(kind Kind, path string) (*ebiten.Image, error) {
			if kind != KindImage {
				return nil, fmt.Errorf("unsupported kind %s", kind)
			}
			f, err := fsys.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()

			img, _, err := ebitenutil.NewImageFromReader(f)
			if err != nil {
				return nil, err
			}
			return img, nil
		}),
	}
}

// Sprite returns the image at path, or nil when it can't be loaded. The
// first failure for a path is logged.
func (c *ImageCache) Sprite(path string) *ebiten.Image {
	seen := c.Len()
	img, err := c.GetOrCreate(KindImage, path)
	if err != nil {
		if c.Len() > seen {
			log.Printf("Warning: %v", err)
		}
		return nil
	}
	return img
}
