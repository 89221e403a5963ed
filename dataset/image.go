/*
 *     Copyright 2024 The Pantry Peeper Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataset

import (
	"fmt"
	"image"
	"image/jpeg"
	"math/rand"
	"os"
	"time"

	// Register the decodable image formats.
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/pantry-peeper/visionsetup/internal/pperrors"
)

// contrastScale is the mild contrast adjustment applied after scaling
// pixels to [0,1]. Values saturate at 1.
const contrastScale = 1.05

// Placeholder pixel content is random, preprocessing output is not.
var placeholderRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// PreprocessImage decodes, resizes and normalizes a single image.
// Identical input bytes produce identical output.
func (p *preparer) PreprocessImage(path string) (*NormalizedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pperrors.ErrUnreadableImage, path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pperrors.ErrUnreadableImage, path)
	}

	resized := resize.Resize(uint(p.imageSize), uint(p.imageSize), img, resize.Bilinear)
	bounds := resized.Bounds()

	normalized := &NormalizedImage{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]float32, 0, bounds.Dx()*bounds.Dy()*3),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			for _, channel := range [3]uint32{r, g, b} {
				v := float32(channel) / 0xffff * contrastScale
				if v > 1 {
					v = 1
				}

				normalized.Pixels = append(normalized.Pixels, v)
			}
		}
	}

	return normalized, nil
}

// synthesizePlaceholder writes a random pixel JPEG when the path does
// not exist yet. Existing files are never regenerated.
func (p *preparer) synthesizePlaceholder(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, p.imageSize, p.imageSize))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(placeholderRand.Intn(256))
		img.Pix[i+1] = uint8(placeholderRand.Intn(256))
		img.Pix[i+2] = uint8(placeholderRand.Intn(256))
		img.Pix[i+3] = 0xff
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, nil)
}
