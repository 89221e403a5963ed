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

//go:generate mockgen -destination mocks/dataset_mock.go -source dataset.go -package mocks

package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

const (
	// DatasetName is the manifest dataset name.
	DatasetName = "Pantry Item Recognition Dataset"

	// DatasetVersion is the manifest dataset version.
	DatasetVersion = "1.0"

	// NormalizationRange describes the pixel scaling on the manifest.
	NormalizationRange = "0-1 range"

	// ImageFileLayout is the per-category image file name layout.
	ImageFileLayout = "%s_%04d.jpg"
)

// Categories is the fixed pantry item category table. Prepared images
// are organized into one directory per name.
var Categories = []string{
	"flour", "sugar", "salt", "rice", "pasta", "beans",
	"canned_vegetables", "canned_fruits", "oil", "butter",
	"milk", "cheese", "eggs", "bread", "cereal",
}

// Split carries the training and validation file lists. Every prepared
// path lands in exactly one of the two.
type Split struct {
	Train      []string `json:"train"`
	Validation []string `json:"validation"`
}

// Preprocessing records the preprocessing flags on the manifest.
type Preprocessing struct {
	Resize        bool   `json:"resize"`
	Normalization string `json:"normalization"`
	Augmentation  bool   `json:"augmentation"`
}

// SplitRatio records the default subset proportions on the manifest.
type SplitRatio struct {
	Training   float64 `json:"training"`
	Validation float64 `json:"validation"`
}

// Manifest describes the prepared dataset.
type Manifest struct {
	DatasetName     string        `json:"dataset_name"`
	Version         string        `json:"version"`
	Categories      []string      `json:"categories"`
	TotalCategories int           `json:"total_categories"`
	ImageSize       []int         `json:"image_size"`
	Preprocessing   Preprocessing `json:"preprocessing"`
	SplitRatio      SplitRatio    `json:"split_ratio"`
}

// NormalizedImage is a preprocessed image with pixels scaled to [0,1]
// in row-major RGB order.
type NormalizedImage struct {
	Width  int
	Height int
	Pixels []float32
}

// Preparer organizes, synthesizes and preprocesses the category images.
type Preparer interface {
	// OrganizeCategories ensures one directory per category and returns
	// the per-category image counts.
	OrganizeCategories() (map[string]int, error)

	// PreprocessImage decodes and normalizes a single image.
	PreprocessImage(path string) (*NormalizedImage, error)

	// PrepareSplit synthesizes missing placeholder images and assigns
	// every path to the training or validation subset.
	PrepareSplit(trainRatio float64) (*Split, error)

	// WriteManifest writes the dataset manifest record and returns it.
	WriteManifest(path string) (*Manifest, error)
}

// preparer provides dataset prepare function.
type preparer struct {
	// preparedDir is the directory holding per-category images.
	preparedDir string

	// imageSize is the square edge length images are normalized to.
	imageSize int

	// imagesPerCategory is the number of images prepared per category.
	imagesPerCategory int

	// withProgress shows a progress bar while placeholders are synthesized.
	withProgress bool
}

// Option is a functional option for configuring the preparer.
type Option func(p *preparer)

// WithProgress shows placeholder synthesis progress on the console.
func WithProgress(show bool) Option {
	return func(p *preparer) {
		p.withProgress = show
	}
}

// New preparer instance.
func New(preparedDir string, imageSize, imagesPerCategory int, options ...Option) Preparer {
	p := &preparer{
		preparedDir:       preparedDir,
		imageSize:         imageSize,
		imagesPerCategory: imagesPerCategory,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// OrganizeCategories ensures one directory per category. Counts reset
// to zero on every pass, existing files are not scanned.
func (p *preparer) OrganizeCategories() (map[string]int, error) {
	counts := make(map[string]int, len(Categories))
	for _, category := range Categories {
		if err := os.MkdirAll(filepath.Join(p.preparedDir, category), 0755); err != nil {
			return nil, err
		}

		counts[category] = 0
	}

	return counts, nil
}

// PrepareSplit synthesizes missing placeholder images and splits the
// files in category-then-index order. The first floor(n*ratio) indices
// of each category train, the remainder validate.
func (p *preparer) PrepareSplit(trainRatio float64) (*Split, error) {
	var bar *progressbar.ProgressBar
	if p.withProgress {
		bar = progressbar.Default(int64(len(Categories)*p.imagesPerCategory), "preparing dataset")
	}

	split := &Split{}
	trainCount := int(float64(p.imagesPerCategory) * trainRatio)
	for _, category := range Categories {
		categoryDir := filepath.Join(p.preparedDir, category)
		if err := os.MkdirAll(categoryDir, 0755); err != nil {
			return nil, err
		}

		for i := 0; i < p.imagesPerCategory; i++ {
			path := filepath.Join(categoryDir, fmt.Sprintf(ImageFileLayout, category, i))
			if err := p.synthesizePlaceholder(path); err != nil {
				return nil, err
			}

			if i < trainCount {
				split.Train = append(split.Train, path)
			} else {
				split.Validation = append(split.Validation, path)
			}

			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return split, nil
}

// WriteManifest writes the dataset manifest record, overwriting any
// previous one. The split ratio on the record is the default split,
// not the configured one.
func (p *preparer) WriteManifest(path string) (*Manifest, error) {
	manifest := &Manifest{
		DatasetName:     DatasetName,
		Version:         DatasetVersion,
		Categories:      Categories,
		TotalCategories: len(Categories),
		ImageSize:       []int{p.imageSize, p.imageSize},
		Preprocessing: Preprocessing{
			Resize:        true,
			Normalization: NormalizationRange,
			Augmentation:  true,
		},
		SplitRatio: SplitRatio{
			Training:   0.8,
			Validation: 0.2,
		},
	}

	b, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return nil, err
	}

	return manifest, nil
}
