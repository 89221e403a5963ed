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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pantry-peeper/visionsetup/pkg/container/set"
)

const (
	// SplitFilePrefix is prefix of split file name.
	SplitFilePrefix = "split"

	// CSVFileExt is extension of file name.
	CSVFileExt = "csv"
)

const (
	// SubsetTrain is the training subset name.
	SubsetTrain = "train"

	// SubsetValidation is the validation subset name.
	SubsetValidation = "validation"
)

// SplitRecord is a persisted split assignment row.
type SplitRecord struct {
	// Path is the prepared image path.
	Path string `csv:"path"`

	// Category is the pantry item category.
	Category string `csv:"category"`

	// Subset is the assigned subset, like: train, validation.
	Subset string `csv:"subset"`
}

// Storage is the interface used for split record persistence.
type Storage interface {
	// CreateSplit inserts split records into csv files based on the given run key.
	CreateSplit([]SplitRecord, string) error

	// ListSplit returns split records in csv files based on the given run key.
	ListSplit(string) ([]SplitRecord, error)

	// OpenSplit opens split files for read based on the given run key, it returns io.ReadCloser of split files.
	OpenSplit(string) (io.ReadCloser, error)

	// ClearSplit removes split records based on the given run key.
	ClearSplit(string) error

	// Clear removes all files.
	Clear() error
}

type storage struct {
	baseDir      string
	splitRunKeys set.SafeSet[string]
}

// New returns a new Storage instance.
func New(baseDir string) Storage {
	return &storage{
		baseDir:      baseDir,
		splitRunKeys: set.NewSafeSet[string](),
	}
}

// CreateSplit inserts split records into csv files based on the given run key.
func (s *storage) CreateSplit(records []SplitRecord, runKey string) error {
	file, err := os.OpenFile(s.splitFilename(runKey), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	// Write split records to csv file.
	if err := gocsv.MarshalWithoutHeaders(records, file); err != nil {
		file.Close()
		if err := os.Remove(s.splitFilename(runKey)); err != nil {
			return err
		}

		return err
	}
	defer file.Close()

	// Add run key.
	s.splitRunKeys.Add(runKey)
	return nil
}

// ListSplit returns split records in csv files based on the given run key.
func (s *storage) ListSplit(runKey string) ([]SplitRecord, error) {
	file, err := os.Open(s.splitFilename(runKey))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []SplitRecord
	if err := gocsv.UnmarshalWithoutHeaders(file, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// OpenSplit opens split files for read based on the given run key, it returns io.ReadCloser of split files.
func (s *storage) OpenSplit(runKey string) (io.ReadCloser, error) {
	file, err := os.Open(s.splitFilename(runKey))
	if err != nil {
		return nil, err
	}

	return file, nil
}

// ClearSplit removes split records based on the given run key.
func (s *storage) ClearSplit(runKey string) error {
	if err := os.Remove(s.splitFilename(runKey)); err != nil {
		return err
	}

	s.splitRunKeys.Delete(runKey)
	return nil
}

// Clear removes all files.
func (s *storage) Clear() error {
	for _, runKey := range s.splitRunKeys.Values() {
		if err := os.Remove(s.splitFilename(runKey)); err != nil {
			return err
		}
	}

	s.splitRunKeys = set.NewSafeSet[string]()
	return nil
}

// splitFilename generates split file name based on the given run key.
func (s *storage) splitFilename(runKey string) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s-%s.%s", SplitFilePrefix, runKey, CSVFileExt))
}
