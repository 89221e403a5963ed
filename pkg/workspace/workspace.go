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

//go:generate mockgen -destination mocks/workspace_mock.go -source workspace.go -package mocks

package workspace

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultWorkHome is the default workspace directory for prepared data.
	DefaultWorkHome = "./pantry_data"

	// DefaultWorkHomeMode is the default mode of created directories.
	DefaultWorkHomeMode = fs.FileMode(0755)

	// DefaultReportDir is the default directory for report records.
	DefaultReportDir = "."

	// PreparedDirName is the subdirectory holding per-category images.
	PreparedDirName = "prepared"

	// LogDirName is the subdirectory holding rotated log files.
	LogDirName = "logs"
)

// Workspace is the interface used for init project directories.
type Workspace interface {
	WorkHome() string
	WorkHomeMode() fs.FileMode
	PreparedDir() string
	LogDir() string
	ReportDir() string
}

// Workspace provides init project directories function.
type workspace struct {
	workHome     string
	workHomeMode fs.FileMode
	preparedDir  string
	logDir       string
	reportDir    string
}

// Option is a functional option for configuring the workspace.
type Option func(w *workspace)

// WithWorkHome set the workhome directory.
func WithWorkHome(dir string) Option {
	return func(w *workspace) {
		w.workHome = dir
	}
}

// WithWorkHomeMode sets the workHome directory mode.
func WithWorkHomeMode(mode fs.FileMode) Option {
	return func(w *workspace) {
		w.workHomeMode = mode
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(w *workspace) {
		w.logDir = dir
	}
}

// WithReportDir set the report directory.
func WithReportDir(dir string) Option {
	return func(w *workspace) {
		w.reportDir = dir
	}
}

// New returns a new workspace interface.
func New(options ...Option) (Workspace, error) {
	w := &workspace{
		workHome:     DefaultWorkHome,
		workHomeMode: DefaultWorkHomeMode,
		reportDir:    DefaultReportDir,
	}

	for _, opt := range options {
		opt(w)
	}

	// Initialize derived directories.
	w.preparedDir = filepath.Join(w.workHome, PreparedDirName)
	if w.logDir == "" {
		w.logDir = filepath.Join(w.workHome, LogDirName)
	}

	var result *multierror.Error

	// Create workhome directory.
	if err := os.MkdirAll(w.workHome, w.workHomeMode); err != nil {
		result = multierror.Append(result, err)
	}

	// Create prepared directory.
	if err := os.MkdirAll(w.preparedDir, w.workHomeMode); err != nil {
		result = multierror.Append(result, err)
	}

	// Create log directory.
	if err := os.MkdirAll(w.logDir, fs.FileMode(0700)); err != nil {
		result = multierror.Append(result, err)
	}

	// Create report directory.
	if err := os.MkdirAll(w.reportDir, w.workHomeMode); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *workspace) WorkHome() string {
	return w.workHome
}

func (w *workspace) WorkHomeMode() fs.FileMode {
	return w.workHomeMode
}

func (w *workspace) PreparedDir() string {
	return w.preparedDir
}

func (w *workspace) LogDir() string {
	return w.logDir
}

func (w *workspace) ReportDir() string {
	return w.reportDir
}
