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

//go:generate mockgen -destination mocks/vision_mock.go -source vision.go -package mocks

package vision

import (
	"context"
	"fmt"
)

const (
	// ServiceNameAzure is the Azure AI Vision image analysis service.
	ServiceNameAzure = "azure"

	// ServiceNameNoop is the stand-in service used when the real one is
	// unavailable. It answers every request with an empty feature set.
	ServiceNameNoop = "noop"
)

// Tag is a recognized concept with its confidence.
type Tag struct {
	// Name is the concept name.
	Name string

	// Confidence is the recognition confidence in [0, 1].
	Confidence float64
}

// Analysis is the feature set returned for one image.
type Analysis struct {
	// ModelVersion is the service model that produced the analysis.
	ModelVersion string

	// Tags are the recognized concepts.
	Tags []Tag
}

// Client is the interface used for image analysis.
type Client interface {
	// Analyze submits image bytes for tag analysis.
	Analyze(ctx context.Context, image []byte) (*Analysis, error)
}

// New vision client interface.
func New(name, endpoint, apiKey string) (Client, error) {
	switch name {
	case ServiceNameAzure:
		return newAzure(endpoint, apiKey)
	case ServiceNameNoop:
		return newNoop(), nil
	}

	return nil, fmt.Errorf("unknown service name %s", name)
}
