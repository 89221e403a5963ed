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

package config

const (
	// DefaultProjectName is the default vision project name.
	DefaultProjectName = "pantry-peeper"

	// ServiceType names the managed service on summary records.
	ServiceType = "Azure Computer Vision"
)

const (
	// DefaultImageSize is the square edge length images are normalized to.
	DefaultImageSize = 224

	// DefaultImagesPerCategory is the number of images prepared per category.
	DefaultImagesPerCategory = 50

	// DefaultTrainRatio is the fraction of images assigned to the training subset.
	DefaultTrainRatio = 0.8
)

const (
	// DefaultProbeAttempts is the number of connection probe attempts.
	DefaultProbeAttempts = 3
)

// Environment variable names resolved by Load.
const (
	// EnvVisionEndpoint carries the service endpoint.
	EnvVisionEndpoint = "AZURE_VISION_ENDPOINT"

	// EnvVisionAPIKey carries the service credential.
	EnvVisionAPIKey = "AZURE_VISION_API_KEY"

	// EnvVisionProject carries the vision project name.
	EnvVisionProject = "AZURE_VISION_PROJECT"
)
