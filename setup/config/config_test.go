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

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/pantry-peeper/visionsetup/internal/pperrors"
	"github.com/pantry-peeper/visionsetup/vision"
)

var mockVisionConfig = VisionConfig{
	ServiceName: vision.ServiceNameAzure,
	Endpoint:    "https://pantry.cognitiveservices.azure.com",
	APIKey:      "foo",
	ProjectName: DefaultProjectName,
}

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Console: true,
		Verbose: true,
		Vision: VisionConfig{
			ServiceName: vision.ServiceNameAzure,
			Endpoint:    "https://pantry.cognitiveservices.azure.com",
			APIKey:      "foo",
			ProjectName: "pantry-peeper",
		},
		Dataset: DatasetConfig{
			ImageSize:         224,
			ImagesPerCategory: 50,
			TrainRatio:        0.8,
		},
		Workspace: WorkspaceConfig{
			WorkHome:  "foo",
			LogDir:    "foo",
			ReportDir: "foo",
		},
	}

	setupConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/visionsetup.yaml")
	if err := yaml.Unmarshal(contentYAML, &setupConfigYAML); err != nil {
		t.Fatal(err)
	}
	assert := assert.New(t)
	assert.EqualValues(config, setupConfigYAML)
}

func TestConfig_LoadResolvesEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		mock   func(t *testing.T)
		expect func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "environment only",
			path: "",
			mock: func(t *testing.T) {
				t.Setenv(EnvVisionEndpoint, "https://env.cognitiveservices.azure.com")
				t.Setenv(EnvVisionAPIKey, "bar")
				t.Setenv(EnvVisionProject, "pantry-peeper-staging")
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("https://env.cognitiveservices.azure.com", cfg.Vision.Endpoint)
				assert.Equal("bar", cfg.Vision.APIKey)
				assert.Equal("pantry-peeper-staging", cfg.Vision.ProjectName)
			},
		},
		{
			name: "environment overrides file",
			path: "./testdata/visionsetup.yaml",
			mock: func(t *testing.T) {
				t.Setenv(EnvVisionEndpoint, "https://env.cognitiveservices.azure.com")
				t.Setenv(EnvVisionAPIKey, "")
				t.Setenv(EnvVisionProject, "")
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("https://env.cognitiveservices.azure.com", cfg.Vision.Endpoint)
				assert.Equal("foo", cfg.Vision.APIKey)
				assert.Equal("pantry-peeper", cfg.Vision.ProjectName)
			},
		},
		{
			name: "file only",
			path: "./testdata/visionsetup.yaml",
			mock: func(t *testing.T) {
				t.Setenv(EnvVisionEndpoint, "")
				t.Setenv(EnvVisionAPIKey, "")
				t.Setenv(EnvVisionProject, "")
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("https://pantry.cognitiveservices.azure.com", cfg.Vision.Endpoint)
				assert.Equal("foo", cfg.Vision.APIKey)
				assert.True(cfg.Console)
			},
		},
		{
			name: "defaults survive missing keys",
			path: "",
			mock: func(t *testing.T) {
				t.Setenv(EnvVisionEndpoint, "")
				t.Setenv(EnvVisionAPIKey, "")
				t.Setenv(EnvVisionProject, "")
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(vision.ServiceNameAzure, cfg.Vision.ServiceName)
				assert.Equal(DefaultProjectName, cfg.Vision.ProjectName)
				assert.Empty(cfg.Vision.Endpoint)
				assert.Equal(DefaultImageSize, cfg.Dataset.ImageSize)
			},
		},
		{
			name: "missing configuration file",
			path: "./testdata/missing.yaml",
			mock: func(t *testing.T) {},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.Error(err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(t)
			cfg := New()
			err := cfg.Load(tc.path)
			tc.expect(t, cfg, err)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "vision requires parameter serviceName",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Vision.ServiceName = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "vision requires parameter serviceName")
			},
		},
		{
			name:   "vision requires parameter endpoint",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Vision.Endpoint = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "invalid configuration: vision requires parameter endpoint")
				assert.True(pperrors.IsInvalidConfiguration(err))
			},
		},
		{
			name:   "vision requires parameter apiKey",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Vision.APIKey = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "invalid configuration: vision requires parameter apiKey")
				assert.True(pperrors.IsInvalidConfiguration(err))
			},
		},
		{
			name:   "vision requires parameter projectName",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Vision.ProjectName = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "vision requires parameter projectName")
			},
		},
		{
			name:   "dataset requires parameter imageSize",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Dataset.ImageSize = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "dataset requires parameter imageSize")
			},
		},
		{
			name:   "dataset requires parameter imagesPerCategory",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Dataset.ImagesPerCategory = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "dataset requires parameter imagesPerCategory")
			},
		},
		{
			name:   "dataset requires parameter trainRatio",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Dataset.TrainRatio = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "dataset requires parameter trainRatio")
			},
		},
		{
			name:   "dataset trainRatio above one",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Dataset.TrainRatio = 1.2
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "dataset requires parameter trainRatio")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestConfig_Client(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *Config)
		expect func(t *testing.T, client vision.Client, err error)
	}{
		{
			name: "azure client",
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
			},
			expect: func(t *testing.T, client vision.Client, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotNil(client)
			},
		},
		{
			name: "noop client",
			mock: func(cfg *Config) {
				cfg.Vision.ServiceName = vision.ServiceNameNoop
			},
			expect: func(t *testing.T, client vision.Client, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotNil(client)
			},
		},
		{
			name: "unknown service name",
			mock: func(cfg *Config) {
				cfg.Vision.ServiceName = "foo"
			},
			expect: func(t *testing.T, client vision.Client, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "unknown service name foo")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.mock(cfg)
			client, err := cfg.Client()
			tc.expect(t, client, err)
		})
	}
}

func TestConfig_ValidateConnection(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *Config)
		expect func(t *testing.T, ok bool)
	}{
		{
			name: "connection validated",
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
			},
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.True(ok)
			},
		},
		{
			name: "probe failure converts to false",
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Vision.Endpoint = ""
			},
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.False(ok)
			},
		},
		{
			name: "unknown service converts to false",
			mock: func(cfg *Config) {
				cfg.Vision = mockVisionConfig
				cfg.Vision.ServiceName = "foo"
			},
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.False(ok)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.mock(cfg)
			tc.expect(t, cfg.ValidateConnection())
		})
	}
}

func TestConfig_Summary(t *testing.T) {
	assert := assert.New(t)
	cfg := New()
	cfg.Vision = mockVisionConfig
	cfg.Vision.APIKey = "super-secret-key"

	summary := cfg.Summary()
	assert.Equal(cfg.Vision.Endpoint, summary.Endpoint)
	assert.Equal(cfg.Vision.ProjectName, summary.ProjectName)
	assert.Equal(ServiceType, summary.ServiceType)

	b, err := json.Marshal(summary)
	assert.NoError(err)
	assert.NotContains(string(b), "super-secret-key")
}
