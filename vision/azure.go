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

package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
)

const (
	// azureAnalyzePath is the image analysis route of the service.
	azureAnalyzePath = "computervision/imageanalysis:analyze"

	// azureAPIVersion is the image analysis api version.
	azureAPIVersion = "2023-02-01-preview"

	// azureFeatureTags requests tag analysis only.
	azureFeatureTags = "tags"

	// azureSubscriptionKeyHeader carries the service credential.
	azureSubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// azureContentType is the request body content type.
	azureContentType = "application/octet-stream"

	// azureRequestTimeout bounds a single analyze call.
	azureRequestTimeout = 30 * time.Second
)

// azure is the Azure AI Vision image analysis client.
type azure struct {
	// endpoint is the service endpoint.
	endpoint string

	// apiKey is the service credential.
	apiKey string

	// httpClient is the underlying http client.
	httpClient *http.Client
}

// azureAnalyzeResponse is the wire format of an analyze result.
type azureAnalyzeResponse struct {
	ModelVersion string `json:"modelVersion"`
	TagsResult   struct {
		Values []struct {
			Name       string  `json:"name"`
			Confidence float64 `json:"confidence"`
		} `json:"values"`
	} `json:"tagsResult"`
}

// New azure client instance.
func newAzure(endpoint, apiKey string) (*azure, error) {
	if endpoint == "" {
		return nil, errors.New("azure requires parameter endpoint")
	}

	if apiKey == "" {
		return nil, errors.New("azure requires parameter apiKey")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint scheme %s", u.Scheme)
	}

	return &azure{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: azureRequestTimeout,
		},
	}, nil
}

// Analyze submits image bytes for tag analysis.
func (a *azure) Analyze(ctx context.Context, image []byte) (*Analysis, error) {
	query := url.Values{}
	query.Set("api-version", azureAPIVersion)
	query.Set("features", azureFeatureTags)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s?%s", a.endpoint, azureAnalyzePath, query.Encode()), bytes.NewReader(image))
	if err != nil {
		return nil, err
	}
	req.Header.Set(headers.ContentType, azureContentType)
	req.Header.Set(headers.Accept, "application/json")
	req.Header.Set(azureSubscriptionKeyHeader, a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var analyzeResponse azureAnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&analyzeResponse); err != nil {
		return nil, err
	}

	analysis := &Analysis{
		ModelVersion: analyzeResponse.ModelVersion,
		Tags:         make([]Tag, 0, len(analyzeResponse.TagsResult.Values)),
	}
	for _, value := range analyzeResponse.TagsResult.Values {
		analysis.Tags = append(analysis.Tags, Tag{
			Name:       value.Name,
			Confidence: value.Confidence,
		})
	}

	return analysis, nil
}
