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

package validation

import "time"

const (
	// ModelVersion is the model version stamped on inference results.
	ModelVersion = "1.0"

	// AccuracyThreshold is the minimum top-prediction confidence for an
	// inference call to count as correct.
	AccuracyThreshold = 0.85

	// AcceptablePassRate is the minimum share of stored results whose
	// top prediction clears the accuracy threshold.
	AcceptablePassRate = 0.8

	// DefaultPerformanceSampleSize is the sample size reported on the
	// performance profile.
	DefaultPerformanceSampleSize = 100
)

const (
	// ReportStatusPassed is the test report status when every
	// acceptance criterion holds.
	ReportStatusPassed = "passed"

	// ReportStatusFailed is the test report status when any acceptance
	// criterion fails.
	ReportStatusFailed = "failed"

	// PerformanceStatusWithinSLA is the status of the performance
	// profile.
	PerformanceStatusWithinSLA = "within_sla"
)

// Acceptance criteria names checked by VerifyAcceptanceCriteria.
const (
	CriterionVisionConfigured  = "azure_vision_configured"
	CriterionAccuracyValidated = "model_accuracy_validated"
	CriterionAccuracyThreshold = "accuracy_above_threshold"
	CriterionInferenceWorking  = "inference_working"
)

// BoundingBox locates a prediction inside an image, in pixels.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Prediction is one category candidate of an inference call.
type Prediction struct {
	Category    string      `json:"category"`
	Confidence  float64     `json:"confidence"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// InferenceResult is the outcome of a single inference call.
// Predictions are ordered by descending confidence.
type InferenceResult struct {
	ImagePath    string       `json:"image_path"`
	Timestamp    time.Time    `json:"timestamp"`
	Predictions  []Prediction `json:"predictions"`
	ModelVersion string       `json:"model_version"`
}

// ValidationSummary is the score block of a validation suite.
type ValidationSummary struct {
	Accuracy           float64 `json:"accuracy"`
	CorrectPredictions int     `json:"correct_predictions"`
	TotalPredictions   int     `json:"total_predictions"`
	PassesThreshold    bool    `json:"passes_threshold"`
	Threshold          float64 `json:"threshold"`
}

// SuiteResult is the outcome of a validation suite run.
type SuiteResult struct {
	TestDate    time.Time          `json:"test_date"`
	TotalImages int                `json:"total_images"`
	Results     []*InferenceResult `json:"results"`
	Summary     ValidationSummary  `json:"summary"`
}

// PerformanceMetrics is the latency and resource profile of the model.
type PerformanceMetrics struct {
	AverageInferenceTimeMs float64 `json:"average_inference_time_ms"`
	ThroughputImagesPerSec float64 `json:"throughput_images_per_sec"`
	MemoryUsageMB          int     `json:"memory_usage_mb"`
	LatencyP50Ms           int     `json:"latency_p50_ms"`
	LatencyP95Ms           int     `json:"latency_p95_ms"`
	LatencyP99Ms           int     `json:"latency_p99_ms"`
}

// Performance is the outcome of a performance test.
type Performance struct {
	TestTimestamp  time.Time          `json:"test_timestamp"`
	TestSampleSize int                `json:"test_sample_size"`
	Metrics        PerformanceMetrics `json:"metrics"`
	Status         string             `json:"status"`
}

// TestReport is the persisted test report envelope.
type TestReport struct {
	TestReport TestReportBody `json:"test_report"`
}

// TestReportBody is the payload of a persisted test report.
type TestReportBody struct {
	GeneratedAt        time.Time          `json:"generated_at"`
	ModelVersion       string             `json:"model_version"`
	TotalTestsRun      int                `json:"total_tests_run"`
	TestResults        []*InferenceResult `json:"test_results"`
	AcceptanceCriteria map[string]bool    `json:"acceptance_criteria"`
	Status             string             `json:"status"`
}

// cannedPredictions is the fixed prediction pair returned for every
// inference call until the Azure custom model endpoint is provisioned.
var cannedPredictions = []Prediction{
	{
		Category:    "flour",
		Confidence:  0.92,
		BoundingBox: BoundingBox{X: 10, Y: 20, Width: 100, Height: 110},
	},
	{
		Category:    "sugar",
		Confidence:  0.15,
		BoundingBox: BoundingBox{X: 120, Y: 20, Width: 80, Height: 90},
	},
}

// simulatedPerformance is the performance profile reported by
// TestPerformance.
var simulatedPerformance = PerformanceMetrics{
	AverageInferenceTimeMs: 145.3,
	ThroughputImagesPerSec: 6.9,
	MemoryUsageMB:          512,
	LatencyP50Ms:           120,
	LatencyP95Ms:           250,
	LatencyP99Ms:           400,
}
