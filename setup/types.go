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

package setup

import (
	"github.com/pantry-peeper/visionsetup/acceptance"
	"github.com/pantry-peeper/visionsetup/setup/config"
	"github.com/pantry-peeper/visionsetup/training"
	"github.com/pantry-peeper/visionsetup/validation"
)

const (
	// ProjectName is the display name of the project on the summary.
	ProjectName = "Pantry Peeper"

	// ServiceName is the display name of the vision service on the
	// summary.
	ServiceName = "Azure AI Vision"

	// OverallStatusSuccess means every acceptance criterion was met.
	OverallStatusSuccess = "SUCCESS"

	// OverallStatusInProgress means the run finished with unmet
	// acceptance criteria or incomplete stages.
	OverallStatusInProgress = "IN PROGRESS"

	// SetupDateLayout is the date layout on the summary.
	SetupDateLayout = "2006-01-02"

	// ValidationSampleLimit bounds the validation suite size of a run.
	ValidationSampleLimit = 10
)

// Report filenames under the report directory.
const (
	DatasetManifestFilename = "dataset_manifest.json"
	TrainingReportFilename  = "training_report.json"
	TestReportFilename      = "test_report.json"
	SetupSummaryFilename    = "setup_summary.json"
)

// ValidationOutcome groups the validation stage artifacts. Validation is
// nil when no validation images were available.
type ValidationOutcome struct {
	Validation  *validation.SuiteResult `json:"validation"`
	Performance *validation.Performance `json:"performance"`
}

// SummaryRecord is the persisted setup summary. Stages that did not
// complete leave their block null.
type SummaryRecord struct {
	RunID              string                   `json:"run_id"`
	SetupDate          string                   `json:"setup_date"`
	Project            string                   `json:"project"`
	Service            string                   `json:"service"`
	Configuration      *config.Summary          `json:"configuration"`
	Training           *training.TrainingResult `json:"training"`
	Validation         *ValidationOutcome       `json:"validation"`
	AcceptanceCriteria *acceptance.Report       `json:"acceptance_criteria"`
	OverallStatus      string                   `json:"overall_status"`
}
