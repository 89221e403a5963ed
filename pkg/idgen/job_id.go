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

package idgen

import (
	"fmt"
	"time"
)

const (
	// TrainingJobIDPrefix is prefix of training job id.
	TrainingJobIDPrefix = "pantry"

	// TrainingJobIDTimeLayout is the timestamp layout embedded in training job ids.
	TrainingJobIDTimeLayout = "20060102_150405"
)

// TrainingJobIDV1 generates v1 version of training job id from the creation
// time. Jobs created within the same second share an id.
func TrainingJobIDV1(createdAt time.Time) string {
	return fmt.Sprintf("%s-%s", TrainingJobIDPrefix, createdAt.Format(TrainingJobIDTimeLayout))
}
