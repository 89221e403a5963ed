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

package pperrors

import "errors"

// common setup pipeline errors
var (
	// ErrInvalidConfiguration marks missing or unusable service settings.
	// It is fatal and stops the pipeline before any data is prepared.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnreadableImage marks input that cannot be decoded. Callers skip
	// the offending file and continue.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrCriteriaNotMet reports that the finished pipeline did not satisfy
	// all acceptance criteria. The summary record is still written.
	ErrCriteriaNotMet = errors.New("acceptance criteria not met")
)

func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

func IsUnreadableImage(err error) bool {
	return errors.Is(err, ErrUnreadableImage)
}

func IsCriteriaNotMet(err error) bool {
	return errors.Is(err, ErrCriteriaNotMet)
}
