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

package version

import (
	"fmt"
	"runtime"
)

// Values overridden at release build time through ldflags.
var (
	// Major is the major version.
	Major = "1"

	// Minor is the minor version.
	Minor = "0"

	// GitVersion is the semantic version.
	GitVersion = "v1.0.0"

	// GitCommit is the git commit sha1.
	GitCommit = "unknown"

	// Platform is the build platform, like: linux/amd64.
	Platform = runtime.GOOS + "/" + runtime.GOARCH

	// BuildTime is the build time.
	BuildTime = "unknown"

	// GoVersion is the go version.
	GoVersion = runtime.Version()
)

// Version returns the version message for the cli.
func Version() string {
	return fmt.Sprintf("Major: %s, Minor: %s, GitVersion: %s, GitCommit: %s, Platform: %s, BuildTime: %s, GoVersion: %s",
		Major, Minor, GitVersion, GitCommit, Platform, BuildTime, GoVersion)
}
