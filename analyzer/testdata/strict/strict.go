// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package strict

// In strict mode a call receiving the map counts as a mutation.
func observed(counts map[string]int, key string) int {
	if _, ok := counts[key]; ok {
		touch(counts)

		return counts[key]
	}

	return 0
}

// Without an intervening call the pair is still flagged.
func plain(counts map[string]int, key string) int {
	if _, ok := counts[key]; ok { // want `doublelookup second lookup of 'counts\[key\]' after its membership test`
		return counts[key]
	}

	return 0
}

func touch(map[string]int) {}
