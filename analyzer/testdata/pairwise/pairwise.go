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

package pairwise

import "fmt"

// Two containers driven by one counter.
func describe(names []string, ages []int) {
	for i := 0; i < len(names); i++ { // want `pairwise containers 'names' and 'ages' indexed in parallel by 'i'`
		fmt.Printf("%s is %d\n", names[i], ages[i])
	}
}

// Containers are listed in order of first appearance.
func merge(a, b, c []int) {
	for i := 0; i < len(a); i++ { // want `pairwise containers 'c', 'a' and 'b' indexed in parallel by 'i'`
		c[i] = a[i] + b[i]
	}
}

// Indexing a single container is the point of the loop.
func double(items []int) {
	for i := 0; i < len(items); i++ {
		items[i] *= 2
	}
}

// Windowed access does not start at zero and is left alone.
func strictlyIncreasing(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}

	return true
}
