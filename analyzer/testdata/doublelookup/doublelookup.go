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

package doublelookup

import "fmt"

// The comma-ok form already delivers the value.
func lookup(counts map[string]int, key string) int {
	if _, ok := counts[key]; ok { // want `doublelookup second lookup of 'counts\[key\]' after its membership test`
		return counts[key] + 1
	}

	return 1
}

// The test may also precede the if statement.
func adjacent(counts map[string]int, key string) int {
	total := 0

	_, ok := counts[key] // want `doublelookup second lookup of 'counts\[key\]' after its membership test`
	if ok {
		total += counts[key]
	}

	return total
}

// Inserting under a missing key is the idiomatic guard.
func insert(counts map[string]int, key string) {
	if _, ok := counts[key]; !ok {
		counts[key] = 1
	}
}

// Binding the value in the test is exactly the fix.
func value(counts map[string]int, key string) int {
	if v, ok := counts[key]; ok {
		return v
	}

	return 0
}

// A mutation between test and access may change the answer.
func mutate(counts map[string]int, key string) {
	if _, ok := counts[key]; ok {
		delete(counts, key)
		fmt.Println(counts[key])
	}
}

// A different key is a different lookup.
func other(counts map[string]int, key, fallback string) int {
	if _, ok := counts[key]; ok {
		return counts[fallback]
	}

	return 0
}

// By default a call receiving the map does not count as a mutation.
func observed(counts map[string]int, key string) int {
	if _, ok := counts[key]; ok { // want `doublelookup second lookup of 'counts\[key\]' after its membership test`
		touch(counts)

		return counts[key]
	}

	return 0
}

func touch(map[string]int) {}
