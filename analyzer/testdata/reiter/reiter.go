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

package reiter

import (
	"io"
	"iter"
	"slices"
)

// Second range over an exhausted sequence.
func sumTwice(it iter.Seq[int]) (total, count int) {
	for v := range it {
		total += v
	}

	for range it { // want `reiter single-pass value 'it' consumed again`
		count++
	}

	return total, count
}

// Materializing the sequence makes re-iteration safe.
func sumSafe(it iter.Seq[int]) (total, count int) {
	values := slices.Collect(it)

	for _, v := range values {
		total += v
	}

	for range values {
		count++
	}

	return total, count
}

// Readers are single-pass too.
func readTwice(r io.Reader) (int, error) {
	first, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	second, err := io.ReadAll(r) // want `reiter single-pass value 'r' consumed again`
	if err != nil {
		return 0, err
	}

	return len(first) + len(second), nil
}

// Consumption through a plain alias still counts.
func aliased(it iter.Seq[string]) ([]string, int) {
	seq := it

	sorted := slices.Sorted(it)

	n := 0

	for range seq { // want `reiter single-pass value 'it' consumed again`
		n++
	}

	return sorted, n
}

// Consumption inside function literals is out of scope.
func closures(it iter.Seq[int]) (func() int, func() int) {
	first := func() int {
		n := 0
		for range it {
			n++
		}

		return n
	}

	second := func() int {
		n := 0
		for range it {
			n++
		}

		return n
	}

	return first, second
}
