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

package staleloop

import (
	"fmt"
	"strings"
)

// Captured element read after the loop; unset for empty input.
func lastSeen(xs []int) {
	var last int

	for _, v := range xs {
		last = v
	}

	fmt.Println(last) // want `staleloop loop variable 'last' may be unset when read after the loop`
}

// A pre-declared range target holds the last element, or nothing.
func lastName(names []string) {
	var name string

	for _, name = range names {
		fmt.Println(name)
	}

	fmt.Println(name) // want `staleloop loop variable 'name' may be unset when read after the loop`
}

// A zero check between the loop and the read settles the value.
func guarded(names []string, prefix string) {
	var found string

	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			found = name

			break
		}
	}

	if found != "" {
		fmt.Println(found)
	}
}

// An explicit sentinel initializer makes the post-loop value well defined.
func sentinel(xs []int) {
	last := -1

	for _, v := range xs {
		last = v
	}

	fmt.Println(last)
}

// Accumulations read their previous value and are intentional.
func total(xs []int) {
	var sum int

	for _, v := range xs {
		sum += v
	}

	fmt.Println(sum)
}

// A rebind after the loop severs the captured value.
func reset(xs []int) {
	var last int

	for _, v := range xs {
		last = v
	}

	last = 0
	fmt.Println(last)
}

// Returning the captured value hands it to the caller unchanged.
func pick(xs []int) int {
	var last int

	for _, v := range xs {
		last = v
	}

	return last
}
