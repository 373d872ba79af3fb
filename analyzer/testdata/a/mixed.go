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

package a

import (
	"fmt"
	"iter"
	"strings"
)

func report(names []string, ages []int) {
	for i := 0; i < len(names); i++ { // want `pairwise containers 'names' and 'ages' indexed in parallel by 'i', see rule pairwise for the fix`
		fmt.Printf("%s is %d\n", names[i], ages[i])
	}
}

func firstMatch(words []string, prefix string) {
	var match string

	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			match = w

			break
		}
	}

	fmt.Println(match) // want `staleloop loop variable 'match' may be unset when read after the loop, see rule staleloop for the fix`
}

func drain(it iter.Seq[byte]) int {
	n := 0

	for range it {
		n++
	}

	for range it { // want `reiter single-pass value 'it' consumed again, see rule reiter for the fix`
		n++
	}

	return n
}

// Functions can opt out wholesale.
//
//nolint:loopguard
func suppressed(names []string, ages []int) {
	for i := 0; i < len(names); i++ {
		fmt.Println(names[i], ages[i])
	}
}

func suppressedLine(counts map[string]int, key string) int {
	if _, ok := counts[key]; ok { //nolint:loopguard
		return counts[key]
	}

	return 1
}
