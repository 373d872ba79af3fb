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

package tier

import "fmt"

// Tier 1 findings survive a tier cap of 1.
func lastSeen(xs []int) {
	var last int

	for _, v := range xs {
		last = v
	}

	fmt.Println(last) // want `staleloop loop variable 'last' may be unset when read after the loop`
}

// Tier 2 rules are capped away.
func describe(names []string, ages []int) {
	for i := 0; i < len(names); i++ {
		fmt.Printf("%s is %d\n", names[i], ages[i])
	}
}

func lookup(counts map[string]int, key string) int {
	if _, ok := counts[key]; ok {
		return counts[key] + 1
	}

	return 1
}
