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

// Package analyzer implements the loopguard static analysis pass.
//
// # Overview
//
// LoopGuard detects four families of loop and container anti-patterns:
//
//   - reiter: a single-pass value (an iterator function or a reader) is
//     consumed more than once, so the second consumption sees nothing.
//   - staleloop: a variable captures a loop value and is read after the
//     loop, where it may hold a stale value or none at all.
//   - pairwise: a counting loop subscripts two or more containers with the
//     same index, which silently misbehaves when lengths drift apart.
//   - doublelookup: a comma-ok membership test on a map is followed by a
//     second lookup of the same key in the guarded branch.
//
// # Example
//
// Before:
//
//	func sum(it iter.Seq[int]) (total, count int) {
//	    for v := range it {
//	        total += v
//	    }
//	    for range it { // exhausted, the loop body never runs
//	        count++
//	    }
//	    return total, count
//	}
//
// After:
//
//	func sum(it iter.Seq[int]) (total, count int) {
//	    for v := range it {
//	        total += v
//	        count++
//	    }
//	    return total, count
//	}
//
// # Analysis Scope
//
// All reasoning is per function: the analyzer builds a scope and usage
// model of each function declaration, classifies the uses structurally and
// runs the enabled rule matchers over the model. No cross-function or
// cross-package state is kept, so the driver may analyze packages in
// parallel.
package analyzer
