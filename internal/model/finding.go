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

package model

import "go/token"

// Finding is one diagnostic occurrence produced by a rule matcher.
//
// Matchers create findings without a rule code; the dispatch loop stamps
// Code and Tier from the rule entry, so a matcher cannot misattribute its
// findings to another rule.
type Finding struct {
	// Code is the catalog identifier of the producing rule.
	Code string

	// Tier is the producing rule's severity grouping.
	Tier Tier

	// Pos and End delimit the reported source range. Pos must lie inside
	// the function the finding was produced for.
	Pos, End token.Pos

	// Detail is the short predicate interpolated into the message template.
	Detail string
}
