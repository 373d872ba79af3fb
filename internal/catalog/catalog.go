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

// Package catalog holds the immutable rule registry.
//
// The table is built once on first use and read-only afterwards; matchers
// receive it by value and cannot mutate it.
package catalog

import (
	"sync"

	"fillmore-labs.com/loopguard/internal/config"
	"fillmore-labs.com/loopguard/internal/match"
	"fillmore-labs.com/loopguard/internal/model"
)

// Rule codes of the four catalog families.
const (
	// Reiter flags single-pass values consumed more than once.
	Reiter = "reiter"

	// StaleLoop flags loop-captured variables read after the loop.
	StaleLoop = "staleloop"

	// Pairwise flags manual parallel indexing over multiple containers.
	Pairwise = "pairwise"

	// DoubleLookup flags redundant map membership checks before access.
	DoubleLookup = "doublelookup"
)

// Entry is one static catalog row. Entries are created at process start and
// never mutated.
type Entry struct {
	// Code is the stable catalog identifier.
	Code string

	// Title is the human-readable rule name.
	Title string

	// Tier is the severity grouping.
	Tier model.Tier

	// Ref cites the catalog source for the rule.
	Ref string

	// Flag is the configuration bit enabling this rule.
	Flag config.RuleFlags

	// Matcher is the rule's entry point.
	Matcher match.Func
}

var defaultTable = sync.OnceValue(buildTable)

// Default returns the rule table, ordered by code.
func Default() []Entry {
	return defaultTable()
}

// Lookup returns the catalog entry for the given code.
func Lookup(code string) (Entry, bool) {
	for _, e := range Default() {
		if e.Code == code {
			return e, true
		}
	}

	return Entry{}, false
}

// Enabled selects the entries whose flag is set and whose tier does not
// exceed maxTier.
func Enabled(rules config.BitMask[config.RuleFlags], maxTier model.Tier) []match.Rule {
	var selected []match.Rule

	for _, e := range Default() {
		if !rules.Enabled(e.Flag) || e.Tier > maxTier {
			continue
		}

		selected = append(selected, match.Rule{Code: e.Code, Tier: e.Tier, Matcher: e.Matcher})
	}

	return selected
}

func buildTable() []Entry {
	return []Entry{
		{
			Code:    DoubleLookup,
			Title:   "Redundant map membership check before access",
			Tier:    model.Tier2,
			Ref:     `"Effective Python" (3rd Edition), Item 26: Prefer get over in and KeyError to Handle Missing Dictionary Keys`,
			Flag:    config.DoubleLookupRule,
			Matcher: match.DoubleLookup,
		},
		{
			Code:    Pairwise,
			Title:   "Manual parallel indexing over multiple containers",
			Tier:    model.Tier2,
			Ref:     `"Effective Python" (3rd Edition), Item 18: Use zip to Process Iterators in Parallel`,
			Flag:    config.PairwiseRule,
			Matcher: match.Pairwise,
		},
		{
			Code:    Reiter,
			Title:   "Single-pass value consumed more than once",
			Tier:    model.Tier1,
			Ref:     `"Effective Python" (3rd Edition), Item 21: Be Defensive when Iterating over Arguments`,
			Flag:    config.ReiterRule,
			Matcher: match.Reiter,
		},
		{
			Code:    StaleLoop,
			Title:   "Loop-captured variable read after the loop",
			Tier:    model.Tier1,
			Ref:     `"Effective Python" (3rd Edition), Item 20: Never Use for Loop Variables After the Loop Ends`,
			Flag:    config.StaleLoopRule,
			Matcher: match.StaleLoop,
		},
	}
}
