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

// Package match implements the four rule matchers and their dispatch loop.
//
// Every matcher is a pure function from a classified [model.FuncModel] to a
// list of findings. Matchers share no mutable state; they may run in any
// order over the same model and always produce the same result.
package match

import (
	"cmp"
	"slices"

	"fillmore-labs.com/loopguard/internal/model"
)

// Func is the entry point of one rule matcher.
type Func func(m *model.FuncModel, cfg Config) []model.Finding

// Config carries the conservatism knobs shared by the matchers.
type Config struct {
	// RebindHops is the number of alias hops followed when attributing
	// consuming uses back to a parameter.
	RebindHops int

	// StrictMutation treats any call receiving a map as a mutation when
	// validating membership-test/access pairs.
	StrictMutation bool
}

// DefaultConfig returns the documented default conservatism knobs.
func DefaultConfig() Config {
	return Config{RebindHops: 1}
}

// Rule pairs a catalog code with its matcher for one dispatch run.
type Rule struct {
	Code    string
	Tier    model.Tier
	Matcher Func
}

// Run invokes every rule matcher over the model and returns the combined
// findings, each stamped with its rule's code and tier.
//
// A fault inside one matcher is contained to that matcher and that function:
// the faulting matcher contributes zero findings, the others are unaffected.
func Run(m *model.FuncModel, rules []Rule, cfg Config) []model.Finding {
	var findings []model.Finding

	for _, rule := range rules {
		for _, f := range runMatcher(m, rule, cfg) {
			f.Code = rule.Code
			f.Tier = rule.Tier
			findings = append(findings, f)
		}
	}

	slices.SortStableFunc(findings, func(a, b model.Finding) int {
		if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
			return c
		}

		return cmp.Compare(a.Code, b.Code)
	})

	return findings
}

// runMatcher isolates a single matcher invocation. The worst outcome of a
// matcher-internal fault is reduced recall for one function.
func runMatcher(m *model.FuncModel, rule Rule, cfg Config) (findings []model.Finding) {
	defer func() {
		if recover() != nil {
			findings = nil
		}
	}()

	return rule.Matcher(m, cfg)
}
