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

package analyzer

import (
	"flag"
	"fmt"
	"strconv"

	"fillmore-labs.com/loopguard/internal/config"
	"fillmore-labs.com/loopguard/internal/model"
)

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewRuleValue(&r.rules, config.ReiterRule), "reiter",
		"flag single-pass values consumed more than once")
	flags.Var(NewRuleValue(&r.rules, config.StaleLoopRule), "staleloop",
		"flag loop-captured variables read after the loop")
	flags.Var(NewRuleValue(&r.rules, config.PairwiseRule), "pairwise",
		"flag manual parallel indexing over multiple containers")
	flags.Var(NewRuleValue(&r.rules, config.DoubleLookupRule), "doublelookup",
		"flag redundant map membership checks before access")

	flags.Var(NewBehaviorValue(&r.behavior, config.IncludeGenerated), "generated",
		"check generated files")
	flags.Var(NewBehaviorValue(&r.behavior, config.StrictMutation), "strict-mutation",
		"treat calls receiving a map as mutations")

	flags.IntVar(&r.rebindHops, "rebind-hops", r.rebindHops,
		"alias rebinds followed when tracking single-pass values")

	flags.Func("tier", fmt.Sprintf("highest reported rule tier (default %d)", int(r.maxTier)),
		func(s string) error {
			tier, err := strconv.Atoi(s)
			if err != nil {
				return err
			}

			if tier < int(model.Tier1) || tier > int(model.Tier3) {
				return fmt.Errorf("tier out of range: %d", tier)
			}

			r.maxTier = model.Tier(tier)

			return nil
		})
}

// NewRuleValue returns a boolean [flag.Getter] bound to one rule bit.
func NewRuleValue(flags *config.Rules, value config.RuleFlags) flag.Getter {
	return boolValue[config.RuleFlags, *config.Rules]{flags: flags, value: value}
}

// NewBehaviorValue returns a boolean [flag.Getter] bound to one behavior bit.
func NewBehaviorValue(flags *config.Behavior, value config.Config) flag.Getter {
	return boolValue[config.Config, *config.Behavior]{flags: flags, value: value}
}
