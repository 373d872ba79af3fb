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

package match

import (
	"fmt"
	"go/token"

	"fillmore-labs.com/loopguard/internal/model"
)

// DoubleLookup flags a comma-ok membership test on a map whose guarded
// branch subscripts the same map with the same key again. The comma-ok form
// already delivers the value, so the second lookup is redundant.
//
// Absence-guarded branches (if !ok) are exempt; storing under a missing key
// is the idiomatic insertion pattern. A mutation of the map between the test
// and the access also exempts the pair, since the second lookup may then see
// a different value. In strict mode, passing the map to any call counts as a
// mutation.
func DoubleLookup(m *model.FuncModel, cfg Config) []model.Finding {
	var findings []model.Finding

	for i := range m.Pairs {
		p := &m.Pairs[i]
		if p.Negated || len(p.AccessUses) == 0 {
			continue
		}

		flagged := false

		for _, ui := range p.AccessUses {
			u := &m.Uses[ui]
			if mutatedBetween(m, p, u.Pos(), cfg.StrictMutation) {
				continue
			}

			flagged = true
		}

		if !flagged {
			continue
		}

		test := &m.Uses[p.TestUse]
		findings = append(findings, model.Finding{
			Pos:    test.Ident.Pos(),
			End:    test.Ident.End(),
			Detail: fmt.Sprintf("second lookup of '%s[%s]' after its membership test", p.Map.Name(), p.Key),
		})
	}

	return findings
}

// mutatedBetween reports whether the tested map is written between the
// membership test and the access position.
func mutatedBetween(m *model.FuncModel, p *model.MembershipPair, access token.Pos, strict bool) bool {
	for i := range m.MapWrites {
		w := &m.MapWrites[i]
		if w.Map != p.Map || (w.Call && !strict) {
			continue
		}

		if p.TestEnd <= w.Pos && w.Pos < access {
			return true
		}
	}

	return false
}
