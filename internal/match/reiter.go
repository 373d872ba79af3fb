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
	"go/types"

	"fillmore-labs.com/loopguard/internal/model"
)

// Reiter flags single-pass values that are consumed more than once.
//
// A parameter with a single-pass type (an iterator function or a
// reader-shaped interface) is exhausted by its first full consumption.
// Every later consuming use that is still attributable to the same value
// yields a finding. Attribution follows plain alias rebinds up to the
// configured hop budget and stops at materializing calls, so a defensively
// converted copy is never flagged.
func Reiter(m *model.FuncModel, cfg Config) []model.Finding {
	var findings []model.Finding

	for bi := range m.Bindings {
		b := &m.Bindings[bi]
		if b.Kind != model.BindParameter || !b.SinglePass {
			continue
		}

		governed := governedEvents(m, model.BindingIndex(bi), cfg.RebindHops)

		consumed := 0

		for ui := range m.Uses {
			u := &m.Uses[ui]
			if u.Kind != model.FullConsumingIteration || u.Write || u.InFuncLit {
				continue
			}

			if !governed[u.Binding] {
				continue
			}

			consumed++
			if consumed < 2 {
				continue
			}

			findings = append(findings, model.Finding{
				Pos:    u.Ident.Pos(),
				End:    u.Ident.End(),
				Detail: fmt.Sprintf("single-pass value '%s' consumed again", b.Var.Name()),
			})
		}
	}

	return findings
}

// governedEvents computes the binding events whose uses still refer to the
// parameter's original value: the parameter event itself plus alias rebinds
// reached within hops plain copies. Materializing rebinds are excluded, and
// any later event of a tracked variable ends that variable's attribution by
// not being in the set.
func governedEvents(m *model.FuncModel, param model.BindingIndex, hops int) map[model.BindingIndex]bool {
	governed := map[model.BindingIndex]bool{param: true}
	depth := map[*types.Var]int{m.Bindings[param].Var: 0}

	for bi := range m.Bindings {
		b := &m.Bindings[bi]
		if b.Source == nil || b.Materialized {
			continue
		}

		d, tracked := depth[b.Source]
		if !tracked || d >= hops {
			continue
		}

		if have, ok := depth[b.Var]; !ok || d+1 < have {
			depth[b.Var] = d + 1
		}

		governed[model.BindingIndex(bi)] = true
	}

	return governed
}
