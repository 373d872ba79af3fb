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
	"go/types"

	"fillmore-labs.com/loopguard/internal/model"
)

// StaleLoop flags variables that capture a loop value and are read after the
// loop ends.
//
// Two capture shapes are recognized: a pre-declared variable used as a range
// target, and a plain assignment inside a loop body whose right-hand side
// reads a target of an enclosing loop. If the loop body never runs, or the
// last iteration does not hit the assignment, the variable keeps whatever it
// held before, so reading it afterwards is suspect.
//
// Exempt are declarations with an explicit initializer, reads dominated by a
// comparison of the variable against its zero value, bare returns of the
// variable, and reads whose governing binding is a rebind after the loop.
func StaleLoop(m *model.FuncModel, _ Config) []model.Finding {
	var findings []model.Finding

	for bi := range m.Bindings {
		b := &m.Bindings[bi]
		if b.Loop == model.NoLoop || !capturesLoopValue(m, b) {
			continue
		}

		if declaredWithInit(m, b, model.BindingIndex(bi)) {
			continue
		}

		loopEnd := m.Loops[b.Loop].Stmt.End()

		for ui := range m.Uses {
			u := &m.Uses[ui]
			if u.Var != b.Var || u.Binding != model.BindingIndex(bi) {
				continue
			}

			if u.Pos() < loopEnd || u.Write || u.InFuncLit || u.InReturn || u.ZeroCompare {
				continue
			}

			if guardedByZeroCheck(m, b.Var, loopEnd, u.Pos()) {
				continue
			}

			findings = append(findings, model.Finding{
				Pos:    u.Ident.Pos(),
				End:    u.Ident.End(),
				Detail: fmt.Sprintf("loop variable '%s' may be unset when read after the loop", b.Var.Name()),
			})
		}
	}

	return findings
}

// capturesLoopValue reports whether the binding event stores a per-iteration
// value: a range target of a pre-declared variable, or an in-loop rebind
// reading a target of an enclosing loop.
func capturesLoopValue(m *model.FuncModel, b *model.Binding) bool {
	switch b.Kind {
	case model.BindLoopTarget:
		// The assignment form of a range target; the define form scopes the
		// variable to the loop, so it cannot be read afterwards.
		for bj := range m.Bindings {
			prior := &m.Bindings[bj]
			if prior.Var == b.Var && prior.EffectStart < b.EffectStart && prior.Kind != model.BindLoopTarget {
				return true
			}
		}

		return false

	case model.BindRebind:
		if b.Op {
			// Accumulations read the previous value and are intentional.
			return false
		}

		return readsEnclosingTarget(m, b)

	default:
		return false
	}
}

// readsEnclosingTarget reports whether the rebind's right-hand side reads a
// loop target of the loop containing the rebind or one of its ancestors.
func readsEnclosingTarget(m *model.FuncModel, b *model.Binding) bool {
	for _, v := range b.RHSVars {
		for bj := range m.Bindings {
			target := &m.Bindings[bj]
			if target.Var != v || target.Kind != model.BindLoopTarget {
				continue
			}

			for l := b.Loop; l != model.NoLoop; l = m.Loops[l].Parent {
				if target.Loop == l {
					return true
				}
			}
		}
	}

	return false
}

// declaredWithInit reports whether the variable's declaration preceding the
// capture event carried an explicit initializer. Such sentinels make the
// post-loop value well defined.
func declaredWithInit(m *model.FuncModel, b *model.Binding, event model.BindingIndex) bool {
	for _, bj := range m.EventsOf(b.Var) {
		if bj == event {
			continue
		}

		d := &m.Bindings[bj]
		if d.EffectStart < b.EffectStart && (d.Kind == model.BindDecl || d.Kind == model.BindShortDecl) && d.HasInit {
			return true
		}
	}

	return false
}

// guardedByZeroCheck reports whether the variable is compared against its
// zero value between the loop end and the read.
func guardedByZeroCheck(m *model.FuncModel, v *types.Var, loopEnd, read token.Pos) bool {
	for ui := range m.Uses {
		u := &m.Uses[ui]
		if u.Var == v && u.ZeroCompare && loopEnd <= u.Pos() && u.Pos() < read {
			return true
		}
	}

	return false
}
