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

// Package model defines the per-function scope and usage model shared by the
// scope builder, the usage classifier and the rule matchers.
//
// A [FuncModel] is private to one function of one analysis pass. Bindings and
// uses cross-reference each other through arena indices instead of pointers,
// so the model can be discarded wholesale after the matchers run.
package model

import (
	"go/ast"
	"go/token"
	"go/types"
)

// BindingIndex is an index into the binding arena of a [FuncModel].
type BindingIndex int32

// Unresolved marks a use whose binding could not be determined within the
// analyzed function (package globals, builtins, closure captures of outer
// functions). Such uses are excluded from rule matching.
const Unresolved BindingIndex = -1

// LoopIndex is an index into the loop table of a [FuncModel].
type LoopIndex int32

// NoLoop marks a site outside any loop of the analyzed function.
const NoLoop LoopIndex = -1

// BindKind describes how a binding event introduces or replaces a value.
type BindKind uint8

const (
	// BindParameter is a function parameter or method receiver.
	BindParameter BindKind = iota

	// BindDecl is a var declaration statement.
	BindDecl

	// BindShortDecl is a short variable declaration.
	BindShortDecl

	// BindLoopTarget is a range target or a for-clause control variable.
	BindLoopTarget

	// BindRebind is a plain assignment to an already declared variable.
	BindRebind
)

// Binding records one name-introduction or reassignment event.
type Binding struct {
	// Var is the resolved object; multiple events may share one Var.
	Var *types.Var

	// Ident is the identifier at the binding site.
	Ident *ast.Ident

	// Kind classifies the binding event.
	Kind BindKind

	// Loop is the innermost loop whose body (or header, for loop targets)
	// contains the binding site.
	Loop LoopIndex

	// RHS is the value expression assigned at this site, when there is
	// exactly one positionally matching expression. Nil for parameters and
	// bare declarations.
	RHS ast.Expr

	// RHSVars are the function-local variables read by RHS.
	RHSVars []*types.Var

	// EffectStart is the position from which this event governs uses of the
	// name. For assignments this is the end of the statement, so reads on
	// the right-hand side still resolve to the previous event.
	EffectStart token.Pos

	// HasInit reports whether a declaration event carried an initializer.
	HasInit bool

	// Op reports whether a rebind came from an op-assignment (+= and
	// friends), which reads the previous value instead of replacing it.
	Op bool

	// Source is the variable the bound value was derived from, filled in by
	// the classifier for alias rebinds (y := x) and materializing calls.
	Source *types.Var

	// Materialized reports that the value went through a materializing call
	// and is re-iterable regardless of the source's nature.
	Materialized bool

	// SinglePass reports that a parameter's static type is a known one-shot
	// producer (iterator function types, reader-shaped interfaces). Set by
	// the classifier.
	SinglePass bool
}

// Pos returns the position of the binding site.
func (b *Binding) Pos() token.Pos { return b.Ident.Pos() }

// Loop records one for or range statement of the function.
type Loop struct {
	// Stmt is the *ast.ForStmt or *ast.RangeStmt.
	Stmt ast.Stmt

	// Parent is the innermost enclosing loop, or [NoLoop].
	Parent LoopIndex
}

// Use records one read or write reference to a binding.
type Use struct {
	// Ident is the referencing identifier.
	Ident *ast.Ident

	// Var is the resolved object.
	Var *types.Var

	// Binding is the governing binding event, or [Unresolved].
	Binding BindingIndex

	// Kind is assigned by the usage classifier; the builder leaves it as
	// [PlainRead] for reads and [Rebind] for write sites.
	Kind AccessKind

	// Loop is the innermost loop containing the use site.
	Loop LoopIndex

	// InFuncLit reports that the use sits inside a nested function literal
	// and resolves outward. Such uses are excluded from the exhaustion and
	// post-loop rules.
	InFuncLit bool

	// Write reports that the identifier is an assignment target.
	Write bool

	// ZeroCompare reports that the use is an operand of a comparison
	// against nil or a zero literal, i.e. a guard check rather than a
	// value read.
	ZeroCompare bool

	// InReturn reports that the use is a direct result expression of a
	// return statement. The value escapes the function there, so
	// intra-function rules stop reasoning about it.
	InReturn bool
}

// Pos returns the position of the use site.
func (u *Use) Pos() token.Pos { return u.Ident.Pos() }

// FuncModel is the scope model of a single analyzed function.
//
// It is produced by the scope builder, annotated by the usage classifier and
// consumed read-only by the rule matchers. It is never shared across
// functions or files.
type FuncModel struct {
	// Decl is the analyzed declaration.
	Decl *ast.FuncDecl

	// Bindings is the binding arena, in traversal order.
	Bindings []Binding

	// Uses are all identifier references, in traversal order.
	Uses []Use

	// Loops are all for and range statements, in traversal order.
	Loops []Loop

	// IndexLoops are the len-shaped counting loops found by the classifier.
	IndexLoops []IndexLoop

	// Pairs are the membership-test/access pairs linked by the classifier.
	Pairs []MembershipPair

	// MapWrites are the container mutation sites found by the classifier.
	MapWrites []MapWrite

	useIndex map[*ast.Ident]int
}

// IndexLoop describes a loop of the shape
//
//	for i := 0; i < len(src); i++ { … }
//
// together with the containers its body subscripts by the control variable.
type IndexLoop struct {
	// Loop is the counting loop.
	Loop LoopIndex

	// IndexVar is the control variable.
	IndexVar *types.Var

	// Source is the container whose length bounds the loop.
	Source *types.Var

	// Containers are the distinct containers subscripted by IndexVar inside
	// the loop body, in order of first appearance. Source appears here only
	// if it is itself subscripted.
	Containers []*types.Var
}

// MembershipPair links a comma-ok membership test on a map with subscript
// accesses of the same map and key in the guarded branch.
type MembershipPair struct {
	// Map is the tested container.
	Map *types.Var

	// Key is the canonical text of the key expression.
	Key string

	// TestUse is the index of the map use inside the comma-ok read.
	TestUse int

	// AccessUses are indices of guarded subscript reads with the same key.
	AccessUses []int

	// Negated reports that the branch is taken on absence of the key.
	Negated bool

	// Inserts reports that the guarded branch stores under the same key.
	Inserts bool

	// TestEnd is the end of the statement performing the test.
	TestEnd token.Pos

	// BranchEnd is the end of the guarded branch.
	BranchEnd token.Pos
}

// MapWrite records a mutation site of a map variable.
type MapWrite struct {
	// Map is the mutated container.
	Map *types.Var

	// Pos is the mutation position.
	Pos token.Pos

	// Call reports that the site only passes the map to a call; it counts
	// as a mutation in strict mode only.
	Call bool
}

// AddUse appends a use to the model and indexes it by identifier.
func (m *FuncModel) AddUse(u Use) {
	if m.useIndex == nil {
		m.useIndex = make(map[*ast.Ident]int)
	}

	m.useIndex[u.Ident] = len(m.Uses)
	m.Uses = append(m.Uses, u)
}

// UseOf returns the index of the use recorded for the given identifier.
func (m *FuncModel) UseOf(id *ast.Ident) (int, bool) {
	i, ok := m.useIndex[id]

	return i, ok
}

// InnermostLoop returns the innermost loop whose extent contains pos,
// or [NoLoop]. Loops are recorded in preorder, so the last match wins.
func (m *FuncModel) InnermostLoop(pos token.Pos) LoopIndex {
	for i := len(m.Loops) - 1; i >= 0; i-- {
		l := m.Loops[i].Stmt
		if l.Pos() <= pos && pos < l.End() {
			return LoopIndex(i)
		}
	}

	return NoLoop
}

// EventsOf returns the indices of all binding events of the given variable,
// in traversal order.
func (m *FuncModel) EventsOf(v *types.Var) []BindingIndex {
	var events []BindingIndex

	for i := range m.Bindings {
		if m.Bindings[i].Var == v {
			events = append(events, BindingIndex(i))
		}
	}

	return events
}
