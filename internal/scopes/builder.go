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

// Package scopes builds the per-function scope model.
//
// The builder walks one function declaration in a single traversal and
// records every binding event and every identifier use, resolved through the
// type checker's object graph. Identifiers it cannot attribute to a binding
// of the analyzed function are recorded as unresolved and excluded from rule
// matching; a fragment the builder cannot interpret is skipped without
// abandoning the rest of the function.
package scopes

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/loopguard/internal/model"
)

// Build constructs the scope model for one function declaration.
func Build(ctx context.Context, info *types.Info, decl *ast.FuncDecl) *model.FuncModel {
	defer trace.StartRegion(ctx, "BuildScopes").End()

	b := &builder{
		info:   info,
		m:      &model.FuncModel{Decl: decl},
		events: make(map[*types.Var][]model.BindingIndex),
		loops:  make(map[ast.Stmt]model.LoopIndex),
	}

	b.bindFields(decl.Recv)
	if decl.Type != nil {
		b.bindFields(decl.Type.Params)
		b.bindResults(decl.Type.Results)
	}

	if decl.Body != nil {
		b.inspectBody(decl.Body)
	}

	return b.m
}

// builder accumulates the model during a single body traversal.
type builder struct {
	info *types.Info
	m    *model.FuncModel

	// events lists the binding events per variable, in traversal order.
	events map[*types.Var][]model.BindingIndex

	// loops maps loop statements to their table index.
	loops map[ast.Stmt]model.LoopIndex

	// stack holds the ancestors of the node under inspection.
	stack []ast.Node
}

// bindFields records parameter and receiver bindings.
func (b *builder) bindFields(fields *ast.FieldList) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			b.addBinding(name, model.BindParameter, model.Binding{EffectStart: name.Pos()})
		}
	}
}

// bindResults records named result variables as bare declarations.
func (b *builder) bindResults(results *ast.FieldList) {
	if results == nil {
		return
	}

	for _, field := range results.List {
		for _, name := range field.Names {
			b.addBinding(name, model.BindDecl, model.Binding{EffectStart: name.Pos()})
		}
	}
}

// inspectBody walks the function body once, maintaining an ancestor stack so
// each identifier can be interpreted in its syntactic context.
func (b *builder) inspectBody(body *ast.BlockStmt) {
	ast.Inspect(body, func(n ast.Node) bool {
		if n == nil {
			b.stack = b.stack[:len(b.stack)-1]

			return true
		}

		b.stack = append(b.stack, n)

		switch n := n.(type) {
		case *ast.ForStmt:
			b.addLoop(n)

		case *ast.RangeStmt:
			b.addLoop(n)
			b.handleRangeTargets(n)

		case *ast.Ident:
			b.handleIdent(n)
		}

		return true
	})
}

// addLoop registers a loop statement, linking it to its innermost enclosing
// loop. The node itself is already on the stack.
func (b *builder) addLoop(stmt ast.Stmt) {
	parent := model.NoLoop

	for i := len(b.stack) - 2; i >= 0; i-- {
		if l, ok := b.loops[asLoop(b.stack[i])]; ok {
			parent = l

			break
		}
	}

	b.loops[stmt] = model.LoopIndex(len(b.m.Loops))
	b.m.Loops = append(b.m.Loops, model.Loop{Stmt: stmt, Parent: parent})
}

// asLoop returns the node as a loop statement, or nil.
func asLoop(n ast.Node) ast.Stmt {
	switch l := n.(type) {
	case *ast.ForStmt:
		return l
	case *ast.RangeStmt:
		return l
	default:
		return nil
	}
}

// handleRangeTargets records loop-target events for range statements that
// assign to pre-existing variables. Newly defined targets are handled by the
// identifier path through the type checker's Defs map.
func (b *builder) handleRangeTargets(n *ast.RangeStmt) {
	if n.Tok != token.ASSIGN {
		return
	}

	for _, expr := range []ast.Expr{n.Key, n.Value} {
		id, ok := expr.(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}

		b.addBinding(id, model.BindLoopTarget, model.Binding{EffectStart: n.Body.Pos()})
	}
}

// handleIdent interprets one identifier as a binding site, a use, or both.
func (b *builder) handleIdent(id *ast.Ident) {
	if id.Name == "_" {
		return
	}

	if v, ok := b.info.Defs[id].(*types.Var); ok {
		b.handleDef(id, v)

		return
	}

	if v, ok := b.info.Uses[id].(*types.Var); ok {
		b.handleUse(id, v)
	}
}

// handleDef records a binding event for a defining identifier.
func (b *builder) handleDef(id *ast.Ident, _ *types.Var) {
	if b.inFuncLit() {
		return // nested scope, invisible to the outer function's rules
	}

	parent := b.parent()

	switch p := parent.(type) {
	case *ast.ValueSpec:
		bind := model.Binding{EffectStart: p.End(), HasInit: len(p.Values) > 0}
		if i := slotOf(id, identExprs(p.Names)); i >= 0 && len(p.Values) == len(p.Names) {
			bind.RHS = p.Values[i]
			bind.RHSVars = b.rhsVars(bind.RHS)
		}

		b.addBinding(id, model.BindDecl, bind)

	case *ast.AssignStmt:
		kind := model.BindShortDecl
		if b.isForClauseInit(p) {
			kind = model.BindLoopTarget
		}

		bind := model.Binding{EffectStart: p.End(), HasInit: true}
		if i := slotOf(id, p.Lhs); i >= 0 && len(p.Rhs) == len(p.Lhs) {
			bind.RHS = p.Rhs[i]
			bind.RHSVars = b.rhsVars(bind.RHS)
		}

		b.addBinding(id, kind, bind)

	case *ast.RangeStmt:
		b.addBinding(id, model.BindLoopTarget, model.Binding{EffectStart: p.Body.Pos()})

	default:
		// Unrecognized defining construct; record a plain declaration so
		// later uses still resolve.
		b.addBinding(id, model.BindDecl, model.Binding{EffectStart: id.End()})
	}
}

// handleUse records a use, creating a rebind event first when the identifier
// is a direct assignment target.
func (b *builder) handleUse(id *ast.Ident, v *types.Var) {
	use := model.Use{
		Ident:       id,
		Var:         v,
		Binding:     model.Unresolved,
		Loop:        b.enclosingLoop(),
		InFuncLit:   b.inFuncLit(),
		ZeroCompare: b.isZeroCompare(id),
		InReturn:    b.isReturnResult(id),
	}

	switch p := b.parent().(type) {
	case *ast.AssignStmt:
		if i := slotOf(id, p.Lhs); i >= 0 {
			use.Write = true
			use.Kind = model.Rebind

			if !use.InFuncLit {
				bind := model.Binding{
					EffectStart: p.End(),
					Op:          p.Tok != token.ASSIGN && p.Tok != token.DEFINE,
				}
				if len(p.Rhs) == len(p.Lhs) {
					bind.RHS = p.Rhs[i]
					bind.RHSVars = b.rhsVars(bind.RHS)
				}

				b.addBinding(id, model.BindRebind, bind)
			}
		}

	case *ast.RangeStmt:
		if id == p.Key || id == p.Value {
			// Event recorded by handleRangeTargets when the statement
			// was entered.
			use.Write = true
			use.Kind = model.Rebind
		}

	case *ast.IncDecStmt:
		use.Write = true
		use.Kind = model.Rebind
	}

	// The governing event is the latest one already in effect; events of
	// the same statement start after its end and are not yet visible.
	use.Binding = b.resolve(v, id.Pos())

	b.m.AddUse(use)
}

// addBinding appends a binding event, filling the common fields.
func (b *builder) addBinding(id *ast.Ident, kind model.BindKind, bind model.Binding) {
	v := b.objectOf(id)
	if v == nil {
		return
	}

	bind.Var = v
	bind.Ident = id
	bind.Kind = kind
	bind.Loop = b.enclosingLoop()

	idx := model.BindingIndex(len(b.m.Bindings))
	b.m.Bindings = append(b.m.Bindings, bind)
	b.events[v] = append(b.events[v], idx)
}

// objectOf resolves an identifier to its variable object, from either the
// defining or the using side.
func (b *builder) objectOf(id *ast.Ident) *types.Var {
	if v, ok := b.info.Defs[id].(*types.Var); ok {
		return v
	}

	if v, ok := b.info.Uses[id].(*types.Var); ok {
		return v
	}

	return nil
}

// resolve returns the latest binding event of v in effect at pos, the
// earliest event when pos precedes all effects, or [model.Unresolved] for
// variables without any event in this function.
func (b *builder) resolve(v *types.Var, pos token.Pos) model.BindingIndex {
	events := b.events[v]
	if len(events) == 0 {
		return model.Unresolved
	}

	for i := len(events) - 1; i >= 0; i-- {
		if b.m.Bindings[events[i]].EffectStart <= pos {
			return events[i]
		}
	}

	return events[0]
}

// parent returns the immediate syntactic parent of the node under inspection.
func (b *builder) parent() ast.Node {
	if len(b.stack) < 2 {
		return nil
	}

	return b.stack[len(b.stack)-2]
}

// parentOf returns the parent of the given ancestor node.
func (b *builder) parentOf(n ast.Node) ast.Node {
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i] == n {
			return b.stack[i-1]
		}
	}

	return nil
}

// slotOf returns the position of id within exprs, or -1.
func slotOf(id *ast.Ident, exprs []ast.Expr) int {
	for i, expr := range exprs {
		if expr == id {
			return i
		}
	}

	return -1
}

// identExprs widens an identifier list for slot lookups.
func identExprs(ids []*ast.Ident) []ast.Expr {
	exprs := make([]ast.Expr, len(ids))
	for i, id := range ids {
		exprs[i] = id
	}

	return exprs
}

// isForClauseInit reports whether the assignment is the init clause of a for
// statement, making its targets loop control variables.
func (b *builder) isForClauseInit(assign *ast.AssignStmt) bool {
	f, ok := b.parentOf(assign).(*ast.ForStmt)

	return ok && f.Init == assign
}

// enclosingLoop returns the innermost loop on the ancestor stack.
func (b *builder) enclosingLoop() model.LoopIndex {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if l, ok := b.loops[asLoop(b.stack[i])]; ok {
			return l
		}
	}

	return model.NoLoop
}

// inFuncLit reports whether the node under inspection sits inside a nested
// function literal.
func (b *builder) inFuncLit() bool {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if _, ok := b.stack[i].(*ast.FuncLit); ok {
			return true
		}
	}

	return false
}

// isZeroCompare reports whether the identifier is compared against nil or a
// zero literal, the shape of a guard check.
func (b *builder) isZeroCompare(id *ast.Ident) bool {
	bin, ok := b.parent().(*ast.BinaryExpr)
	if !ok || (bin.Op != token.EQL && bin.Op != token.NEQ) {
		return false
	}

	other := bin.X
	if other == id {
		other = bin.Y
	}

	return isZeroExpr(other)
}

// isZeroExpr recognizes nil, numeric and string zero literals, and empty
// composite literals.
func isZeroExpr(expr ast.Expr) bool {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return e.Name == "nil"

	case *ast.BasicLit:
		switch e.Kind {
		case token.INT, token.FLOAT:
			return e.Value == "0" || e.Value == "0.0"
		case token.STRING:
			return e.Value == `""` || e.Value == "``"
		default:
			return false
		}

	case *ast.CompositeLit:
		return len(e.Elts) == 0

	default:
		return false
	}
}

// isReturnResult reports whether the identifier is a direct result
// expression of a return statement.
func (b *builder) isReturnResult(id *ast.Ident) bool {
	ret, ok := b.parent().(*ast.ReturnStmt)
	if !ok {
		return false
	}

	return slotOf(id, ret.Results) >= 0
}

// rhsVars collects the variables read by an expression.
func (b *builder) rhsVars(expr ast.Expr) []*types.Var {
	var vars []*types.Var

	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			if v, ok := b.info.Uses[id].(*types.Var); ok {
				vars = append(vars, v)
			}
		}

		return true
	})

	return vars
}
