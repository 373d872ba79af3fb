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
	"go/ast"

	"fillmore-labs.com/loopguard/internal/model"
)

// Pairwise flags counting loops that subscript two or more distinct
// containers with the same control variable. Iterating one container and
// indexing the other through the shared position is fragile under length
// drift; a single loop over paired elements is clearer.
//
// A loop indexing only one container is left alone: the subscript may be the
// point of the loop (in-place mutation, windowed access).
func Pairwise(m *model.FuncModel, _ Config) []model.Finding {
	var findings []model.Finding

	for i := range m.IndexLoops {
		il := &m.IndexLoops[i]
		if len(il.Containers) < 2 {
			continue
		}

		names := make([]string, 0, len(il.Containers))
		for _, c := range il.Containers {
			names = append(names, c.Name())
		}

		stmt, ok := m.Loops[il.Loop].Stmt.(*ast.ForStmt)
		if !ok {
			continue
		}

		findings = append(findings, model.Finding{
			Pos: stmt.Pos(),
			End: stmt.Body.Pos(),
			Detail: fmt.Sprintf("containers %s indexed in parallel by '%s'",
				concatNames(names), il.IndexVar.Name()),
		})
	}

	return findings
}
