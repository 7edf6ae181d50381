// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"fmt"

	"github.com/dagforge/reduce/internal/workgraph"
)

// idFor derives a Graphviz node identifier from a working-graph handle.
// Handles are already unique and stable for the lifetime of a Graph, so
// this needs no additional bookkeeping the way the teacher's dag.Hashable
// vertex identifiers did.
func idFor(h workgraph.Handle) string {
	return fmt.Sprintf("n%d", int(h))
}
