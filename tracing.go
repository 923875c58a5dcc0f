// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earley'. Recognizer diagnostics, and Parse's
// phase-transition lines unless WithTrace overrides them, go through it;
// the tree builder and error extractor do not trace. Formatting is skipped
// entirely unless a caller has raised the trace level for this key (see
// github.com/npillmayer/gorgo/lr for the pattern this is lifted from).
func tracer() tracing.Trace {
	return tracing.Select("earley")
}
