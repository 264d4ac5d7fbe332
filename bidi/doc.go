/*
Package bidi implements the resolving phases of the Unicode UAX#9 Bidirectional
Algorithm, sections 3.3.4 to 3.3.6: resolving weak types (W1–W7), resolving
neutral and isolate formatting types (N0–N2) and resolving implicit levels
(I1–I2).

Clients hand in the result of the explicit phase: for a paragraph of text an
array of original Bidi_Classes, an array of embedding levels and the isolating
run sequences of the paragraph. Finding paragraphs, computing explicit levels
(X1–X10) and building isolating run sequences is not done by this package.

	para := bidi.NewParagraph(classes, levels, sequences)
	maxLevel := para.Resolve()
	// para.Processing holds the resolved classes, para.Levels the final levels

Rule N0 (bracket pairs) is not implemented, bracket characters are resolved as
ordinary neutrals.

Weak types are resolved in a single pass over an isolating run sequence. This is
known to be imprecise whenever a later rule changes the class an earlier rule has
already looked at as its predecessor. We keep this behaviour on purpose, results
must not change between versions.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "13.0.0"
