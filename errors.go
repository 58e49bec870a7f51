// Copyright 2017-25 the original author or authors.
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

package gpx

import (
	"errors"

	"github.com/georust/gpx/internal/parser"
	"github.com/georust/gpx/internal/writer"
)

// ErrNoRootElement is returned by Read when the input ends before a root
// element is seen.
var ErrNoRootElement = parser.ErrNoRootElement

// ErrInvalidRootElement is returned by Read when the document's root
// element is not named gpx.
var ErrInvalidRootElement = parser.ErrInvalidRootElement

// ErrUnknownVersion is returned by Write when neither the document nor the
// options establish a target schema version.
var ErrUnknownVersion = errors.New("unknown target gpx version")

// The structured error types surfaced by Read and Write.  Malformed XML
// below the element level surfaces as the tokenizer's error, wrapped.
type (
	// InvalidChildElementError reports a child tag that the enclosing
	// parent does not permit for the active GPX version.
	InvalidChildElementError = parser.InvalidChildElementError

	// MissingAttributeError reports an element lacking a mandatory
	// attribute, e.g. a wpt without lat.
	MissingAttributeError = parser.MissingAttributeError

	// InvalidValueError reports scalar content that could not be parsed as
	// the field's type.  It wraps the underlying conversion error.
	InvalidValueError = parser.InvalidValueError

	// InvalidEmailError reports an email address that cannot be split into
	// the id and domain attributes GPX 1.1 requires.
	InvalidEmailError = writer.InvalidEmailError
)
