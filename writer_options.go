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
	"github.com/georust/gpx/model"
)

// writeOptions provides optional configuration parameters for Write.
type writeOptions struct {
	targetVersion model.Version // version to serialize as, overriding the document's
	creator       string        // creator attribute, overriding the document's
	indent        string        // indentation unit, empty for compact output
}

// WriteOption configures how a document is written.
type WriteOption func(*writeOptions)

// WithTargetVersion lets you serialize a document as a schema version other
// than the one it was parsed against.  The narrowing drops fields the
// target version does not support.
func WithTargetVersion(v model.Version) WriteOption {
	return func(o *writeOptions) {
		o.targetVersion = v
	}
}

// WithCreator lets you override the creator attribute on the root element.
func WithCreator(creator string) WriteOption {
	return func(o *writeOptions) {
		o.creator = creator
	}
}

// WithIndent lets you pretty-print the output, indenting nested elements by
// one unit per depth.
func WithIndent(unit string) WriteOption {
	return func(o *writeOptions) {
		o.indent = unit
	}
}

// defaultWriteConfig provides a default configuration for writes.
var defaultWriteConfig = writeOptions{}
