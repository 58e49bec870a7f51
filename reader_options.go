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

// readOptions provides optional configuration parameters for Read.
type readOptions struct {
	defaultVersion model.Version // version assumed when the attribute is absent or unrecognized
}

// ReadOption configures how a document is read.
type ReadOption func(*readOptions)

// WithDefaultVersion lets you set the schema version assumed when the root
// element carries no recognizable version attribute.
func WithDefaultVersion(v model.Version) ReadOption {
	return func(o *readOptions) {
		o.defaultVersion = v
	}
}

// defaultReadConfig provides a default configuration for reads.
var defaultReadConfig = readOptions{
	defaultVersion: model.Gpx11,
}
