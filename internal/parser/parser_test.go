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

package parser

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georust/gpx/model"
)

// open positions a fresh context on the first start element of src.
func open(t *testing.T, version model.Version, src string) (*Context, xml.StartElement) {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(src))

	for {
		tok, err := dec.Token()
		require.NoError(t, err)

		if se, ok := tok.(xml.StartElement); ok {
			return NewContext(dec, version), se
		}
	}
}
