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

package model

// XMLAttr is a single attribute of an XMLNode.
type XMLAttr struct {
	Space string
	Local string
	Value string
}

// XMLNode is a generic XML fragment: a namespace-qualified tag with
// attributes, character content, and an ordered list of child fragments.
// It is the storage type for vendor extension content, which is preserved
// across a read-modify-write round trip but never interpreted.
type XMLNode struct {
	Space string
	Local string
	Attrs []XMLAttr

	// Text is the concatenated character content of the node, excluding
	// content that belongs to child nodes.
	Text string

	Nodes []XMLNode
}

// Extensions holds the raw subtree of an extensions element.
type Extensions struct {
	// Text is character content appearing directly inside the extensions
	// element, outside any child node.
	Text string

	Nodes []XMLNode
}

// Find returns the first top-level extension node with the given local
// name, or nil.
func (e *Extensions) Find(local string) *XMLNode {
	if e == nil {
		return nil
	}

	for i := range e.Nodes {
		if e.Nodes[i].Local == local {
			return &e.Nodes[i]
		}
	}

	return nil
}
