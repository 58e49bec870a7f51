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

	"github.com/georust/gpx/model"
)

// consumeExtensions captures the raw subtree of an extensions element
// without interpretation.  Extension content is legal in every container
// and every version.
func consumeExtensions(c *Context, se xml.StartElement) (*model.Extensions, error) {
	node, err := consumeNode(c, se)
	if err != nil {
		return nil, err
	}

	return &model.Extensions{Text: node.Text, Nodes: node.Nodes}, nil
}

// consumeNode recursively captures an arbitrary, possibly foreign-namespace
// XML fragment.  Namespace declaration attributes are dropped; the resolved
// namespace travels on each node instead.
func consumeNode(c *Context, se xml.StartElement) (model.XMLNode, error) {
	node := model.XMLNode{Space: se.Name.Space, Local: se.Name.Local}

	for _, a := range se.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}

		node.Attrs = append(node.Attrs, model.XMLAttr{
			Space: a.Name.Space,
			Local: a.Name.Local,
			Value: a.Value,
		})
	}

	var text strings.Builder

	for {
		tok, err := c.token()
		if err != nil {
			return model.XMLNode{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := consumeNode(c, t)
			if err != nil {
				return model.XMLNode{}, err
			}

			node.Nodes = append(node.Nodes, child)

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			node.Text = strings.TrimSpace(text.String())

			return node, nil
		}
	}
}
