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

package writer

import (
	"encoding/xml"

	"github.com/georust/gpx/model"
)

// extensions re-emits a captured extensions subtree verbatim.  A nil value
// means the source document had no extensions element here.
func (e *Emitter) extensions(ext *model.Extensions) error {
	if ext == nil {
		return nil
	}

	if err := e.start("extensions"); err != nil {
		return err
	}

	if ext.Text != "" {
		if err := e.chars(ext.Text); err != nil {
			return err
		}
	}

	for i := range ext.Nodes {
		if err := e.node(&ext.Nodes[i]); err != nil {
			return err
		}
	}

	return e.end("extensions")
}

func (e *Emitter) node(n *model.XMLNode) error {
	name := xml.Name{Space: n.Space, Local: n.Local}

	attrs := make([]xml.Attr, 0, len(n.Attrs))
	for _, a := range n.Attrs {
		attrs = append(attrs, xml.Attr{
			Name:  xml.Name{Space: a.Space, Local: a.Local},
			Value: a.Value,
		})
	}

	if err := e.enc.EncodeToken(xml.StartElement{Name: name, Attr: attrs}); err != nil {
		return err
	}

	if n.Text != "" {
		if err := e.chars(n.Text); err != nil {
			return err
		}
	}

	for i := range n.Nodes {
		if err := e.node(&n.Nodes[i]); err != nil {
			return err
		}
	}

	return e.enc.EncodeToken(xml.EndElement{Name: name})
}
