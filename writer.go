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
	"encoding/xml"
	"io"

	"github.com/georust/gpx/internal/writer"
	"github.com/georust/gpx/model"
)

// DefaultCreator is the creator attribute written for documents that do not
// carry one.
const DefaultCreator = "https://github.com/georust/gpx"

// Write serializes the document to w as UTF-8 XML, including the
// declaration and version-correct namespace attributes.  The target version
// is the document's own version unless overridden with WithTargetVersion;
// fields the target version does not support are silently omitted.
func Write(g *model.GPX, w io.Writer, opts ...WriteOption) error {
	cfg := defaultWriteConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	version := g.Version
	if cfg.targetVersion != model.VersionUnknown {
		version = cfg.targetVersion
	}

	if version == model.VersionUnknown {
		return ErrUnknownVersion
	}

	creator := cfg.creator
	if creator == "" {
		if g.Creator != nil {
			creator = *g.Creator
		} else {
			creator = DefaultCreator
		}
	}

	enc := xml.NewEncoder(w)
	if cfg.indent != "" {
		enc.Indent("", cfg.indent)
	}

	err := enc.EncodeToken(xml.ProcInst{
		Target: "xml",
		Inst:   []byte(`version="1.0" encoding="UTF-8"`),
	})
	if err != nil {
		return err
	}

	if err := enc.EncodeToken(xml.CharData("\n")); err != nil {
		return err
	}

	if err := writer.NewEmitter(enc, version).Document(g, creator); err != nil {
		return err
	}

	return enc.Flush()
}
