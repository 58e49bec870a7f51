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

// Package writer emits a GPX document model as schema-correct XML for a
// chosen target version.  Fields unsupported by the target version are
// silently omitted; the narrowing is lossy and deliberate.
package writer

import (
	"encoding/xml"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/georust/gpx/model"
)

// Emitter serializes model entities onto an XML token sink.
type Emitter struct {
	enc     *xml.Encoder
	version model.Version
}

// NewEmitter creates an emitter targeting the given version.
func NewEmitter(enc *xml.Encoder, version model.Version) *Emitter {
	return &Emitter{enc: enc, version: version}
}

// Version returns the target schema version.
func (e *Emitter) Version() model.Version {
	return e.version
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (e *Emitter) start(name string, attrs ...xml.Attr) error {
	return e.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (e *Emitter) end(name string) error {
	return e.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func (e *Emitter) chars(s string) error {
	return e.enc.EncodeToken(xml.CharData(s))
}

// element emits <name>text</name>.
func (e *Emitter) element(name, text string) error {
	if err := e.start(name); err != nil {
		return err
	}

	if err := e.chars(text); err != nil {
		return err
	}

	return e.end(name)
}

func (e *Emitter) optString(name string, v *string) error {
	if v == nil {
		return nil
	}

	return e.element(name, *v)
}

func (e *Emitter) optTime(name string, v *time.Time) error {
	if v == nil {
		return nil
	}

	return e.element(name, v.UTC().Format(time.RFC3339Nano))
}

func (e *Emitter) optDegrees(name string, v *model.Degrees) error {
	if v == nil {
		return nil
	}

	return e.element(name, ftoa(float64(*v)))
}

// optNumber emits an optional numeric element.  Integer fields are small
// enough that the round trip through float64 is exact.
func optNumber[T constraints.Integer | constraints.Float](e *Emitter, name string, v *T) error {
	if v == nil {
		return nil
	}

	return e.element(name, ftoa(float64(*v)))
}

func ftoa(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
