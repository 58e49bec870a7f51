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
	"errors"
	"fmt"
)

// ErrNoRootElement is returned when the input ends before a root element
// is seen.
var ErrNoRootElement = errors.New("no gpx root element found")

// ErrInvalidRootElement is returned when the document's root element is not
// named gpx.
var ErrInvalidRootElement = errors.New("root element is not gpx")

// InvalidChildElementError reports a child tag that the enclosing parent
// does not permit for the active GPX version.
type InvalidChildElementError struct {
	Child  string
	Parent string
}

func (e *InvalidChildElementError) Error() string {
	return fmt.Sprintf("invalid child element %q in %q", e.Child, e.Parent)
}

// MissingAttributeError reports an element lacking a mandatory attribute.
type MissingAttributeError struct {
	Attr    string
	Element string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element %q lacks required attribute %q", e.Element, e.Attr)
}

// InvalidValueError reports scalar content that could not be parsed as the
// field's type.
type InvalidValueError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %q", e.Value, e.Field)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }
