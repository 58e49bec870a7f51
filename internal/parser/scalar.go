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
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/georust/gpx/model"
)

// consumeString consumes an element holding scalar text and returns its
// accumulated character content.  An empty element yields the empty string,
// which is distinct from an absent element.  A nested start tag is illegal
// inside scalar text.
func consumeString(c *Context, se xml.StartElement) (string, error) {
	var sb strings.Builder

	for {
		tok, err := c.token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return "", &InvalidChildElementError{Child: t.Name.Local, Parent: se.Name.Local}

		case xml.CharData:
			sb.Write(t)

		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// consumeFloat consumes an element holding a finite decimal number.
func consumeFloat(c *Context, se xml.StartElement) (float64, error) {
	raw, err := consumeString(c, se)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidValueError{Field: se.Name.Local, Value: raw, Err: err}
	}

	return v, nil
}

// consumeDegrees consumes an element holding a decimal degree value.
func consumeDegrees(c *Context, se xml.StartElement) (model.Degrees, error) {
	raw, err := consumeString(c, se)
	if err != nil {
		return 0, err
	}

	d, err := model.ParseDegrees(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidValueError{Field: se.Name.Local, Value: raw, Err: err}
	}

	return d, nil
}

// consumeInt consumes an element holding an integer.
func consumeInt(c *Context, se xml.StartElement) (int, error) {
	raw, err := consumeString(c, se)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidValueError{Field: se.Name.Local, Value: raw, Err: err}
	}

	return v, nil
}

// consumeNonNegativeInt consumes an element holding a non-negative integer,
// e.g. a satellite count or a track number.
func consumeNonNegativeInt(c *Context, se xml.StartElement) (int, error) {
	v, err := consumeInt(c, se)
	if err != nil {
		return 0, err
	}

	if v < 0 {
		return 0, &InvalidValueError{
			Field: se.Name.Local,
			Value: strconv.Itoa(v),
			Err:   fmt.Errorf("value must be non-negative"),
		}
	}

	return v, nil
}

// consumeTime consumes an element holding an ISO 8601 timestamp and
// normalizes it to UTC.
func consumeTime(c *Context, se xml.StartElement) (time.Time, error) {
	raw, err := consumeString(c, se)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &InvalidValueError{Field: se.Name.Local, Value: raw, Err: err}
	}

	return t.UTC(), nil
}

// consumeFix consumes a fix element.  Values outside the published set are
// carried through untouched.
func consumeFix(c *Context, se xml.StartElement) (model.Fix, error) {
	raw, err := consumeString(c, se)
	if err != nil {
		return "", err
	}

	return model.Fix(strings.TrimSpace(raw)), nil
}

// The field helpers below adapt scalar consumers into rule parse functions,
// so the allowed-children tables stay declarative.  Optional scalars
// overwrite on repetition; the last occurrence wins.

func stringField[T any](assign func(dst *T, v string)) func(*Context, xml.StartElement, *T) error {
	return func(c *Context, se xml.StartElement, dst *T) error {
		v, err := consumeString(c, se)
		if err != nil {
			return err
		}

		assign(dst, v)

		return nil
	}
}

func floatField[T any](assign func(dst *T, v float64)) func(*Context, xml.StartElement, *T) error {
	return func(c *Context, se xml.StartElement, dst *T) error {
		v, err := consumeFloat(c, se)
		if err != nil {
			return err
		}

		assign(dst, v)

		return nil
	}
}

func degreesField[T any](assign func(dst *T, v model.Degrees)) func(*Context, xml.StartElement, *T) error {
	return func(c *Context, se xml.StartElement, dst *T) error {
		v, err := consumeDegrees(c, se)
		if err != nil {
			return err
		}

		assign(dst, v)

		return nil
	}
}

func nonNegativeIntField[T any](assign func(dst *T, v int)) func(*Context, xml.StartElement, *T) error {
	return func(c *Context, se xml.StartElement, dst *T) error {
		v, err := consumeNonNegativeInt(c, se)
		if err != nil {
			return err
		}

		assign(dst, v)

		return nil
	}
}

func timeField[T any](assign func(dst *T, v time.Time)) func(*Context, xml.StartElement, *T) error {
	return func(c *Context, se xml.StartElement, dst *T) error {
		v, err := consumeTime(c, se)
		if err != nil {
			return err
		}

		assign(dst, v)

		return nil
	}
}
