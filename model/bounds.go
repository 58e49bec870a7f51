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

import (
	"fmt"
)

// Bounds is a rectangular lat/lon extent.  Values are carried through from
// the source document; min exceeding max is not rejected.
type Bounds struct {
	MinLat Degrees
	MinLon Degrees
	MaxLat Degrees
	MaxLon Degrees
}

// InitialBounds creates a Bounds that is meant to be expanded.
func InitialBounds() *Bounds {
	return &Bounds{
		MinLat: MaxLat,
		MinLon: MaxLon,
		MaxLat: MinLat,
		MaxLon: MinLon,
	}
}

// EqualWithin checks if two bounds are within a specific epsilon.
func (b *Bounds) EqualWithin(o *Bounds, eps Epsilon) bool {
	return b.MinLat.EqualWithin(o.MinLat, eps) &&
		b.MinLon.EqualWithin(o.MinLon, eps) &&
		b.MaxLat.EqualWithin(o.MaxLat, eps) &&
		b.MaxLon.EqualWithin(o.MaxLon, eps)
}

// Contains checks if the bounds contain the lat lon point.
func (b *Bounds) Contains(lat Degrees, lon Degrees) bool {
	return b.MinLon <= lon && lon <= b.MaxLon && b.MinLat <= lat && lat <= b.MaxLat
}

// ExpandWithLatLon grows the bounds to include the lat lon point.
func (b *Bounds) ExpandWithLatLon(lat, lon Degrees) {
	if b.MaxLat < lat {
		b.MaxLat = lat
	}

	if b.MinLat > lat {
		b.MinLat = lat
	}

	if b.MinLon > lon {
		b.MinLon = lon
	}

	if b.MaxLon < lon {
		b.MaxLon = lon
	}
}

func (b *Bounds) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(float64(b.MinLat)), ftoa(float64(b.MinLon)),
		ftoa(float64(b.MaxLat)), ftoa(float64(b.MaxLon)))
}
