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

// Fix is the type of a GPS fix.  The zero value means the fix info is
// unknown and the fix element is absent.  Values outside the published set
// are carried through untouched, since real-world producers emit them.
type Fix string

const (
	// FixNone denotes that the GPS had no fix.
	FixNone Fix = "none"

	// Fix2D gives only longitude and latitude.  It needs a minimum of 3 satellites.
	Fix2D Fix = "2d"

	// Fix3D gives longitude, latitude and altitude.  It needs a minimum of 4 satellites.
	Fix3D Fix = "3d"

	// FixDGPS is a fix from a Differential Global Positioning System.
	FixDGPS Fix = "dgps"

	// FixPPS is a fix obtained from the military Precise Positioning Service.
	FixPPS Fix = "pps"
)

// Known reports whether the fix value is one of the published fix types.
func (f Fix) Known() bool {
	switch f {
	case FixNone, Fix2D, Fix3D, FixDGPS, FixPPS:
		return true
	default:
		return false
	}
}
