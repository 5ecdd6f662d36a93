/*
Copyright © 2024 the Calcin authors.
This file is part of Calcin.

Calcin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Calcin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Calcin.  If not, see <http://www.gnu.org/licenses/>.
*/

package calcin

import "github.com/ctessum/unit"

// Amount of substance is not one of the base dimensions in the unit
// package, so we register it here.
var moleDim unit.Dimension

func init() {
	moleDim = unit.NewDimension("mole")
}

// Dimension signatures for the quantities in the model. Energy values are
// carried on the kilojoule scale throughout; the dimensions below only
// guarantee the shape of each formula, not its scale.
var (
	mole = unit.Dimensions{
		moleDim: 1}
	kilogramPerMole = unit.Dimensions{
		unit.MassDim: 1,
		moleDim:      -1}
	kilojoule = unit.Joule
	kilojoulePerMole = unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 2,
		unit.TimeDim:   -2,
		moleDim:        -1}
	kilojoulePerMoleKelvin = unit.Dimensions{
		unit.MassDim:        1,
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		moleDim:             -1,
		unit.TemperatureDim: -1}
	kilojoulePerKilogramKelvin = unit.Dimensions{
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		unit.TemperatureDim: -1}
	kilojoulePerKelvin = unit.Dimensions{
		unit.MassDim:        1,
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		unit.TemperatureDim: -1}
)
