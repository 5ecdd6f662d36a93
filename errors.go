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

import "fmt"

// InvalidParameterError reports an input that is outside the physically
// meaningful range of the model, such as a non-positive temperature or a
// final temperature below the initial temperature. It is returned
// synchronously at the point of violation; the model never retries and
// never returns partial results.
type InvalidParameterError struct {
	Param  string  // name of the offending parameter
	Value  float64 // the supplied value
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("calcin: invalid parameter %s=%g: %s", e.Param, e.Value, e.Reason)
}

// MissingInputError reports a dependent calculation that was invoked
// without its required upstream result, for example an entropy analysis
// without the thermal energy requirements it consumes.
type MissingInputError struct {
	Input string // name of the missing input
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("calcin: missing input: %s", e.Input)
}
