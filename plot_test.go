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

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderEnergyDistribution(t *testing.T) {
	rec, err := NewDefault().EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := RenderEnergyDistribution(rec, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG image")
	}
}

func TestRenderResponse(t *testing.T) {
	table, err := NewSensitivityRunner().Run()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := RenderResponse(table, FinalTemperature, VarSensibleHeat, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG image")
	}

	err = RenderResponse(table, Pressure, VarSensibleHeat, &buf)
	if err == nil {
		t.Error("expected error for parameter with no samples")
	}
}
