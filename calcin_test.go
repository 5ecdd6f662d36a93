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
	"math"
	"strings"
	"testing"
)

const testTolerance = 1e-3

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// The documented reference balance for the default process conditions.
var referenceRecord = map[string]float64{
	VarInitialTemperature: 298.15,
	VarFinalTemperature:   973.15,
	VarPressure:           101325,
	VarLimestoneMass:      100,
	VarMolarQuantity:      999.131,
	VarStandardEnthalpy:   -1206.9,
	VarStandardEntropy:    92.9,
	VarGibbsFreeEnergy:    -1296.0735,
	VarSensibleHeat:       599.4786,
	VarLatentHeat:         178.3,
	VarEntropyGeneration:  0.799,
}

func TestEnergyBalanceReference(t *testing.T) {
	rec, err := NewDefault().EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	if len(rec) != len(RecordVars) {
		t.Fatalf("record has %d rows, want %d", len(rec), len(RecordVars))
	}
	for i, name := range RecordVars {
		if rec[i].Name != name {
			t.Errorf("row %d is %s, want %s", i, rec[i].Name, name)
		}
		want := referenceRecord[name]
		if different(rec[i].Value, want, testTolerance) {
			t.Errorf("%s = %g, want %g", name, rec[i].Value, want)
		}
	}
}

func TestEnergyBalanceDeterministic(t *testing.T) {
	m := NewDefault()
	first, err := m.EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		rec, err := m.EnergyBalance()
		if err != nil {
			t.Fatal(err)
		}
		for j, row := range rec {
			if row.Value != first[j].Value { // bit-identical, no tolerance
				t.Fatalf("call %d: %s = %v, want %v", i, row.Name, row.Value, first[j].Value)
			}
		}
	}
	if m.Parameters() != DefaultParameters() {
		t.Error("parameters were mutated by EnergyBalance")
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProcessParameters)
	}{
		{"cooling", func(p *ProcessParameters) { p.FinalTemperature = p.InitialTemperature - 1 }},
		{"negative initial temperature", func(p *ProcessParameters) { p.InitialTemperature = -10 }},
		{"zero final temperature", func(p *ProcessParameters) {
			p.InitialTemperature = 0
			p.FinalTemperature = 0
		}},
		{"negative mass", func(p *ProcessParameters) { p.LimestoneMass = -1 }},
		{"zero pressure", func(p *ProcessParameters) { p.Pressure = 0 }},
	}
	for _, test := range tests {
		p := DefaultParameters()
		test.mutate(&p)
		if _, err := New(p, DefaultConstants()); err == nil {
			t.Errorf("%s: expected error", test.name)
		} else if _, ok := err.(*InvalidParameterError); !ok {
			t.Errorf("%s: error %v is not an InvalidParameterError", test.name, err)
		}
	}
}

func TestRecordValue(t *testing.T) {
	rec, err := NewDefault().EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	v, err := rec.Value(VarSensibleHeat)
	if err != nil {
		t.Fatal(err)
	}
	if different(v, referenceRecord[VarSensibleHeat], testTolerance) {
		t.Errorf("sensible heat = %g", v)
	}
	if _, err := rec.Value("NoSuchRow"); err == nil {
		t.Error("expected error for unknown row")
	} else if _, ok := err.(*MissingInputError); !ok {
		t.Errorf("error %v is not a MissingInputError", err)
	}
}

func TestRecordWrite(t *testing.T) {
	rec, err := NewDefault().EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := rec.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, label := range []string{"Initial Temperature (K)", "Entropy Generation (kJ/K)"} {
		if !strings.Contains(out, label) {
			t.Errorf("output is missing %q:\n%s", label, out)
		}
	}
	lines := strings.Count(out, "\n")
	if lines != len(rec)+1 { // header plus one line per row
		t.Errorf("output has %d lines, want %d", lines, len(rec)+1)
	}

	buf.Reset()
	if err := rec.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Parameter,Value\n") {
		t.Errorf("unexpected csv header: %q", buf.String())
	}
}
