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

	"github.com/tealeg/xlsx"
)

func TestRecordWriteXLSX(t *testing.T) {
	rec, err := NewDefault().EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := rec.WriteXLSX(&buf); err != nil {
		t.Fatal(err)
	}
	f, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	sheet, ok := f.Sheet["Energy Balance"]
	if !ok {
		t.Fatal("missing sheet 'Energy Balance'")
	}
	if len(sheet.Rows) != len(rec)+1 {
		t.Fatalf("sheet has %d rows, want %d", len(sheet.Rows), len(rec)+1)
	}
	if got := sheet.Cell(1, 0).Value; got != "Initial Temperature (K)" {
		t.Errorf("first parameter is %q", got)
	}
}

func TestTableWriteXLSX(t *testing.T) {
	table, err := NewSensitivityRunner().Run()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := table.WriteXLSX(&buf); err != nil {
		t.Fatal(err)
	}
	f, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	sheet, ok := f.Sheet["Sensitivity"]
	if !ok {
		t.Fatal("missing sheet 'Sensitivity'")
	}
	if len(sheet.Rows) != len(table)+1 {
		t.Fatalf("sheet has %d rows, want %d", len(sheet.Rows), len(table)+1)
	}
	if got := len(sheet.Rows[0].Cells); got != len(RecordVars)+2 {
		t.Errorf("header has %d cells, want %d", got, len(RecordVars)+2)
	}
}
