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
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// WriteXLSX writes the record as a two-column spreadsheet sheet named
// "Energy Balance".
func (r EnergyBalanceRecord) WriteXLSX(w io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Energy Balance")
	if err != nil {
		return fmt.Errorf("calcin: writing energy balance xlsx: %v", err)
	}
	hdr := sheet.AddRow()
	hdr.AddCell().SetString("Parameter")
	hdr.AddCell().SetString("Value")
	for _, row := range r {
		xr := sheet.AddRow()
		xr.AddCell().SetString(row.Label)
		xr.AddCell().SetFloat(row.Value)
	}
	return f.Write(w)
}

// WriteXLSX writes the table as a spreadsheet sheet named "Sensitivity"
// with one column per record row plus the varied parameter tag columns.
func (t SensitivityTable) WriteXLSX(w io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sensitivity")
	if err != nil {
		return fmt.Errorf("calcin: writing sensitivity xlsx: %v", err)
	}
	hdr := sheet.AddRow()
	hdr.AddCell().SetString("Varied")
	hdr.AddCell().SetString("Value")
	for _, name := range RecordVars {
		hdr.AddCell().SetString(name)
	}
	for _, row := range t {
		xr := sheet.AddRow()
		xr.AddCell().SetString(string(row.Varied))
		xr.AddCell().SetFloat(row.Value)
		for _, name := range RecordVars {
			v, err := row.Record.Value(name)
			if err != nil {
				return err
			}
			xr.AddCell().SetFloat(v)
		}
	}
	return f.Write(w)
}
