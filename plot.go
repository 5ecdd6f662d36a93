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
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderEnergyDistribution renders a bar chart of the energy distribution
// in the given record (sensible heat, latent heat, and Gibbs free energy)
// and writes it to w in PNG format. It consumes the record produced by
// EnergyBalance and has no analytically significant output.
func RenderEnergyDistribution(r EnergyBalanceRecord, w io.Writer) error {
	names := []string{VarSensibleHeat, VarLatentHeat, VarGibbsFreeEnergy}
	vals := make(plotter.Values, len(names))
	for i, name := range names {
		v, err := r.Value(name)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Limestone Calcination - Energy Distribution"
	p.Y.Label.Text = "Energy (kJ)"
	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX("Sensible Heat", "Latent Heat", "Gibbs Free Energy")
	wt, err := p.WriterTo(5*vg.Inch, 3.5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// RenderResponse renders the response curve of the named output quantity
// against the given varied parameter from a sensitivity table and writes
// it to w in PNG format.
func RenderResponse(t SensitivityTable, varied Parameter, output string, w io.Writer) error {
	var xy plotter.XYs
	for _, row := range t {
		if row.Varied != varied {
			continue
		}
		v, err := row.Record.Value(output)
		if err != nil {
			return err
		}
		xy = append(xy, struct{ X, Y float64 }{X: row.Value, Y: v})
	}
	if len(xy) == 0 {
		return &MissingInputError{Input: "sensitivity samples for " + string(varied)}
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = output + " response"
	p.X.Label.Text = string(varied)
	p.Y.Label.Text = output
	if err := plotutil.AddLinePoints(p, xy); err != nil {
		return err
	}
	wt, err := p.WriterTo(5*vg.Inch, 3.5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
