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
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
)

// Parameter identifies a process parameter that a sensitivity sweep can
// vary.
type Parameter string

// The process parameters available for variation.
const (
	InitialTemperature Parameter = VarInitialTemperature
	FinalTemperature   Parameter = VarFinalTemperature
	Pressure           Parameter = VarPressure
	LimestoneMass      Parameter = VarLimestoneMass
)

// sweepOrder fixes the presentation order of varied parameters in the
// output table.
var sweepOrder = []Parameter{FinalTemperature, LimestoneMass,
	InitialTemperature, Pressure}

// DefaultRanges returns the default sensitivity sweep: final temperature
// 700–1100 K in 50 K steps and limestone mass 50–200 kg in 25 kg steps,
// 16 samples in total.
func DefaultRanges() map[Parameter][]float64 {
	return map[Parameter][]float64{
		FinalTemperature: floats.Span(make([]float64, 9), 700, 1100),
		LimestoneMass:    floats.Span(make([]float64, 7), 50, 200),
	}
}

// SensitivityRow is one sample of a sensitivity sweep: the energy balance
// record obtained with Varied set to Value and all other parameters held
// at their base values.
type SensitivityRow struct {
	Varied Parameter
	Value  float64
	Record EnergyBalanceRecord
}

// SensitivityTable is an ordered collection of sensitivity samples.
type SensitivityTable []SensitivityRow

// SensitivityRunner evaluates how the comprehensive energy balance
// responds to variation in selected process parameters. Parameters are
// varied one at a time with the others held at the base values; every
// sample is an independent evaluation of a freshly constructed Model, so
// no state is carried between samples.
type SensitivityRunner struct {
	// Base holds the parameter values used when a parameter is not
	// being varied.
	Base ProcessParameters

	// Constants holds the thermochemical data used for every sample.
	Constants ThermochemicalConstants

	// Ranges maps each varied parameter to its sample values. If nil,
	// DefaultRanges() is used.
	Ranges map[Parameter][]float64
}

// NewSensitivityRunner returns a runner with the default base parameters,
// constants, and sweep ranges.
func NewSensitivityRunner() *SensitivityRunner {
	return &SensitivityRunner{
		Base:      DefaultParameters(),
		Constants: DefaultConstants(),
	}
}

// apply returns a copy of p with the varied parameter set to v.
func apply(p ProcessParameters, varied Parameter, v float64) (ProcessParameters, error) {
	switch varied {
	case InitialTemperature:
		p.InitialTemperature = v
	case FinalTemperature:
		p.FinalTemperature = v
	case Pressure:
		p.Pressure = v
	case LimestoneMass:
		p.LimestoneMass = v
	default:
		return p, &InvalidParameterError{Param: string(varied),
			Value: v, Reason: "not a variable process parameter"}
	}
	return p, nil
}

// Run performs the sweep and returns one table row per sample. Samples
// are evaluated concurrently on up to GOMAXPROCS workers; each worker
// constructs its own Model, and results are placed by index so the
// presentation order is deterministic regardless of scheduling.
func (s *SensitivityRunner) Run() (SensitivityTable, error) {
	ranges := s.Ranges
	if ranges == nil {
		ranges = DefaultRanges()
	}

	var table SensitivityTable
	for _, varied := range sweepOrder {
		for _, v := range ranges[varied] {
			table = append(table, SensitivityRow{Varied: varied, Value: v})
		}
	}
	for varied := range ranges {
		known := false
		for _, p := range sweepOrder {
			if p == varied {
				known = true
				break
			}
		}
		if !known {
			return nil, &InvalidParameterError{Param: string(varied),
				Reason: "not a variable process parameter"}
		}
	}

	nprocs := runtime.GOMAXPROCS(0)
	errs := make([]error, nprocs)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for i := pp; i < len(table); i += nprocs {
				params, err := apply(s.Base, table[i].Varied, table[i].Value)
				if err != nil {
					errs[pp] = err
					return
				}
				m, err := New(params, s.Constants)
				if err != nil {
					errs[pp] = err
					return
				}
				rec, err := m.EnergyBalance()
				if err != nil {
					errs[pp] = err
					return
				}
				table[i].Record = rec
			}
		}(pp)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

// ResponseStats summarizes the linear response of one output quantity to
// one varied parameter over a sensitivity table.
type ResponseStats struct {
	Varied    Parameter
	Output    string
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Response calculates linear regression statistics for the named output
// row against the values of the varied parameter. It returns a
// MissingInputError if the table contains no samples for that parameter.
func (t SensitivityTable) Response(varied Parameter, output string) (ResponseStats, error) {
	var x, y []float64
	for _, row := range t {
		if row.Varied != varied {
			continue
		}
		v, err := row.Record.Value(output)
		if err != nil {
			return ResponseStats{}, err
		}
		x = append(x, row.Value)
		y = append(y, v)
	}
	if len(x) < 2 {
		return ResponseStats{}, &MissingInputError{
			Input: fmt.Sprintf("sensitivity samples for %s", varied)}
	}
	var r ResponseStats
	r.Varied = varied
	r.Output = output
	r.Slope, r.Intercept, r.RSquared, _, _, _ = stats.LinearRegression(x, y)
	return r, nil
}

// Write writes the table as aligned text with one row per sample. Besides
// the varied parameter and its value, the derived quantities of each
// record are included.
func (t SensitivityTable) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "Varied\tValue\tGibbsFreeEnergy\tSensibleHeat\tLatentHeat\tEntropyGeneration")
	for _, row := range t {
		fmt.Fprintf(tw, "%s\t%g", row.Varied, row.Value)
		for _, name := range []string{VarGibbsFreeEnergy, VarSensibleHeat,
			VarLatentHeat, VarEntropyGeneration} {
			v, err := row.Record.Value(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "\t%g", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteCSV writes the table in CSV format with one column per record row
// plus the varied parameter tag columns.
func (t SensitivityTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Varied", "Value"}, RecordVars...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("calcin: writing sensitivity csv: %v", err)
	}
	for _, row := range t {
		rec := make([]string, 0, len(header))
		rec = append(rec, string(row.Varied),
			strconv.FormatFloat(row.Value, 'g', -1, 64))
		for _, name := range RecordVars {
			v, err := row.Record.Value(name)
			if err != nil {
				return err
			}
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("calcin: writing sensitivity csv: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
