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

package calcinutil

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"

	"github.com/thermomodel/calcin"
)

// modelFromCfg builds a calculation model from the configured process
// parameters.
func modelFromCfg(cfg *viper.Viper) (*calcin.Model, error) {
	p := calcin.ProcessParameters{
		InitialTemperature: cfg.GetFloat64("InitialTemperature"),
		FinalTemperature:   cfg.GetFloat64("FinalTemperature"),
		Pressure:           cfg.GetFloat64("Pressure"),
		LimestoneMass:      cfg.GetFloat64("LimestoneMass"),
	}
	return calcin.New(p, calcin.DefaultConstants())
}

// runnerFromCfg builds a sensitivity runner from the configured base
// parameters and sweep specifications. If no sweep is configured the
// runner uses the default ranges.
func runnerFromCfg(cfg *viper.Viper) (*calcin.SensitivityRunner, error) {
	runner := calcin.NewSensitivityRunner()
	runner.Base = calcin.ProcessParameters{
		InitialTemperature: cfg.GetFloat64("InitialTemperature"),
		FinalTemperature:   cfg.GetFloat64("FinalTemperature"),
		Pressure:           cfg.GetFloat64("Pressure"),
		LimestoneMass:      cfg.GetFloat64("LimestoneMass"),
	}
	sweeps := map[calcin.Parameter]string{
		calcin.FinalTemperature:   cfg.GetString("Sweep.FinalTemperature"),
		calcin.LimestoneMass:      cfg.GetString("Sweep.LimestoneMass"),
		calcin.InitialTemperature: cfg.GetString("Sweep.InitialTemperature"),
		calcin.Pressure:           cfg.GetString("Sweep.Pressure"),
	}
	ranges := make(map[calcin.Parameter][]float64)
	for param, spec := range sweeps {
		if spec == "" {
			continue
		}
		r, err := parseSweep(spec)
		if err != nil {
			return nil, fmt.Errorf("calcinutil: sweep for %s: %v", param, err)
		}
		ranges[param] = r
	}
	if len(ranges) > 0 {
		runner.Ranges = ranges
	}
	return runner, nil
}

// parseSweep parses a sweep specification of the form "start,end,samples"
// into evenly spaced sample values.
func parseSweep(spec string) ([]float64, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q is not of the form \"start,end,samples\"", spec)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, err
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	return floats.Span(make([]float64, n), start, end), nil
}

// derivedRows evaluates the OutputVariables configured in cfg against the
// given record.
func derivedRows(cfg *viper.Viper, rec calcin.EnergyBalanceRecord) (calcin.EnergyBalanceRecord, error) {
	vars := cast.ToStringMapString(cfg.Get("OutputVariables"))
	if len(vars) == 0 {
		return nil, nil
	}
	o, err := calcin.NewOutputter(vars, nil)
	if err != nil {
		return nil, err
	}
	return o.Evaluate(rec)
}

// writeResponses prints linear regression statistics of the named output
// against each parameter varied in the table.
func writeResponses(w io.Writer, table calcin.SensitivityTable, output string) error {
	seen := make(map[calcin.Parameter]bool)
	for _, row := range table {
		if seen[row.Varied] {
			continue
		}
		seen[row.Varied] = true
		r, err := table.Response(row.Varied, output)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s vs %s: slope %.6g, intercept %.6g, R² %.4f\n",
			r.Output, r.Varied, r.Slope, r.Intercept, r.RSquared)
	}
	return nil
}

// writeFile creates the named file and writes to it with write.
func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("calcinutil: creating output file: %v", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("calcinutil: closing output file: %v", err)
	}
	logger.WithField("file", name).Info("wrote output file")
	return nil
}
