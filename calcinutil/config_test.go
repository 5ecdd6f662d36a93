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
	"testing"

	"github.com/lnashier/viper"

	"github.com/thermomodel/calcin"
)

func testCfg() *viper.Viper {
	cfg := viper.New()
	cfg.SetDefault("InitialTemperature", calcin.DefaultInitialTemperature)
	cfg.SetDefault("FinalTemperature", calcin.DefaultFinalTemperature)
	cfg.SetDefault("Pressure", calcin.DefaultPressure)
	cfg.SetDefault("LimestoneMass", calcin.DefaultLimestoneMass)
	return cfg
}

func TestParseSweep(t *testing.T) {
	r, err := parseSweep("700, 1100, 9")
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != 9 || r[0] != 700 || r[8] != 1100 || r[1]-r[0] != 50 {
		t.Errorf("unexpected sweep: %v", r)
	}
	for _, bad := range []string{"", "700,1100", "a,b,c", "700,1100,1"} {
		if _, err := parseSweep(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestModelFromCfg(t *testing.T) {
	cfg := testCfg()
	cfg.Set("LimestoneMass", 250.0)
	m, err := modelFromCfg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if m.Parameters().LimestoneMass != 250 {
		t.Errorf("mass = %g, want 250", m.Parameters().LimestoneMass)
	}

	cfg.Set("FinalTemperature", 100.0) // below initial temperature
	if _, err := modelFromCfg(cfg); err == nil {
		t.Error("expected error for cooling configuration")
	}
}

func TestRunnerFromCfg(t *testing.T) {
	cfg := testCfg()
	runner, err := runnerFromCfg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if runner.Ranges != nil {
		t.Error("expected default ranges with no sweep configuration")
	}

	cfg.Set("Sweep.Pressure", "100000,300000,3")
	runner, err = runnerFromCfg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(runner.Ranges) != 1 || len(runner.Ranges[calcin.Pressure]) != 3 {
		t.Errorf("unexpected ranges: %v", runner.Ranges)
	}

	cfg.Set("Sweep.Pressure", "nonsense")
	if _, err := runnerFromCfg(cfg); err == nil {
		t.Error("expected error for malformed sweep")
	}
}

func TestDerivedRows(t *testing.T) {
	rec, err := calcin.NewDefault().EnergyBalance()
	if err != nil {
		t.Fatal(err)
	}
	cfg := testCfg()
	rows, err := derivedRows(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}
	if rows != nil {
		t.Errorf("expected no derived rows, got %v", rows)
	}

	cfg.Set("OutputVariables", map[string]string{"TotalHeat": "SensibleHeat + LatentHeat"})
	rows, err = derivedRows(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Name != "TotalHeat" {
		t.Errorf("unexpected derived rows: %v", rows)
	}
}
