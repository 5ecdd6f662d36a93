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

// Package calcinutil provides the command-line interface for the Calcin
// limestone calcination analysis model.
package calcinutil

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thermomodel/calcin"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Options are the configuration options available to Calcin.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InitialTemperature",
			usage: `
              InitialTemperature is the temperature the limestone charge
              starts at, in kelvin.`,
			defaultVal: calcin.DefaultInitialTemperature,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "FinalTemperature",
			usage: `
              FinalTemperature is the target decomposition temperature,
              in kelvin.`,
			defaultVal: calcin.DefaultFinalTemperature,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Pressure",
			usage: `
              Pressure is the system pressure in pascals.`,
			defaultVal: calcin.DefaultPressure,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LimestoneMass",
			usage: `
              LimestoneMass is the mass of the limestone charge in
              kilograms.`,
			defaultVal: calcin.DefaultLimestoneMass,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables is a map of derived output variable names to
              expressions over the energy balance record rows, for example
              TotalHeat = "SensibleHeat + LatentHeat". It is normally set
              in the configuration file.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "CSVFile",
			usage: `
              CSVFile specifies a path to write the result table in CSV
              format. If empty, no CSV file is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{balanceCmd.Flags(), sensitivityCmd.Flags()},
		},
		{
			name: "XLSXFile",
			usage: `
              XLSXFile specifies a path to write the result table as a
              spreadsheet. If empty, no spreadsheet is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{balanceCmd.Flags(), sensitivityCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile specifies a path to write a PNG chart: the energy
              distribution for 'balance', or the response curve of the
              first varied parameter for 'sensitivity'. If empty, no chart
              is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{balanceCmd.Flags(), sensitivityCmd.Flags()},
		},
		{
			name: "Sweep.FinalTemperature",
			usage: `
              Sweep.FinalTemperature specifies the final temperature sweep
              as "start,end,samples" in kelvin. An empty value together
              with an empty Sweep.LimestoneMass selects the default sweep.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sensitivityCmd.Flags()},
		},
		{
			name: "Sweep.LimestoneMass",
			usage: `
              Sweep.LimestoneMass specifies the limestone mass sweep as
              "start,end,samples" in kilograms.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sensitivityCmd.Flags()},
		},
		{
			name: "Sweep.InitialTemperature",
			usage: `
              Sweep.InitialTemperature specifies the initial temperature
              sweep as "start,end,samples" in kelvin.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sensitivityCmd.Flags()},
		},
		{
			name: "Sweep.Pressure",
			usage: `
              Sweep.Pressure specifies the pressure sweep as
              "start,end,samples" in pascals.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sensitivityCmd.Flags()},
		},
		{
			name: "Response",
			usage: `
              Response names an energy balance row (e.g. SensibleHeat) to
              summarize with linear regression statistics against each
              varied parameter. If empty, no summary is printed.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sensitivityCmd.Flags()},
		},
	}

	Cfg = viper.New()
	for _, option := range options {
		for _, set := range option.flagsets {
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			case map[string]string:
				// Maps are configuration-file only.
				continue
			default:
				panic(fmt.Errorf("calcinutil: unsupported option type %T", v))
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
		Cfg.SetDefault(option.name, option.defaultVal)
	}

	Root.AddCommand(versionCmd, balanceCmd, sensitivityCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "calcin",
	Short: "Calcin is a thermodynamic model of limestone calcination.",
	Long: `Calcin computes the energy balance of the thermal decomposition
of limestone (CaCO3 → CaO + CO2): chemical potential and Gibbs free
energy, sensible and latent heat requirements, and entropy generation.
Process parameters can be set with flags or a configuration file.
Each command displays its own flags with the --help flag.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
	SilenceUsage: true,
}

// setConfig reads the configuration file specified by the config flag,
// if any.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("calcinutil: problem reading configuration file: %v", err)
		}
		logger.WithField("config", cfgpath).Info("read configuration file")
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Calcin v%s\n", calcin.Version)
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Compute the comprehensive energy balance",
	Long: `balance builds the calculation model from the configured process
parameters, performs the comprehensive energy balance analysis, and
prints the result table. Derived output variables configured in
OutputVariables are appended to the table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := modelFromCfg(Cfg)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"Tf":   m.Parameters().FinalTemperature,
			"mass": m.Parameters().LimestoneMass,
		}).Info("computing energy balance")
		rec, err := m.EnergyBalance()
		if err != nil {
			return err
		}
		derived, err := derivedRows(Cfg, rec)
		if err != nil {
			return err
		}
		rec = append(rec, derived...)
		if err := rec.Write(os.Stdout); err != nil {
			return err
		}
		if f := Cfg.GetString("CSVFile"); f != "" {
			if err := writeFile(f, rec.WriteCSV); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("XLSXFile"); f != "" {
			if err := writeFile(f, rec.WriteXLSX); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("PlotFile"); f != "" {
			err := writeFile(f, func(w io.Writer) error {
				return calcin.RenderEnergyDistribution(rec, w)
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Run a parameter sensitivity sweep",
	Long: `sensitivity evaluates the energy balance over ranges of the
process parameters, one parameter varied at a time with the others held
at their configured values, and prints the comparison table. With no
sweep configuration it reproduces the default sweep: final temperature
700–1100 K and limestone mass 50–200 kg.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := runnerFromCfg(Cfg)
		if err != nil {
			return err
		}
		table, err := runner.Run()
		if err != nil {
			return err
		}
		logger.WithField("samples", len(table)).Info("sensitivity sweep complete")
		if err := table.Write(os.Stdout); err != nil {
			return err
		}
		if output := Cfg.GetString("Response"); output != "" {
			if err := writeResponses(os.Stdout, table, output); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("CSVFile"); f != "" {
			if err := writeFile(f, table.WriteCSV); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("XLSXFile"); f != "" {
			if err := writeFile(f, table.WriteXLSX); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("PlotFile"); f != "" && len(table) > 0 {
			err := writeFile(f, func(w io.Writer) error {
				return calcin.RenderResponse(table, table[0].Varied,
					calcin.VarSensibleHeat, w)
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
}
