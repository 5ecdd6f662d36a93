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
	"strconv"
	"text/tabwriter"
)

// Names of the rows in an EnergyBalanceRecord. These are the identifiers
// used in derived output expressions; the display labels carry the units.
const (
	VarInitialTemperature = "InitialTemperature"
	VarFinalTemperature   = "FinalTemperature"
	VarPressure           = "Pressure"
	VarLimestoneMass      = "LimestoneMass"
	VarMolarQuantity      = "MolarQuantity"
	VarStandardEnthalpy   = "StandardEnthalpy"
	VarStandardEntropy    = "StandardEntropy"
	VarGibbsFreeEnergy    = "GibbsFreeEnergy"
	VarSensibleHeat       = "SensibleHeat"
	VarLatentHeat         = "LatentHeat"
	VarEntropyGeneration  = "EntropyGeneration"
)

// RecordVars lists the row names of an EnergyBalanceRecord in their fixed
// output order.
var RecordVars = []string{
	VarInitialTemperature, VarFinalTemperature, VarPressure,
	VarLimestoneMass, VarMolarQuantity, VarStandardEnthalpy,
	VarStandardEntropy, VarGibbsFreeEnergy, VarSensibleHeat,
	VarLatentHeat, VarEntropyGeneration,
}

// Row is one labeled entry in an energy balance record.
type Row struct {
	Name  string  // identifier, e.g. "SensibleHeat"
	Label string  // display label with units, e.g. "Sensible Heat (kJ)"
	Value float64
}

// EnergyBalanceRecord is the consolidated result of a comprehensive energy
// balance: an ordered list of (parameter, value) rows covering the process
// parameters and every derived thermodynamic quantity. A record is a
// computed snapshot; it is never mutated after creation.
type EnergyBalanceRecord []Row

// EnergyBalance performs the comprehensive energy balance analysis,
// evaluating the chemical potential, thermal energy requirements, and
// entropy generation in that order and folding every intermediate value
// plus the original parameters into one ordered record. It is
// deterministic and does not mutate the model; repeated calls with the
// same model yield identical records. On any failure no record is
// returned.
func (m *Model) EnergyBalance() (EnergyBalanceRecord, error) {
	chem, err := m.ChemicalPotential()
	if err != nil {
		return nil, err
	}
	thermal, err := m.ThermalRequirements()
	if err != nil {
		return nil, err
	}
	sgen, err := m.EntropyGeneration(&thermal)
	if err != nil {
		return nil, err
	}
	p := m.params
	return EnergyBalanceRecord{
		{VarInitialTemperature, "Initial Temperature (K)", p.InitialTemperature},
		{VarFinalTemperature, "Final Temperature (K)", p.FinalTemperature},
		{VarPressure, "Pressure (Pa)", p.Pressure},
		{VarLimestoneMass, "Limestone Mass (kg)", p.LimestoneMass},
		{VarMolarQuantity, "Molar Quantity (mol)", thermal.MolarQuantity},
		{VarStandardEnthalpy, "Standard Enthalpy (kJ/mol)", chem.StandardEnthalpy},
		{VarStandardEntropy, "Standard Entropy (J/(mol·K))", chem.StandardEntropy},
		{VarGibbsFreeEnergy, "Gibbs Free Energy (kJ/mol)", chem.GibbsFreeEnergy},
		{VarSensibleHeat, "Sensible Heat (kJ)", thermal.SensibleHeat},
		{VarLatentHeat, "Latent Heat (kJ)", thermal.LatentHeat},
		{VarEntropyGeneration, "Entropy Generation (kJ/K)", sgen},
	}, nil
}

// Value returns the value of the named row, or a MissingInputError if the
// record has no row with that name.
func (r EnergyBalanceRecord) Value(name string) (float64, error) {
	for _, row := range r {
		if row.Name == name {
			return row.Value, nil
		}
	}
	return 0, &MissingInputError{Input: name}
}

// Write writes the record as an aligned two-column text table.
func (r EnergyBalanceRecord) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "Parameter\tValue")
	for _, row := range r {
		fmt.Fprintf(tw, "%s\t%g\n", row.Label, row.Value)
	}
	return tw.Flush()
}

// WriteCSV writes the record as a two-column CSV table.
func (r EnergyBalanceRecord) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Parameter", "Value"}); err != nil {
		return fmt.Errorf("calcin: writing energy balance csv: %v", err)
	}
	for _, row := range r {
		err := cw.Write([]string{row.Label, strconv.FormatFloat(row.Value, 'g', -1, 64)})
		if err != nil {
			return fmt.Errorf("calcin: writing energy balance csv: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
