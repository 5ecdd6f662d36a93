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
	"math"

	"github.com/ctessum/unit"
)

// ChemicalPotential holds the chemical potential data for the
// decomposition reaction at the final process temperature.
type ChemicalPotential struct {
	StandardEnthalpy float64 // ΔH° [kJ/mol]
	StandardEntropy  float64 // ΔS° [J/(mol·K)]
	GibbsFreeEnergy  float64 // ΔG = ΔH° − T·ΔS° at the final temperature [kJ/mol]
}

// ThermalEnergy holds the thermal energy requirements for heating and
// decomposing the limestone charge.
type ThermalEnergy struct {
	MolarQuantity float64 // moles of CaCO3 in the charge [mol]
	SensibleHeat  float64 // heat to raise the charge to the final temperature [kJ]
	LatentHeat    float64 // heat absorbed by the decomposition reaction [kJ]
}

// ChemicalPotential calculates the Gibbs free energy of the decomposition
// reaction at the final process temperature.
func (m *Model) ChemicalPotential() (ChemicalPotential, error) {
	if m.params.FinalTemperature <= 0 {
		return ChemicalPotential{}, &InvalidParameterError{Param: "FinalTemperature",
			Value: m.params.FinalTemperature, Reason: "temperature must be positive kelvin"}
	}
	dH := unit.New(m.consts.StandardEnthalpy, kilojoulePerMole)
	// ΔS° is tabulated in J/(mol·K); it is converted to kJ/(mol·K) here,
	// the only place the 1/1000 factor is applied, so that it combines
	// with ΔH° on the kilojoule scale.
	dS := unit.New(m.consts.StandardEntropy/1000, kilojoulePerMoleKelvin)
	tf := unit.New(m.params.FinalTemperature, unit.Kelvin)
	dG := unit.Sub(dH, unit.Mul(tf, dS))
	return ChemicalPotential{
		StandardEnthalpy: dH.Value(),
		StandardEntropy:  m.consts.StandardEntropy,
		GibbsFreeEnergy:  dG.Value(),
	}, nil
}

// ThermalRequirements calculates the molar quantity of the charge and the
// sensible and latent heat needed to bring it to the final temperature and
// decompose it.
func (m *Model) ThermalRequirements() (ThermalEnergy, error) {
	p := m.params
	if p.FinalTemperature < p.InitialTemperature {
		return ThermalEnergy{}, &InvalidParameterError{Param: "FinalTemperature",
			Value: p.FinalTemperature, Reason: "final temperature is below initial temperature"}
	}
	mass := unit.New(p.LimestoneMass, unit.Kilogram)
	n := unit.Div(mass, unit.New(m.consts.MolarMassCaCO3, kilogramPerMole))
	dT := unit.Sub(unit.New(p.FinalTemperature, unit.Kelvin),
		unit.New(p.InitialTemperature, unit.Kelvin))
	qs := unit.Mul(mass, unit.New(m.consts.SpecificHeat, kilojoulePerKilogramKelvin), dT)
	// The decomposition enthalpy is tabulated in kJ/mol; the balance
	// reports latent heat with the molar quantity expressed in kilomoles,
	// so the per-mole value is scaled by 1/1000 here, the only place this
	// factor is applied.
	ql := unit.Mul(n, unit.New(m.consts.LatentHeat/1000, kilojoulePerMole))
	return ThermalEnergy{
		MolarQuantity: n.Value(),
		SensibleHeat:  qs.Value(),
		LatentHeat:    ql.Value(),
	}, nil
}

// EntropyGeneration calculates the entropy generated by the process [kJ/K]
// as the net heat input divided by the final temperature, a simplified
// irreversibility measure. te must be the result of ThermalRequirements;
// if it is absent or not finite a MissingInputError is returned.
func (m *Model) EntropyGeneration(te *ThermalEnergy) (float64, error) {
	if te == nil {
		return 0, &MissingInputError{Input: "thermal energy requirements"}
	}
	if math.IsNaN(te.SensibleHeat) || math.IsNaN(te.LatentHeat) {
		return 0, &MissingInputError{Input: "sensible and latent heat"}
	}
	if m.params.FinalTemperature <= 0 {
		return 0, &InvalidParameterError{Param: "FinalTemperature",
			Value: m.params.FinalTemperature, Reason: "temperature must be positive kelvin"}
	}
	heat := unit.Add(unit.New(te.SensibleHeat, kilojoule),
		unit.New(te.LatentHeat, kilojoule))
	sgen := unit.Div(heat, unit.New(m.params.FinalTemperature, unit.Kelvin))
	return sgen.Value(), nil
}
