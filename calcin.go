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

// Package calcin implements a thermodynamic energy balance model for the
// calcination of limestone (CaCO3 → CaO + CO2). It computes chemical
// potential and Gibbs free energy, sensible and latent heat requirements,
// and entropy generation for a limestone charge heated from an initial to a
// final temperature, and assembles the results into a tabular energy
// balance. A sensitivity runner evaluates the balance over ranges of the
// process parameters.
package calcin

// Version gives the version of this library.
const Version = "1.2.1"

// Default process parameter values [K, K, Pa, kg].
const (
	DefaultInitialTemperature = 298.15
	DefaultFinalTemperature   = 973.15
	DefaultPressure           = 101325.
	DefaultLimestoneMass      = 100.
)

// ProcessParameters describe the calcination process being analyzed.
// The zero value is not useful; start from DefaultParameters and adjust.
// Parameters are immutable once a Model has been constructed from them.
type ProcessParameters struct {
	// InitialTemperature is the temperature the charge starts at [K].
	InitialTemperature float64

	// FinalTemperature is the target decomposition temperature [K].
	FinalTemperature float64

	// Pressure is the system pressure [Pa].
	Pressure float64

	// LimestoneMass is the mass of the limestone charge [kg].
	LimestoneMass float64
}

// DefaultParameters returns the reference process conditions: heating
// 100 kg of limestone from 298.15 K to 973.15 K at atmospheric pressure.
func DefaultParameters() ProcessParameters {
	return ProcessParameters{
		InitialTemperature: DefaultInitialTemperature,
		FinalTemperature:   DefaultFinalTemperature,
		Pressure:           DefaultPressure,
		LimestoneMass:      DefaultLimestoneMass,
	}
}

// Check returns an error if the parameters are not physically meaningful.
// Temperatures must be positive kelvin values, pressure and mass must be
// positive, and the final temperature must not be below the initial
// temperature: the model describes net heating only, not cooling. Equal
// initial and final temperatures are allowed and yield zero sensible heat.
func (p ProcessParameters) Check() error {
	if p.InitialTemperature <= 0 {
		return &InvalidParameterError{Param: "InitialTemperature",
			Value: p.InitialTemperature, Reason: "temperature must be positive kelvin"}
	}
	if p.FinalTemperature <= 0 {
		return &InvalidParameterError{Param: "FinalTemperature",
			Value: p.FinalTemperature, Reason: "temperature must be positive kelvin"}
	}
	if p.FinalTemperature < p.InitialTemperature {
		return &InvalidParameterError{Param: "FinalTemperature",
			Value: p.FinalTemperature, Reason: "final temperature is below initial temperature"}
	}
	if p.Pressure <= 0 {
		return &InvalidParameterError{Param: "Pressure",
			Value: p.Pressure, Reason: "pressure must be positive"}
	}
	if p.LimestoneMass <= 0 {
		return &InvalidParameterError{Param: "LimestoneMass",
			Value: p.LimestoneMass, Reason: "mass must be positive"}
	}
	return nil
}

// ThermochemicalConstants are the reference thermodynamic data for the
// decomposition reaction CaCO3 → CaO + CO2. They are bundled in a struct
// rather than hidden in package globals so tests can override individual
// values without process-wide side effects.
type ThermochemicalConstants struct {
	// MolarMassCaCO3 is the molar mass of calcium carbonate [kg/mol].
	MolarMassCaCO3 float64

	// StandardEnthalpy is the standard enthalpy of formation of
	// CaCO3 [kJ/mol].
	StandardEnthalpy float64

	// StandardEntropy is the standard entropy of CaCO3 [J/(mol·K)].
	StandardEntropy float64

	// SpecificHeat is the effective specific heat capacity of the
	// charge referenced to the limestone mass [kJ/(kg·K)].
	SpecificHeat float64

	// LatentHeat is the enthalpy absorbed by the decomposition
	// reaction [kJ/mol].
	LatentHeat float64
}

// DefaultConstants returns the standard thermochemical data for
// limestone calcination.
func DefaultConstants() ThermochemicalConstants {
	return ThermochemicalConstants{
		MolarMassCaCO3:   0.1000869, // kg/mol
		StandardEnthalpy: -1206.9,   // kJ/mol
		StandardEntropy:  92.9,      // J/(mol·K)
		SpecificHeat:     0.0088812, // kJ/(kg·K)
		LatentHeat:       178.3,     // kJ/mol
	}
}

// Check returns an error if any constant is outside its physical range.
func (c ThermochemicalConstants) Check() error {
	if c.MolarMassCaCO3 <= 0 {
		return &InvalidParameterError{Param: "MolarMassCaCO3",
			Value: c.MolarMassCaCO3, Reason: "molar mass must be positive"}
	}
	if c.SpecificHeat <= 0 {
		return &InvalidParameterError{Param: "SpecificHeat",
			Value: c.SpecificHeat, Reason: "specific heat must be positive"}
	}
	if c.LatentHeat <= 0 {
		return &InvalidParameterError{Param: "LatentHeat",
			Value: c.LatentHeat, Reason: "latent heat must be positive"}
	}
	return nil
}

// Model calculates thermodynamic quantities for a single calcination
// process. All of its methods are pure functions of the parameters and
// constants it was constructed with; a Model holds no other state and is
// safe for concurrent use.
type Model struct {
	params ProcessParameters
	consts ThermochemicalConstants
}

// New creates a Model for the given process parameters and thermochemical
// constants, returning an error if either fails its physical-range check.
func New(p ProcessParameters, c ThermochemicalConstants) (*Model, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return &Model{params: p, consts: c}, nil
}

// NewDefault creates a Model for the reference process conditions and
// standard thermochemical data.
func NewDefault() *Model {
	m, err := New(DefaultParameters(), DefaultConstants())
	if err != nil {
		panic(err) // the defaults always pass their checks
	}
	return m
}

// Parameters returns a copy of the process parameters the model was
// constructed with.
func (m *Model) Parameters() ProcessParameters { return m.params }

// Constants returns a copy of the thermochemical constants the model was
// constructed with.
func (m *Model) Constants() ThermochemicalConstants { return m.consts }
