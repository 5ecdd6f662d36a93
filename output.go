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
	"math"
	"sort"

	"github.com/Knetic/govaluate"
)

// Outputter evaluates user-defined output variables, expressed as
// arithmetic expressions over the rows of an energy balance record, for
// example "TotalHeat": "SensibleHeat + LatentHeat".
type Outputter struct {
	outputVariables map[string]string
	outputFunctions map[string]govaluate.ExpressionFunction
	exprs           map[string]*govaluate.EvaluableExpression
	names           []string
}

// NewOutputter initializes a new Outputter for the given map of output
// variable names to expressions, and adds a set of default expression
// functions. Default functions include:
//
// 'exp(x)' which applies the exponential function e^x.
//
// 'abs(x)' which returns the absolute value of x.
//
// 'sum(x, y, ...)' which sums its arguments.
//
// Additional functions may be supplied in outputFunctions; they override
// the defaults on name collision.
func NewOutputter(outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	defaultOutputFuncs := map[string]govaluate.ExpressionFunction{
		"exp": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("calcin: got %d arguments for function 'exp', but needs 1", len(arg))
			}
			return (float64)(math.Exp(arg[0].(float64))), nil
		},
		"abs": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("calcin: got %d arguments for function 'abs', but needs 1", len(arg))
			}
			return (float64)(math.Abs(arg[0].(float64))), nil
		},
		"sum": func(args ...interface{}) (interface{}, error) {
			var s float64
			for _, a := range args {
				s += a.(float64)
			}
			return s, nil
		},
	}
	for key, val := range outputFunctions {
		defaultOutputFuncs[key] = val
	}

	o := &Outputter{
		outputVariables: outputVariables,
		outputFunctions: defaultOutputFuncs,
		exprs:           make(map[string]*govaluate.EvaluableExpression),
	}
	for name, expression := range outputVariables {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, defaultOutputFuncs)
		if err != nil {
			return nil, fmt.Errorf("calcin: parsing output variable %s: %v", name, err)
		}
		o.exprs[name] = expr
		o.names = append(o.names, name)
	}
	sort.Strings(o.names) // deterministic evaluation order
	return o, nil
}

// Evaluate evaluates every output variable against the given record and
// returns the results as additional rows in lexical name order. An
// expression that references a variable absent from the record causes a
// MissingInputError.
func (o *Outputter) Evaluate(r EnergyBalanceRecord) (EnergyBalanceRecord, error) {
	params := make(map[string]interface{}, len(r))
	for _, row := range r {
		params[row.Name] = row.Value
	}
	var out EnergyBalanceRecord
	for _, name := range o.names {
		expr := o.exprs[name]
		for _, v := range expr.Vars() {
			if _, ok := params[v]; !ok {
				return nil, &MissingInputError{Input: v}
			}
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("calcin: evaluating output variable %s: %v", name, err)
		}
		val, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("calcin: output variable %s: expression %q is not numeric",
				name, o.outputVariables[name])
		}
		out = append(out, Row{Name: name, Label: name, Value: val})
	}
	return out, nil
}
