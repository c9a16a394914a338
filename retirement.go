package finsight

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPlan reports a retirement plan whose inputs make no economic
// sense. It is the only error the projection engine can return.
var ErrInvalidPlan = errors.New("invalid retirement plan")

// RetirementPlan holds the inputs of a retirement projection.
//
// Monetary amounts are expressed in the reporting currency's major unit
// (dollars, not cents) as plain float64: the projection is an estimate
// over decades, cent-exact arithmetic would be false precision.
type RetirementPlan struct {
	CurrentAge           int     // years, >= 0
	RetirementAge        int     // years, >= CurrentAge
	CurrentSavings       float64 // >= 0
	MonthlySavings       float64 // added at the end of each month, >= 0
	AnnualReturnPct      float64 // nominal annual return, 7 means 7%/year; negative models a decline
	TargetMonthlyPension float64 // desired monthly withdrawal once retired, >= 0
}

// Months returns the investment horizon in whole months.
func (p RetirementPlan) Months() int { return (p.RetirementAge - p.CurrentAge) * 12 }

// monthlyRate converts the nominal annual return to a monthly compounding rate.
func (p RetirementPlan) monthlyRate() float64 { return p.AnnualReturnPct / 100 / 12 }

// Validate returns ErrInvalidPlan (wrapped with details) if the plan
// inputs are not economically meaningful. A negative return rate is a
// valid decline scenario, not an error.
func (p RetirementPlan) Validate() error {
	if p.CurrentAge < 0 {
		return fmt.Errorf("%w: current age %d is negative", ErrInvalidPlan, p.CurrentAge)
	}
	if p.RetirementAge < p.CurrentAge {
		return fmt.Errorf("%w: retirement age %d is before current age %d", ErrInvalidPlan, p.RetirementAge, p.CurrentAge)
	}
	if !finite(p.CurrentSavings) || p.CurrentSavings < 0 {
		return fmt.Errorf("%w: current savings %v must be a non-negative finite amount", ErrInvalidPlan, p.CurrentSavings)
	}
	if !finite(p.MonthlySavings) || p.MonthlySavings < 0 {
		return fmt.Errorf("%w: monthly savings %v must be a non-negative finite amount", ErrInvalidPlan, p.MonthlySavings)
	}
	if !finite(p.AnnualReturnPct) {
		return fmt.Errorf("%w: annual return %v must be a finite percentage", ErrInvalidPlan, p.AnnualReturnPct)
	}
	if !finite(p.TargetMonthlyPension) || p.TargetMonthlyPension < 0 {
		return fmt.Errorf("%w: target monthly pension %v must be a non-negative finite amount", ErrInvalidPlan, p.TargetMonthlyPension)
	}
	return nil
}

// finite reports whether v is a usable amount (neither NaN nor infinite).
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// RetirementResult is the outcome of projecting a RetirementPlan.
// It is derived data and never mutated after computation.
type RetirementResult struct {
	TotalAccumulated       float64         // projected value at retirement age
	MonthlyPensionPossible float64         // sustainable monthly withdrawal under the 4% rule
	GoalReachable          bool            // true when the possible pension covers the target
	Breakdown              []YearlyBalance // balance at each age, CurrentAge to RetirementAge inclusive
}

// YearlyBalance is the projected balance at a given age, for charting.
type YearlyBalance struct {
	Age     int
	Balance float64
}

// safeWithdrawalRate is the fixed yearly fraction of the accumulated
// balance considered sustainably withdrawable. It is a standard
// heuristic, deliberately independent from the plan's own return rate.
const safeWithdrawalRate = 0.04

// Project computes the projected asset value of the plan at retirement
// age, compounding monthly, and the sustainable pension it can fund.
//
// Project is a pure function: it performs no I/O, holds no state, and
// identical inputs always produce identical outputs. The only possible
// error is ErrInvalidPlan from validation; every valid plan, however
// extreme, yields a numeric result.
func Project(plan RetirementPlan) (*RetirementResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	months := plan.Months()
	rate := plan.monthlyRate()

	// Closed form of the monthly recurrence
	//	balance = balance*(1+rate) + monthly
	// preferred over iterating to avoid accumulating rounding drift
	// over long horizons.
	var total float64
	if rate == 0 {
		total = plan.CurrentSavings + plan.MonthlySavings*float64(months)
	} else {
		growth := math.Pow(1+rate, float64(months))
		total = plan.CurrentSavings*growth + plan.MonthlySavings*(growth-1)/rate
	}

	pension := total * safeWithdrawalRate / 12

	return &RetirementResult{
		TotalAccumulated:       total,
		MonthlyPensionPossible: pension,
		GoalReachable:          pension >= plan.TargetMonthlyPension,
		Breakdown:              breakdown(plan),
	}, nil
}

// breakdown replays the month-by-month recurrence and samples the
// balance at each birthday. The recurrence agrees with the closed form
// within floating-point tolerance.
func breakdown(plan RetirementPlan) []YearlyBalance {
	rate := plan.monthlyRate()
	balances := make([]YearlyBalance, 0, plan.RetirementAge-plan.CurrentAge+1)

	balance := plan.CurrentSavings
	balances = append(balances, YearlyBalance{Age: plan.CurrentAge, Balance: balance})
	for age := plan.CurrentAge + 1; age <= plan.RetirementAge; age++ {
		for month := 0; month < 12; month++ {
			balance = balance*(1+rate) + plan.MonthlySavings
		}
		balances = append(balances, YearlyBalance{Age: age, Balance: balance})
	}
	return balances
}
