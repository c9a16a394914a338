package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finsight"
	"finsight/renderer"

	"github.com/google/subcommands"
)

type retireCmd struct {
	age     int
	at      int
	savings float64
	monthly float64
	ret     float64
	pension float64
	advice  bool
}

func (*retireCmd) Name() string     { return "retire" }
func (*retireCmd) Synopsis() string { return "project savings growth until retirement" }
func (*retireCmd) Usage() string {
	return `fin retire -age <years> -at <years> [-savings <amount>] [-monthly <amount>] [-return <percent>] [-pension <amount>] [-advice]

  Projects the growth of your savings month by month until retirement,
  the monthly pension it can sustain under the 4% rule, and whether the
  target pension is within reach.

Usage Examples:
# Project a 30 year old retiring at 60.
$ fin retire -age 30 -at 60 -savings 100000 -monthly 1000 -return 6 -pension 2000

`
}

func (c *retireCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "Current age in years (required)")
	f.IntVar(&c.at, "at", 0, "Retirement age in years (required)")
	f.Float64Var(&c.savings, "savings", 0, "Savings accumulated so far")
	f.Float64Var(&c.monthly, "monthly", 0, "Amount saved each month")
	f.Float64Var(&c.ret, "return", 0, "Expected annual return, in percent (6 means 6%)")
	f.Float64Var(&c.pension, "pension", 0, "Monthly pension you aim for")
	f.BoolVar(&c.advice, "advice", false, "ask the advisor to comment on the plan")
}

func (c *retireCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan := finsight.RetirementPlan{
		CurrentAge:           c.age,
		RetirementAge:        c.at,
		CurrentSavings:       c.savings,
		MonthlySavings:       c.monthly,
		AnnualReturnPct:      c.ret,
		TargetMonthlyPension: c.pension,
	}

	result, err := finsight.Project(plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	out := renderer.RetirementMarkdown(plan, result)

	if c.advice {
		a, err := newAdvisor(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing the advisor: %v\n", err)
			return subcommands.ExitFailure
		}
		advice, err := a.RetirementAdvice(ctx, plan, result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error asking for advice: %v\n", err)
			return subcommands.ExitFailure
		}
		out += "\n## Advisor's Comment\n\n" + advice + "\n"
	}

	printMarkdown(out)
	return subcommands.ExitSuccess
}
