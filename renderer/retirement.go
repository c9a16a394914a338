package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"finsight"

	md "github.com/nao1215/markdown"
)

// RetirementMarkdown renders a retirement plan and its projection.
func RetirementMarkdown(plan finsight.RetirementPlan, r *finsight.RetirementResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Retirement Projection")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Current Age"),
			md.Bold(strconv.Itoa(plan.CurrentAge)),
		},
		Rows: [][]string{
			{"Retirement Age", strconv.Itoa(plan.RetirementAge)},
			{"Current Savings", fmt.Sprintf("%.2f", plan.CurrentSavings)},
			{"Monthly Savings", fmt.Sprintf("%.2f", plan.MonthlySavings)},
			{"Expected Annual Return", finsight.Percent(plan.AnnualReturnPct).String()},
		},
	})

	doc.H2("Projection")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Value at Retirement"),
			md.Bold(fmt.Sprintf("%.2f", r.TotalAccumulated)),
		},
		Rows: [][]string{
			{"Monthly Pension (4% rule)", fmt.Sprintf("%.2f", r.MonthlyPensionPossible)},
			{"Target Monthly Pension", fmt.Sprintf("%.2f", plan.TargetMonthlyPension)},
		},
	})

	if r.GoalReachable {
		doc.PlainText(md.Bold("The target pension is within reach."))
	} else {
		doc.PlainText(md.Bold("The target pension is not within reach."))
	}

	if len(r.Breakdown) > 1 {
		doc.H2("Savings by Age")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Age", "Balance"},
			Rows:   [][]string{},
		}
		for _, y := range r.Breakdown {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(y.Age),
				fmt.Sprintf("%.2f", y.Balance),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
