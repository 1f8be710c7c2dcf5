// ABOUTME: Sample data generator for demos and manual testing.
// ABOUTME: Fabricates seven consecutive weeks of plausible reports ending this week.
package sample

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/harperreed/weekly/internal/models"
)

// Weeks is the number of reports a run produces.
const Weeks = 7

// Creator is the subset of storage.Repository the generator needs.
type Creator interface {
	CreateReport(in models.ReportInput) (int64, error)
}

// Generator produces randomized weekly reports.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator seeded from the current time.
func New() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewWithSource(rand.NewPCG(seed, seed>>1|1), time.Now)
}

// NewWithSource returns a generator using src for randomness and now for "this week".
func NewWithSource(src rand.Source, now func() time.Time) *Generator {
	return &Generator{rng: rand.New(src), now: now}
}

// Inputs builds the reports for the last seven weeks, oldest first.
// Values drift slightly upward week over week.
func (g *Generator) Inputs() []models.ReportInput {
	currentMonday, _ := models.WeekOf(g.now())
	start := currentMonday.AddDays(-7 * (Weeks - 1))

	inputs := make([]models.ReportInput, 0, Weeks)
	for week := 0; week < Weeks; week++ {
		in := models.NewReportInput(start.AddDays(7 * week))
		w := float64(week)

		in.OnlineRequirements = g.between(5, 15) + int(w*0.5)
		in.OnlineReqCount = in.OnlineRequirements * g.between(1, 3)
		in.FixedBugs = g.between(3, 20) + int(w*0.3)
		in.BugFixRate = math.Round((85.0+g.rng.Float64()*15.0)*10) / 10
		in.ReleaseOrders = g.between(8, 25) + int(w*0.4)
		in.ReleaseFailures = g.between(0, min(5, in.ReleaseOrders/5))
		in.NewReuseUnits = g.between(1, 8) + int(w*0.2)
		in.NewReuseEvents = g.between(2, 12) + int(w*0.3)

		inputs = append(inputs, in)
	}
	return inputs
}

// Result records one inserted week.
type Result struct {
	ID    int64
	Input models.ReportInput
}

// Seed inserts the generated weeks through c, stopping at the first failure.
// Weeks inserted before the failure are returned alongside the error.
func (g *Generator) Seed(c Creator) ([]Result, error) {
	inputs := g.Inputs()
	results := make([]Result, 0, len(inputs))
	for i, in := range inputs {
		id, err := c.CreateReport(in)
		if err != nil {
			return results, fmt.Errorf("week %d (%s ~ %s): %w", i+1, in.MondayDate, in.SundayDate, err)
		}
		results = append(results, Result{ID: id, Input: in})
	}
	return results, nil
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
