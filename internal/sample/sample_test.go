// ABOUTME: Tests for the sample data generator.
// ABOUTME: Checks week coverage, value ranges, and abort-on-failure behavior.
package sample

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/harperreed/weekly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC) // a Thursday

func newTestGenerator(seed uint64) *Generator {
	return NewWithSource(rand.NewPCG(seed, seed+1), func() time.Time { return fixedNow })
}

func TestInputsCoverSevenConsecutiveWeeks(t *testing.T) {
	inputs := newTestGenerator(1).Inputs()
	require.Len(t, inputs, Weeks)

	currentMonday, _ := models.WeekOf(fixedNow)
	assert.Equal(t, "2024-03-11", currentMonday.String())
	assert.Equal(t, currentMonday, inputs[len(inputs)-1].MondayDate)
	assert.Equal(t, "2024-01-29", inputs[0].MondayDate.String())

	for i := 1; i < len(inputs); i++ {
		assert.Equal(t, 7, inputs[i-1].MondayDate.DaysUntil(inputs[i].MondayDate))
	}
}

func TestInputsWithinRanges(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		for week, in := range newTestGenerator(seed).Inputs() {
			require.NoError(t, in.Validate())
			w := float64(week)

			assert.GreaterOrEqual(t, in.OnlineRequirements, 5)
			assert.LessOrEqual(t, in.OnlineRequirements, 15+int(w*0.5))

			assert.Zero(t, in.OnlineReqCount%in.OnlineRequirements)
			mult := in.OnlineReqCount / in.OnlineRequirements
			assert.True(t, mult >= 1 && mult <= 3, "multiplier %d", mult)

			assert.GreaterOrEqual(t, in.FixedBugs, 3)
			assert.LessOrEqual(t, in.FixedBugs, 20+int(w*0.3))

			assert.GreaterOrEqual(t, in.BugFixRate, 85.0)
			assert.LessOrEqual(t, in.BugFixRate, 100.0)

			assert.GreaterOrEqual(t, in.ReleaseOrders, 8)
			assert.LessOrEqual(t, in.ReleaseOrders, 25+int(w*0.4))

			assert.GreaterOrEqual(t, in.ReleaseFailures, 0)
			assert.LessOrEqual(t, in.ReleaseFailures, min(5, in.ReleaseOrders/5))

			assert.GreaterOrEqual(t, in.NewReuseUnits, 1)
			assert.LessOrEqual(t, in.NewReuseUnits, 8+int(w*0.2))

			assert.GreaterOrEqual(t, in.NewReuseEvents, 2)
			assert.LessOrEqual(t, in.NewReuseEvents, 12+int(w*0.3))
		}
	}
}

func TestInputsDeterministicForSeed(t *testing.T) {
	assert.Equal(t, newTestGenerator(7).Inputs(), newTestGenerator(7).Inputs())
}

type fakeCreator struct {
	failAt int
	calls  int
}

func (f *fakeCreator) CreateReport(in models.ReportInput) (int64, error) {
	f.calls++
	if f.calls == f.failAt {
		return 0, errors.New("week already has a report")
	}
	return int64(f.calls), nil
}

func TestSeedInsertsAllWeeks(t *testing.T) {
	c := &fakeCreator{}
	results, err := newTestGenerator(3).Seed(c)
	require.NoError(t, err)
	assert.Len(t, results, Weeks)
	assert.Equal(t, Weeks, c.calls)
	assert.Equal(t, int64(1), results[0].ID)
}

func TestSeedAbortsOnFirstFailure(t *testing.T) {
	c := &fakeCreator{failAt: 3}
	results, err := newTestGenerator(3).Seed(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week 3")
	assert.Len(t, results, 2)
	assert.Equal(t, 3, c.calls, "no inserts after the failing week")
}
