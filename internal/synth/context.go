package synth

import (
	"math"
	"math/rand"
	"strings"
	"time"
)

// DateRange is an inclusive window that date and datetime generators sample
// from uniformly when present.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange accepts YYYY-MM or YYYY-MM-DD bounds and normalizes order.
func ParseDateRange(start, end string) (*DateRange, error) {
	s, err := parseDateBound(start)
	if err != nil {
		return nil, err
	}
	e, err := parseDateBound(end)
	if err != nil {
		return nil, err
	}
	if e.Before(s) {
		s, e = e, s
	}
	return &DateRange{Start: s, End: e}, nil
}

func parseDateBound(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Context carries everything a generator needs for one generation call. It is
// built once per call and never mutated afterwards, so concurrent calls with
// different geographies or date ranges cannot race.
type Context struct {
	Rand      *rand.Rand
	Now       time.Time
	Geography string
	Table     string
	Dates     *DateRange
	counter   int
}

func NewContext(seed int64, now time.Time) *Context {
	return &Context{
		Rand:      rand.New(rand.NewSource(seed)),
		Now:       now.UTC(),
		Geography: "global",
	}
}

// WithTable returns a copy scoped to a table name for context-aware rules.
func (c *Context) WithTable(table string) *Context {
	next := *c
	next.Table = table
	return &next
}

func (c *Context) choice(opts []string) string {
	return opts[c.Rand.Intn(len(opts))]
}

func (c *Context) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + c.Rand.Intn(max-min+1)
}

func (c *Context) randFloat(min, max float64, decimals int) float64 {
	return roundTo(min+c.Rand.Float64()*(max-min), decimals)
}

// roundTo rounds half away from zero so negative coordinates round the same
// way positive ones do.
func roundTo(v float64, decimals int) float64 {
	pow := 1.0
	for i := 0; i < decimals; i++ {
		pow *= 10
	}
	return math.Round(v*pow) / pow
}

func (c *Context) randBool() bool {
	return c.Rand.Intn(2) == 1
}

// randDate returns an ISO-8601 date-time string. With a date range set it
// samples inside the window, otherwise up to daysBack before Now.
func (c *Context) randDate(daysBack int) string {
	if c.Dates != nil {
		days := int(c.Dates.End.Sub(c.Dates.Start).Hours() / 24)
		if days < 0 {
			days = 0
		}
		pick := c.Dates.Start.AddDate(0, 0, c.randInt(0, days))
		return pick.Format(time.RFC3339)
	}
	return c.Now.AddDate(0, 0, -c.randInt(0, daysBack)).Format(time.RFC3339)
}

// randDatetime is like randDate but with second resolution inside the window.
func (c *Context) randDatetime(daysBack int) string {
	if c.Dates != nil {
		total := int64(c.Dates.End.Sub(c.Dates.Start).Seconds())
		if total < 0 {
			total = 0
		}
		var offset int64
		if total > 0 {
			offset = c.Rand.Int63n(total + 1)
		}
		return c.Dates.Start.Add(time.Duration(offset) * time.Second).Format(time.RFC3339)
	}
	result := c.Now.
		AddDate(0, 0, -c.randInt(0, daysBack)).
		Add(-time.Duration(c.randInt(0, 23)) * time.Hour).
		Add(-time.Duration(c.randInt(0, 59)) * time.Minute)
	return result.Format(time.RFC3339)
}

func (c *Context) nextCounter() int {
	c.counter++
	return c.counter
}
