package resolve

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/pbozzay/kanbanist/internal/model"
)

// ErrNotDate is returned when an identifier cannot be read as a calendar date.
var ErrNotDate = errors.New("not a date")

var naturalDates = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseDate reads s as a calendar date. ISO dates and RFC 3339 timestamps are
// taken as-is; anything else goes through natural-language parsing relative to now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNotDate
	}
	if t, err := time.ParseInLocation(model.DateLayout, s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(now.Location()), nil
	}

	r, err := naturalDates.Parse(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrNotDate, s, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNotDate, s)
	}
	return r.Time, nil
}

// DueForList returns the due date an item gets when placed into the date
// list identified by listID.
func DueForList(listID string, now time.Time) (model.Due, error) {
	date, err := ParseDate(listID, now)
	if err != nil {
		return model.Due{}, err
	}
	days := DaysBetween(now, date)
	return model.Due{
		Date:        date.Format(model.DateLayout),
		String:      fmt.Sprintf("in %d days", days),
		IsRecurring: false,
	}, nil
}

// DaysBetween returns the number of calendar days from a to b in a's location.
func DaysBetween(a, b time.Time) int {
	loc := a.Location()
	b = b.In(loc)
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(db.Sub(da).Hours() / 24))
}
