// Package fiscal resolves statement date ranges and provides India
// fiscal-year (April-March) labeling helpers. Fiscal-year boundaries are
// a labeling concept only: month+year queries always resolve to calendar
// months.
package fiscal

import (
	"fmt"
	"time"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
)

// ModeAsOnDate is the explicit "everything up to today" period mode.
const ModeAsOnDate = "as_on_date"

// PeriodQuery carries the already-parsed period parameters of a statement
// request. Zero/nil fields mean "not supplied".
type PeriodQuery struct {
	Mode      string
	StartDate *time.Time
	EndDate   *time.Time
	Month     int
	Year      int
}

// Resolve turns a period query into a concrete inclusive range, checked in
// precedence order:
//  1. mode "as_on_date": [entityCreatedAt (epoch floor when zero), today]
//  2. explicit start+end dates, used verbatim
//  3. month (1-12, calendar) + year: that month's bounds
//  4. default: same as 1
//
// An inverted explicit range or an out-of-range month returns
// apperrors.ErrInvalidRange; callers fall back to Default and log the
// fallback rather than failing the request.
func Resolve(q PeriodQuery, entityCreatedAt time.Time) (domain.Period, error) {
	if q.Mode == ModeAsOnDate {
		return Default(entityCreatedAt), nil
	}

	if q.StartDate != nil && q.EndDate != nil {
		if q.EndDate.Before(*q.StartDate) {
			return domain.Period{}, fmt.Errorf("%w: start %s after end %s",
				apperrors.ErrInvalidRange, q.StartDate.Format("2006-01-02"), q.EndDate.Format("2006-01-02"))
		}
		return domain.Period{StartDate: *q.StartDate, EndDate: *q.EndDate}, nil
	}

	if q.Month != 0 && q.Year != 0 {
		if q.Month < 1 || q.Month > 12 {
			return domain.Period{}, fmt.Errorf("%w: month %d out of range", apperrors.ErrInvalidRange, q.Month)
		}
		start := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.UTC)
		// day 0 of the next month is the last day of this one
		end := time.Date(q.Year, time.Month(q.Month)+1, 0, 0, 0, 0, 0, time.UTC)
		return domain.Period{StartDate: start, EndDate: end}, nil
	}

	return Default(entityCreatedAt), nil
}

// Default is the as-on-date range: from the entity's creation (epoch floor
// when the creation date is missing) through today.
func Default(entityCreatedAt time.Time) domain.Period {
	start := entityCreatedAt
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	return domain.Period{
		StartDate: truncateToDay(start),
		EndDate:   truncateToDay(time.Now().UTC()),
	}
}

// FinancialYearStart returns April 1 of the Indian fiscal year containing
// date. January through March belong to the fiscal year that started the
// previous April.
func FinancialYearStart(date time.Time) time.Time {
	year := date.Year()
	if date.Month() < time.April {
		year--
	}
	return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// FinancialYearLabel renders the fiscal year containing date as e.g.
// "FY 2023-24".
func FinancialYearLabel(date time.Time) string {
	start := FinancialYearStart(date)
	return fmt.Sprintf("FY %d-%02d", start.Year(), (start.Year()+1)%100)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
