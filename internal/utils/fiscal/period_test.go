package fiscal

import (
	"testing"
	"time"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestResolveExplicitRange(t *testing.T) {
	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	period, err := Resolve(PeriodQuery{StartDate: &start, EndDate: &end}, created)
	assert.NoError(t, err)
	assert.Equal(t, start, period.StartDate)
	assert.Equal(t, end, period.EndDate)
}

func TestResolveInvertedRange(t *testing.T) {
	start := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := Resolve(PeriodQuery{StartDate: &start, EndDate: &end}, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange, "An inverted range must be rejected, not silently swapped")
}

func TestResolveMonthYear(t *testing.T) {
	period, err := Resolve(PeriodQuery{Month: 2, Year: 2024}, time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), period.EndDate, "2024 is a leap year")

	period, err = Resolve(PeriodQuery{Month: 12, Year: 2023}, time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), period.EndDate)
}

func TestResolveMonthOutOfRange(t *testing.T) {
	_, err := Resolve(PeriodQuery{Month: 13, Year: 2023}, time.Time{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestResolveModeWinsOverExplicitDates(t *testing.T) {
	// as_on_date takes precedence even when explicit dates are supplied.
	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	created := time.Date(2021, 7, 15, 9, 30, 0, 0, time.UTC)

	period, err := Resolve(PeriodQuery{Mode: ModeAsOnDate, StartDate: &start, EndDate: &end}, created)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2021, 7, 15, 0, 0, 0, 0, time.UTC), period.StartDate)
	today := time.Now().UTC()
	assert.Equal(t, time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC), period.EndDate)
}

func TestResolveUnknownModeFallsThrough(t *testing.T) {
	// A mode string nothing matches resolves like no mode at all.
	created := time.Date(2021, 7, 15, 9, 30, 0, 0, time.UTC)
	period, err := Resolve(PeriodQuery{Mode: "quarterly"}, created)
	assert.NoError(t, err)
	assert.Equal(t, Default(created), period)

	// Explicit dates still win over an unknown mode.
	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	period, err = Resolve(PeriodQuery{Mode: "quarterly", StartDate: &start, EndDate: &end}, created)
	assert.NoError(t, err)
	assert.Equal(t, start, period.StartDate)
	assert.Equal(t, end, period.EndDate)
}

func TestResolveDefault(t *testing.T) {
	created := time.Date(2022, 3, 10, 18, 45, 0, 0, time.UTC)
	period, err := Resolve(PeriodQuery{}, created)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC), period.StartDate)
}

func TestDefaultZeroCreation(t *testing.T) {
	period := Default(time.Time{})
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), period.StartDate, "Missing creation date floors to the epoch")
}

func TestFinancialYearStart(t *testing.T) {
	assert.Equal(t,
		time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		FinancialYearStart(time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)))
	// January to March belong to the fiscal year that began the previous April.
	assert.Equal(t,
		time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		FinancialYearStart(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		FinancialYearStart(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFinancialYearLabel(t *testing.T) {
	assert.Equal(t, "FY 2023-24", FinancialYearLabel(time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "FY 2022-23", FinancialYearLabel(time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "FY 2099-00", FinancialYearLabel(time.Date(2099, 5, 1, 0, 0, 0, 0, time.UTC)))
}
