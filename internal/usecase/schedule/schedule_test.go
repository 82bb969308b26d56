package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
)

// fakeRepo backs the schedule use cases in memory. Hours live per
// (businessID, category) like the per-category tables do, and everything is
// tenant scoped.
type fakeRepo struct {
	nextID uint

	hours      map[uint]models.WeekSchedule
	exceptions map[uint]models.ScheduleException
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:     1,
		hours:      map[uint]models.WeekSchedule{},
		exceptions: map[uint]models.ScheduleException{},
	}
}

func (f *fakeRepo) GetWeekSchedule(_ context.Context, businessID uint, category string) (models.WeekSchedule, error) {
	if !models.HasWorkingHours(category) {
		return nil, httperr.ErrBusiness("unsupported_category")
	}
	ws, ok := f.hours[businessID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ws, nil
}

func (f *fakeRepo) SaveWeekSchedule(_ context.Context, businessID uint, category string, ws models.WeekSchedule) error {
	if !models.HasWorkingHours(category) {
		return httperr.ErrBusiness("unsupported_category")
	}
	f.hours[businessID] = ws
	return nil
}

func (f *fakeRepo) ListExceptions(_ context.Context, businessID uint) ([]models.ScheduleException, error) {
	out := []models.ScheduleException{}
	for _, ex := range f.exceptions {
		if ex.BusinessInfoID == businessID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateException(_ context.Context, ex *models.ScheduleException) error {
	ex.ID = f.nextID
	f.nextID++
	f.exceptions[ex.ID] = *ex
	return nil
}

func (f *fakeRepo) DeleteException(_ context.Context, businessID, exceptionID uint) (int64, error) {
	ex, ok := f.exceptions[exceptionID]
	if !ok || ex.BusinessInfoID != businessID {
		return 0, nil
	}
	delete(f.exceptions, exceptionID)
	return 1, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

func fullWeek() models.WeekSchedule {
	ws := make(models.WeekSchedule, 0, 7)
	for d := 0; d <= 6; d++ {
		open := d >= 1 && d <= 5
		wd := models.WorkingDay{DayOfWeek: d, IsOpen: open}
		if open {
			wd.OpenTime = "09:00"
			wd.CloseTime = "17:00"
		}
		ws = append(ws, wd)
	}
	return ws
}

func sp(s string) *string { return &s }
func bp(b bool) *bool     { return &b }
func ip(i int) *int       { return &i }

// ===============================
// Get
// ===============================

func TestGetScheduleWithoutSavedHours(t *testing.T) {
	uc := NewGetSchedule(newFakeRepo())

	sched, err := uc.Execute(context.Background(), 1, models.CategorySalonOwner)
	require.NoError(t, err)
	assert.Nil(t, sched.BusinessHours)
	assert.Empty(t, sched.Exceptions)
	assert.Equal(t, models.CategorySalonOwner, sched.Category)
}

func TestGetScheduleJobSeekerHasNoHours(t *testing.T) {
	uc := NewGetSchedule(newFakeRepo())

	sched, err := uc.Execute(context.Background(), 1, models.CategoryJobSeeker)
	require.NoError(t, err)
	assert.Nil(t, sched.BusinessHours)
}

func TestGetScheduleRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	hours := NewReplaceWorkingHours(repo, testDispatcher())
	require.NoError(t, hours.Execute(context.Background(), 1, 10, models.CategorySalonOwner, fullWeek()))

	sched, err := NewGetSchedule(repo).Execute(context.Background(), 1, models.CategorySalonOwner)
	require.NoError(t, err)
	assert.Len(t, sched.BusinessHours, 7)
}

// ===============================
// ReplaceWorkingHours
// ===============================

func TestReplaceWorkingHoursRejectsJobSeeker(t *testing.T) {
	uc := NewReplaceWorkingHours(newFakeRepo(), testDispatcher())

	err := uc.Execute(context.Background(), 1, 10, models.CategoryJobSeeker, fullWeek())
	assert.True(t, httperr.IsBusiness(err, "unsupported_category"))
}

func TestReplaceWorkingHoursValidatesWeek(t *testing.T) {
	uc := NewReplaceWorkingHours(newFakeRepo(), testDispatcher())

	err := uc.Execute(context.Background(), 1, 10, models.CategorySalonOwner, fullWeek()[:3])
	assert.True(t, httperr.IsBusiness(err, "invalid_week_length"))

	inverted := fullWeek()
	inverted[1].OpenTime = "19:00"
	err = uc.Execute(context.Background(), 1, 10, models.CategorySalonOwner, inverted)
	assert.True(t, httperr.IsBusiness(err, "open_after_close"))
}

// ===============================
// CreateException
// ===============================

func validException() CreateExceptionInput {
	return CreateExceptionInput{
		Title: "Vacation",
		Type:  domain.TypeVacation,
		Date:  "2025-06-03",
	}
}

func TestCreateExceptionDefaultsToFullDay(t *testing.T) {
	uc := NewCreateException(newFakeRepo(), testDispatcher())

	ex, err := uc.Execute(context.Background(), 1, 10, validException())
	require.NoError(t, err)
	assert.True(t, ex.IsFullDay)
	assert.Nil(t, ex.StartTime)
	assert.Nil(t, ex.EndTime)
	assert.Equal(t, uint(1), ex.BusinessInfoID)
}

func TestCreateExceptionTimed(t *testing.T) {
	uc := NewCreateException(newFakeRepo(), testDispatcher())

	in := validException()
	in.Type = domain.TypeLunchBreak
	in.StartTime = sp("12:00")
	in.EndTime = sp("13:00")
	in.EndDate = sp("2025-06-10")

	ex, err := uc.Execute(context.Background(), 1, 10, in)
	require.NoError(t, err)
	assert.False(t, ex.IsFullDay)
	require.NotNil(t, ex.StartTime)
	assert.Equal(t, "12:00", *ex.StartTime)
	// Timed rows are single-day; a date span is dropped.
	assert.Nil(t, ex.EndDate)
}

func TestCreateExceptionExplicitFullDayWinsOverTimes(t *testing.T) {
	uc := NewCreateException(newFakeRepo(), testDispatcher())

	in := validException()
	in.IsFullDay = bp(true)
	in.StartTime = sp("12:00")
	in.EndTime = sp("13:00")

	ex, err := uc.Execute(context.Background(), 1, 10, in)
	require.NoError(t, err)
	assert.True(t, ex.IsFullDay)
	assert.Nil(t, ex.StartTime)
	assert.Nil(t, ex.EndTime)
}

func TestCreateExceptionRecurringDerivesWeekday(t *testing.T) {
	uc := NewCreateException(newFakeRepo(), testDispatcher())

	in := validException()
	in.Date = "2025-06-04" // a Wednesday
	in.Recurring = true

	ex, err := uc.Execute(context.Background(), 1, 10, in)
	require.NoError(t, err)
	require.NotNil(t, ex.RecurringDay)
	assert.Equal(t, 3, *ex.RecurringDay)
}

func TestCreateExceptionRecurringExplicitDay(t *testing.T) {
	uc := NewCreateException(newFakeRepo(), testDispatcher())

	in := validException()
	in.Recurring = true
	in.RecurringDay = ip(5)
	in.EndDate = sp("2025-12-31")

	ex, err := uc.Execute(context.Background(), 1, 10, in)
	require.NoError(t, err)
	require.NotNil(t, ex.RecurringDay)
	assert.Equal(t, 5, *ex.RecurringDay)
	// Recurrence and a date span are mutually exclusive.
	assert.Nil(t, ex.EndDate)
}

func TestCreateExceptionRejections(t *testing.T) {
	uc := NewCreateException(newFakeRepo(), testDispatcher())
	ctx := context.Background()

	in := validException()
	in.Title = ""
	_, err := uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))

	in = validException()
	in.Type = "party"
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_exception_type"))

	in = validException()
	in.Date = "03/06/2025"
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validException()
	in.EndDate = sp("not-a-date")
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validException()
	in.StartTime = sp("12:00")
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "incomplete_time_range"))

	in = validException()
	in.StartTime = sp("12:00")
	in.EndTime = sp("25:00")
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_format"))

	in = validException()
	in.StartTime = sp("14:00")
	in.EndTime = sp("13:00")
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "start_after_end"))

	in = validException()
	in.Recurring = true
	in.RecurringDay = ip(7)
	_, err = uc.Execute(ctx, 1, 10, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_recurring_day"))
}

// ===============================
// DeleteException
// ===============================

func TestDeleteExceptionIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteException(repo, testDispatcher())

	ex, err := NewCreateException(repo, testDispatcher()).Execute(context.Background(), 1, 10, validException())
	require.NoError(t, err)

	require.NoError(t, uc.Execute(context.Background(), 1, 10, ex.ID))

	// Second delete of the same id still succeeds.
	require.NoError(t, uc.Execute(context.Background(), 1, 10, ex.ID))

	// An id that never existed succeeds too.
	require.NoError(t, uc.Execute(context.Background(), 1, 10, 999))
}

func TestDeleteExceptionForeignTenantIsNoOp(t *testing.T) {
	repo := newFakeRepo()

	ex, err := NewCreateException(repo, testDispatcher()).Execute(context.Background(), 1, 10, validException())
	require.NoError(t, err)

	require.NoError(t, NewDeleteException(repo, testDispatcher()).Execute(context.Background(), 2, 20, ex.ID))

	left, err := repo.ListExceptions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

// ===============================
// Blocks
// ===============================

func TestListBlocksDegradesWithoutHours(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewCreateException(repo, testDispatcher()).Execute(context.Background(), 1, 10, validException())
	require.NoError(t, err)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	blocks, err := NewListBlocks(repo).Execute(context.Background(), 1, models.CategoryJobSeeker, from, to)
	require.NoError(t, err)

	// Exception-only view, no open background.
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.TypeVacation, blocks[0].Kind)
}

func TestListBlocksCombinesHoursAndExceptions(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, NewReplaceWorkingHours(repo, testDispatcher()).
		Execute(context.Background(), 1, 10, models.CategorySalonOwner, fullWeek()))

	_, err := NewCreateException(repo, testDispatcher()).Execute(context.Background(), 1, 10, validException())
	require.NoError(t, err)

	// Mon 2025-06-02 through Sun 2025-06-08: five open weekdays plus the
	// full-day vacation on the 3rd.
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	blocks, err := NewListBlocks(repo).Execute(context.Background(), 1, models.CategorySalonOwner, from, to)
	require.NoError(t, err)

	open, other := 0, 0
	for _, b := range blocks {
		if b.Kind == domain.BlockKindOpen {
			open++
		} else {
			other++
		}
	}
	assert.Equal(t, 5, open)
	assert.Equal(t, 1, other)
}
