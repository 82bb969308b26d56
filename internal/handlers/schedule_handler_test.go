package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainSchedule "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
	"github.com/glowbook/salon-booking-api/internal/tenant"
	ucSchedule "github.com/glowbook/salon-booking-api/internal/usecase/schedule"
)

// ===============================
// Fake schedule repository
// ===============================

type fakeScheduleRepo struct {
	nextID uint

	hours      map[uint]models.WeekSchedule
	exceptions map[uint]models.ScheduleException
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		nextID:     1,
		hours:      map[uint]models.WeekSchedule{},
		exceptions: map[uint]models.ScheduleException{},
	}
}

func (f *fakeScheduleRepo) GetWeekSchedule(_ context.Context, businessID uint, category string) (models.WeekSchedule, error) {
	if !models.HasWorkingHours(category) {
		return nil, httperr.ErrBusiness("unsupported_category")
	}
	ws, ok := f.hours[businessID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ws, nil
}

func (f *fakeScheduleRepo) SaveWeekSchedule(_ context.Context, businessID uint, category string, ws models.WeekSchedule) error {
	if !models.HasWorkingHours(category) {
		return httperr.ErrBusiness("unsupported_category")
	}
	f.hours[businessID] = ws
	return nil
}

func (f *fakeScheduleRepo) ListExceptions(_ context.Context, businessID uint) ([]models.ScheduleException, error) {
	out := []models.ScheduleException{}
	for _, ex := range f.exceptions {
		if ex.BusinessInfoID == businessID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) CreateException(_ context.Context, ex *models.ScheduleException) error {
	ex.ID = f.nextID
	f.nextID++
	f.exceptions[ex.ID] = *ex
	return nil
}

func (f *fakeScheduleRepo) DeleteException(_ context.Context, businessID, id uint) (int64, error) {
	ex, ok := f.exceptions[id]
	if !ok || ex.BusinessInfoID != businessID {
		return 0, nil
	}
	delete(f.exceptions, id)
	return 1, nil
}

var _ domainSchedule.Repository = (*fakeScheduleRepo)(nil)

// ===============================
// Router
// ===============================

func newScheduleRouter(repo *fakeScheduleRepo, bc *tenant.Context) *gin.Engine {
	d := testDispatcher()
	h := NewScheduleHandler(
		ucSchedule.NewGetSchedule(repo),
		ucSchedule.NewReplaceWorkingHours(repo, d),
		ucSchedule.NewCreateException(repo, d),
		ucSchedule.NewDeleteException(repo, d),
		ucSchedule.NewListBlocks(repo),
		zerolog.Nop(),
	)

	r := gin.New()
	g := r.Group("/business", withBusiness(bc))
	g.GET("/schedule", h.Get)
	g.PUT("/schedule", h.UpdateHours)
	g.POST("/schedule", h.CreateException)
	g.DELETE("/schedule", h.DeleteException)
	g.GET("/schedule/blocks", h.Blocks)
	return r
}

func weekPayload() []gin.H {
	out := make([]gin.H, 0, 7)
	for d := 0; d <= 6; d++ {
		entry := gin.H{"dayOfWeek": d, "isOpen": d >= 1 && d <= 5}
		if d >= 1 && d <= 5 {
			entry["openTime"] = "09:00"
			entry["closeTime"] = "17:00"
		}
		out = append(out, entry)
	}
	return out
}

// ===============================
// GET /business/schedule
// ===============================

func TestGetScheduleEmpty(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodGet, "/business/schedule", nil)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "null", string(body["businessHours"]))
	assert.Equal(t, "[]", string(body["exceptions"]))
	assert.Equal(t, `"salon_owner"`, string(body["category"]))
}

func TestGetScheduleAfterSave(t *testing.T) {
	repo := newFakeScheduleRepo()
	r := newScheduleRouter(repo, testBusiness)

	w := doJSON(t, r, http.MethodPut, "/business/schedule", gin.H{"businessHours": weekPayload()})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/business/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BusinessHours models.WeekSchedule `json:"businessHours"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.BusinessHours, 7)
}

// ===============================
// PUT /business/schedule
// ===============================

func TestUpdateHoursRejectsNonArray(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPut, "/business/schedule", gin.H{
		"businessHours": gin.H{"monday": "09:00-17:00"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "businessHours must be an array", errorMessage(t, w))
}

func TestUpdateHoursRejectsShortWeek(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPut, "/business/schedule", gin.H{
		"businessHours": weekPayload()[:5],
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "businessHours must contain one entry per weekday", errorMessage(t, w))
}

func TestUpdateHoursRejectsJobSeeker(t *testing.T) {
	jobSeeker := &tenant.Context{UserID: 10, BusinessID: 1, Category: models.CategoryJobSeeker}
	r := newScheduleRouter(newFakeScheduleRepo(), jobSeeker)

	w := doJSON(t, r, http.MethodPut, "/business/schedule", gin.H{"businessHours": weekPayload()})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Working hours are not supported for this business category", errorMessage(t, w))
}

// ===============================
// POST /business/schedule
// ===============================

func TestCreateExceptionFullDay(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{
		"title": "Vacation",
		"type":  "vacation",
		"date":  "2025-06-03",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success   bool                     `json:"success"`
		Exception models.ScheduleException `json:"exception"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Exception.IsFullDay)
	assert.NotZero(t, resp.Exception.ID)
}

func TestCreateExceptionInvalidTypeCarriesHint(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{
		"title": "Party",
		"type":  "party",
		"date":  "2025-06-03",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error      string   `json:"error"`
		ValidTypes []string `json:"valid_types"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid exception type", resp.Error)
	assert.Equal(t, domainSchedule.ExceptionTypes, resp.ValidTypes)
}

func TestCreateExceptionMissingFields(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{"title": "Vacation"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title, type and date are required", errorMessage(t, w))
}

func TestCreateExceptionBadClockRejectedAtBinding(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{
		"title":     "Break",
		"type":      "break",
		"date":      "2025-06-03",
		"startTime": "9:00",
		"endTime":   "25:00",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Times must use HH:MM", errorMessage(t, w))
}

func TestCreateExceptionBadTimeRange(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{
		"title":     "Break",
		"type":      "break",
		"date":      "2025-06-03",
		"startTime": "14:00",
		"endTime":   "13:00",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "startTime must be before endTime", errorMessage(t, w))
}

// ===============================
// DELETE /business/schedule
// ===============================

func TestDeleteExceptionIdempotent(t *testing.T) {
	repo := newFakeScheduleRepo()
	r := newScheduleRouter(repo, testBusiness)

	w := doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{
		"title": "Vacation", "type": "vacation", "date": "2025-06-03",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/business/schedule?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	// Deleting again still succeeds.
	w = doJSON(t, r, http.MethodDelete, "/business/schedule?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestDeleteExceptionMissingID(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodDelete, "/business/schedule", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// ===============================
// GET /business/schedule/blocks
// ===============================

func TestBlocksRequiresRange(t *testing.T) {
	r := newScheduleRouter(newFakeScheduleRepo(), testBusiness)

	w := doJSON(t, r, http.MethodGet, "/business/schedule/blocks", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/business/schedule/blocks?start=2025-06-08&end=2025-06-02", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "end must not be before start", errorMessage(t, w))
}

func TestBlocksReturnsOpenAndExceptionBlocks(t *testing.T) {
	repo := newFakeScheduleRepo()
	r := newScheduleRouter(repo, testBusiness)

	w := doJSON(t, r, http.MethodPut, "/business/schedule", gin.H{"businessHours": weekPayload()})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/business/schedule", gin.H{
		"title": "Vacation", "type": "vacation", "date": "2025-06-03",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/business/schedule/blocks?start=2025-06-02&end=2025-06-08", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Blocks []domainSchedule.Block `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	open, other := 0, 0
	for _, b := range resp.Blocks {
		if b.Kind == domainSchedule.BlockKindOpen {
			open++
		} else {
			other++
		}
	}
	assert.Equal(t, 5, open)
	assert.Equal(t, 1, other)
}
