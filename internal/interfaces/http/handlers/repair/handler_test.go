package repair

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/application/repair/dto"
	"github.com/phonefix-inc/phonefix/internal/application/repair/usecases"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/testutil"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type mockSubmitUC struct {
	result *dto.SubmitTicketResult
	err    error
	got    *usecases.SubmitTicketCommand
}

func (m *mockSubmitUC) Execute(_ context.Context, cmd usecases.SubmitTicketCommand) (*dto.SubmitTicketResult, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockUpdateUC struct {
	result *dto.TicketDTO
	err    error
	got    *usecases.UpdateTicketCommand
}

func (m *mockUpdateUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockTrackUC struct {
	result *dto.TrackingDTO
	err    error
	got    *usecases.TrackTicketQuery
}

func (m *mockTrackUC) Execute(_ context.Context, q usecases.TrackTicketQuery) (*dto.TrackingDTO, error) {
	m.got = &q
	return m.result, m.err
}

type mockListUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type testDeps struct {
	submitUC SubmitTicketExecutor
	updateUC UpdateTicketExecutor
	getUC    GetTicketExecutor
	trackUC  TrackTicketExecutor
	listUC   ListTicketsExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(deps.submitUC, deps.updateUC, deps.getUC, deps.trackUC, deps.listUC, logger.NewNopLogger())
}

func intakeBody() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":     "Grace Hopper",
		"customer_email":    "grace@example.com",
		"device_brand":      "apple",
		"device_model":      "iPhone 13",
		"issue_description": "Cracked screen",
		"appointment_date":  "2025-03-01T15:00:00Z",
	}
}

func TestHandler_SubmitTicket_Guest(t *testing.T) {
	uc := &mockSubmitUC{result: &dto.SubmitTicketResult{TicketID: 1, TicketNumber: "TKT-1700000000000123", Status: "SUBMITTED"}}
	h := newTestHandler(testDeps{submitUC: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/repairs", intakeBody())
	h.SubmitTicket(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var data dto.SubmitTicketResult
	_, err := testutil.DecodeData(w, &data)
	require.NoError(t, err)
	assert.Equal(t, "SUBMITTED", data.Status)

	require.NotNil(t, uc.got)
	assert.False(t, uc.got.Actor.IsAuthenticated())
	require.NotNil(t, uc.got.AppointmentDate)
	assert.Equal(t, 2025, uc.got.AppointmentDate.Year())
}

func TestHandler_SubmitTicket_IgnoresClientStatus(t *testing.T) {
	uc := &mockSubmitUC{result: &dto.SubmitTicketResult{TicketID: 1, Status: "SUBMITTED"}}
	h := newTestHandler(testDeps{submitUC: uc})

	body := intakeBody()
	body["status"] = "COMPLETED"
	c, w := testutil.NewTestContext(http.MethodPost, "/api/repairs", body)
	testutil.SetActor(c, testutil.Customer("user-1"))
	h.SubmitTicket(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", uc.got.Actor.UserID)
}

func TestHandler_SubmitTicket_Validation(t *testing.T) {
	uc := &mockSubmitUC{}
	h := newTestHandler(testDeps{submitUC: uc})

	body := intakeBody()
	body["customer_email"] = "not-an-email"
	delete(body, "device_model")
	c, w := testutil.NewTestContext(http.MethodPost, "/api/repairs", body)
	h.SubmitTicket(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp, err := testutil.DecodeData(w, nil)
	require.NoError(t, err)

	fields := map[string]bool{}
	for _, f := range resp.Errors {
		fields[f.Field] = true
	}
	assert.True(t, fields["customer_email"])
	assert.True(t, fields["device_model"])
	assert.Nil(t, uc.got)
}

func TestHandler_ListTickets_GuestRejected(t *testing.T) {
	h := newTestHandler(testDeps{listUC: &mockListUC{err: errors.NewUnauthorizedError("authentication required")}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/repairs", nil)
	h.ListTickets(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ListTickets(t *testing.T) {
	h := newTestHandler(testDeps{listUC: &mockListUC{result: &usecases.ListTicketsResult{
		Tickets: []*dto.TicketDTO{{ID: 1}, {ID: 2}},
		Total:   2,
		Page:    1,
		Limit:   20,
	}}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/repairs", nil)
	testutil.SetActor(c, testutil.Customer("user-1"))
	h.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data testutil.ListData
	_, err := testutil.DecodeData(w, &data)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	assert.Equal(t, 1, data.TotalPages)
}

func TestHandler_TrackTicket(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := &mockTrackUC{result: &dto.TrackingDTO{TicketNumber: "TKT-1", Status: "IN_PROGRESS"}}
		h := newTestHandler(testDeps{trackUC: uc})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/repairs/track", nil)
		testutil.SetQueryParams(c, map[string]string{"ticket_number": "TKT-1", "email": "grace@example.com"})
		h.TrackTicket(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "grace@example.com", uc.got.Email)
	})

	t.Run("missing email", func(t *testing.T) {
		uc := &mockTrackUC{}
		h := newTestHandler(testDeps{trackUC: uc})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/repairs/track", nil)
		testutil.SetQueryParams(c, map[string]string{"ticket_number": "TKT-1"})
		h.TrackTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, uc.got)
	})
}

func TestHandler_GetTicket_OtherCustomer(t *testing.T) {
	h := newTestHandler(testDeps{getUC: &mockGetUC{err: repair.ErrTicketNotFound}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/repairs/8", nil)
	testutil.SetURLParam(c, "id", "8")
	testutil.SetActor(c, testutil.Customer("user-2"))
	h.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateTicket_PartialFields(t *testing.T) {
	uc := &mockUpdateUC{result: &dto.TicketDTO{ID: 8, Status: "IN_PROGRESS"}}
	h := newTestHandler(testDeps{updateUC: uc})

	body := map[string]interface{}{"status": "in_progress", "parts_cost": "45.50"}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/repairs/8", body)
	testutil.SetURLParam(c, "id", "8")
	testutil.SetActor(c, actor.New("tech-1", actor.RoleTechnician))
	h.UpdateTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, uint(8), uc.got.TicketID)
	require.NotNil(t, uc.got.Status)
	assert.Equal(t, "in_progress", *uc.got.Status)
	require.NotNil(t, uc.got.PartsCost)
	assert.Equal(t, "45.5", uc.got.PartsCost.String())
	assert.Nil(t, uc.got.LaborCost)
	assert.Nil(t, uc.got.Priority)
}

func TestHandler_UpdateTicket_NegativeCost(t *testing.T) {
	uc := &mockUpdateUC{err: errors.NewFieldValidationError("labor_cost", "labor_cost must not be negative")}
	h := newTestHandler(testDeps{updateUC: uc})

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/repairs/8", map[string]interface{}{"labor_cost": -1})
	testutil.SetURLParam(c, "id", "8")
	testutil.SetActor(c, testutil.Admin("boss"))
	h.UpdateTicket(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp, err := testutil.DecodeData(w, nil)
	require.NoError(t, err)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "labor_cost", resp.Errors[0].Field)
}
