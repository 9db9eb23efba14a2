package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
)

func newTestApplication(t *testing.T, userID string) *wholesale.Application {
	t.Helper()
	app, err := wholesale.NewApplication(userID, wholesale.BusinessInfo{
		BusinessName:  "Fix It Fast LLC",
		BusinessType:  "repair_shop",
		TaxID:         "12-3456789",
		BusinessPhone: "+1 512 555 0100",
		BusinessEmail: "buyer@fixitfast.example",
	}, sharedvo.PostalAddress{
		FullName:   "Fix It Fast",
		Line1:      "500 Congress Ave",
		City:       "Austin",
		State:      "TX",
		PostalCode: "78701",
		Country:    "US",
	}, []string{"https://docs.example/license.pdf"}, vo.Tier2)
	require.NoError(t, err)
	return app
}

func TestWholesaleApplicationRepository_Lifecycle(t *testing.T) {
	repo := NewWholesaleApplicationRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	none, err := repo.GetLatestByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, none)

	app := newTestApplication(t, "user-1")
	require.NoError(t, repo.Create(ctx, app))
	require.NotZero(t, app.ID())

	active, err := repo.GetActiveByUser(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, app.ID(), active.ID())
	assert.Equal(t, []string{"https://docs.example/license.pdf"}, active.Documents())
	assert.Equal(t, "500 Congress Ave", active.BusinessAddress().Line1)

	approved, err := repo.GetApprovedByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, approved)

	tier := vo.Tier3
	require.NoError(t, active.ApplyReview(wholesale.Review{
		Decision:     vo.StatusApproved,
		ReviewerID:   "admin-1",
		ApprovedTier: &tier,
	}))
	require.NoError(t, repo.Update(ctx, active))

	approved, err = repo.GetApprovedByUser(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.Equal(t, vo.StatusApproved, approved.Status())
	require.NotNil(t, approved.EffectiveTier())
	assert.Equal(t, vo.Tier3, *approved.EffectiveTier())
	assert.Equal(t, "admin-1", *approved.ReviewedBy())
	assert.NotNil(t, approved.ReviewedAt())
}

func TestWholesaleApplicationRepository_List(t *testing.T) {
	repo := NewWholesaleApplicationRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	for _, u := range []string{"user-1", "user-2", "user-3"} {
		require.NoError(t, repo.Create(ctx, newTestApplication(t, u)))
	}

	pending := vo.StatusPending
	list, total, err := repo.List(ctx, wholesale.Filter{Status: &pending, Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	assert.Equal(t, "user-3", list[0].UserID())

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, wholesale.ErrApplicationNotFound)
}

func TestWholesaleApplicationRepository_OneActivePerUser(t *testing.T) {
	repo := NewWholesaleApplicationRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	first := newTestApplication(t, "user-1")
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, newTestApplication(t, "user-1"))
	assert.ErrorIs(t, err, wholesale.ErrActiveApplication)
	require.NoError(t, repo.Create(ctx, newTestApplication(t, "user-2")))

	reason := "tax id mismatch"
	require.NoError(t, first.ApplyReview(wholesale.Review{
		Decision:        vo.StatusRejected,
		ReviewerID:      "admin-1",
		RejectionReason: &reason,
	}))
	require.NoError(t, repo.Update(ctx, first))

	again := newTestApplication(t, "user-1")
	require.NoError(t, repo.Create(ctx, again), "a rejected application no longer blocks")
	assert.NotEqual(t, first.ID(), again.ID())
}

func TestWholesaleApplicationRepository_StaleReviewConflicts(t *testing.T) {
	repo := NewWholesaleApplicationRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	app := newTestApplication(t, "user-1")
	require.NoError(t, repo.Create(ctx, app))

	byFirstAdmin, err := repo.GetByID(ctx, app.ID())
	require.NoError(t, err)
	bySecondAdmin, err := repo.GetByID(ctx, app.ID())
	require.NoError(t, err)

	require.NoError(t, byFirstAdmin.ApplyReview(wholesale.Review{Decision: vo.StatusApproved, ReviewerID: "admin-1"}))
	require.NoError(t, repo.Update(ctx, byFirstAdmin))

	reason := "duplicate business"
	require.NoError(t, bySecondAdmin.ApplyReview(wholesale.Review{
		Decision:        vo.StatusRejected,
		ReviewerID:      "admin-2",
		RejectionReason: &reason,
	}))
	err = repo.Update(ctx, bySecondAdmin)
	assert.ErrorIs(t, err, wholesale.ErrAlreadyReviewed)

	stored, err := repo.GetByID(ctx, app.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusApproved, stored.Status())
	assert.Equal(t, "admin-1", *stored.ReviewedBy())
}
