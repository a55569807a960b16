package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
)

func seedOperationType(t *testing.T, repo *fakeOperationTypeRepo, name string) *db_models.OperationType {
	t.Helper()
	opType := &db_models.OperationType{Name: name, IsActive: true}
	require.NoError(t, repo.Insert(context.Background(), opType))
	return opType
}

func TestSchedulePlan_DefaultOffsets(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")

	plan, err := svc.SchedulePlan(context.Background(), request_models.SchedulePlanRequest{
		CustomerID:      uuid.NewString(),
		OperationTypeID: opType.ID.String(),
		ScheduledAt:     "2025-01-01",
	}, uuid.NewString())
	require.NoError(t, err)

	require.Len(t, plan.Followups.Days, 4)
	require.Len(t, plan.Followups.Months, 7)

	dayOffsets := make([]int, 0)
	for _, item := range plan.Followups.Days {
		dayOffsets = append(dayOffsets, item.Offset)
		assert.False(t, item.Done)
		assert.Empty(t, item.Note)
		assert.Equal(t, db_models.FollowupKindDay, item.Kind)
	}
	assert.Equal(t, []int{1, 5, 7, 10}, dayOffsets)

	monthOffsets := make([]int, 0)
	for _, item := range plan.Followups.Months {
		monthOffsets = append(monthOffsets, item.Offset)
		assert.False(t, item.Done)
		assert.Empty(t, item.Note)
		assert.Equal(t, db_models.FollowupKindMonth, item.Kind)
	}
	assert.Equal(t, []int{1, 2, 4, 6, 8, 10, 12}, monthOffsets)
}

func TestSchedulePlan_DateComputation(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")

	plan, err := svc.SchedulePlan(context.Background(), request_models.SchedulePlanRequest{
		CustomerID:      uuid.NewString(),
		OperationTypeID: opType.ID.String(),
		// time-of-day must not affect the computed calendar dates
		ScheduledAt: "2025-01-01T14:45:00+03:00",
		Followups: &request_models.FollowupOffsets{
			Days:   []request_models.FollowupOffset{{Offset: 1}, {Offset: 10}},
			Months: []request_models.FollowupOffset{{Offset: 1}, {Offset: 12}},
		},
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "2025-01-02T00:00:00+03:00", plan.Followups.Days[0].Date)
	assert.Equal(t, "2025-01-11T00:00:00+03:00", plan.Followups.Days[1].Date)
	assert.Equal(t, "2025-02-01T00:00:00+03:00", plan.Followups.Months[0].Date)
	assert.Equal(t, "2026-01-01T00:00:00+03:00", plan.Followups.Months[1].Date)
}

func TestSchedulePlan_UnknownOperationType(t *testing.T) {
	svc := NewOperationService(newFakeOperationTypeRepo(), newFakePlanRepo(), false)

	_, err := svc.SchedulePlan(context.Background(), request_models.SchedulePlanRequest{
		CustomerID:      uuid.NewString(),
		OperationTypeID: uuid.NewString(),
		ScheduledAt:     "2025-01-01",
	}, uuid.NewString())
	assert.ErrorContains(t, err, "operation type not found")
}

func seedPlan(t *testing.T, planRepo *fakePlanRepo, opType *db_models.OperationType) *db_models.FollowupPlan {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := &db_models.FollowupPlan{
		CustomerID:      uuid.New(),
		OperationTypeID: opType.ID,
		OperationType:   opType,
		ScheduledAt:     base,
		Followups:       datatypes.NewJSONType(BuildFollowupSet(base, []int{1, 5}, []int{1})),
	}
	require.NoError(t, planRepo.Insert(context.Background(), plan))
	return plan
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestUpdateFollowupItem_CompletionTransition(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	resp, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
		Kind:   db_models.FollowupKindDay,
		Offset: 5,
		Done:   boolPtr(true),
		Note:   strPtr("swelling gone"),
	}, uuid.NewString())
	require.NoError(t, err)

	assert.True(t, resp.Followups.Days[1].Done)
	assert.Equal(t, "swelling gone", resp.Followups.Days[1].Note)
	// other items untouched
	assert.False(t, resp.Followups.Days[0].Done)

	require.Len(t, planRepo.savedHistory, 1)
	entry := planRepo.savedHistory[0]
	assert.Equal(t, db_models.HistoryActionFollowupCompleted, entry.Action)
	assert.Contains(t, entry.Description, "5th day follow-up")
	assert.Contains(t, entry.Description, "Hair Transplant")
	assert.Contains(t, entry.Description, "swelling gone")

	require.Len(t, planRepo.savedNotes, 1)
	note := planRepo.savedNotes[0]
	assert.Equal(t, db_models.NoteCategoryOperationFollowup, note.Category)
	assert.Contains(t, note.Content, "swelling gone")
}

func TestUpdateFollowupItem_CompletionWithoutNote(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	_, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
		Kind:   db_models.FollowupKindDay,
		Offset: 1,
		Done:   boolPtr(true),
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Len(t, planRepo.savedHistory, 1)
	assert.Empty(t, planRepo.savedNotes, "no note record without a note")
}

func TestUpdateFollowupItem_NoTransitionNoHistory(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	for i := 0; i < 2; i++ {
		_, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
			Kind:   db_models.FollowupKindDay,
			Offset: 1,
			Done:   boolPtr(true),
		}, uuid.NewString())
		require.NoError(t, err)
	}

	// second done=true call is not a transition
	assert.Len(t, planRepo.savedHistory, 1)
}

func TestUpdateFollowupItem_NoteOnlyChange(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	_, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
		Kind:   db_models.FollowupKindMonth,
		Offset: 1,
		Note:   strPtr("called, all well"),
	}, uuid.NewString())
	require.NoError(t, err)

	require.Len(t, planRepo.savedHistory, 1)
	entry := planRepo.savedHistory[0]
	assert.Equal(t, db_models.HistoryActionFollowupNote, entry.Action)
	assert.Contains(t, entry.Description, "Note added")
	assert.Contains(t, entry.Description, "1st month follow-up")

	require.Len(t, planRepo.savedNotes, 1)
	assert.Contains(t, planRepo.savedNotes[0].Content, "called, all well")
}

func TestUpdateFollowupItem_SameNoteNoHistory(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	for i := 0; i < 2; i++ {
		_, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
			Kind:   db_models.FollowupKindDay,
			Offset: 1,
			Note:   strPtr("same note"),
		}, uuid.NewString())
		require.NoError(t, err)
	}

	assert.Len(t, planRepo.savedHistory, 1, "unchanged note must not emit a second entry")
}

func TestUpdateFollowupItem_UnknownOffsetIsNoOp(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	resp, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
		Kind:   db_models.FollowupKindDay,
		Offset: 99,
		Done:   boolPtr(true),
	}, uuid.NewString())
	require.NoError(t, err)

	for _, item := range resp.Followups.Days {
		assert.False(t, item.Done)
	}
	assert.Empty(t, planRepo.savedHistory)
	assert.Nil(t, planRepo.savedPlan, "no-op must not rewrite the plan")
}

func TestUpdateFollowupItem_UnknownOffsetStrictMode(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, true)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	_, err := svc.UpdateFollowupItem(context.Background(), plan.ID.String(), request_models.UpdateFollowupItemRequest{
		Kind:   db_models.FollowupKindDay,
		Offset: 99,
		Done:   boolPtr(true),
	}, uuid.NewString())
	assert.ErrorContains(t, err, "follow-up item not found")
}

func TestUpdateFollowupItem_PlanNotFound(t *testing.T) {
	svc := NewOperationService(newFakeOperationTypeRepo(), newFakePlanRepo(), false)

	_, err := svc.UpdateFollowupItem(context.Background(), uuid.NewString(), request_models.UpdateFollowupItemRequest{
		Kind:   db_models.FollowupKindDay,
		Offset: 1,
		Done:   boolPtr(true),
	}, uuid.NewString())
	assert.ErrorContains(t, err, "plan not found")
}

func TestDeletePlan(t *testing.T) {
	opTypeRepo := newFakeOperationTypeRepo()
	planRepo := newFakePlanRepo()
	svc := NewOperationService(opTypeRepo, planRepo, false)

	opType := seedOperationType(t, opTypeRepo, "Hair Transplant")
	plan := seedPlan(t, planRepo, opType)

	require.NoError(t, svc.DeletePlan(context.Background(), plan.ID.String()))
	assert.ErrorContains(t, svc.DeletePlan(context.Background(), plan.ID.String()), "plan not found")
}
