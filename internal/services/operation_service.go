package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
	"clinicrm/internal/models/response_models"
	"clinicrm/internal/repositories"
	"clinicrm/pkg/utils"
)

// Business defaults applied when a schedule request carries no
// explicit offsets.
var (
	DefaultDayOffsets   = []int{1, 5, 7, 10}
	DefaultMonthOffsets = []int{1, 2, 4, 6, 8, 10, 12}
)

type OperationServiceInterface interface {
	CreateOperationType(ctx context.Context, req request_models.CreateOperationTypeRequest, creatorID string) (*response_models.OperationTypeResponse, error)
	ListOperationTypes(ctx context.Context) ([]response_models.OperationTypeResponse, error)
	SchedulePlan(ctx context.Context, req request_models.SchedulePlanRequest, creatorID string) (*response_models.PlanResponse, error)
	ListPlansByCustomer(ctx context.Context, customerID string) ([]response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, planID string) error
	UpdateFollowupItem(ctx context.Context, planID string, req request_models.UpdateFollowupItemRequest, actorID string) (*response_models.PlanResponse, error)
}

type OperationService struct {
	opTypeRepo repositories.IOperationTypeRepository
	planRepo   repositories.IFollowupPlanRepository
	// when true an update against an unknown offset fails with
	// NotFound instead of silently returning the plan unchanged
	strictOffsets bool
}

func NewOperationService(
	opTypeRepo repositories.IOperationTypeRepository,
	planRepo repositories.IFollowupPlanRepository,
	strictOffsets bool) OperationServiceInterface {
	return &OperationService{
		opTypeRepo:    opTypeRepo,
		planRepo:      planRepo,
		strictOffsets: strictOffsets,
	}
}

func (o *OperationService) CreateOperationType(ctx context.Context, req request_models.CreateOperationTypeRequest, creatorID string) (*response_models.OperationTypeResponse, error) {

	opType := &db_models.OperationType{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   parseActorID(creatorID),
		IsActive:    true,
	}

	if err := o.opTypeRepo.Insert(ctx, opType); err != nil {
		return nil, utils.TranslateDBError(err, false)
	}

	resp := toOperationTypeResponse(opType)
	return &resp, nil
}

func (o *OperationService) ListOperationTypes(ctx context.Context) ([]response_models.OperationTypeResponse, error) {

	opTypes, err := o.opTypeRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OperationTypeResponse, 0, len(opTypes))
	for _, opType := range opTypes {
		responses = append(responses, toOperationTypeResponse(&opType))
	}
	return responses, nil
}

func (o *OperationService) SchedulePlan(ctx context.Context, req request_models.SchedulePlanRequest, creatorID string) (*response_models.PlanResponse, error) {

	opType, err := o.opTypeRepo.GetByID(ctx, req.OperationTypeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if opType == nil {
		return nil, utils.ErrOperationTypeNotFound
	}

	base, err := utils.ParseScheduleDate(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	dayOffsets := DefaultDayOffsets
	monthOffsets := DefaultMonthOffsets
	if req.Followups != nil {
		if req.Followups.Days != nil {
			dayOffsets = collectOffsets(req.Followups.Days)
		}
		if req.Followups.Months != nil {
			monthOffsets = collectOffsets(req.Followups.Months)
		}
	}

	set := BuildFollowupSet(base, dayOffsets, monthOffsets)

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan := &db_models.FollowupPlan{
		CustomerID:      customerID,
		OperationTypeID: opType.ID,
		ScheduledAt:     base,
		Followups:       datatypes.NewJSONType(set),
		CreatorID:       parseActorID(creatorID),
	}

	if err := o.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.TranslateDBError(err, false)
	}

	plan.OperationType = opType
	resp := toPlanResponse(plan)
	return &resp, nil
}

func (o *OperationService) ListPlansByCustomer(ctx context.Context, customerID string) ([]response_models.PlanResponse, error) {

	plans, err := o.planRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, toPlanResponse(&plans[i]))
	}
	return responses, nil
}

func (o *OperationService) DeletePlan(ctx context.Context, planID string) error {

	affected, err := o.planRepo.Delete(ctx, planID)
	if err != nil {
		return utils.TranslateDBError(err, true)
	}
	if affected == 0 {
		return utils.ErrPlanNotFound
	}
	return nil
}

// UpdateFollowupItem applies a partial done/note update to one item of
// the plan's embedded list, rewrites the blob and fans out the audit
// side effects. The two side-effect branches are mutually exclusive:
// a completion transition needs done to flip, a note-only change needs
// done to be omitted.
func (o *OperationService) UpdateFollowupItem(ctx context.Context, planID string, req request_models.UpdateFollowupItemRequest, actorID string) (*response_models.PlanResponse, error) {

	if req.Kind != db_models.FollowupKindDay && req.Kind != db_models.FollowupKindMonth {
		return nil, utils.ErrInvalidFollowKind
	}

	plan, err := o.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	set := plan.Followups.Data()
	items := set.Days
	if req.Kind == db_models.FollowupKindMonth {
		items = set.Months
	}

	idx := -1
	for i := range items {
		if items[i].Offset == req.Offset {
			idx = i
			break
		}
	}
	if idx == -1 {
		if o.strictOffsets {
			return nil, utils.ErrFollowupItemNotFound
		}
		// known soft-failure mode: unknown offset is a no-op
		resp := toPlanResponse(plan)
		return &resp, nil
	}

	prev := items[idx]
	if req.Done != nil {
		items[idx].Done = *req.Done
	}
	if req.Note != nil {
		items[idx].Note = *req.Note
	}
	item := items[idx]

	opName := "Operation"
	if plan.OperationType != nil {
		opName = plan.OperationType.Name
	}

	var history *db_models.HistoryEntry
	var note *db_models.CustomerNote
	actor := parseActorID(actorID)

	switch {
	case req.Done != nil && !prev.Done && *req.Done:
		description := fmt.Sprintf("%s %s follow-up for %s completed",
			utils.Ordinal(item.Offset), item.Kind, opName)
		if strings.TrimSpace(item.Note) != "" {
			description += fmt.Sprintf(" (note: %s)", item.Note)
		}
		history = &db_models.HistoryEntry{
			CustomerID:  plan.CustomerID,
			PlanID:      &plan.ID,
			Action:      db_models.HistoryActionFollowupCompleted,
			Description: description,
			CreatorID:   actor,
		}
		if strings.TrimSpace(item.Note) != "" {
			note = o.buildCustomerNote(plan, item, opName, actor)
		}
	case req.Done == nil && req.Note != nil && *req.Note != prev.Note && strings.TrimSpace(*req.Note) != "":
		history = &db_models.HistoryEntry{
			CustomerID: plan.CustomerID,
			PlanID:     &plan.ID,
			Action:     db_models.HistoryActionFollowupNote,
			Description: fmt.Sprintf("Note added to %s %s follow-up for %s",
				utils.Ordinal(item.Offset), item.Kind, opName),
			CreatorID: actor,
		}
		note = o.buildCustomerNote(plan, item, opName, actor)
	}

	plan.Followups = datatypes.NewJSONType(set)

	if err := o.planRepo.SaveWithSideEffects(ctx, plan, history, note); err != nil {
		return nil, utils.TranslateDBError(err, false)
	}

	resp := toPlanResponse(plan)
	return &resp, nil
}

func (o *OperationService) buildCustomerNote(plan *db_models.FollowupPlan, item db_models.FollowupItem, opName string, actor uuid.UUID) *db_models.CustomerNote {
	return &db_models.CustomerNote{
		CustomerID: plan.CustomerID,
		Content: fmt.Sprintf("[%s, %s %s follow-up] %s",
			opName, utils.Ordinal(item.Offset), item.Kind, item.Note),
		Category:  db_models.NoteCategoryOperationFollowup,
		CreatorID: actor,
	}
}

// BuildFollowupSet materializes follow-up items from a base date.
// Every item starts done=false with an empty note.
func BuildFollowupSet(base time.Time, dayOffsets []int, monthOffsets []int) db_models.FollowupSet {

	set := db_models.FollowupSet{
		Days:   make([]db_models.FollowupItem, 0, len(dayOffsets)),
		Months: make([]db_models.FollowupItem, 0, len(monthOffsets)),
	}

	for _, offset := range dayOffsets {
		set.Days = append(set.Days, db_models.FollowupItem{
			Offset: offset,
			Date:   utils.FollowupDate(base, offset, false),
			Kind:   db_models.FollowupKindDay,
		})
	}
	for _, offset := range monthOffsets {
		set.Months = append(set.Months, db_models.FollowupItem{
			Offset: offset,
			Date:   utils.FollowupDate(base, offset, true),
			Kind:   db_models.FollowupKindMonth,
		})
	}

	return set
}

func collectOffsets(offsets []request_models.FollowupOffset) []int {
	out := make([]int, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, o.Offset)
	}
	return out
}

func parseActorID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return parsed
}

func toOperationTypeResponse(opType *db_models.OperationType) response_models.OperationTypeResponse {
	return response_models.OperationTypeResponse{
		ID:          opType.ID.String(),
		Name:        opType.Name,
		Description: opType.Description,
		IsActive:    opType.IsActive,
	}
}

func toPlanResponse(plan *db_models.FollowupPlan) response_models.PlanResponse {

	resp := response_models.PlanResponse{
		ID:              plan.ID.String(),
		CustomerID:      plan.CustomerID.String(),
		OperationTypeID: plan.OperationTypeID.String(),
		ScheduledAt:     plan.ScheduledAt.Format(time.RFC3339),
		Followups:       plan.Followups.Data(),
		Done:            plan.Done,
	}
	if plan.Customer != nil {
		resp.CustomerName = plan.Customer.Name
	}
	if plan.OperationType != nil {
		resp.OperationTypeName = plan.OperationType.Name
	}
	return resp
}
