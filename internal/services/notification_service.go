package services

import (
	"context"
	"fmt"
	"time"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/response_models"
	"clinicrm/internal/repositories"
	"clinicrm/pkg/utils"
)

type NotificationServiceInterface interface {
	ScanFollowups(ctx context.Context) ([]response_models.FollowupNotification, error)
}

// NotificationService runs the stateless follow-up scan. It reads
// every plan on each poll and derives the due list against "today" in
// Europe/Istanbul; nothing is persisted and nothing is deduplicated
// across polls. Only day items are scanned; month items are excluded
// on purpose (current product behavior).
type NotificationService struct {
	planRepo repositories.IFollowupPlanRepository
	now      func() time.Time
}

func NewNotificationService(planRepo repositories.IFollowupPlanRepository) NotificationServiceInterface {
	return &NotificationService{
		planRepo: planRepo,
		now:      time.Now,
	}
}

func (n *NotificationService) ScanFollowups(ctx context.Context) ([]response_models.FollowupNotification, error) {

	plans, err := n.planRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	today := utils.TodayTurkey(n.now())
	notifications := make([]response_models.FollowupNotification, 0)

	for i := range plans {
		plan := &plans[i]
		for _, item := range plan.Followups.Data().Days {
			itemDate := utils.DateOnly(item.Date)
			if itemDate > today {
				continue
			}
			notifications = append(notifications, n.buildNotification(plan, item, itemDate, today))
		}
	}

	return notifications, nil
}

func (n *NotificationService) buildNotification(plan *db_models.FollowupPlan, item db_models.FollowupItem, itemDate string, today string) response_models.FollowupNotification {

	customerName := fmt.Sprintf("Customer #%s", plan.CustomerID)
	consultantName := "-"
	statusName := "-"
	if plan.Customer != nil {
		if plan.Customer.Name != "" {
			customerName = plan.Customer.Name
		}
		if plan.Customer.Consultant != nil {
			consultantName = plan.Customer.Consultant.Name
		}
		if plan.Customer.Status != nil {
			statusName = plan.Customer.Status.DisplayName
		}
	}

	opTypeName := fmt.Sprintf("Operation #%s", plan.OperationTypeID)
	if plan.OperationType != nil {
		opTypeName = plan.OperationType.Name
	}

	expired := itemDate < today
	message := fmt.Sprintf("%s day follow-up for %s is due today", utils.Ordinal(item.Offset), customerName)
	if expired {
		message = fmt.Sprintf("%s day follow-up for %s is overdue", utils.Ordinal(item.Offset), customerName)
	}

	return response_models.FollowupNotification{
		ID:                fmt.Sprintf("%s-%d-%s", plan.ID, item.Offset, item.Kind),
		PlanID:            plan.ID.String(),
		CustomerID:        plan.CustomerID.String(),
		CustomerName:      customerName,
		ConsultantName:    consultantName,
		StatusName:        statusName,
		OperationTypeID:   plan.OperationTypeID.String(),
		OperationTypeName: opTypeName,
		Date:              item.Date,
		Offset:            item.Offset,
		Kind:              item.Kind,
		Expired:           expired,
		Done:              item.Done,
		Note:              item.Note,
		Message:           message,
	}
}
