package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
	"clinicrm/internal/models/response_models"
	"clinicrm/internal/repositories"
	"clinicrm/pkg/utils"
)

type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, req request_models.CreateCustomerRequest, creatorID string) (*response_models.CustomerResponse, error)
	GetCustomer(ctx context.Context, customerID string) (*response_models.CustomerResponse, error)
	ListCustomers(ctx context.Context, page int, pageSize int) ([]response_models.CustomerResponse, error)
	AddNote(ctx context.Context, customerID string, req request_models.CreateCustomerNoteRequest, creatorID string) error
	ListNotes(ctx context.Context, customerID string) ([]db_models.CustomerNote, error)
	ListHistory(ctx context.Context, customerID string) ([]db_models.HistoryEntry, error)
	CreateStatus(ctx context.Context, req request_models.CreateCustomerStatusRequest) error
	ListStatuses(ctx context.Context) ([]db_models.CustomerStatus, error)
}

type CustomerService struct {
	customerRepo repositories.ICustomerRepository
	noteRepo     repositories.ICustomerNoteRepository
	historyRepo  repositories.IHistoryRepository
}

func NewCustomerService(
	customerRepo repositories.ICustomerRepository,
	noteRepo repositories.ICustomerNoteRepository,
	historyRepo repositories.IHistoryRepository) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		noteRepo:     noteRepo,
		historyRepo:  historyRepo,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req request_models.CreateCustomerRequest, creatorID string) (*response_models.CustomerResponse, error) {

	// lead intake needs at least one way to reach the customer
	if strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "" {
		return nil, utils.ErrMissingContact
	}

	customer := &db_models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatorID: parseActorID(creatorID),
	}
	if req.ConsultantID != "" {
		if id, err := uuid.Parse(req.ConsultantID); err == nil {
			customer.ConsultantID = &id
		}
	}
	if req.StatusID != "" {
		if id, err := uuid.Parse(req.StatusID); err == nil {
			customer.StatusID = &id
		}
	}

	if err := s.customerRepo.Insert(ctx, customer); err != nil {
		return nil, utils.TranslateDBError(err, false)
	}

	resp := toCustomerResponse(customer)
	return &resp, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*response_models.CustomerResponse, error) {

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}

	resp := toCustomerResponse(customer)
	return &resp, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, page int, pageSize int) ([]response_models.CustomerResponse, error) {

	customers, err := s.customerRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toCustomerResponse(&customers[i]))
	}
	return responses, nil
}

func (s *CustomerService) AddNote(ctx context.Context, customerID string, req request_models.CreateCustomerNoteRequest, creatorID string) error {

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if customer == nil {
		return utils.ErrCustomerNotFound
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	note := &db_models.CustomerNote{
		CustomerID: customer.ID,
		Content:    req.Content,
		Category:   category,
		CreatorID:  parseActorID(creatorID),
	}
	if err := s.noteRepo.Insert(ctx, note); err != nil {
		return utils.TranslateDBError(err, false)
	}
	return nil
}

func (s *CustomerService) ListNotes(ctx context.Context, customerID string) ([]db_models.CustomerNote, error) {

	notes, err := s.noteRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notes, nil
}

func (s *CustomerService) ListHistory(ctx context.Context, customerID string) ([]db_models.HistoryEntry, error) {

	entries, err := s.historyRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *CustomerService) CreateStatus(ctx context.Context, req request_models.CreateCustomerStatusRequest) error {

	status := &db_models.CustomerStatus{
		Name:        req.Name,
		DisplayName: req.DisplayName,
	}
	if err := s.customerRepo.InsertStatus(ctx, status); err != nil {
		return utils.TranslateDBError(err, false)
	}
	return nil
}

func (s *CustomerService) ListStatuses(ctx context.Context) ([]db_models.CustomerStatus, error) {

	statuses, err := s.customerRepo.ListStatuses(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return statuses, nil
}

func toCustomerResponse(customer *db_models.Customer) response_models.CustomerResponse {

	resp := response_models.CustomerResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Phone: customer.Phone,
		Email: customer.Email,
	}
	if customer.Consultant != nil {
		resp.ConsultantName = customer.Consultant.Name
	}
	if customer.Status != nil {
		resp.StatusName = customer.Status.DisplayName
	}
	return resp
}
