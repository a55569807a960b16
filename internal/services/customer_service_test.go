package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
)

func newCustomerService() (CustomerServiceInterface, *fakeCustomerRepo, *fakeNoteRepo, *fakeHistoryRepo) {
	customerRepo := newFakeCustomerRepo()
	noteRepo := &fakeNoteRepo{}
	historyRepo := &fakeHistoryRepo{}
	return NewCustomerService(customerRepo, noteRepo, historyRepo), customerRepo, noteRepo, historyRepo
}

func TestCreateCustomer_RequiresContact(t *testing.T) {
	svc, _, _, _ := newCustomerService()

	_, err := svc.CreateCustomer(context.Background(), request_models.CreateCustomerRequest{
		Name: "No Contact",
	}, uuid.NewString())
	assert.ErrorContains(t, err, "phone or email")
}

func TestCreateCustomer_PhoneOnly(t *testing.T) {
	svc, _, _, _ := newCustomerService()

	customer, err := svc.CreateCustomer(context.Background(), request_models.CreateCustomerRequest{
		Name:  "Ali Vural",
		Phone: "+90 555 000 00 00",
	}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "Ali Vural", customer.Name)
}

func TestAddNote_UnknownCustomer(t *testing.T) {
	svc, _, _, _ := newCustomerService()

	err := svc.AddNote(context.Background(), uuid.NewString(), request_models.CreateCustomerNoteRequest{
		Content: "hello",
	}, uuid.NewString())
	assert.ErrorContains(t, err, "customer not found")
}

func TestAddNote_DefaultCategory(t *testing.T) {
	svc, customerRepo, noteRepo, _ := newCustomerService()

	customer := &db_models.Customer{Name: "Ali Vural", Phone: "x"}
	require.NoError(t, customerRepo.Insert(context.Background(), customer))

	err := svc.AddNote(context.Background(), customer.ID.String(), request_models.CreateCustomerNoteRequest{
		Content: "initial consultation done",
	}, uuid.NewString())
	require.NoError(t, err)

	require.Len(t, noteRepo.notes, 1)
	assert.Equal(t, "general", noteRepo.notes[0].Category)
}

func TestListHistory(t *testing.T) {
	svc, _, _, historyRepo := newCustomerService()

	customerID := uuid.New()
	require.NoError(t, historyRepo.Insert(context.Background(), &db_models.HistoryEntry{
		CustomerID:  customerID,
		Action:      db_models.HistoryActionFollowupCompleted,
		Description: "1st day follow-up for Hair Transplant completed",
	}))

	entries, err := svc.ListHistory(context.Background(), customerID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, db_models.HistoryActionFollowupCompleted, entries[0].Action)
}
