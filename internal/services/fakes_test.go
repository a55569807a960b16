package services

import (
	"context"

	"github.com/google/uuid"

	"clinicrm/internal/models/db_models"
)

// Hand-rolled fakes against the repository interfaces. Only the
// methods a test exercises need real behavior; the rest return zero
// values.

type fakeOperationTypeRepo struct {
	types map[string]*db_models.OperationType
}

func newFakeOperationTypeRepo() *fakeOperationTypeRepo {
	return &fakeOperationTypeRepo{types: make(map[string]*db_models.OperationType)}
}

func (f *fakeOperationTypeRepo) Insert(_ context.Context, opType *db_models.OperationType) error {
	if opType.ID == uuid.Nil {
		opType.ID = uuid.New()
	}
	f.types[opType.ID.String()] = opType
	return nil
}

func (f *fakeOperationTypeRepo) GetByID(_ context.Context, id string) (*db_models.OperationType, error) {
	return f.types[id], nil
}

func (f *fakeOperationTypeRepo) ListAll(_ context.Context) ([]db_models.OperationType, error) {
	out := make([]db_models.OperationType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}

type fakePlanRepo struct {
	plans map[string]*db_models.FollowupPlan

	savedPlan    *db_models.FollowupPlan
	savedHistory []*db_models.HistoryEntry
	savedNotes   []*db_models.CustomerNote
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*db_models.FollowupPlan)}
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *db_models.FollowupPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID.String()] = plan
	return nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id string) (*db_models.FollowupPlan, error) {
	return f.plans[id], nil
}

func (f *fakePlanRepo) ListByCustomer(_ context.Context, customerID string) ([]db_models.FollowupPlan, error) {
	out := make([]db_models.FollowupPlan, 0)
	for _, p := range f.plans {
		if p.CustomerID.String() == customerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) ListAll(_ context.Context) ([]db_models.FollowupPlan, error) {
	out := make([]db_models.FollowupPlan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.plans[id]; !ok {
		return 0, nil
	}
	delete(f.plans, id)
	return 1, nil
}

func (f *fakePlanRepo) SaveWithSideEffects(_ context.Context, plan *db_models.FollowupPlan, history *db_models.HistoryEntry, note *db_models.CustomerNote) error {
	f.plans[plan.ID.String()] = plan
	f.savedPlan = plan
	if history != nil {
		f.savedHistory = append(f.savedHistory, history)
	}
	if note != nil {
		f.savedNotes = append(f.savedNotes, note)
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*db_models.User)}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email string, passwordHash string) error {
	if u, ok := f.users[email]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]db_models.User, error) {
	out := make([]db_models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*db_models.Customer
	statuses  []db_models.CustomerStatus
	insertErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*db_models.Customer)}
}

func (f *fakeCustomerRepo) Insert(_ context.Context, customer *db_models.Customer) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers[customer.ID.String()] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*db_models.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) ListAll(_ context.Context, _ int, _ int) ([]db_models.Customer, error) {
	out := make([]db_models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) InsertStatus(_ context.Context, status *db_models.CustomerStatus) error {
	f.statuses = append(f.statuses, *status)
	return nil
}

func (f *fakeCustomerRepo) ListStatuses(_ context.Context) ([]db_models.CustomerStatus, error) {
	return f.statuses, nil
}

type fakeNoteRepo struct {
	notes []*db_models.CustomerNote
}

func (f *fakeNoteRepo) Insert(_ context.Context, note *db_models.CustomerNote) error {
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeNoteRepo) ListByCustomer(_ context.Context, customerID string) ([]db_models.CustomerNote, error) {
	out := make([]db_models.CustomerNote, 0)
	for _, n := range f.notes {
		if n.CustomerID.String() == customerID {
			out = append(out, *n)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	entries []*db_models.HistoryEntry
}

func (f *fakeHistoryRepo) Insert(_ context.Context, entry *db_models.HistoryEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeHistoryRepo) ListByCustomer(_ context.Context, customerID string) ([]db_models.HistoryEntry, error) {
	out := make([]db_models.HistoryEntry, 0)
	for _, e := range f.entries {
		if e.CustomerID.String() == customerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeTranslationRepo struct {
	languages    map[string]*db_models.Language
	translations []db_models.Translation
	insertErr    error
}

func newFakeTranslationRepo() *fakeTranslationRepo {
	return &fakeTranslationRepo{languages: make(map[string]*db_models.Language)}
}

func (f *fakeTranslationRepo) InsertLanguage(_ context.Context, language *db_models.Language) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if language.ID == uuid.Nil {
		language.ID = uuid.New()
	}
	f.languages[language.Code] = language
	return nil
}

func (f *fakeTranslationRepo) GetLanguageByCode(_ context.Context, code string) (*db_models.Language, error) {
	return f.languages[code], nil
}

func (f *fakeTranslationRepo) ListLanguages(_ context.Context) ([]db_models.Language, error) {
	out := make([]db_models.Language, 0, len(f.languages))
	for _, l := range f.languages {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeTranslationRepo) InsertTranslation(_ context.Context, translation *db_models.Translation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.translations = append(f.translations, *translation)
	return nil
}

func (f *fakeTranslationRepo) ListByLanguage(_ context.Context, languageID string) ([]db_models.Translation, error) {
	out := make([]db_models.Translation, 0)
	for _, t := range f.translations {
		if t.LanguageID.String() == languageID {
			out = append(out, t)
		}
	}
	return out, nil
}
