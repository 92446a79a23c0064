package doctor

import (
	"context"
	"testing"

	doctorRepo "clinicbook/database/repository/doctor"
	slotRepo "clinicbook/database/repository/slot"
	"clinicbook/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeDoctorRepo struct {
	docs map[string]models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{docs: make(map[string]models.Doctor)}
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doc models.Doctor) (*models.Doctor, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Status == "" {
		doc.Status = "pending"
	}
	r.docs[doc.ID] = doc
	return &doc, nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doc, ok := r.docs[doctorID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &doc, nil
}

func (r *fakeDoctorRepo) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	for _, doc := range r.docs {
		if doc.Email == email {
			return &doc, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doc *models.Doctor) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.docs[doc.ID] = *doc
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, doctorID string) error {
	delete(r.docs, doctorID)
	return nil
}

// fakeSlotStore covers only the slot operations onboarding touches. GetByID
// resolves exactly the ids CreateMany returned, mirroring the repository
// contract that returned ids are the ones stored on the documents.
type fakeSlotStore struct {
	slotRepo.SlotRepository
	created []models.Slot
}

func (f *fakeSlotStore) CountByDoctor(ctx context.Context, doctorID string) (int64, error) {
	var n int64
	for _, s := range f.created {
		if s.DoctorID == doctorID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSlotStore) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	ids := make([]string, 0, len(slots))
	for _, s := range slots {
		s.ID = uuid.New().String()
		f.created = append(f.created, s)
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func (f *fakeSlotStore) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	for _, s := range f.created {
		if s.ID == slotID {
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func newTestService() (*DefaultDoctorService, *fakeDoctorRepo, *fakeSlotStore) {
	docs := newFakeDoctorRepo()
	slots := &fakeSlotStore{}
	return &DefaultDoctorService{Repo: docs, Slots: slots}, docs, slots
}

var _ doctorRepo.DoctorRepository = (*fakeDoctorRepo)(nil)

func TestSetupDefaultSlotsGeneratesFullWeek(t *testing.T) {
	svc, docs, slots := newTestService()
	ctx := context.Background()

	doc, err := docs.Create(ctx, models.Doctor{Name: "Asha Patel", Email: "asha@clinic.test"})
	require.NoError(t, err)
	require.Equal(t, "pending", doc.Status)

	dto, err := svc.SetupDefaultSlots(ctx, doc.ID)
	require.NoError(t, err)

	// 5 working days, 46 slots each: 10 early admin-only, 16 morning, 20 afternoon.
	assert.Len(t, dto.Slots, 5*46)
	assert.Len(t, slots.created, 5*46)
	assert.Equal(t, "active", dto.Status)

	// The DTO ids must be resolvable: the front desk drives edits and
	// deletes off this response, so an id the store cannot find would make
	// every generated slot unmanageable.
	for _, s := range dto.Slots {
		assert.NotEmpty(t, s.ID)
		assert.True(t, s.IsAvailable)
		assert.Empty(t, s.Date)

		stored, err := slots.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.StartTime, stored.StartTime)
	}

	stored, err := docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", stored.Status)
}

func TestSetupDefaultSlotsRefusesRegeneration(t *testing.T) {
	svc, docs, _ := newTestService()
	ctx := context.Background()

	doc, err := docs.Create(ctx, models.Doctor{Name: "Asha Patel", Email: "asha@clinic.test"})
	require.NoError(t, err)

	_, err = svc.SetupDefaultSlots(ctx, doc.ID)
	require.NoError(t, err)

	_, err = svc.SetupDefaultSlots(ctx, doc.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has")
}

func TestSetupDefaultSlotsUnknownDoctor(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SetupDefaultSlots(context.Background(), "missing")
	require.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Doctor{Name: "Asha Patel", Email: "asha@clinic.test"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.Doctor{Name: "Other", Email: "Asha@Clinic.test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
