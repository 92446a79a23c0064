package schedule

import (
	"context"
	"sync"

	"clinicbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// memSlotRepo is an in-memory SlotRepository. TryBook mirrors the mongo
// implementation's conditional update: no matching document means
// mongo.ErrNoDocuments, and the check-and-set happens under one lock.
type memSlotRepo struct {
	mu    sync.Mutex
	slots map[string]models.Slot
	order []string
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[string]models.Slot)}
}

func (r *memSlotRepo) add(slot models.Slot) models.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	r.slots[slot.ID] = slot
	r.order = append(r.order, slot.ID)
	return slot
}

func (r *memSlotRepo) Create(ctx context.Context, slot models.Slot) (*models.Slot, error) {
	created := r.add(slot)
	return &created, nil
}

func (r *memSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	ids := make([]string, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, r.add(s).ID)
	}
	return ids, nil
}

func (r *memSlotRepo) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &slot, nil
}

func (r *memSlotRepo) DeleteByID(ctx context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[slotID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.slots, slotID)
	return nil
}

func (r *memSlotRepo) CountByDoctor(ctx context.Context, doctorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.slots {
		if s.DoctorID == doctorID {
			n++
		}
	}
	return n, nil
}

func (r *memSlotRepo) all() []models.Slot {
	out := make([]models.Slot, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.slots[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *memSlotRepo) GetCandidatesForDate(ctx context.Context, doctorID, weekday, date string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Slot
	for _, s := range r.all() {
		if s.DoctorID != doctorID {
			continue
		}
		if (s.Date == "" && s.Day == weekday) || s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) GetAvailableByKey(ctx context.Context, doctorID string, key models.DayKey) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Slot
	for _, s := range r.all() {
		if s.DoctorID != doctorID || !s.IsAvailable {
			continue
		}
		if s.Key() == key {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for k, v := range fields {
		switch k {
		case "day":
			slot.Day = v.(string)
		case "date":
			slot.Date = v.(string)
		case "startTime":
			slot.StartTime = v.(string)
		case "endTime":
			slot.EndTime = v.(string)
		case "duration":
			slot.Duration = v.(int)
		case "isAvailable":
			slot.IsAvailable = v.(bool)
		case "isAdminOnly":
			slot.IsAdminOnly = v.(bool)
		}
	}
	r.slots[slotID] = slot
	return &slot, nil
}

func (r *memSlotRepo) TryBook(ctx context.Context, slotID, bookedBy string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok || !slot.IsAvailable || slot.BookedBy != "" {
		return nil, mongo.ErrNoDocuments
	}
	slot.BookedBy = bookedBy
	r.slots[slotID] = slot
	return &slot, nil
}

func (r *memSlotRepo) ClearBooking(ctx context.Context, slotID string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	slot.BookedBy = ""
	r.slots[slotID] = slot
	return &slot, nil
}
