package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
)

// newMockRepository aggregate of map-backed repositories with no db, so
// transactions are no-ops
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:               newMockUserRepo(),
		UserProfile:        newMockUserProfileRepo(),
		TrainingEvent:      newMockTrainingEventRepo(),
		TrainingAssignment: newMockTrainingAssignmentRepo(),
		TrainingRecord:     newMockTrainingRecordRepo(),
		Vehicle:            newMockVehicleRepo(),
		VehicleMaintenance: newMockVehicleMaintenanceRepo(),
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
	err    error // returned by every call when set
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return pkgerrors.ErrDuplicate
		}
	}
	m.nextID++
	user.UserID = m.nextID
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []model.User
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

// ── Mock UserProfileRepository ──

type mockUserProfileRepo struct {
	profiles map[int64]*model.UserProfile
	nextID   int64
}

func newMockUserProfileRepo() *mockUserProfileRepo {
	return &mockUserProfileRepo{profiles: make(map[int64]*model.UserProfile)}
}

func (m *mockUserProfileRepo) Create(_ context.Context, p *model.UserProfile) error {
	for _, existing := range m.profiles {
		if existing.UserID == p.UserID {
			return pkgerrors.ErrDuplicate
		}
	}
	m.nextID++
	p.ProfileID = m.nextID
	cp := *p
	m.profiles[p.ProfileID] = &cp
	return nil
}

func (m *mockUserProfileRepo) GetByID(_ context.Context, id int64) (*model.UserProfile, error) {
	if p, ok := m.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserProfileRepo) List(_ context.Context, f repository.UserProfileFilter) ([]model.UserProfile, error) {
	var result []model.UserProfile
	for id := int64(1); id <= m.nextID; id++ {
		p, ok := m.profiles[id]
		if !ok {
			continue
		}
		if f.UserID != nil && p.UserID != *f.UserID {
			continue
		}
		if f.BadgeNumber != "" && p.BadgeNumber != f.BadgeNumber {
			continue
		}
		if f.Name != "" && !strings.Contains(p.FirstName+" "+p.LastName+" "+p.PreferredName, f.Name) {
			continue
		}
		if f.IsActiveDuty != nil && p.IsActiveDuty != *f.IsActiveDuty {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockUserProfileRepo) ListByUserIDs(_ context.Context, userIDs []int64) ([]model.UserProfile, error) {
	want := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	result := []model.UserProfile{}
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.profiles[id]; ok && want[p.UserID] {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockUserProfileRepo) Update(_ context.Context, p *model.UserProfile) error {
	for _, existing := range m.profiles {
		if existing.UserID == p.UserID && existing.ProfileID != p.ProfileID {
			return pkgerrors.ErrDuplicate
		}
	}
	cp := *p
	m.profiles[p.ProfileID] = &cp
	return nil
}

func (m *mockUserProfileRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.profiles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.profiles, id)
	return nil
}

// ── Mock TrainingEventRepository ──

type mockTrainingEventRepo struct {
	events map[int64]*model.TrainingEvent
	nextID int64
}

func newMockTrainingEventRepo() *mockTrainingEventRepo {
	return &mockTrainingEventRepo{events: make(map[int64]*model.TrainingEvent)}
}

func (m *mockTrainingEventRepo) Create(_ context.Context, e *model.TrainingEvent) error {
	m.nextID++
	e.TrainingEventID = m.nextID
	cp := *e
	m.events[e.TrainingEventID] = &cp
	return nil
}

func (m *mockTrainingEventRepo) GetByID(_ context.Context, id int64) (*model.TrainingEvent, error) {
	if e, ok := m.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrainingEventRepo) List(_ context.Context, f repository.TrainingEventFilter) ([]model.TrainingEvent, error) {
	var result []model.TrainingEvent
	for id := int64(1); id <= m.nextID; id++ {
		e, ok := m.events[id]
		if !ok {
			continue
		}
		if f.From != nil && e.StartDate.Before(*f.From) {
			continue
		}
		if f.To != nil && e.EndDate.After(*f.To) {
			continue
		}
		if f.Title != "" && !strings.Contains(e.Title, f.Title) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockTrainingEventRepo) Update(_ context.Context, e *model.TrainingEvent) error {
	cp := *e
	m.events[e.TrainingEventID] = &cp
	return nil
}

func (m *mockTrainingEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.events, id)
	return nil
}

// ── Mock TrainingAssignmentRepository ──

type mockTrainingAssignmentRepo struct {
	assignments map[int64]*model.TrainingAssignment
	details     map[int64][]model.TrainingRecordDetail // by event id
	nextID      int64
}

func newMockTrainingAssignmentRepo() *mockTrainingAssignmentRepo {
	return &mockTrainingAssignmentRepo{
		assignments: make(map[int64]*model.TrainingAssignment),
		details:     make(map[int64][]model.TrainingRecordDetail),
	}
}

func (m *mockTrainingAssignmentRepo) Create(_ context.Context, a *model.TrainingAssignment) error {
	for _, existing := range m.assignments {
		if existing.TrainingEventID == a.TrainingEventID && existing.UserID == a.UserID {
			return pkgerrors.ErrDuplicate
		}
	}
	m.nextID++
	a.AssignmentID = m.nextID
	cp := *a
	m.assignments[a.AssignmentID] = &cp
	return nil
}

func (m *mockTrainingAssignmentRepo) GetByID(_ context.Context, id int64) (*model.TrainingAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrainingAssignmentRepo) ExistsByPair(_ context.Context, eventID, userID int64) (bool, error) {
	for _, a := range m.assignments {
		if a.TrainingEventID == eventID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTrainingAssignmentRepo) UpdateModified(_ context.Context, a *model.TrainingAssignment) error {
	existing, ok := m.assignments[a.AssignmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.ModifiedByUserID = a.ModifiedByUserID
	existing.ModifiedDate = a.ModifiedDate
	return nil
}

func (m *mockTrainingAssignmentRepo) ListUserIDsByEvent(_ context.Context, eventID int64) ([]int64, error) {
	var ids []int64
	for id := int64(1); id <= m.nextID; id++ {
		if a, ok := m.assignments[id]; ok && a.TrainingEventID == eventID {
			ids = append(ids, a.UserID)
		}
	}
	return ids, nil
}

func (m *mockTrainingAssignmentRepo) ListRecordsByEvent(_ context.Context, _ int64) ([]model.TrainingRecord, error) {
	return nil, nil
}

func (m *mockTrainingAssignmentRepo) ListRecordsByUser(_ context.Context, _ int64) ([]model.TrainingRecord, error) {
	return nil, nil
}

func (m *mockTrainingAssignmentRepo) ListRecordDetailsByEvent(_ context.Context, eventID int64) ([]model.TrainingRecordDetail, error) {
	return m.details[eventID], nil
}

func (m *mockTrainingAssignmentRepo) ListRecordDetailsByUser(_ context.Context, userID int64) ([]model.TrainingRecordDetail, error) {
	var result []model.TrainingRecordDetail
	for _, rows := range m.details {
		for _, d := range rows {
			if d.UserID == userID {
				result = append(result, d)
			}
		}
	}
	return result, nil
}

// ── Mock TrainingRecordRepository ──

type mockTrainingRecordRepo struct {
	records map[int64]*model.TrainingRecord
	nextID  int64
}

func newMockTrainingRecordRepo() *mockTrainingRecordRepo {
	return &mockTrainingRecordRepo{records: make(map[int64]*model.TrainingRecord)}
}

func (m *mockTrainingRecordRepo) Create(_ context.Context, rec *model.TrainingRecord) error {
	m.nextID++
	rec.TrainingRecordID = m.nextID
	cp := *rec
	m.records[rec.TrainingRecordID] = &cp
	return nil
}

func (m *mockTrainingRecordRepo) GetByID(_ context.Context, id int64) (*model.TrainingRecord, error) {
	if rec, ok := m.records[id]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrainingRecordRepo) List(_ context.Context, f repository.TrainingRecordFilter) ([]model.TrainingRecord, error) {
	var result []model.TrainingRecord
	for id := int64(1); id <= m.nextID; id++ {
		rec, ok := m.records[id]
		if !ok {
			continue
		}
		if f.Completed != nil && rec.Completed != *f.Completed {
			continue
		}
		if f.EvaluatorID != nil && rec.EvaluatorID != *f.EvaluatorID {
			continue
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (m *mockTrainingRecordRepo) ListCertificationExpiringBetween(_ context.Context, from, to time.Time) ([]model.TrainingRecord, error) {
	var result []model.TrainingRecord
	for id := int64(1); id <= m.nextID; id++ {
		rec, ok := m.records[id]
		if !ok || !rec.Completed {
			continue
		}
		if !rec.CertificationExpiryDate.Before(from) && rec.CertificationExpiryDate.Before(to) {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockTrainingRecordRepo) Update(_ context.Context, rec *model.TrainingRecord) error {
	cp := *rec
	m.records[rec.TrainingRecordID] = &cp
	return nil
}

func (m *mockTrainingRecordRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

// ── Mock VehicleRepository ──

type mockVehicleRepo struct {
	vehicles map[int64]*model.Vehicle
	nextID   int64
}

func newMockVehicleRepo() *mockVehicleRepo {
	return &mockVehicleRepo{vehicles: make(map[int64]*model.Vehicle)}
}

func (m *mockVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	m.nextID++
	v.VehicleID = m.nextID
	cp := *v
	m.vehicles[v.VehicleID] = &cp
	return nil
}

func (m *mockVehicleRepo) GetByID(_ context.Context, id int64) (*model.Vehicle, error) {
	if v, ok := m.vehicles[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVehicleRepo) List(_ context.Context, f repository.VehicleFilter) ([]model.Vehicle, error) {
	var result []model.Vehicle
	for id := int64(1); id <= m.nextID; id++ {
		v, ok := m.vehicles[id]
		if !ok {
			continue
		}
		if f.UnitNumber != "" && !strings.Contains(v.UnitNumber, f.UnitNumber) {
			continue
		}
		if f.IsOperational != nil && v.IsOperational != *f.IsOperational {
			continue
		}
		result = append(result, *v)
	}
	return result, nil
}

func (m *mockVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	cp := *v
	m.vehicles[v.VehicleID] = &cp
	return nil
}

func (m *mockVehicleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.vehicles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.vehicles, id)
	return nil
}

// ── Mock VehicleMaintenanceRepository ──

type mockVehicleMaintenanceRepo struct {
	entries map[int64]*model.VehicleMaintenance
	nextID  int64
}

func newMockVehicleMaintenanceRepo() *mockVehicleMaintenanceRepo {
	return &mockVehicleMaintenanceRepo{entries: make(map[int64]*model.VehicleMaintenance)}
}

func (m *mockVehicleMaintenanceRepo) Create(_ context.Context, e *model.VehicleMaintenance) error {
	m.nextID++
	e.MaintenanceID = m.nextID
	cp := *e
	m.entries[e.MaintenanceID] = &cp
	return nil
}

func (m *mockVehicleMaintenanceRepo) GetByID(_ context.Context, id int64) (*model.VehicleMaintenance, error) {
	if e, ok := m.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVehicleMaintenanceRepo) List(_ context.Context, f repository.VehicleMaintenanceFilter) ([]model.VehicleMaintenance, error) {
	var result []model.VehicleMaintenance
	for id := int64(1); id <= m.nextID; id++ {
		e, ok := m.entries[id]
		if !ok {
			continue
		}
		if f.VehicleID != nil && e.VehicleID != *f.VehicleID {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockVehicleMaintenanceRepo) Update(_ context.Context, e *model.VehicleMaintenance) error {
	cp := *e
	m.entries[e.MaintenanceID] = &cp
	return nil
}

func (m *mockVehicleMaintenanceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	return nil
}
