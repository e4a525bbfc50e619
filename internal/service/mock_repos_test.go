package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
	pkgerrors "github.com/goumiwalid/berth-planning-app/pkg/errors"
)

// ── Mock TenantRepository ──

type mockTenantRepo struct {
	tenants map[string]*model.Tenant
}

func newMockTenantRepo() *mockTenantRepo {
	return &mockTenantRepo{tenants: map[string]*model.Tenant{
		"tenant-1": {TenantID: "tenant-1", Name: "测试港务集团", IsActive: true},
	}}
}

func (m *mockTenantRepo) GetByID(_ context.Context, id string) (*model.Tenant, error) {
	if t, ok := m.tenants[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, tenantID, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email != email {
			continue
		}
		if tenantID != "" && u.TenantID != tenantID {
			continue
		}
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, tenantID string, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		if u.TenantID == tenantID {
			all = append(all, *u)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock TerminalRepository ──

type mockTerminalRepo struct {
	terminals map[string]*model.Terminal
}

func newMockTerminalRepo() *mockTerminalRepo {
	return &mockTerminalRepo{terminals: make(map[string]*model.Terminal)}
}

func (m *mockTerminalRepo) GetByID(_ context.Context, id string) (*model.Terminal, error) {
	if t, ok := m.terminals[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTerminalRepo) List(_ context.Context, tenantID string) ([]model.Terminal, error) {
	var result []model.Terminal
	for _, t := range m.terminals {
		if t.TenantID == tenantID && t.IsActive {
			result = append(result, *t)
		}
	}
	return result, nil
}

// ── Mock BerthRepository ──

type mockBerthRepo struct {
	berths map[string]*model.Berth
}

func newMockBerthRepo() *mockBerthRepo {
	return &mockBerthRepo{berths: make(map[string]*model.Berth)}
}

func (m *mockBerthRepo) Create(_ context.Context, berth *model.Berth) error {
	if berth.BerthID == "" {
		berth.BerthID = "berth-" + berth.Name
	}
	m.berths[berth.BerthID] = berth
	return nil
}

func (m *mockBerthRepo) GetByID(_ context.Context, id string) (*model.Berth, error) {
	if b, ok := m.berths[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBerthRepo) List(_ context.Context, tenantID, terminalID string, includeInactive bool) ([]model.Berth, error) {
	var result []model.Berth
	for _, b := range m.berths {
		if b.Terminal == nil || b.Terminal.TenantID != tenantID {
			continue
		}
		if terminalID != "" && b.TerminalID != terminalID {
			continue
		}
		if !includeInactive && !b.IsActive {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBerthRepo) Update(_ context.Context, berth *model.Berth) error {
	m.berths[berth.BerthID] = berth
	return nil
}

func (m *mockBerthRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.berths, id)
	return nil
}

// ── Mock VesselRepository ──

type mockVesselRepo struct {
	vessels map[string]*model.Vessel // key: "tenantID:voyageNumber"
	nextID  int
}

func newMockVesselRepo() *mockVesselRepo {
	return &mockVesselRepo{vessels: make(map[string]*model.Vessel)}
}

func vesselKey(tenantID, voyageNumber string) string {
	return tenantID + ":" + voyageNumber
}

func (m *mockVesselRepo) Create(_ context.Context, vessel *model.Vessel) error {
	if vessel.VesselID == "" {
		m.nextID++
		vessel.VesselID = fmt.Sprintf("vessel-%d", m.nextID)
	}
	if vessel.CreatedAt.IsZero() {
		vessel.CreatedAt = time.Now()
	}
	vessel.UpdatedAt = time.Now()
	m.vessels[vesselKey(vessel.TenantID, vessel.VoyageNumber)] = vessel
	return nil
}

func (m *mockVesselRepo) GetByVoyageNumber(_ context.Context, tenantID, voyageNumber string) (*model.Vessel, error) {
	if v, ok := m.vessels[vesselKey(tenantID, voyageNumber)]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVesselRepo) List(_ context.Context, tenantID string, filter *repository.VesselFilter, offset, limit int) ([]model.Vessel, int64, error) {
	var all []model.Vessel
	for _, v := range m.vessels {
		if v.TenantID != tenantID {
			continue
		}
		if filter != nil {
			if filter.TerminalID != "" && v.TerminalID != filter.TerminalID {
				continue
			}
			if filter.BerthID != "" && v.BerthID != filter.BerthID {
				continue
			}
			if filter.VesselType != "" && v.VesselType != filter.VesselType {
				continue
			}
			if filter.Status != "" && v.Status != filter.Status {
				continue
			}
			if filter.From != nil && filter.To != nil {
				if !(v.ETA.Before(*filter.To) && v.ETD.After(*filter.From)) {
					continue
				}
			}
			if filter.Search != "" &&
				!strings.Contains(v.VesselName, filter.Search) &&
				!strings.Contains(v.VoyageNumber, filter.Search) {
				continue
			}
		}
		all = append(all, *v)
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockVesselRepo) ListAll(_ context.Context, tenantID string) ([]model.Vessel, error) {
	var result []model.Vessel
	for _, v := range m.vessels {
		if v.TenantID == tenantID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (m *mockVesselRepo) ListByBerth(_ context.Context, berthID string) ([]model.Vessel, error) {
	var result []model.Vessel
	for _, v := range m.vessels {
		if v.BerthID == berthID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (m *mockVesselRepo) VoyageNumberExists(_ context.Context, tenantID, voyageNumber, excludeVoyageNumber string) (bool, error) {
	if voyageNumber == excludeVoyageNumber {
		return false, nil
	}
	_, ok := m.vessels[vesselKey(tenantID, voyageNumber)]
	return ok, nil
}

func (m *mockVesselRepo) CountFutureByBerth(_ context.Context, berthID string, after time.Time) (int64, error) {
	var count int64
	for _, v := range m.vessels {
		if v.BerthID != berthID {
			continue
		}
		if v.Status == model.StatusCompleted || v.Status == model.StatusCancelled {
			continue
		}
		if v.ETD.After(after) {
			count++
		}
	}
	return count, nil
}

func (m *mockVesselRepo) Update(_ context.Context, vessel *model.Vessel) error {
	// 找到原记录（航次号可能已变更，按 VesselID 定位）
	var oldKey string
	var stored *model.Vessel
	for k, v := range m.vessels {
		if v.VesselID == vessel.VesselID {
			oldKey, stored = k, v
			break
		}
	}
	if stored == nil {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != vessel.Version {
		return pkgerrors.ErrOptimisticLock
	}
	vessel.Version++
	vessel.UpdatedAt = time.Now()
	delete(m.vessels, oldKey)
	cp := *vessel
	m.vessels[vesselKey(vessel.TenantID, vessel.VoyageNumber)] = &cp
	return nil
}

func (m *mockVesselRepo) Delete(_ context.Context, tenantID, voyageNumber string) (int64, error) {
	key := vesselKey(tenantID, voyageNumber)
	if _, ok := m.vessels[key]; !ok {
		return 0, nil
	}
	delete(m.vessels, key)
	return 1, nil
}

func (m *mockVesselRepo) Clear(_ context.Context, tenantID string) error {
	for k, v := range m.vessels {
		if v.TenantID == tenantID {
			delete(m.vessels, k)
		}
	}
	return nil
}

// ── 测试辅助 ──

func newTestRepo() (*repository.Repository, *mockBerthRepo, *mockVesselRepo) {
	berthRepo := newMockBerthRepo()
	vesselRepo := newMockVesselRepo()
	repo := &repository.Repository{
		Tenant:   newMockTenantRepo(),
		User:     newMockUserRepo(),
		Terminal: newMockTerminalRepo(),
		Berth:    berthRepo,
		Vessel:   vesselRepo,
	}
	return repo, berthRepo, vesselRepo
}

// seedTestBerth 预置码头+泊位（tenant-1）
func seedTestBerth(repo *repository.Repository, berthID string, lengthM float64, maxDraft *float64) {
	terminal := &model.Terminal{
		TerminalID: "terminal-1",
		TenantID:   "tenant-1",
		Name:       "测试码头",
		IsActive:   true,
	}
	repo.Terminal.(*mockTerminalRepo).terminals["terminal-1"] = terminal
	repo.Berth.(*mockBerthRepo).berths[berthID] = &model.Berth{
		BerthID:    berthID,
		TerminalID: "terminal-1",
		Name:       "泊位 " + berthID,
		LengthM:    lengthM,
		MaxDraft:   maxDraft,
		IsActive:   true,
		Terminal:   terminal,
	}
}

func strPtr(s string) *string     { return &s }
func f64Ptr(f float64) *float64   { return &f }
func timeStr(t time.Time) *string { s := t.UTC().Format(time.RFC3339); return &s }
