package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

// In-memory fakes for the repository interfaces. They keep everything in
// maps and ignore transactions; fakeTxRunner just invokes the callback.

type fakeTxRunner struct {
	calls int
	fail  error
}

func (f *fakeTxRunner) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	if f.fail != nil {
		return f.fail
	}
	return fn(nil)
}

type fakeOrgRepo struct {
	orgs map[string]*domain.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[string]*domain.Organization)}
}

func (f *fakeOrgRepo) Create(ctx context.Context, org *domain.Organization) error {
	for _, o := range f.orgs {
		if o.Slug == org.Slug {
			return repository.ErrDuplicate
		}
	}
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	return f.orgs[id], nil
}

func (f *fakeOrgRepo) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.Slug == slug {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) List(ctx context.Context) ([]*domain.Organization, error) {
	out := make([]*domain.Organization, 0, len(f.orgs))
	for _, o := range f.orgs {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrgRepo) Update(ctx context.Context, org *domain.Organization) error {
	f.orgs[org.ID] = org
	return nil
}

type fakeUserRepo struct {
	users   map[string]*domain.User
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.users {
		if u.OrgID != nil && *u.OrgID == orgID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.updates++
	f.users[u.ID] = u
	return nil
}

type fakeVesselRepo struct {
	vessels map[string]*domain.Vessel
}

func newFakeVesselRepo() *fakeVesselRepo {
	return &fakeVesselRepo{vessels: make(map[string]*domain.Vessel)}
}

func (f *fakeVesselRepo) Create(ctx context.Context, v *domain.Vessel) error {
	for _, existing := range f.vessels {
		if existing.OrgID == v.OrgID && existing.IMO == v.IMO {
			return repository.ErrDuplicate
		}
	}
	f.vessels[v.ID] = v
	return nil
}

func (f *fakeVesselRepo) GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error) {
	v := f.vessels[id]
	if v == nil || v.OrgID != orgID {
		return nil, nil
	}
	return v, nil
}

func (f *fakeVesselRepo) GetByIMO(ctx context.Context, orgID, imo string) (*domain.Vessel, error) {
	for _, v := range f.vessels {
		if v.OrgID == orgID && v.IMO == imo {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVesselRepo) GetByMMSI(ctx context.Context, mmsi string) (*domain.Vessel, error) {
	for _, v := range f.vessels {
		if v.MMSI == mmsi {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVesselRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Vessel, error) {
	var out []*domain.Vessel
	for _, v := range f.vessels {
		if v.OrgID == orgID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVesselRepo) Update(ctx context.Context, v *domain.Vessel) error {
	f.vessels[v.ID] = v
	return nil
}

func (f *fakeVesselRepo) UpdatePosition(ctx context.Context, id string, pos *domain.Position) error {
	if v := f.vessels[id]; v != nil {
		v.LastPosition = pos
	}
	return nil
}

func (f *fakeVesselRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	v := f.vessels[id]
	if v == nil || v.OrgID != orgID {
		return false, nil
	}
	delete(f.vessels, id)
	return true, nil
}

func (f *fakeVesselRepo) CountByOrg(ctx context.Context, orgID string) (int, error) {
	n := 0
	for _, v := range f.vessels {
		if v.OrgID == orgID {
			n++
		}
	}
	return n, nil
}

type fakeInventoryRepo struct {
	items map[string]*domain.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*domain.InventoryItem)}
}

func (f *fakeInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	for _, existing := range f.items {
		if existing.OrgID == item.OrgID && existing.VesselID == item.VesselID && existing.ItemType == item.ItemType {
			return repository.ErrDuplicate
		}
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) GetByID(ctx context.Context, orgID, id string) (*domain.InventoryItem, error) {
	item := f.items[id]
	if item == nil || item.OrgID != orgID {
		return nil, nil
	}
	return item, nil
}

func (f *fakeInventoryRepo) GetByVesselAndType(ctx context.Context, orgID, vesselID, itemType string) (*domain.InventoryItem, error) {
	for _, item := range f.items {
		if item.OrgID == orgID && item.VesselID == vesselID && item.ItemType == itemType {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for _, item := range f.items {
		if item.OrgID == orgID && item.VesselID == vesselID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for _, item := range f.items {
		if item.OrgID == orgID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) SetQuantity(ctx context.Context, id string, quantity float64) error {
	if item := f.items[id]; item != nil {
		item.CurrentQuantity = quantity
		item.LastUpdated = time.Now()
	}
	return nil
}

func (f *fakeInventoryRepo) IncrementQuantity(ctx context.Context, id string, delta float64) error {
	if item := f.items[id]; item != nil {
		item.CurrentQuantity += delta
		item.LastUpdated = time.Now()
	}
	return nil
}

func (f *fakeInventoryRepo) WithTx(tx pgx.Tx) repository.InventoryRepository {
	return f
}

type fakeFuelRepo struct {
	reports map[string]*domain.FuelReport
}

func newFakeFuelRepo() *fakeFuelRepo {
	return &fakeFuelRepo{reports: make(map[string]*domain.FuelReport)}
}

func (f *fakeFuelRepo) Create(ctx context.Context, report *domain.FuelReport) error {
	for _, existing := range f.reports {
		if existing.VesselID == report.VesselID && existing.Date.Equal(report.Date) {
			return repository.ErrDuplicate
		}
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeFuelRepo) GetByVesselAndDate(ctx context.Context, orgID, vesselID string, date time.Time) (*domain.FuelReport, error) {
	for _, r := range f.reports {
		if r.OrgID == orgID && r.VesselID == vesselID && r.Date.Equal(date) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeFuelRepo) ListByVessel(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.FuelReport, error) {
	var out []*domain.FuelReport
	for _, r := range f.reports {
		if r.OrgID == orgID && r.VesselID == vesselID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFuelRepo) ListByVesselSince(ctx context.Context, orgID, vesselID string, since time.Time) ([]*domain.FuelReport, error) {
	var out []*domain.FuelReport
	for _, r := range f.reports {
		if r.OrgID == orgID && r.VesselID == vesselID && !r.Date.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFuelRepo) WithTx(tx pgx.Tx) repository.FuelReportRepository {
	return f
}

type fakeBunkerRepo struct {
	records []*domain.BunkerRecord
}

func (f *fakeBunkerRepo) Create(ctx context.Context, record *domain.BunkerRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeBunkerRepo) ListByVessel(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.BunkerRecord, error) {
	var out []*domain.BunkerRecord
	for _, r := range f.records {
		if r.OrgID == orgID && r.VesselID == vesselID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts map[string]*domain.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]*domain.Alert)}
}

func (f *fakeAlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	f.alerts[alert.ID] = alert
	return nil
}

func (f *fakeAlertRepo) GetByID(ctx context.Context, orgID, id string) (*domain.Alert, error) {
	a := f.alerts[id]
	if a == nil || a.OrgID != orgID {
		return nil, nil
	}
	return a, nil
}

func (f *fakeAlertRepo) ListByOrg(ctx context.Context, orgID, status string) ([]*domain.Alert, error) {
	var out []*domain.Alert
	for _, a := range f.alerts {
		if a.OrgID == orgID && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.Alert, error) {
	var out []*domain.Alert
	for _, a := range f.alerts {
		if a.OrgID == orgID && a.VesselID != nil && *a.VesselID == vesselID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) Update(ctx context.Context, alert *domain.Alert) error {
	f.alerts[alert.ID] = alert
	return nil
}

func (f *fakeAlertRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	a := f.alerts[id]
	if a == nil || a.OrgID != orgID {
		return false, nil
	}
	delete(f.alerts, id)
	return true, nil
}

func (f *fakeAlertRepo) CountActive(ctx context.Context, orgID string) (int, error) {
	n := 0
	for _, a := range f.alerts {
		if a.OrgID == orgID && a.Status == domain.AlertStatusActive {
			n++
		}
	}
	return n, nil
}

type fakeReportRepo struct {
	reports map[string]*domain.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*domain.Report)}
}

func (f *fakeReportRepo) Create(ctx context.Context, report *domain.Report) error {
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, orgID, id string) (*domain.Report, error) {
	r := f.reports[id]
	if r == nil || r.OrgID != orgID {
		return nil, nil
	}
	return r, nil
}

func (f *fakeReportRepo) ListByOrg(ctx context.Context, orgID string, filter repository.ReportFilter) ([]*domain.Report, error) {
	var out []*domain.Report
	for _, r := range f.reports {
		if r.OrgID != orgID {
			continue
		}
		if filter.VesselID != "" && (r.VesselID == nil || *r.VesselID != filter.VesselID) {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportRepo) Update(ctx context.Context, report *domain.Report) error {
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	r := f.reports[id]
	if r == nil || r.OrgID != orgID {
		return false, nil
	}
	delete(f.reports, id)
	return true, nil
}

// fakePositionCache records set and removed positions in memory
type fakePositionCache struct {
	positions map[string]*domain.Position
	down      bool
}

func newFakePositionCache() *fakePositionCache {
	return &fakePositionCache{positions: make(map[string]*domain.Position)}
}

func (f *fakePositionCache) Set(ctx context.Context, vesselID string, pos *domain.Position) error {
	if f.down {
		return nil
	}
	f.positions[vesselID] = pos
	return nil
}

func (f *fakePositionCache) Get(ctx context.Context, vesselID string) (*domain.Position, error) {
	if f.down {
		return nil, nil
	}
	return f.positions[vesselID], nil
}

func (f *fakePositionCache) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]string, error) {
	return nil, nil
}

func (f *fakePositionCache) Remove(ctx context.Context, vesselID string) error {
	delete(f.positions, vesselID)
	return nil
}

func (f *fakePositionCache) Available() bool {
	return !f.down
}

type fakeCrewRepo struct {
	members map[string]*domain.CrewMember
}

func newFakeCrewRepo() *fakeCrewRepo {
	return &fakeCrewRepo{members: make(map[string]*domain.CrewMember)}
}

func (f *fakeCrewRepo) Create(ctx context.Context, member *domain.CrewMember) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeCrewRepo) GetByID(ctx context.Context, orgID, id string) (*domain.CrewMember, error) {
	m := f.members[id]
	if m == nil || m.OrgID != orgID {
		return nil, nil
	}
	return m, nil
}

func (f *fakeCrewRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.CrewMember, error) {
	var out []*domain.CrewMember
	for _, m := range f.members {
		if m.OrgID == orgID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCrewRepo) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.CrewMember, error) {
	var out []*domain.CrewMember
	for _, m := range f.members {
		if m.OrgID == orgID && m.VesselID != nil && *m.VesselID == vesselID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCrewRepo) Update(ctx context.Context, member *domain.CrewMember) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeCrewRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	m := f.members[id]
	if m == nil || m.OrgID != orgID {
		return false, nil
	}
	delete(f.members, id)
	return true, nil
}

type fakeThresholdRepo struct {
	thresholds map[string]*domain.Threshold
}

func newFakeThresholdRepo() *fakeThresholdRepo {
	return &fakeThresholdRepo{thresholds: make(map[string]*domain.Threshold)}
}

func (f *fakeThresholdRepo) Create(ctx context.Context, threshold *domain.Threshold) error {
	f.thresholds[threshold.ID] = threshold
	return nil
}

func (f *fakeThresholdRepo) GetByID(ctx context.Context, orgID, id string) (*domain.Threshold, error) {
	th := f.thresholds[id]
	if th == nil || th.OrgID != orgID {
		return nil, nil
	}
	return th, nil
}

func (f *fakeThresholdRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Threshold, error) {
	var out []*domain.Threshold
	for _, th := range f.thresholds {
		if th.OrgID == orgID {
			out = append(out, th)
		}
	}
	return out, nil
}

func (f *fakeThresholdRepo) Update(ctx context.Context, threshold *domain.Threshold) error {
	f.thresholds[threshold.ID] = threshold
	return nil
}

func (f *fakeThresholdRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	th := f.thresholds[id]
	if th == nil || th.OrgID != orgID {
		return false, nil
	}
	delete(f.thresholds, id)
	return true, nil
}
