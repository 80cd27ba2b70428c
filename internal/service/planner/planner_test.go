package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
	"itinerary/internal/domain/services"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type memScheduleRepo struct {
	schedules map[int64]*models.Schedule
	nextID    int64
	deleteErr error
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{schedules: map[int64]*models.Schedule{}, nextID: 1}
}

func (m *memScheduleRepo) Kind() models.ResourceKind { return models.KindSchedule }

func (m *memScheduleRepo) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	s, ok := m.schedules[id]
	if !ok {
		return nil, fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

func (m *memScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	schedule.ID = m.nextID
	m.nextID++
	stored := *schedule
	m.schedules[schedule.ID] = &stored
	return nil
}

func (m *memScheduleRepo) ListAccessible(ctx context.Context, userID string) ([]models.Schedule, error) {
	out := []models.Schedule{}
	for _, s := range m.schedules {
		if s.CreatedBy == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) Update(ctx context.Context, schedule *models.Schedule) error {
	if _, ok := m.schedules[schedule.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *schedule
	m.schedules[schedule.ID] = &stored
	return nil
}

func (m *memScheduleRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.schedules, id)
	return nil
}

type memGrantRepo struct {
	grants   map[string]models.AccessGrant
	upserted int
}

func (m *memGrantRepo) GetGrant(ctx context.Context, resourceID int64, userID string) (*models.AccessGrant, error) {
	g, ok := m.grants[fmt.Sprintf("%d/%s", resourceID, userID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &g, nil
}

func (m *memGrantRepo) Upsert(ctx context.Context, grant *models.AccessGrant) error {
	m.upserted++
	m.grants[fmt.Sprintf("%d/%s", grant.ResourceID, grant.UserID)] = *grant
	return nil
}

func (m *memGrantRepo) DeleteByResource(ctx context.Context, resourceID int64) error {
	for k, g := range m.grants {
		if g.ResourceID == resourceID {
			delete(m.grants, k)
		}
	}
	return nil
}

// fakeTxManager runs fn directly and records whether it failed, which is
// enough to check that the service routes multi-step writes through ExecTx.
type fakeTxManager struct {
	calls  int
	failed bool
}

func (f *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	f.calls++
	err := fn(ctx)
	f.failed = err != nil
	return err
}

type fixture struct {
	schedules *memScheduleRepo
	grants    *memGrantRepo
	tx        *fakeTxManager
	svc       services.ScheduleService
}

func newFixture() *fixture {
	f := &fixture{
		schedules: newMemScheduleRepo(),
		grants:    &memGrantRepo{grants: map[string]models.AccessGrant{}},
		tx:        &fakeTxManager{},
	}
	f.svc = NewScheduleService(f.schedules, f.grants, f.tx, discardLogger)
	return f
}

func datePtr(s string) *time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &d
}

func strPtr(s string) *string { return &s }

const (
	ownerID  = "6f0c7a52-2b1e-4f0e-9d8b-1a2b3c4d5e6f"
	editorID = "a3d9e4f1-7c2b-4e8a-b5d6-0f1e2d3c4b5a"
)

func TestCreateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		req     services.CreateScheduleRequest
		wantErr bool
	}{
		{name: "valid", req: services.CreateScheduleRequest{UserID: ownerID, Title: " Kyoto trip "}},
		{name: "with dates", req: services.CreateScheduleRequest{UserID: ownerID, Title: "Kyoto", StartDate: datePtr("2026-04-01"), EndDate: datePtr("2026-04-05")}},
		{name: "single day", req: services.CreateScheduleRequest{UserID: ownerID, Title: "Kyoto", StartDate: datePtr("2026-04-01"), EndDate: datePtr("2026-04-01")}},
		{name: "missing title", req: services.CreateScheduleRequest{UserID: ownerID, Title: "  "}, wantErr: true},
		{name: "missing owner", req: services.CreateScheduleRequest{Title: "Kyoto"}, wantErr: true},
		{name: "end before start", req: services.CreateScheduleRequest{UserID: ownerID, Title: "Kyoto", StartDate: datePtr("2026-04-05"), EndDate: datePtr("2026-04-01")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			got, err := f.svc.CreateSchedule(context.Background(), &tt.req)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("CreateSchedule() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateSchedule() error = %v", err)
			}
			if got.ID == 0 || got.CreatedBy != ownerID {
				t.Errorf("CreateSchedule() = %+v", got)
			}
			if got.Title != "Kyoto trip" && got.Title != "Kyoto" {
				t.Errorf("title not trimmed: %q", got.Title)
			}
		})
	}
}

func TestUpdateSchedule_Description(t *testing.T) {
	tests := []struct {
		name string
		desc services.OptionalDescription
		want *string
	}{
		{name: "absent keeps value", desc: services.OptionalDescription{}, want: strPtr("old")},
		{name: "null clears", desc: services.OptionalDescription{Present: true}, want: nil},
		{name: "value replaces", desc: services.OptionalDescription{Present: true, Value: strPtr("new")}, want: strPtr("new")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			created, err := f.svc.CreateSchedule(context.Background(), &services.CreateScheduleRequest{
				UserID: ownerID, Title: "Kyoto", Description: strPtr("old"),
			})
			if err != nil {
				t.Fatal(err)
			}

			got, err := f.svc.UpdateSchedule(context.Background(), created, &services.UpdateScheduleRequest{Description: tt.desc})
			if err != nil {
				t.Fatalf("UpdateSchedule() error = %v", err)
			}

			switch {
			case tt.want == nil && got.Description != nil:
				t.Errorf("Description = %q, want nil", *got.Description)
			case tt.want != nil && (got.Description == nil || *got.Description != *tt.want):
				t.Errorf("Description = %v, want %q", got.Description, *tt.want)
			}
			if stored := f.schedules.schedules[created.ID]; stored.Title != "Kyoto" {
				t.Errorf("title changed to %q", stored.Title)
			}
		})
	}
}

func TestUpdateSchedule_Dates(t *testing.T) {
	tests := []struct {
		name      string
		start     services.OptionalDate
		end       services.OptionalDate
		wantStart *time.Time
		wantEnd   *time.Time
	}{
		{
			name:      "absent keeps both",
			wantStart: datePtr("2026-04-01"),
			wantEnd:   datePtr("2026-04-05"),
		},
		{
			name:      "null clears end",
			end:       services.OptionalDate{Present: true},
			wantStart: datePtr("2026-04-01"),
		},
		{
			name:  "null clears both",
			start: services.OptionalDate{Present: true},
			end:   services.OptionalDate{Present: true},
		},
		{
			name:      "value moves start",
			start:     services.OptionalDate{Present: true, Value: datePtr("2026-04-02")},
			wantStart: datePtr("2026-04-02"),
			wantEnd:   datePtr("2026-04-05"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			created, err := f.svc.CreateSchedule(context.Background(), &services.CreateScheduleRequest{
				UserID: ownerID, Title: "Kyoto", StartDate: datePtr("2026-04-01"), EndDate: datePtr("2026-04-05"),
			})
			if err != nil {
				t.Fatal(err)
			}

			got, err := f.svc.UpdateSchedule(context.Background(), created, &services.UpdateScheduleRequest{
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			if err != nil {
				t.Fatalf("UpdateSchedule() error = %v", err)
			}

			if !sameDate(got.StartDate, tt.wantStart) {
				t.Errorf("StartDate = %v, want %v", got.StartDate, tt.wantStart)
			}
			if !sameDate(got.EndDate, tt.wantEnd) {
				t.Errorf("EndDate = %v, want %v", got.EndDate, tt.wantEnd)
			}
			if stored := f.schedules.schedules[created.ID]; !sameDate(stored.EndDate, tt.wantEnd) {
				t.Errorf("stored EndDate = %v, want %v", stored.EndDate, tt.wantEnd)
			}
		})
	}
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func TestUpdateSchedule_RejectsInvalidDatesWithoutWriting(t *testing.T) {
	f := newFixture()
	created, _ := f.svc.CreateSchedule(context.Background(), &services.CreateScheduleRequest{
		UserID: ownerID, Title: "Kyoto", StartDate: datePtr("2026-04-05"),
	})

	_, err := f.svc.UpdateSchedule(context.Background(), created, &services.UpdateScheduleRequest{
		EndDate: services.OptionalDate{Present: true, Value: datePtr("2026-04-01")},
	})

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("UpdateSchedule() error = %v, want ErrValidation", err)
	}
	if f.schedules.schedules[created.ID].EndDate != nil {
		t.Error("invalid update was persisted")
	}
}

func TestDeleteSchedule_RemovesGrantsInTransaction(t *testing.T) {
	f := newFixture()
	created, _ := f.svc.CreateSchedule(context.Background(), &services.CreateScheduleRequest{UserID: ownerID, Title: "Kyoto"})
	f.grants.grants[fmt.Sprintf("%d/%s", created.ID, editorID)] = models.AccessGrant{ResourceID: created.ID, UserID: editorID, Access: true}

	if err := f.svc.DeleteSchedule(context.Background(), created); err != nil {
		t.Fatalf("DeleteSchedule() error = %v", err)
	}

	if f.tx.calls != 1 {
		t.Errorf("ExecTx calls = %d, want 1", f.tx.calls)
	}
	if len(f.grants.grants) != 0 || len(f.schedules.schedules) != 0 {
		t.Errorf("left grants=%d schedules=%d", len(f.grants.grants), len(f.schedules.schedules))
	}
}

func TestDeleteSchedule_PropagatesFailure(t *testing.T) {
	f := newFixture()
	created, _ := f.svc.CreateSchedule(context.Background(), &services.CreateScheduleRequest{UserID: ownerID, Title: "Kyoto"})
	fault := errors.New("deadlock detected")
	f.schedules.deleteErr = fault

	err := f.svc.DeleteSchedule(context.Background(), created)

	if !errors.Is(err, fault) {
		t.Fatalf("DeleteSchedule() error = %v, want %v", err, fault)
	}
	if !f.tx.failed {
		t.Error("transaction function did not report the failure")
	}
}

func TestShareSchedule(t *testing.T) {
	tests := []struct {
		name     string
		caller   string
		target   string
		wantErr  error
		wantSave bool
	}{
		{name: "owner shares", caller: ownerID, target: editorID, wantSave: true},
		{name: "editor cannot reshare", caller: editorID, target: "0d4c1f7e-93a2-4b51-8e6f-2c7d9a1b3e5f", wantErr: domain.ErrForbidden},
		{name: "invalid user id", caller: ownerID, target: "bob", wantErr: domain.ErrValidation},
		{name: "owner is not an editor", caller: ownerID, target: ownerID, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			created, _ := f.svc.CreateSchedule(context.Background(), &services.CreateScheduleRequest{UserID: ownerID, Title: "Kyoto"})

			grant, err := f.svc.ShareSchedule(context.Background(), created, models.Identity{ID: tt.caller},
				&services.ShareScheduleRequest{UserID: tt.target, Access: true})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ShareSchedule() error = %v, want %v", err, tt.wantErr)
				}
				if f.grants.upserted != 0 {
					t.Error("grant written despite error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ShareSchedule() error = %v", err)
			}
			if grant.ResourceID != created.ID || grant.UserID != tt.target || !grant.Access {
				t.Errorf("ShareSchedule() = %+v", grant)
			}
		})
	}
}
