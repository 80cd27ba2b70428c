package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/services"
)

type memChecklistRepo struct {
	checklists map[int64]models.Checklist
	nextID     int64
}

func (m *memChecklistRepo) Kind() models.ResourceKind { return models.KindChecklist }

func (m *memChecklistRepo) GetByID(ctx context.Context, id int64) (*models.Checklist, error) {
	c, ok := m.checklists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *memChecklistRepo) Create(ctx context.Context, c *models.Checklist) error {
	m.nextID++
	c.ID = m.nextID
	m.checklists[c.ID] = *c
	return nil
}

func (m *memChecklistRepo) Update(ctx context.Context, c *models.Checklist) error {
	m.checklists[c.ID] = *c
	return nil
}

func (m *memChecklistRepo) Delete(ctx context.Context, id int64) error {
	delete(m.checklists, id)
	return nil
}

func TestChecklistService(t *testing.T) {
	repo := &memChecklistRepo{checklists: map[int64]models.Checklist{}}
	svc := NewChecklistService(repo, discardLogger)
	ctx := context.Background()

	created, err := svc.CreateChecklist(ctx, &services.CreateChecklistRequest{
		UserID: ownerID,
		Title:  "Packing",
		Items:  []models.ChecklistItem{{Text: " passport "}, {Text: "adapter", Done: true}},
	})
	if err != nil {
		t.Fatalf("CreateChecklist() error = %v", err)
	}
	if created.Items[0].Text != "passport" {
		t.Errorf("item text not trimmed: %q", created.Items[0].Text)
	}

	items := []models.ChecklistItem{{Text: "passport", Done: true}}
	updated, err := svc.UpdateChecklist(ctx, created, &services.UpdateChecklistRequest{Items: &items})
	if err != nil {
		t.Fatalf("UpdateChecklist() error = %v", err)
	}
	if updated.Title != "Packing" || len(updated.Items) != 1 || !updated.Items[0].Done {
		t.Errorf("UpdateChecklist() = %+v", updated)
	}

	if err := svc.DeleteChecklist(ctx, updated); err != nil {
		t.Fatalf("DeleteChecklist() error = %v", err)
	}
	if len(repo.checklists) != 0 {
		t.Error("checklist not deleted")
	}
}

func TestChecklistValidation(t *testing.T) {
	tooMany := make([]models.ChecklistItem, 201)
	for i := range tooMany {
		tooMany[i].Text = "x"
	}

	tests := []struct {
		name string
		req  services.CreateChecklistRequest
	}{
		{name: "blank title", req: services.CreateChecklistRequest{UserID: ownerID, Title: " "}},
		{name: "blank item", req: services.CreateChecklistRequest{UserID: ownerID, Title: "Packing", Items: []models.ChecklistItem{{Text: "  "}}}},
		{name: "long item", req: services.CreateChecklistRequest{UserID: ownerID, Title: "Packing", Items: []models.ChecklistItem{{Text: strings.Repeat("x", 501)}}}},
		{name: "too many items", req: services.CreateChecklistRequest{UserID: ownerID, Title: "Packing", Items: tooMany}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewChecklistService(&memChecklistRepo{checklists: map[int64]models.Checklist{}}, discardLogger)

			if _, err := svc.CreateChecklist(context.Background(), &tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("CreateChecklist() error = %v, want ErrValidation", err)
			}
		})
	}
}
