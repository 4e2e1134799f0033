package query_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/query"
	"github.com/pawkeep/pawkeep-backend/internal/testutil"
)

func TestListPaginatesUsers(t *testing.T) {
	db := testutil.DB(t)
	for _, name := range []string{"amy", "ben", "cal", "dan", "eve", "fox", "gus"} {
		testutil.SeedUser(t, db, name)
	}

	page1, err := query.List[models.User](db, query.SpecFor(query.KindUser), nil, 1)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(page1.Items) != 5 {
		t.Fatalf("expected 5 items on page 1, got %d", len(page1.Items))
	}
	if page1.TotalCount != 7 || page1.TotalPages != 2 {
		t.Fatalf("expected total 7 across 2 pages, got %d across %d", page1.TotalCount, page1.TotalPages)
	}
	if !page1.HasNext || page1.HasPrevious {
		t.Fatalf("page 1 of 2 should have next but not previous")
	}
	if page1.Items[0].Username != "amy" {
		t.Fatalf("expected username ordering, first item was %q", page1.Items[0].Username)
	}

	page2, err := query.List[models.User](db, query.SpecFor(query.KindUser), nil, 2)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2.Items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(page2.Items))
	}
	if page2.HasNext || !page2.HasPrevious {
		t.Fatalf("page 2 of 2 should have previous but not next")
	}
	if page2.Items[0].Username != "fox" || page2.Items[1].Username != "gus" {
		t.Fatalf("unexpected page 2 contents: %q, %q", page2.Items[0].Username, page2.Items[1].Username)
	}
}

func TestListPageOutOfRange(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedUser(t, db, "amy")

	_, err := query.List[models.User](db, query.SpecFor(query.KindUser), nil, 2)
	if !apperr.IsPageOutOfRange(err) {
		t.Fatalf("expected page-out-of-range error, got %v", err)
	}

	_, err = query.List[models.User](db, query.SpecFor(query.KindUser), nil, 0)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for page 0, got %v", err)
	}
}

func TestListEmptyFirstPage(t *testing.T) {
	db := testutil.DB(t)

	page, err := query.List[models.User](db, query.SpecFor(query.KindUser), nil, 1)
	if err != nil {
		t.Fatalf("page 1 of an empty collection should succeed: %v", err)
	}
	if len(page.Items) != 0 || page.TotalCount != 0 || page.TotalPages != 1 {
		t.Fatalf("unexpected empty page: %+v", page)
	}
}

func TestListTextFilter(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedUser(t, db, "alpha")
	testutil.SeedUser(t, db, "alphabet")
	testutil.SeedUser(t, db, "beta")

	page, err := query.List[models.User](db, query.SpecFor(query.KindUser), map[string]string{"username": "ALPHA"}, 1)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("expected 2 case-insensitive matches, got %d", page.TotalCount)
	}
	if page.Items[0].Username != "alpha" || page.Items[1].Username != "alphabet" {
		t.Fatalf("unexpected matches: %q, %q", page.Items[0].Username, page.Items[1].Username)
	}
}

func TestListIgnoresUnknownAndEmptyParams(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedUser(t, db, "amy")
	testutil.SeedUser(t, db, "ben")

	params := map[string]string{"username": "", "color": "blue"}
	page, err := query.List[models.User](db, query.SpecFor(query.KindUser), params, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("unknown and empty params must not constrain the query, got %d", page.TotalCount)
	}
}

func TestListActivityOrderingAndPageSize(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "amy")
	species := testutil.SeedSpecies(t, db, "Dog")
	pet := testutil.SeedPet(t, db, "Rex", species.ID)
	status := testutil.SeedStatus(t, db, "Pending")

	early := testutil.Date(2026, time.March, 1)
	late := testutil.Date(2026, time.March, 2)
	testutil.SeedActivity(t, db, "walk", late, user.ID, pet.ID, status.ID)
	testutil.SeedActivity(t, db, "feed", early, user.ID, pet.ID, status.ID)
	testutil.SeedActivity(t, db, "groom", early, user.ID, pet.ID, status.ID)
	testutil.SeedActivity(t, db, "vet visit", late, user.ID, pet.ID, status.ID)
	testutil.SeedActivity(t, db, "bath", late, user.ID, pet.ID, status.ID)

	var titles []string
	for page := 1; page <= 3; page++ {
		p, err := query.List[models.Activity](db, query.SpecFor(query.KindActivity), nil, page)
		if err != nil {
			t.Fatalf("list page %d: %v", page, err)
		}
		if page < 3 && len(p.Items) != 2 {
			t.Fatalf("expected 2 items on page %d, got %d", page, len(p.Items))
		}
		for _, a := range p.Items {
			titles = append(titles, a.Title)
			if a.User.Username != "amy" || a.Pet.Name != "Rex" {
				t.Fatalf("expected preloaded relations on %q", a.Title)
			}
		}
	}

	want := []string{"feed", "groom", "bath", "vet visit", "walk"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(titles))
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q (order must be date then title)", i, want[i], titles[i])
		}
	}
}

func TestListRefFilter(t *testing.T) {
	db := testutil.DB(t)
	amy := testutil.SeedUser(t, db, "amy")
	ben := testutil.SeedUser(t, db, "ben")
	species := testutil.SeedSpecies(t, db, "Dog")
	pet := testutil.SeedPet(t, db, "Rex", species.ID)
	status := testutil.SeedStatus(t, db, "Pending")

	date := testutil.Date(2026, time.March, 1)
	testutil.SeedActivity(t, db, "walk", date, amy.ID, pet.ID, status.ID)
	testutil.SeedActivity(t, db, "feed", date, ben.ID, pet.ID, status.ID)

	spec := query.SpecFor(query.KindActivity)

	page, err := query.List[models.Activity](db, spec, map[string]string{"users": amy.ID.String()}, 1)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if page.TotalCount != 1 || page.Items[0].Title != "walk" {
		t.Fatalf("expected only amy's activity, got %+v", page.Items)
	}

	// A reference value that does not resolve is skipped, not rejected.
	page, err = query.List[models.Activity](db, spec, map[string]string{"users": uuid.NewString()}, 1)
	if err != nil {
		t.Fatalf("list with unresolvable ref: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("unresolvable ref must not constrain the query, got %d", page.TotalCount)
	}

	page, err = query.List[models.Activity](db, spec, map[string]string{"users": "not-a-uuid"}, 1)
	if err != nil {
		t.Fatalf("list with malformed ref: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("malformed ref must not constrain the query, got %d", page.TotalCount)
	}
}
