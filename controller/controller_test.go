package controller

import (
	"context"
	"testing"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/ejfeldman7/fantasy-gbbo/config"
	"github.com/ejfeldman7/fantasy-gbbo/db/mockdb"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

var (
	week3Deadline = time.Date(2025, 9, 19, 7, 0, 0, 0, time.UTC)
	week4Deadline = time.Date(2025, 9, 26, 7, 0, 0, 0, time.UTC)
)

func testSeason() *config.Season {
	return &config.Season{
		Name: "Season 14",
		Weeks: []config.Week{
			{Number: 2, Deadline: time.Date(2025, 9, 12, 7, 0, 0, 0, time.UTC)},
			{Number: 3, Deadline: week3Deadline},
			{Number: 4, Deadline: week4Deadline},
		},
	}
}

func testRoster() *model.Roster {
	return &model.Roster{Bakers: []model.Baker{
		{ID: 1, Name: "Priya"},
		{ID: 2, Name: "Marcus"},
		{ID: 3, Name: "Sandro"},
		{ID: 4, Name: "Elspeth"},
	}}
}

// newTestController builds a controller around a mock db and a mock clock set
// shortly before the week 3 deadline.
func newTestController(t *testing.T, db *mockdb.DB) (C, *clock.Mock) {
	t.Helper()

	mockClock := clock.NewMock()
	mockClock.Set(week3Deadline.Add(-time.Hour))

	ctrl, err := New(mockClock, db, testSeason())
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl, mockClock
}

func TestNewRequiresSeason(t *testing.T) {
	if _, err := New(clock.NewMock(), &mockdb.DB{}, nil); err == nil {
		t.Error("expected an error when no season config is given")
	}
}

func TestRegisterPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		db := &mockdb.DB{}
		db.On("AddPlayer", ctx, &model.Player{Name: "Alice", Email: "alicebaker@gmail.com"}).Return(nil)

		ctrl, _ := newTestController(t, db)
		p, err := ctrl.RegisterPlayer(ctx, "Alice", "Alice.Baker@Gmail.com")
		if err != nil {
			t.Fatalf("error registering player: %v", err)
		}
		if p.Email != "alicebaker@gmail.com" {
			t.Errorf("email was not normalized: %s", p.Email)
		}
		db.AssertExpectations(t)
	})

	t.Run("rejects email off the allow-list", func(t *testing.T) {
		season := testSeason()
		season.AllowedEmails = []string{"invited@example.com"}

		ctrl, err := New(clock.NewMock(), &mockdb.DB{}, season)
		if err != nil {
			t.Fatalf("error constructing controller: %v", err)
		}

		_, err = ctrl.RegisterPlayer(ctx, "Mallory", "mallory@example.com")
		if err != ErrEmailNotAllowed {
			t.Errorf("expected ErrEmailNotAllowed, got %v", err)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		ctrl, _ := newTestController(t, &mockdb.DB{})

		if _, err := ctrl.RegisterPlayer(ctx, "", "a@example.com"); err == nil {
			t.Error("expected an error for a missing name")
		}
		if _, err := ctrl.RegisterPlayer(ctx, "Alice", "not-an-email"); err == nil {
			t.Error("expected an error for a bad email")
		}
	})
}
