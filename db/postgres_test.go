package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/ejfeldman7/fantasy-gbbo/containers"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

var (
	// A test global db instance to use for all of the tests instead of setting up a new one each time.
	testDB DB

	// The mock clock backing testDB, so tests can control submission stamps.
	testClock *clock.Mock

	// a counter to generate unique player emails and baker names for each test.
	idCtr = int32(0)
)

var testStart = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	testClock = clock.NewMock()
	testClock.Set(testStart)

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), testClock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestPlayer_saveAndLoad(t *testing.T) {
	ctx := context.Background()
	p := &model.Player{Name: "Alice", Email: "A.l.i.c.e@Example.COM"}

	err := testDB.AddPlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)
	assertFatalf(t, p.ID != 0, "expected generated id to be set")
	assertEquals(t, "Email", "alice@example.com", p.Email)
	assertEquals(t, "Created", testClock.Now().UTC(), p.Created)

	res, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving player: %v", err)
	assertEquals(t, "ID", p.ID, res.ID)
	assertEquals(t, "Name", p.Name, res.Name)
	assertEquals(t, "Email", p.Email, res.Email)

	// Email lookup normalizes the query side too.
	res2, err := testDB.GetPlayerByEmail(ctx, "ALICE@example.com")
	assertFatalf(t, err == nil, "error retrieving player by email: %v", err)
	assertEquals(t, "ID", p.ID, res2.ID)

	// Updates persist.
	p.Name = "Alice B"
	err = testDB.UpdatePlayer(ctx, p)
	assertFatalf(t, err == nil, "error updating player: %v", err)

	res3, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error getting updated player: %v", err)
	assertEquals(t, "Name", "Alice B", res3.Name)

	// A second registration with the same email is rejected.
	dup := &model.Player{Name: "Imposter", Email: "alice@example.com"}
	err = testDB.AddPlayer(ctx, dup)
	assertEquals(t, "duplicate email error", true, errors.Is(err, ErrPlayerExists))

	// Lookup a player that doesn't exist.
	res4, err := testDB.GetPlayer(ctx, 999999)
	assertFatalf(t, err != nil, "should have had an error looking up missing player")
	assertEquals(t, "error type", true, errors.Is(err, ErrPlayerNotFound))
	if res4 != nil {
		t.Errorf("expected res4 to be nil, but was %v", res4)
	}

	err = testDB.DeletePlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error deleting player: %v", err)

	err = testDB.DeletePlayer(ctx, p.ID)
	assertEquals(t, "second delete error", true, errors.Is(err, ErrPlayerNotFound))
}

func TestBaker_rosterAndElimination(t *testing.T) {
	ctx := context.Background()

	priya := addTestBaker(t, "Priya")
	marcus := addTestBaker(t, "Marcus")

	roster, err := testDB.GetRoster(ctx)
	assertFatalf(t, err == nil, "error loading roster: %v", err)

	found := 0
	for _, b := range roster.Bakers {
		if b.ID == priya.ID || b.ID == marcus.ID {
			found++
			assertEquals(t, "Eliminated", false, b.Eliminated)
			assertEquals(t, "EliminationWeek", 0, b.EliminationWeek)
		}
	}
	assertEquals(t, "bakers found in roster", 2, found)

	// Duplicate names are rejected.
	_, err = testDB.AddBaker(ctx, priya.Name)
	assertEquals(t, "duplicate baker error", true, errors.Is(err, ErrBakerExists))

	err = testDB.EliminateBaker(ctx, marcus.Name, 3)
	assertFatalf(t, err == nil, "error eliminating baker: %v", err)

	roster, err = testDB.GetRoster(ctx)
	assertFatalf(t, err == nil, "error reloading roster: %v", err)
	for _, b := range roster.Bakers {
		if b.ID == marcus.ID {
			assertEquals(t, "Eliminated", true, b.Eliminated)
			assertEquals(t, "EliminationWeek", 3, b.EliminationWeek)
		}
	}

	err = testDB.EliminateBaker(ctx, "Nobody", 3)
	assertEquals(t, "unknown baker error", true, errors.Is(err, ErrBakerNotFound))
}

func TestPicks_upsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	p := addTestPlayer(t)

	weekly := &model.WeeklyPick{
		PlayerID:        p.ID,
		Week:            3,
		StarBaker:       "Priya",
		TechnicalWinner: "Marcus",
		EliminatedBaker: "Sandro",
		Handshake:       true,
	}
	season := &model.SeasonPick{
		PlayerID:  p.ID,
		Week:      3,
		Winner:    "Priya",
		FinalistA: "Marcus",
		FinalistB: "Elspeth",
	}

	err := testDB.SavePicks(ctx, weekly, season)
	assertFatalf(t, err == nil, "error saving picks: %v", err)

	got, err := testDB.GetWeeklyPick(ctx, p.ID, 3)
	assertFatalf(t, err == nil, "error getting weekly pick: %v", err)
	assertEquals(t, "StarBaker", "Priya", got.StarBaker)
	assertEquals(t, "Handshake", true, got.Handshake)
	if !got.Submitted.Equal(testClock.Now()) {
		t.Errorf("Submitted - expected: '%v', got: '%v'", testClock.Now(), got.Submitted)
	}

	gotSeason, err := testDB.GetSeasonPick(ctx, p.ID, 3)
	assertFatalf(t, err == nil, "error getting season pick: %v", err)
	assertEquals(t, "Winner", "Priya", gotSeason.Winner)

	// Resubmitting before the deadline replaces the previous picks.
	testClock.Add(10 * time.Minute)
	weekly.StarBaker = "Elspeth"
	weekly.Handshake = false
	err = testDB.SavePicks(ctx, weekly, nil)
	assertFatalf(t, err == nil, "error resubmitting picks: %v", err)

	got2, err := testDB.GetWeeklyPick(ctx, p.ID, 3)
	assertFatalf(t, err == nil, "error getting resubmitted pick: %v", err)
	assertEquals(t, "StarBaker", "Elspeth", got2.StarBaker)
	assertEquals(t, "Handshake", false, got2.Handshake)
	if !got2.Submitted.Equal(testClock.Now()) {
		t.Errorf("Submitted - expected: '%v', got: '%v'", testClock.Now(), got2.Submitted)
	}
	if !got2.Submitted.After(got.Submitted) {
		t.Errorf("expected resubmission stamp %v to be after %v", got2.Submitted, got.Submitted)
	}

	// The season half was untouched by the weekly-only resubmission.
	gotSeason2, err := testDB.GetSeasonPick(ctx, p.ID, 3)
	assertFatalf(t, err == nil, "error getting season pick after resubmit: %v", err)
	assertEquals(t, "Winner", "Priya", gotSeason2.Winner)
	if !gotSeason2.Submitted.Equal(gotSeason.Submitted) {
		t.Errorf("season Submitted changed: expected '%v', got '%v'", gotSeason.Submitted, gotSeason2.Submitted)
	}

	listed, err := testDB.ListWeeklyPicksForWeek(ctx, 3)
	assertFatalf(t, err == nil, "error listing weekly picks: %v", err)
	found := false
	for _, wp := range listed {
		if wp.PlayerID == p.ID {
			found = true
			assertEquals(t, "listed StarBaker", "Elspeth", wp.StarBaker)
		}
	}
	assertEquals(t, "pick in week list", true, found)

	// No pick for a week the player never touched.
	_, err = testDB.GetWeeklyPick(ctx, p.ID, 8)
	assertEquals(t, "missing pick error", true, errors.Is(err, ErrPickNotFound))
	_, err = testDB.GetSeasonPick(ctx, p.ID, 8)
	assertEquals(t, "missing season pick error", true, errors.Is(err, ErrPickNotFound))
}

func TestResults_insertOnce(t *testing.T) {
	ctx := context.Background()

	r := &model.WeeklyResult{
		Week:            7,
		StarBaker:       "Priya",
		TechnicalWinner: "Marcus",
		EliminatedBaker: "Sandro",
		Handshake:       true,
	}
	err := testDB.SaveWeeklyResult(ctx, r)
	assertFatalf(t, err == nil, "error saving weekly result: %v", err)
	assertEquals(t, "Entered", testClock.Now().UTC(), r.Entered)

	got, err := testDB.GetWeeklyResult(ctx, 7)
	assertFatalf(t, err == nil, "error getting weekly result: %v", err)
	assertEquals(t, "StarBaker", "Priya", got.StarBaker)
	assertEquals(t, "Handshake", true, got.Handshake)

	// Results are final. A second entry for the same week is rejected.
	dup := &model.WeeklyResult{Week: 7, StarBaker: "Marcus", TechnicalWinner: "Priya", EliminatedBaker: "Noor"}
	err = testDB.SaveWeeklyResult(ctx, dup)
	assertEquals(t, "duplicate result error", true, errors.Is(err, ErrResultExists))

	// The original stands.
	again, err := testDB.GetWeeklyResult(ctx, 7)
	assertFatalf(t, err == nil, "error re-getting weekly result: %v", err)
	assertEquals(t, "StarBaker after dup", "Priya", again.StarBaker)

	_, err = testDB.GetWeeklyResult(ctx, 99)
	assertEquals(t, "missing result error", true, errors.Is(err, ErrResultNotFound))

	list, err := testDB.ListWeeklyResults(ctx)
	assertFatalf(t, err == nil, "error listing weekly results: %v", err)
	found := false
	for _, lr := range list {
		if lr.Week == 7 {
			found = true
		}
	}
	assertEquals(t, "week 7 in result list", true, found)
}

func TestSeasonResult_singleRow(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.GetSeasonResult(ctx)
	assertEquals(t, "no finale yet", true, errors.Is(err, ErrResultNotFound))

	r := &model.SeasonResult{Winner: "Priya", FinalistA: "Marcus", FinalistB: "Elspeth"}
	err = testDB.SaveSeasonResult(ctx, r)
	assertFatalf(t, err == nil, "error saving season result: %v", err)

	got, err := testDB.GetSeasonResult(ctx)
	assertFatalf(t, err == nil, "error getting season result: %v", err)
	assertEquals(t, "Winner", "Priya", got.Winner)
	assertEquals(t, "FinalistA", "Marcus", got.FinalistA)
	assertEquals(t, "FinalistB", "Elspeth", got.FinalistB)

	dup := &model.SeasonResult{Winner: "Noor", FinalistA: "Priya", FinalistB: "Marcus"}
	err = testDB.SaveSeasonResult(ctx, dup)
	assertEquals(t, "second finale error", true, errors.Is(err, ErrResultExists))
}

func TestWeekOverrides(t *testing.T) {
	ctx := context.Background()

	err := testDB.SetWeekOverride(ctx, 5, true)
	assertFatalf(t, err == nil, "error setting override: %v", err)

	overrides, err := testDB.GetWeekOverrides(ctx)
	assertFatalf(t, err == nil, "error getting overrides: %v", err)
	assertEquals(t, "override for week 5", true, overrides[5])

	// Setting it again flips the existing row rather than inserting.
	err = testDB.SetWeekOverride(ctx, 5, false)
	assertFatalf(t, err == nil, "error clearing override: %v", err)

	overrides, err = testDB.GetWeekOverrides(ctx)
	assertFatalf(t, err == nil, "error re-getting overrides: %v", err)
	assertEquals(t, "cleared override for week 5", false, overrides[5])
}

func TestDeleteBaker(t *testing.T) {
	ctx := context.Background()

	// A baker nothing points at can be removed.
	free := addTestBaker(t, fmt.Sprintf("Freestanding%d", atomic.AddInt32(&idCtr, 1)))
	err := testDB.DeleteBaker(ctx, free.ID)
	assertFatalf(t, err == nil, "error deleting unreferenced baker: %v", err)

	err = testDB.DeleteBaker(ctx, free.ID)
	assertEquals(t, "second delete error", true, errors.Is(err, ErrBakerNotFound))

	// A baker named in a stored pick is protected.
	referenced := addTestBaker(t, fmt.Sprintf("Referenced%d", atomic.AddInt32(&idCtr, 1)))
	p := addTestPlayer(t)
	weekly := &model.WeeklyPick{
		PlayerID:        p.ID,
		Week:            9,
		StarBaker:       referenced.Name,
		TechnicalWinner: referenced.Name,
		EliminatedBaker: referenced.Name,
	}
	err = testDB.SavePicks(ctx, weekly, nil)
	assertFatalf(t, err == nil, "error saving pick: %v", err)

	err = testDB.DeleteBaker(ctx, referenced.ID)
	assertEquals(t, "referenced baker error", true, errors.Is(err, ErrBakerReferenced))
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	p := addTestPlayer(t)
	b := addTestBaker(t, fmt.Sprintf("Doomed%d", atomic.AddInt32(&idCtr, 1)))
	err := testDB.SavePicks(ctx, &model.WeeklyPick{
		PlayerID:        p.ID,
		Week:            10,
		StarBaker:       b.Name,
		TechnicalWinner: b.Name,
		EliminatedBaker: b.Name,
	}, nil)
	assertFatalf(t, err == nil, "error saving pick: %v", err)

	err = testDB.Reset(ctx)
	assertFatalf(t, err == nil, "error resetting: %v", err)

	players, err := testDB.ListPlayers(ctx)
	assertFatalf(t, err == nil, "error listing players: %v", err)
	assertEquals(t, "players after reset", 0, len(players))

	roster, err := testDB.GetRoster(ctx)
	assertFatalf(t, err == nil, "error loading roster: %v", err)
	assertEquals(t, "bakers after reset", 0, len(roster.Bakers))

	picks, err := testDB.ListWeeklyPicks(ctx)
	assertFatalf(t, err == nil, "error listing picks: %v", err)
	assertEquals(t, "picks after reset", 0, len(picks))
}

func addTestPlayer(t *testing.T) *model.Player {
	t.Helper()
	n := atomic.AddInt32(&idCtr, 1)
	p := &model.Player{
		Name:  fmt.Sprintf("Player %d", n),
		Email: fmt.Sprintf("player%d@example.com", n),
	}
	if err := testDB.AddPlayer(context.Background(), p); err != nil {
		t.Fatalf("error adding test player: %v", err)
	}
	return p
}

func addTestBaker(t *testing.T, name string) *model.Baker {
	t.Helper()
	b, err := testDB.AddBaker(context.Background(), name)
	if err != nil {
		t.Fatalf("error adding test baker %s: %v", name, err)
	}
	return b
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}
