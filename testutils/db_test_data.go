package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/ejfeldman7/fantasy-gbbo/containers"
	"github.com/ejfeldman7/fantasy-gbbo/db"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// FixtureTime is the instant the test clock starts at. Pick submission
// stamps in container-backed tests are asserted against it.
var FixtureTime = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

var (
	Alice = &model.Player{
		Name:  "Alice",
		Email: "alice@example.com",
	}
	Bob = &model.Player{
		Name:  "Bob",
		Email: "bob@example.com",
	}
)

// TestBakers is the fixture roster inserted into every test container.
var TestBakers = []string{"Priya", "Marcus", "Sandro", "Elspeth", "Noor"}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	c := clock.NewMock()
	c.Set(FixtureTime)

	db, err := db.New(context.Background(), container.ConnectionString(), c)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestFixtures(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     c,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestFixtures seeds the roster and the two fixture players. It
// fills in the generated IDs on Alice and Bob as a side effect.
func InsertTestFixtures(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range TestBakers {
		if _, err := db.AddBaker(ctx, name); err != nil {
			return err
		}
	}

	for _, p := range []*model.Player{Alice, Bob} {
		if err := db.AddPlayer(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
