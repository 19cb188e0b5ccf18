package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

func (c *controller) RegisterPlayer(ctx context.Context, name, email string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("a player name is required")
	}

	email = model.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("'%s' is not a valid email address", email)
	}
	if !c.season.EmailAllowed(email) {
		return nil, ErrEmailNotAllowed
	}

	p := &model.Player{Name: name, Email: email}
	if err := c.db.AddPlayer(ctx, p); err != nil {
		return nil, err
	}

	log.Printf("registered player %s (%s)", p.Name, p.Email)
	return p, nil
}

func (c *controller) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	return c.db.GetPlayerByEmail(ctx, email)
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) UpdatePlayer(ctx context.Context, id int64, name, email string) error {
	p, err := c.db.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	if name != "" {
		p.Name = name
	}
	if email != "" {
		p.Email = model.NormalizeEmail(email)
	}
	return c.db.UpdatePlayer(ctx, p)
}

func (c *controller) DeletePlayer(ctx context.Context, id int64) error {
	return c.db.DeletePlayer(ctx, id)
}

func (c *controller) AddBaker(ctx context.Context, name string) (*model.Baker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("a baker name is required")
	}
	return c.db.AddBaker(ctx, name)
}

func (c *controller) GetRoster(ctx context.Context) (*model.Roster, error) {
	return c.db.GetRoster(ctx)
}

func (c *controller) DeleteBaker(ctx context.Context, id int64) error {
	return c.db.DeleteBaker(ctx, id)
}
