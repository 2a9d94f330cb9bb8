package app

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dwikikusuma/shoping-demo/internal/user/domain"
	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
)

// Directory keeps users keyed by email. The zero value is not usable; call
// NewDirectory. It is not safe for concurrent use.
type Directory struct {
	byEmail map[string]domain.User
	order   []string
	log     *slog.Logger
}

func NewDirectory(log *slog.Logger) *Directory {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Directory{
		byEmail: make(map[string]domain.User),
		log:     log,
	}
}

// AddUser validates u, assigns it an ID and stores a copy.
func (d *Directory) AddUser(u domain.User) (domain.User, error) {
	if err := u.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("add user: %w", err)
	}
	if _, ok := d.byEmail[u.Email]; ok {
		return domain.User{}, apperr.Conflictf("user with email %q", u.Email)
	}

	u = u.Clone()
	u.ID = uuid.NewString()
	d.byEmail[u.Email] = u
	d.order = append(d.order, u.Email)

	d.log.Debug("user added", slog.String("user_id", u.ID), slog.String("email", u.Email))
	return u.Clone(), nil
}

func (d *Directory) FindUserByEmail(email string) (domain.User, bool) {
	u, ok := d.byEmail[email]
	if !ok {
		return domain.User{}, false
	}
	return u.Clone(), true
}

func (d *Directory) UpdateUser(email string, p domain.Patch) (domain.User, error) {
	u, ok := d.byEmail[email]
	if !ok {
		return domain.User{}, apperr.NotFoundf("user with email %q", email)
	}
	if err := p.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	u = p.Apply(u)
	d.byEmail[email] = u

	d.log.Debug("user updated", slog.String("user_id", u.ID))
	return u.Clone(), nil
}

// DeleteUser removes the user and returns the removed record.
func (d *Directory) DeleteUser(email string) (domain.User, error) {
	u, ok := d.byEmail[email]
	if !ok {
		return domain.User{}, apperr.NotFoundf("user with email %q", email)
	}

	delete(d.byEmail, email)
	if i := slices.Index(d.order, email); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}

	d.log.Debug("user deleted", slog.String("user_id", u.ID))
	return u, nil
}

// AllUsers returns copies of every user in insertion order.
func (d *Directory) AllUsers() []domain.User {
	out := make([]domain.User, 0, len(d.order))
	for _, email := range d.order {
		out = append(out, d.byEmail[email].Clone())
	}
	return out
}

func (d *Directory) ClearUsers() {
	clear(d.byEmail)
	d.order = nil
}

func (d *Directory) Len() int {
	return len(d.byEmail)
}
