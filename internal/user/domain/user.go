package domain

import (
	"errors"
	"maps"
	"strings"

	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
	"github.com/dwikikusuma/shoping-demo/pkg/format"
)

type User struct {
	ID         string
	Email      string
	Name       string
	Attributes map[string]any
}

func (u User) Validate() error {
	var errs []error
	switch {
	case u.Email == "":
		errs = append(errs, apperr.Field("email", "is required"))
	case !format.ValidEmail(u.Email):
		errs = append(errs, apperr.Field("email", "is not a valid address"))
	}
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, apperr.Field("name", "is required"))
	}
	return errors.Join(errs...)
}

// Clone returns a copy that shares no maps with u.
func (u User) Clone() User {
	u.Attributes = maps.Clone(u.Attributes)
	return u
}

// Patch is a partial update. Nil fields are left alone; attribute keys
// overwrite existing ones. Email is the directory key and cannot change.
type Patch struct {
	Name       *string
	Attributes map[string]any
}

func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperr.Field("name", "cannot be blank")
	}
	return nil
}

// Apply returns u with p merged in. u is not modified.
func (p Patch) Apply(u User) User {
	u = u.Clone()
	if p.Name != nil {
		u.Name = *p.Name
	}
	if len(p.Attributes) > 0 {
		if u.Attributes == nil {
			u.Attributes = make(map[string]any, len(p.Attributes))
		}
		maps.Copy(u.Attributes, p.Attributes)
	}
	return u
}
