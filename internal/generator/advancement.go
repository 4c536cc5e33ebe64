package generator

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// RegistrationOrderAdvancement promotes the first perGroup members of every
// group in the group's member order. It ignores match results entirely.
type RegistrationOrderAdvancement struct{}

var _ AdvancementStrategy = RegistrationOrderAdvancement{}

func (RegistrationOrderAdvancement) Advancing(_ context.Context, groups []padel.Group, perGroup int) ([]padel.Team, error) {
	advancing := make([]padel.Team, 0, len(groups)*perGroup)
	for _, g := range groups {
		advancing = append(advancing, g.Teams[:min(perGroup, len(g.Teams))]...)
	}
	return advancing, nil
}
