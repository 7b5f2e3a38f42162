package kernel

import (
	"strings"

	"telecom/internal/pkg/errs"
)

// Actor identifies who asked for a mutation. It is resolved once at the inbound
// boundary; the core only reads its display name for the audit trail.
//
// The set of implementations is closed: NamedPrincipal, SystemActor and Anonymous.
type Actor interface {
	// DisplayName returns the name recorded in audit entries, or false when the
	// actor has none.
	DisplayName() (string, bool)

	isActor()
}

// NamedPrincipal is an authenticated human user. Role is carried for the
// authorization layer and is not interpreted by the core.
type NamedPrincipal struct {
	name string
	role string
}

func NewNamedPrincipal(name string, role string) (NamedPrincipal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NamedPrincipal{}, errs.NewValueIsRequiredError("principal name")
	}
	return NamedPrincipal{name: name, role: strings.TrimSpace(role)}, nil
}

func (p NamedPrincipal) DisplayName() (string, bool) { return p.name, p.name != "" }
func (p NamedPrincipal) Name() string                { return p.name }
func (p NamedPrincipal) Role() string                { return p.role }
func (NamedPrincipal) isActor()                      {}

// SystemActor is a non-human caller such as a seeding script or a scheduled job.
type SystemActor struct {
	label string
}

func NewSystemActor(label string) (SystemActor, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return SystemActor{}, errs.NewValueIsRequiredError("system actor label")
	}
	return SystemActor{label: label}, nil
}

func (s SystemActor) DisplayName() (string, bool) { return s.label, s.label != "" }
func (s SystemActor) Label() string               { return s.label }
func (SystemActor) isActor()                      {}

// Anonymous is used when the caller could not be identified.
type Anonymous struct{}

func (Anonymous) DisplayName() (string, bool) { return "", false }
func (Anonymous) isActor()                    {}

// ActorDisplayName tolerates a nil Actor, which is treated as Anonymous.
func ActorDisplayName(a Actor) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.DisplayName()
}
