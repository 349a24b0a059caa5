// Package profile layers issuer-specific override policies on top of the
// generic extraction strategies. Profiles are stateless, registered in a
// fixed priority order, and selected first-match; a fallback that matches
// everything and mutates nothing keeps selection total.
package profile

import (
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
)

// Profile is one issuer policy. Matches receives the Turkish-lowered full
// page text; Apply runs once, after the generic strategies, and refines or
// overrides their output.
type Profile interface {
	Name() string
	Matches(lowered string) bool
	// PriorityRegion reports the rectangle where this issuer prints the
	// payable total, when the issuer's layout is known.
	PriorityRegion() (layout.Rect, bool)
	Apply(inv *entity.Invoice, lowered string, frags []layout.Fragment)
}

// Registry holds profiles in priority order.
type Registry struct {
	profiles []Profile
}

// NewRegistry returns the default registry: known marketplace issuers first,
// the always-matching generic profile last.
func NewRegistry() *Registry {
	return &Registry{profiles: []Profile{
		trendyolProfile{},
		hepsiburadaProfile{},
		genericProfile{},
	}}
}

// Select returns the first profile whose predicate matches. The generic
// fallback always matches, so Select never returns nil.
func (r *Registry) Select(lowered string) Profile {
	for _, p := range r.profiles {
		if p.Matches(lowered) {
			return p
		}
	}
	return genericProfile{}
}

// genericProfile is the implicit fallback: matches everything, changes
// nothing.
type genericProfile struct{}

func (genericProfile) Name() string                         { return "generic" }
func (genericProfile) Matches(string) bool                  { return true }
func (genericProfile) PriorityRegion() (layout.Rect, bool)  { return layout.Rect{}, false }
func (genericProfile) Apply(*entity.Invoice, string, []layout.Fragment) {
}
