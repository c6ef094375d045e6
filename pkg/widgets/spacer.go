package widgets

import (
	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/rendering"
)

// Spacer is an invisible filler. It expands on both axes by default; give it
// a fixed width or height to use it as a gap. A spacer has no content, so it
// rejects the Content size policy.
type Spacer struct {
	core.WidgetBase
}

// NewSpacer returns an expanding spacer.
func NewSpacer() *Spacer {
	s := &Spacer{}
	s.InitWidget(s, nil, rendering.Size{}, core.SizePolicyExpanding)
	return s
}

// Redraw draws nothing.
func (s *Spacer) Redraw(p rendering.Painter, completely bool) {}

// SetSizePolicy replaces the size policy. Content panics with a
// *errors.ContractError: a spacer has nothing to measure.
func (s *Spacer) SetSizePolicy(p core.SizePolicy) {
	if p.IsContent() {
		panic(errors.NewContract("widgets.Spacer.SetSizePolicy",
			"spacer cannot be content-sized"))
	}
	s.WidgetBase.SetSizePolicy(p)
}
