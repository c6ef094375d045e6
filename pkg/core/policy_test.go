package core

import "testing"

func TestSizePolicyTruthTable(t *testing.T) {
	cases := []struct {
		policy                     SizePolicy
		widthFixed, heightFixed    bool
		widthExpand, heightExpand  bool
		content                    bool
	}{
		{SizePolicyFixed, true, true, false, false, false},
		{SizePolicyFixedHeight, false, true, true, false, false},
		{SizePolicyFixedWidth, true, false, false, true, false},
		{SizePolicyExpanding, false, false, true, true, false},
		{SizePolicyContent, true, true, false, false, true},
	}
	for _, c := range cases {
		if got := c.policy.IsWidthFixed(); got != c.widthFixed {
			t.Errorf("%v.IsWidthFixed() = %v", c.policy, got)
		}
		if got := c.policy.IsHeightFixed(); got != c.heightFixed {
			t.Errorf("%v.IsHeightFixed() = %v", c.policy, got)
		}
		if got := c.policy.IsWidthExpanding(); got != c.widthExpand {
			t.Errorf("%v.IsWidthExpanding() = %v", c.policy, got)
		}
		if got := c.policy.IsHeightExpanding(); got != c.heightExpand {
			t.Errorf("%v.IsHeightExpanding() = %v", c.policy, got)
		}
		if got := c.policy.IsContent(); got != c.content {
			t.Errorf("%v.IsContent() = %v", c.policy, got)
		}
	}
}

func TestSizePolicyAxisPinning(t *testing.T) {
	cases := []struct {
		in, width, height SizePolicy
	}{
		{SizePolicyExpanding, SizePolicyFixedWidth, SizePolicyFixedHeight},
		{SizePolicyFixedHeight, SizePolicyFixed, SizePolicyFixedHeight},
		{SizePolicyFixedWidth, SizePolicyFixedWidth, SizePolicyFixed},
		{SizePolicyFixed, SizePolicyFixed, SizePolicyFixed},
		{SizePolicyContent, SizePolicyFixed, SizePolicyFixed},
	}
	for _, c := range cases {
		if got := c.in.withWidthFixed(); got != c.width {
			t.Errorf("%v.withWidthFixed() = %v, want %v", c.in, got, c.width)
		}
		if got := c.in.withHeightFixed(); got != c.height {
			t.Errorf("%v.withHeightFixed() = %v, want %v", c.in, got, c.height)
		}
	}
}
