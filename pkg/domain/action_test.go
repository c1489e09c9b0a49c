package domain_test

import (
	"math"
	"testing"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestAction_Apply(t *testing.T) {
	s := domain.State{X: 2, Y: 3}
	cases := []struct {
		action domain.Action
		want   domain.State
	}{
		{domain.ActionFillX, domain.State{X: 3, Y: 3}},
		{domain.ActionFillY, domain.State{X: 2, Y: 5}},
		{domain.ActionEmptyX, domain.State{X: 0, Y: 3}},
		{domain.ActionEmptyY, domain.State{X: 2, Y: 0}},
		{domain.ActionPourXToY, domain.State{X: 0, Y: 5}},
		{domain.ActionPourYToX, domain.State{X: 3, Y: 2}},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.action.Apply(s, 3, 5))
		})
	}
}

func TestAction_Apply_LargeCapacities(t *testing.T) {
	cx, cy := math.MaxInt, math.MaxInt-1

	full := domain.State{X: cx, Y: 2}
	got := domain.ActionPourXToY.Apply(full, cx, cy)
	assert.Equal(t, domain.State{X: cx - (cy - 2), Y: cy}, got)
	assert.True(t, got.Within(cx, cy))

	got = domain.ActionPourYToX.Apply(domain.State{X: 5, Y: cy}, cx, cy)
	assert.Equal(t, domain.State{X: cx, Y: cy - (cx - 5)}, got)
	assert.True(t, got.Within(cx, cy))
}
