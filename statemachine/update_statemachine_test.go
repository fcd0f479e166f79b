package statemachine

import (
	"testing"

	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/stretchr/testify/assert"
)

func TestBuildTag(t *testing.T) {
	t.Run("should derive the tag from status and dist tag", func(t *testing.T) {
		tests := []struct {
			status   dtos.UpdateStatus
			expected string
		}{
			{dtos.StatusPending, "dist-f40-updates-candidate"},
			{dtos.StatusObsolete, "dist-f40-updates-candidate"},
			{dtos.StatusUnpushed, "dist-f40-updates-candidate"},
			{dtos.StatusTesting, "dist-f40-updates-testing"},
			{dtos.StatusStable, "dist-f40-updates"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, BuildTag(tt.status, "dist-f40"))
		}
	})

	t.Run("should be a pure function of its inputs", func(t *testing.T) {
		a := BuildTag(dtos.StatusTesting, "dist-f40")
		b := BuildTag(dtos.StatusTesting, "dist-f40")
		assert.Equal(t, a, b)
	})
}

func TestCandidateTag(t *testing.T) {
	assert.Equal(t, "dist-f40-updates-candidate", CandidateTag("dist-f40"))
}

func TestStatusForRequest(t *testing.T) {
	t.Run("testing request pushes and needs an alias", func(t *testing.T) {
		status, pushed, alias := StatusForRequest(dtos.RequestTesting)
		assert.Equal(t, dtos.StatusTesting, status)
		assert.True(t, pushed)
		assert.True(t, alias)
	})

	t.Run("stable request pushes and needs an alias", func(t *testing.T) {
		status, pushed, alias := StatusForRequest(dtos.RequestStable)
		assert.Equal(t, dtos.StatusStable, status)
		assert.True(t, pushed)
		assert.True(t, alias)
	})

	t.Run("obsolete request is not a push", func(t *testing.T) {
		status, pushed, alias := StatusForRequest(dtos.RequestObsolete)
		assert.Equal(t, dtos.StatusObsolete, status)
		assert.False(t, pushed)
		assert.False(t, alias)
	})
}

func TestKarmaAdjustment(t *testing.T) {
	t.Run("a fresh vote counts once", func(t *testing.T) {
		assert.Equal(t, 1, KarmaAdjustment(nil, 1))
		assert.Equal(t, -1, KarmaAdjustment(nil, -1))
	})

	t.Run("reversing an earlier vote swings by two", func(t *testing.T) {
		assert.Equal(t, 2, KarmaAdjustment([]int{-1}, 1))
		assert.Equal(t, -2, KarmaAdjustment([]int{1}, -1))
	})

	t.Run("prior neutral comments do not cause a swing", func(t *testing.T) {
		assert.Equal(t, 1, KarmaAdjustment([]int{0}, 1))
	})
}

func TestIsKnownAction(t *testing.T) {
	assert.True(t, IsKnownAction(dtos.RequestTesting))
	assert.True(t, IsKnownAction(dtos.RequestStable))
	assert.True(t, IsKnownAction(dtos.RequestObsolete))
	assert.True(t, IsKnownAction(dtos.RequestUnpush))
	assert.False(t, IsKnownAction(dtos.RequestAction("frobnicate")))
}
