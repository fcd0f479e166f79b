package accesscontrol

import (
	"testing"

	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func fixtureUpdate() models.Update {
	return models.Update{
		Submitter: "lmacken",
		Builds: []models.Build{
			{Package: models.Package{Name: "bodhi", Committers: pq.StringArray{"masta", "toshio"}}},
		},
	}
}

func TestIsAuthorized(t *testing.T) {
	ac := NewCommitterAccessControl()

	t.Run("should allow the submitter", func(t *testing.T) {
		ok, err := ac.IsAuthorized(fixtureUpdate(), "lmacken")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should allow a package committer", func(t *testing.T) {
		ok, err := ac.IsAuthorized(fixtureUpdate(), "toshio")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should refuse everybody else", func(t *testing.T) {
		ok, err := ac.IsAuthorized(fixtureUpdate(), "mallory")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should refuse an empty actor even for matching committer lists", func(t *testing.T) {
		update := fixtureUpdate()
		update.Builds[0].Package.Committers = pq.StringArray{""}
		ok, err := ac.IsAuthorized(update, "")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should allow a configured administrator", func(t *testing.T) {
		t.Setenv("UPDATEHUB_ADMINS", "releng-bot admin2")
		admin := NewCommitterAccessControl()
		ok, err := admin.IsAuthorized(fixtureUpdate(), "releng-bot")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
