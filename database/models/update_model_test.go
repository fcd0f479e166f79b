package models

import (
	"testing"

	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSplitNVR(t *testing.T) {
	t.Run("plain nvr", func(t *testing.T) {
		name, version, release := SplitNVR("bodhi-2.0-1.fc40")
		assert.Equal(t, "bodhi", name)
		assert.Equal(t, "2.0", version)
		assert.Equal(t, "1.fc40", release)
	})

	t.Run("package names may contain dashes", func(t *testing.T) {
		name, version, release := SplitNVR("python-pyramid-tm-0.12-1.fc40")
		assert.Equal(t, "python-pyramid-tm", name)
		assert.Equal(t, "0.12", version)
		assert.Equal(t, "1.fc40", release)
	})

	t.Run("too few fields", func(t *testing.T) {
		name, version, release := SplitNVR("bodhi-2.0")
		assert.Empty(t, name)
		assert.Empty(t, version)
		assert.Empty(t, release)
	})
}

func TestVersionRelease(t *testing.T) {
	assert.Equal(t, "2.0-1.fc40", Build{NVR: "bodhi-2.0-1.fc40"}.VersionRelease())
	// an unparseable nvr is passed through as is
	assert.Equal(t, "garbage", Build{NVR: "garbage"}.VersionRelease())
}

func TestUpdateTitle(t *testing.T) {
	update := Update{
		Type: dtos.TypeSecurity,
		Builds: []Build{
			{NVR: "kernel-6.8.1-300.fc40", Package: Package{Name: "kernel"}},
			{NVR: "kernel-headers-6.8.1-300.fc40", Package: Package{Name: "kernel-headers"}},
		},
	}
	assert.Equal(t, "kernel, kernel-headers security update", update.Title())
	assert.Equal(t, "kernel-6.8.1-300.fc40 kernel-headers-6.8.1-300.fc40", update.NVRTitle())
}

func TestMaintainers(t *testing.T) {
	t.Run("should union committers across packages without duplicates", func(t *testing.T) {
		update := Update{
			Builds: []Build{
				{Package: Package{Name: "bodhi", Committers: pq.StringArray{"lmacken", "masta"}}},
				{Package: Package{Name: "bodhi-client", Committers: pq.StringArray{"masta", "toshio"}}},
			},
		}
		assert.Equal(t, []string{"lmacken", "masta", "toshio"}, update.Maintainers())
	})

	t.Run("no builds, no maintainers", func(t *testing.T) {
		assert.Empty(t, Update{}.Maintainers())
	})
}

func TestKarmaThresholds(t *testing.T) {
	update := Update{
		Builds: []Build{{Package: Package{StableKarma: 3, UnstableKarma: -3}}},
	}
	assert.Equal(t, 3, update.StableKarmaThreshold())
	assert.Equal(t, -3, update.UnstableKarmaThreshold())

	// without builds the thresholds are disabled
	assert.Zero(t, Update{}.StableKarmaThreshold())
	assert.Zero(t, Update{}.UnstableKarmaThreshold())
}

func TestHasRequest(t *testing.T) {
	stable := dtos.RequestStable
	update := Update{Request: &stable}
	assert.True(t, update.HasRequest(dtos.RequestStable))
	assert.False(t, update.HasRequest(dtos.RequestTesting))
	assert.False(t, Update{}.HasRequest(dtos.RequestStable))
}
