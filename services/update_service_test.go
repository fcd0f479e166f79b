package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/mocks"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type serviceMocks struct {
	updates  *mocks.UpdateRepository
	builds   *mocks.BuildRepository
	releases *mocks.ReleaseRepository
	comments *mocks.CommentRepository
	bugs     *mocks.BugRepository
	cves     *mocks.CVERepository
	koji     *mocks.BuildTagGateway
	tickets  *mocks.TicketGateway
	mail     *mocks.NotificationGateway
	authz    *mocks.AuthorizationProvider
}

func newServiceMocks(t *testing.T) serviceMocks {
	return serviceMocks{
		updates:  mocks.NewUpdateRepository(t),
		builds:   mocks.NewBuildRepository(t),
		releases: mocks.NewReleaseRepository(t),
		comments: mocks.NewCommentRepository(t),
		bugs:     mocks.NewBugRepository(t),
		cves:     mocks.NewCVERepository(t),
		koji:     mocks.NewBuildTagGateway(t),
		tickets:  mocks.NewTicketGateway(t),
		mail:     mocks.NewNotificationGateway(t),
		authz:    mocks.NewAuthorizationProvider(t),
	}
}

func (m serviceMocks) service() *UpdateService {
	return NewUpdateService(m.updates, m.builds, m.releases, m.comments, m.bugs, m.cves, m.koji, m.tickets, m.mail, m.authz)
}

// expectTransaction makes the transaction wrapper call straight through.
func (m serviceMocks) expectTransaction() {
	m.updates.On("Transaction", mock.Anything).Return(func(fn func(shared.DB) error) error {
		return fn(nil)
	})
}

func fixtureUpdate(status dtos.UpdateStatus) models.Update {
	pkg := models.Package{
		Model:         models.Model{ID: uuid.New()},
		Name:          "bodhi",
		Committers:    pq.StringArray{"lmacken", "masta"},
		StableKarma:   3,
		UnstableKarma: -3,
	}
	release := models.Release{
		Model:    models.Model{ID: uuid.New()},
		Name:     "F40",
		LongName: "Fedora 40",
		IDPrefix: "FEDORA",
		DistTag:  "dist-f40",
	}
	updateID := uuid.New()
	build := models.Build{
		Model:     models.Model{ID: uuid.New()},
		NVR:       "bodhi-2.0-1.fc40",
		PackageID: pkg.ID,
		Package:   pkg,
		ReleaseID: release.ID,
		Release:   release,
		UpdateID:  &updateID,
	}
	return models.Update{
		Model:     models.Model{ID: updateID},
		Type:      dtos.TypeBugfix,
		Status:    status,
		Submitter: "lmacken",
		CloseBugs: true,
		ReleaseID: release.ID,
		Release:   release,
		Builds:    []models.Build{build},
	}
}

func TestSubmitRequest(t *testing.T) {
	t.Run("should reject an unauthorized actor", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "mallory").Return(false, nil)

		_, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestTesting, "mallory", true)
		assert.True(t, shared.IsUnauthorized(err))
	})

	t.Run("should reject an unknown action", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)

		_, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestAction("frobnicate"), "lmacken", true)
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should reject a request equal to the current status", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)

		_, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestTesting, "lmacken", true)
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should reject a duplicate request", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		stable := dtos.RequestStable
		update.Request = &stable

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)

		_, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestStable, "lmacken", true)
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should record a testing request and comment on it", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)

		var comment models.Comment
		m.comments.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			comment = *(args.Get(1).(*models.Comment))
		}).Return(nil)

		result, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestTesting, "lmacken", true)
		assert.NoError(t, err)
		assert.True(t, result.HasRequest(dtos.RequestTesting))
		assert.Equal(t, dtos.StatusPending, result.Status)
		assert.Equal(t, "This update has been submitted for testing", comment.Text)
	})

	t.Run("should defer an unapproved security update", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		update.Type = dtos.TypeSecurity

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestStable, "lmacken", true)
		assert.NoError(t, err)
		// the intent is recorded but no tag moves, no pathcheck and no
		// comment happen until the security team approves
		assert.True(t, result.HasRequest(dtos.RequestStable))
		assert.Equal(t, dtos.StatusPending, result.Status)
	})

	t.Run("should refuse a stable request that breaks the update path", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		myBuild := shared.BuildInfo{Name: "bodhi", Version: "2.0", Release: "1.fc40", NVR: "bodhi-2.0-1.fc40"}
		released := shared.BuildInfo{Name: "bodhi", Version: "3.0", Release: "1.fc40", NVR: "bodhi-3.0-1.fc40"}

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.koji.On("GetBuild", mock.Anything, "bodhi-2.0-1.fc40").Return(myBuild, nil)
		m.koji.On("ListTagged", mock.Anything, "dist-f40-updates", "bodhi", true).Return([]shared.BuildInfo{released}, nil)
		m.koji.On("CompareVersionRelease", myBuild, released).Return(-1)

		_, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestStable, "lmacken", true)
		assert.True(t, shared.IsBrokenUpdatePath(err))
	})

	t.Run("should skip the pathcheck when disabled", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestStable, "lmacken", false)
		assert.NoError(t, err)
		assert.True(t, result.HasRequest(dtos.RequestStable))
	})
}

func TestUnpush(t *testing.T) {
	t.Run("should move builds back to the candidate tag", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.koji.On("MoveBuild", mock.Anything, "dist-f40-updates-testing", "dist-f40-updates-candidate", "bodhi-2.0-1.fc40").Return(nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestUnpush, "lmacken", true)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusUnpushed, result.Status)
		assert.False(t, result.Pushed)
	})

	t.Run("should keep a pending request across an unpush", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		stable := dtos.RequestStable
		update.Request = &stable

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.koji.On("MoveBuild", mock.Anything, "dist-f40-updates-testing", "dist-f40-updates-candidate", "bodhi-2.0-1.fc40").Return(nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestUnpush, "lmacken", true)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusUnpushed, result.Status)
		assert.True(t, result.HasRequest(dtos.RequestStable))
	})

	t.Run("should only untag inherited builds", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Builds[0].Inherited = true

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.koji.On("UntagBuild", mock.Anything, "dist-f40-updates-testing", "bodhi-2.0-1.fc40").Return(nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestUnpush, "lmacken", true)
		assert.NoError(t, err)
	})

	t.Run("should not touch the build system when already on the candidate tag", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		// no koji expectations: any tag call would fail the test
		result, err := m.service().SubmitRequest(context.Background(), update.ID, dtos.RequestUnpush, "lmacken", true)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusPending, result.Status)
	})
}

func TestRecordComment(t *testing.T) {
	t.Run("should count only the latest karma value per author once", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Karma = 1
		update.Comments = []models.Comment{{Author: "alice", Karma: 1, UpdateID: update.ID}}

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "comment", mock.Anything).Return(nil)

		result, err := m.service().RecordComment(context.Background(), update.ID, "still works", 1, "alice", false)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Karma)
	})

	t.Run("should swing by two when an author reverses their vote", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Karma = 1
		update.Comments = []models.Comment{{Author: "alice", Karma: 1, UpdateID: update.ID}}

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "comment", mock.Anything).Return(nil)

		result, err := m.service().RecordComment(context.Background(), update.ID, "broke after all", -1, "alice", false)
		assert.NoError(t, err)
		assert.Equal(t, -1, result.Karma)
	})

	t.Run("should request stable exactly on the stable threshold", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Karma = 2
		update.Comments = []models.Comment{
			{Author: "bob", Karma: 1, UpdateID: update.ID},
			{Author: "carol", Karma: 1, UpdateID: update.ID},
		}

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "stablekarma", mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "comment", mock.Anything).Return(nil)

		result, err := m.service().RecordComment(context.Background(), update.ID, "ship it", 1, "dave", false)
		assert.NoError(t, err)
		assert.Equal(t, 3, result.Karma)
		assert.True(t, result.HasRequest(dtos.RequestStable))
	})

	t.Run("should not request stable just below the threshold", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Karma = 1
		update.Comments = []models.Comment{{Author: "bob", Karma: 1, UpdateID: update.ID}}

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "comment", mock.Anything).Return(nil)

		result, err := m.service().RecordComment(context.Background(), update.ID, "works here", 1, "carol", false)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Karma)
		assert.Nil(t, result.Request)
	})

	t.Run("should obsolete a testing update on the unstable threshold", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Karma = -2
		update.Comments = []models.Comment{
			{Author: "bob", Karma: -1, UpdateID: update.ID},
			{Author: "carol", Karma: -1, UpdateID: update.ID},
		}

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.koji.On("UntagBuild", mock.Anything, "dist-f40-updates-testing", "bodhi-2.0-1.fc40").Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "unstable", mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "comment", mock.Anything).Return(nil)

		result, err := m.service().RecordComment(context.Background(), update.ID, "kernel panic on boot", -1, "dave", false)
		assert.NoError(t, err)
		assert.Equal(t, -3, result.Karma)
		assert.Equal(t, dtos.StatusObsolete, result.Status)
	})

	t.Run("anonymous karma never counts", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.mail.On("Enqueue", mock.Anything, mock.Anything, "comment", mock.Anything).Return(nil)

		result, err := m.service().RecordComment(context.Background(), update.ID, "drive-by", 1, "", true)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Karma)
	})
}

func TestAssignAlias(t *testing.T) {
	t.Run("should assign the first alias of the year", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.updates.On("LatestAlias", mock.Anything, "FEDORA").Return("", nil)

		err := m.service().assignAlias(nil, &update)
		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("FEDORA-%d-0001", time.Now().Year()), *update.Alias)
	})

	t.Run("should continue the sequence within a year", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.updates.On("LatestAlias", mock.Anything, "FEDORA").Return(fmt.Sprintf("FEDORA-%d-0013", time.Now().Year()), nil)

		err := m.service().assignAlias(nil, &update)
		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("FEDORA-%d-0014", time.Now().Year()), *update.Alias)
	})

	t.Run("should restart the sequence after a year rollover", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.updates.On("LatestAlias", mock.Anything, "FEDORA").Return("FEDORA-2020-0099", nil)

		err := m.service().assignAlias(nil, &update)
		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("FEDORA-%d-0001", time.Now().Year()), *update.Alias)
	})

	t.Run("should keep an existing alias", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		alias := "FEDORA-2025-1337"
		update.Alias = &alias

		// no repository expectations: the scan must not even run
		err := m.service().assignAlias(nil, &update)
		assert.NoError(t, err)
		assert.Equal(t, "FEDORA-2025-1337", *update.Alias)
	})

	t.Run("should parse aliases whose prefix contains dashes", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		update.Release.IDPrefix = "FEDORA-EPEL"

		m.updates.On("LatestAlias", mock.Anything, "FEDORA-EPEL").Return(fmt.Sprintf("FEDORA-EPEL-%d-0007", time.Now().Year()), nil)

		err := m.service().assignAlias(nil, &update)
		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("FEDORA-EPEL-%d-0008", time.Now().Year()), *update.Alias)
	})
}

func TestCompleteRequest(t *testing.T) {
	t.Run("should push a pending testing request", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		req := dtos.RequestTesting
		update.Request = &req

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.koji.On("MoveBuild", mock.Anything, "dist-f40-updates-candidate", "dist-f40-updates-testing", "bodhi-2.0-1.fc40").Return(nil)
		m.updates.On("LatestAlias", mock.Anything, "FEDORA").Return("", nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)

		var comment models.Comment
		m.comments.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			comment = *(args.Get(1).(*models.Comment))
		}).Return(nil)

		result, err := m.service().CompleteRequest(context.Background(), update.ID)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusTesting, result.Status)
		assert.True(t, result.Pushed)
		assert.NotNil(t, result.DatePushed)
		assert.Nil(t, result.Request)
		assert.Equal(t, fmt.Sprintf("FEDORA-%d-0001", time.Now().Year()), *result.Alias)
		assert.Equal(t, "This update has been pushed to testing", comment.Text)
		assert.Equal(t, dtos.SystemUser, comment.Author)
	})

	t.Run("should fail without a pending request", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)

		_, err := m.service().CompleteRequest(context.Background(), update.ID)
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should untag instead of retagging for an obsolete request", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		req := dtos.RequestObsolete
		update.Request = &req

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		// no MoveBuild expectation: the builds must not land on any tag
		m.koji.On("UntagBuild", mock.Anything, "dist-f40-updates-testing", "bodhi-2.0-1.fc40").Return(nil)
		m.updates.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := m.service().CompleteRequest(context.Background(), update.ID)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusObsolete, result.Status)
		assert.False(t, result.Pushed)
		assert.Nil(t, result.Request)
		assert.Nil(t, result.Alias)
	})

	t.Run("should abort without a status change when a tag move fails", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		req := dtos.RequestTesting
		update.Request = &req

		m.expectTransaction()
		m.updates.On("ReadForUpdate", mock.Anything, update.ID).Return(update, nil)
		m.koji.On("MoveBuild", mock.Anything, "dist-f40-updates-candidate", "dist-f40-updates-testing", "bodhi-2.0-1.fc40").Return(fmt.Errorf("connection refused"))

		_, err := m.service().CompleteRequest(context.Background(), update.ID)
		assert.True(t, shared.IsGatewayError(err))
	})
}

func TestBugReconciliation(t *testing.T) {
	t.Run("should attach, detach and garbage collect bugs", func(t *testing.T) {
		m := newServiceMocks(t)
		s := m.service()
		update := fixtureUpdate(dtos.StatusPending)
		bug101 := models.Bug{Model: models.Model{ID: uuid.New()}, BugID: 101}
		bug102 := models.Bug{Model: models.Model{ID: uuid.New()}, BugID: 102}
		update.Bugs = []models.Bug{bug101, bug102}

		// shrink to {101}: 102 is detached and, being orphaned, deleted
		m.updates.On("RemoveBug", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.bugs.On("CountUpdateReferences", mock.Anything, bug102.ID).Return(int64(0), nil)
		m.bugs.On("Delete", mock.Anything, bug102.ID).Return(nil)

		err := s.reconcileBugs(context.Background(), nil, &update, []int{101})
		assert.NoError(t, err)
		assert.Len(t, update.Bugs, 1)
		assert.Equal(t, 101, update.Bugs[0].BugID)

		// grow to {101, 103}: 103 does not exist yet and is created
		m.bugs.On("FindByBugID", 103).Return(models.Bug{}, gorm.ErrRecordNotFound)
		m.bugs.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.updates.On("AppendBug", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err = s.reconcileBugs(context.Background(), nil, &update, []int{101, 103})
		assert.NoError(t, err)
		assert.Len(t, update.Bugs, 2)
		assert.Equal(t, 101, update.Bugs[0].BugID)
		assert.Equal(t, 103, update.Bugs[1].BugID)
	})

	t.Run("should keep a detached bug that other updates still reference", func(t *testing.T) {
		m := newServiceMocks(t)
		s := m.service()
		update := fixtureUpdate(dtos.StatusPending)
		bug := models.Bug{Model: models.Model{ID: uuid.New()}, BugID: 200}
		update.Bugs = []models.Bug{bug}

		m.updates.On("RemoveBug", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.bugs.On("CountUpdateReferences", mock.Anything, bug.ID).Return(int64(2), nil)
		// no Delete expectation: deleting would fail the test

		err := s.reconcileBugs(context.Background(), nil, &update, nil)
		assert.NoError(t, err)
		assert.Empty(t, update.Bugs)
	})
}

func TestCVEReconciliation(t *testing.T) {
	t.Run("should create unknown cves and garbage collect orphans", func(t *testing.T) {
		m := newServiceMocks(t)
		s := m.service()
		update := fixtureUpdate(dtos.StatusPending)
		old := models.CVE{Model: models.Model{ID: uuid.New()}, CVEID: "CVE-2024-0001"}
		update.CVEs = []models.CVE{old}

		m.updates.On("RemoveCVE", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.cves.On("CountUpdateReferences", mock.Anything, old.ID).Return(int64(0), nil)
		m.cves.On("Delete", mock.Anything, old.ID).Return(nil)
		m.cves.On("FindByCVEID", "CVE-2025-1234").Return(models.CVE{}, gorm.ErrRecordNotFound)
		m.cves.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.updates.On("AppendCVE", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err := s.reconcileCVEs(nil, &update, []string{"CVE-2025-1234"})
		assert.NoError(t, err)
		assert.Len(t, update.CVEs, 1)
		assert.Equal(t, "CVE-2025-1234", update.CVEs[0].CVEID)
	})
}

func TestModifyBugs(t *testing.T) {
	t.Run("should move tickets to ON_QA on a testing push", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusTesting)
		update.Bugs = []models.Bug{{BugID: 101}}

		m.tickets.On("SetStatus", mock.Anything, 101, "ON_QA", mock.Anything).Return(nil)

		m.service().ModifyBugs(context.Background(), update)
	})

	t.Run("should close tracker bugs before security parents", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusStable)
		update.Type = dtos.TypeSecurity
		update.Bugs = []models.Bug{
			{BugID: 101, Security: true},
			{BugID: 102, Security: true, Parent: true},
		}

		m.tickets.On("AddComment", mock.Anything, 101, mock.Anything).Return(nil)
		m.tickets.On("AddComment", mock.Anything, 102, mock.Anything).Return(nil)
		m.tickets.On("Close", mock.Anything, 101, "NEXTRELEASE", "2.0-1.fc40").Return(nil)
		m.tickets.On("GetTicket", mock.Anything, 102).Return(shared.Ticket{ID: 102, Status: "MODIFIED", DependsOn: []int{101}}, nil)
		m.tickets.On("GetTicket", mock.Anything, 101).Return(shared.Ticket{ID: 101, Status: "CLOSED"}, nil)
		m.tickets.On("Close", mock.Anything, 102, "NEXTRELEASE", "2.0-1.fc40").Return(nil)

		m.service().ModifyBugs(context.Background(), update)
	})

	t.Run("should not close a parent that is still in triage", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusStable)
		update.Type = dtos.TypeSecurity
		update.Bugs = []models.Bug{{BugID: 102, Security: true, Parent: true}}

		m.tickets.On("AddComment", mock.Anything, 102, mock.Anything).Return(nil)
		m.tickets.On("GetTicket", mock.Anything, 102).Return(shared.Ticket{ID: 102, Status: "NEW"}, nil)
		// no Close expectation

		m.service().ModifyBugs(context.Background(), update)
	})

	t.Run("should only comment when close bugs is disabled", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusStable)
		update.CloseBugs = false
		update.Bugs = []models.Bug{{BugID: 101}}

		m.tickets.On("AddComment", mock.Anything, 101, mock.Anything).Return(nil)

		m.service().ModifyBugs(context.Background(), update)
	})
}

func TestCreate(t *testing.T) {
	t.Run("should refuse builds of another release", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		build := update.Builds[0]
		build.ReleaseID = uuid.New()
		build.UpdateID = nil

		m.releases.On("FindByName", "F40").Return(update.Release, nil)
		m.builds.On("FindByNVR", "bodhi-2.0-1.fc40").Return(build, nil)

		_, err := m.service().Create(dtos.CreateUpdateRequest{
			Release: "F40",
			Builds:  []string{"bodhi-2.0-1.fc40"},
			Type:    "bugfix",
		}, "lmacken")
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should refuse builds already attached to an update", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)

		m.releases.On("FindByName", "F40").Return(update.Release, nil)
		m.builds.On("FindByNVR", "bodhi-2.0-1.fc40").Return(update.Builds[0], nil)

		_, err := m.service().Create(dtos.CreateUpdateRequest{
			Release: "F40",
			Builds:  []string{"bodhi-2.0-1.fc40"},
			Type:    "bugfix",
		}, "lmacken")
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should refuse a locked release", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		update.Release.Locked = true

		m.releases.On("FindByName", "F40").Return(update.Release, nil)

		_, err := m.service().Create(dtos.CreateUpdateRequest{
			Release: "F40",
			Builds:  []string{"bodhi-2.0-1.fc40"},
			Type:    "bugfix",
		}, "lmacken")
		assert.True(t, shared.IsInvalidRequest(err))
	})

	t.Run("should create a pending update and claim its builds", func(t *testing.T) {
		m := newServiceMocks(t)
		update := fixtureUpdate(dtos.StatusPending)
		build := update.Builds[0]
		build.UpdateID = nil

		m.releases.On("FindByName", "F40").Return(update.Release, nil)
		m.builds.On("FindByNVR", "bodhi-2.0-1.fc40").Return(build, nil)
		m.expectTransaction()
		m.updates.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.builds.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)

		result, err := m.service().Create(dtos.CreateUpdateRequest{
			Release: "F40",
			Builds:  []string{"bodhi-2.0-1.fc40"},
			Type:    "bugfix",
			Notes:   "fixes everything",
		}, "lmacken")
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusPending, result.Status)
		assert.Equal(t, "lmacken", result.Submitter)
		assert.True(t, result.CloseBugs)
		assert.Len(t, result.Builds, 1)
		assert.Equal(t, &result.ID, result.Builds[0].UpdateID)
	})
}

// the full lifecycle: submit to testing, push, gather karma, auto-request
// stable on the threshold.
func TestUpdateLifecycle(t *testing.T) {
	m := newServiceMocks(t)
	s := m.service()

	current := fixtureUpdate(dtos.StatusPending)

	m.updates.On("Transaction", mock.Anything).Return(func(fn func(shared.DB) error) error {
		return fn(nil)
	})
	m.updates.On("ReadForUpdate", mock.Anything, current.ID).Return(func(tx shared.DB, id uuid.UUID) models.Update {
		return current
	}, nil)
	m.updates.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		current = *(args.Get(1).(*models.Update))
	}).Return(nil)
	m.comments.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		comment := *(args.Get(1).(*models.Comment))
		current.Comments = append(current.Comments, comment)
	}).Return(nil)
	m.authz.On("IsAuthorized", mock.Anything, "lmacken").Return(true, nil)
	m.mail.On("Enqueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// submit to testing
	_, err := s.SubmitRequest(context.Background(), current.ID, dtos.RequestTesting, "lmacken", true)
	assert.NoError(t, err)
	assert.True(t, current.HasRequest(dtos.RequestTesting))

	// the push process executes the request
	m.koji.On("MoveBuild", mock.Anything, "dist-f40-updates-candidate", "dist-f40-updates-testing", "bodhi-2.0-1.fc40").Return(nil)
	m.updates.On("LatestAlias", mock.Anything, "FEDORA").Return("", nil)

	pushed, err := s.CompleteRequest(context.Background(), current.ID)
	assert.NoError(t, err)
	assert.Equal(t, dtos.StatusTesting, current.Status)
	assert.Regexp(t, `^FEDORA-\d{4}-0001$`, *pushed.Alias)

	// three positive votes push the karma to the stable threshold
	for i, tester := range []string{"alice", "bob", "carol"} {
		result, err := s.RecordComment(context.Background(), current.ID, "works great", 1, tester, false)
		assert.NoError(t, err)
		assert.Equal(t, i+1, result.Karma)
	}

	assert.Equal(t, 3, current.Karma)
	assert.True(t, current.HasRequest(dtos.RequestStable))
	assert.Equal(t, dtos.StatusTesting, current.Status)
}
