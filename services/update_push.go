package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/l3montree-dev/updatehub/statemachine"
	"github.com/l3montree-dev/updatehub/utils"
)

// applyTags moves the update's builds from the tag of the current status to
// the tag of the target status. Inherited builds were never tagged by us, so
// they only get the current tag removed. Tag operations on the build system
// are fatal, a half moved update must not flip its status.
func (s *UpdateService) applyTags(ctx context.Context, update *models.Update, target dtos.UpdateStatus) error {
	curtag := statemachine.BuildTag(update.Status, update.Release.DistTag)
	newtag := statemachine.BuildTag(target, update.Release.DistTag)
	if curtag == newtag {
		return nil
	}
	for _, build := range update.Builds {
		if build.Inherited {
			slog.Debug("removing tag from inherited build", "tag", curtag, "build", build.NVR)
			if err := s.buildTagGateway.UntagBuild(ctx, curtag, build.NVR); err != nil {
				return &shared.GatewayError{Gateway: "buildtag", Op: "untagBuild " + build.NVR, Err: err}
			}
			continue
		}
		slog.Debug("moving build", "build", build.NVR, "from", curtag, "to", newtag)
		if err := s.buildTagGateway.MoveBuild(ctx, curtag, newtag, build.NVR); err != nil {
			return &shared.GatewayError{Gateway: "buildtag", Op: "moveBuild " + build.NVR, Err: err}
		}
	}
	return nil
}

// unpush returns every build to the candidate tag and parks the update in
// the unpushed state. Nothing happens when the builds already carry the
// candidate tag.
func (s *UpdateService) unpush(ctx context.Context, tx shared.DB, update *models.Update) error {
	curtag := statemachine.BuildTag(update.Status, update.Release.DistTag)
	if strings.HasSuffix(curtag, "-updates-candidate") {
		slog.Debug("update already unpushed", "update", update.Title())
		return nil
	}
	newtag := statemachine.CandidateTag(update.Release.DistTag)
	for _, build := range update.Builds {
		if build.Inherited {
			slog.Debug("removing tag from inherited build", "tag", curtag, "build", build.NVR)
			if err := s.buildTagGateway.UntagBuild(ctx, curtag, build.NVR); err != nil {
				return &shared.GatewayError{Gateway: "buildtag", Op: "untagBuild " + build.NVR, Err: err}
			}
			continue
		}
		slog.Debug("moving build", "build", build.NVR, "from", curtag, "to", newtag)
		if err := s.buildTagGateway.MoveBuild(ctx, curtag, newtag, build.NVR); err != nil {
			return &shared.GatewayError{Gateway: "buildtag", Op: "moveBuild " + build.NVR, Err: err}
		}
	}

	// a pending request survives the unpush, only obsoletion clears it
	update.Pushed = false
	update.Status = dtos.StatusUnpushed
	update.DateModified = utils.Ptr(time.Now().UTC())
	if err := s.updateRepository.Save(tx, update); err != nil {
		return err
	}
	s.notifyAdmins(ctx, "unpushed", *update)
	return nil
}

// removeTags drops every build from the tag of the current status without
// retagging anywhere else.
func (s *UpdateService) removeTags(ctx context.Context, update *models.Update) error {
	tag := statemachine.BuildTag(update.Status, update.Release.DistTag)
	for _, build := range update.Builds {
		if err := s.buildTagGateway.UntagBuild(ctx, tag, build.NVR); err != nil {
			return &shared.GatewayError{Gateway: "buildtag", Op: "untagBuild " + build.NVR, Err: err}
		}
	}
	return nil
}

func (s *UpdateService) untag(ctx context.Context, tx shared.DB, update *models.Update) error {
	slog.Info("untagging update", "update", update.Title())
	if err := s.removeTags(ctx, update); err != nil {
		return err
	}
	update.Pushed = false
	return s.updateRepository.Save(tx, update)
}

// obsolete untags the update and marks it as superseded. When a newer
// update caused the obsoletion its title is recorded in the trail.
func (s *UpdateService) obsolete(ctx context.Context, tx shared.DB, update *models.Update, newer string) error {
	if err := s.untag(ctx, tx, update); err != nil {
		return err
	}
	update.Status = dtos.StatusObsolete
	update.Request = nil
	if err := s.updateRepository.Save(tx, update); err != nil {
		return err
	}
	text := "This update has been obsoleted"
	if newer != "" {
		text = fmt.Sprintf("This update has been obsoleted by %s", newer)
	}
	return s.appendComment(tx, update, text, 0, dtos.SystemUser, false)
}

// ModifyBugs mirrors the update's new status into the ticket tracker. All
// of it is best effort, a tracker outage never blocks or reverts a push.
func (s *UpdateService) ModifyBugs(ctx context.Context, update models.Update) {
	switch update.Status {
	case dtos.StatusTesting:
		for _, bug := range update.Bugs {
			s.bugToTesting(ctx, bug, update)
		}
	case dtos.StatusStable:
		for _, bug := range update.Bugs {
			s.commentOnBug(ctx, bug, update)
		}
		if !update.CloseBugs {
			return
		}
		if update.Type == dtos.TypeSecurity {
			// close the trackers first so the parent's dependency check
			// below sees them closed
			for _, bug := range update.Bugs {
				if !bug.Parent {
					s.closeBug(ctx, bug, update)
				}
			}
			for _, bug := range update.Bugs {
				if bug.Parent {
					s.closeSecurityParent(ctx, bug, update)
				}
			}
			return
		}
		for _, bug := range update.Bugs {
			s.closeBug(ctx, bug, update)
		}
	}
}

func (s *UpdateService) bugToTesting(ctx context.Context, bug models.Bug, update models.Update) {
	comment := fmt.Sprintf(
		"%s has been pushed to the %s testing repository. If problems still persist, please make note of it in this bug report.",
		update.NVRTitle(), update.Release.LongName)
	if err := s.ticketGateway.SetStatus(ctx, bug.BugID, "ON_QA", comment); err != nil {
		slog.Warn("could not mark ticket ON_QA", "bugId", bug.BugID, "err", err)
	}
}

func (s *UpdateService) commentOnBug(ctx context.Context, bug models.Bug, update models.Update) {
	comment := fmt.Sprintf("%s has been pushed to the %s stable repository. If problems still persist, please make note of it in this bug report.",
		update.NVRTitle(), update.Release.LongName)
	if err := s.ticketGateway.AddComment(ctx, bug.BugID, comment); err != nil {
		slog.Warn("could not comment on ticket", "bugId", bug.BugID, "err", err)
	}
}

func (s *UpdateService) closeBug(ctx context.Context, bug models.Bug, update models.Update) {
	fixedIn := ""
	if len(update.Builds) > 0 {
		fixedIn = update.Builds[0].VersionRelease()
	}
	if err := s.ticketGateway.Close(ctx, bug.BugID, "NEXTRELEASE", fixedIn); err != nil {
		slog.Warn("could not close ticket", "bugId", bug.BugID, "err", err)
	}
}

// closeSecurityParent closes a security response parent only once it is
// past triage and every ticket it depends on is already closed.
func (s *UpdateService) closeSecurityParent(ctx context.Context, bug models.Bug, update models.Update) {
	ticket, err := s.ticketGateway.GetTicket(ctx, bug.BugID)
	if err != nil {
		slog.Warn("could not fetch parent ticket", "bugId", bug.BugID, "err", err)
		return
	}
	if ticket.Status == "NEW" {
		slog.Debug("parent ticket still in triage, not closing", "bugId", bug.BugID)
		return
	}
	for _, depID := range ticket.DependsOn {
		dep, err := s.ticketGateway.GetTicket(ctx, depID)
		if err != nil {
			slog.Warn("could not fetch dependent ticket", "bugId", depID, "err", err)
			return
		}
		if dep.Status != "CLOSED" {
			slog.Debug("dependent ticket still open, not closing parent", "bugId", bug.BugID, "dependsOn", depID)
			return
		}
	}
	s.closeBug(ctx, bug, update)
}

// SendUpdateNotice announces a freshly pushed update on the release's
// mailing list. The list addresses come from the environment, keyed by the
// release id prefix, eg. FEDORA_ANNOUNCE_LIST and FEDORA_TEST_ANNOUNCE_LIST.
func (s *UpdateService) SendUpdateNotice(ctx context.Context, update models.Update) {
	prefix := strings.ToUpper(strings.ReplaceAll(update.Release.IDPrefix, "-", "_"))
	var list, template string
	switch update.Status {
	case dtos.StatusTesting:
		list = os.Getenv(prefix + "_TEST_ANNOUNCE_LIST")
		template = "testing_notice"
	case dtos.StatusStable:
		list = os.Getenv(prefix + "_ANNOUNCE_LIST")
		template = "stable_notice"
	default:
		return
	}
	if list == "" {
		slog.Warn("no announce list configured", "release", update.Release.Name, "status", update.Status)
		return
	}
	s.notify(ctx, []string{list}, template, update)
}
