// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/l3montree-dev/updatehub/statemachine"
	"github.com/l3montree-dev/updatehub/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UpdateService struct {
	updateRepository  shared.UpdateRepository
	buildRepository   shared.BuildRepository
	releaseRepository shared.ReleaseRepository
	commentRepository shared.CommentRepository
	bugRepository     shared.BugRepository
	cveRepository     shared.CVERepository

	buildTagGateway     shared.BuildTagGateway
	ticketGateway       shared.TicketGateway
	notificationGateway shared.NotificationGateway
	authorization       shared.AuthorizationProvider

	// fetchTicketDetails controls whether newly referenced bugs get their
	// metadata pulled from the ticket tracker. Disabled when no service
	// identity is configured, matching the tracker's posting requirements.
	fetchTicketDetails bool
}

func NewUpdateService(
	updateRepository shared.UpdateRepository,
	buildRepository shared.BuildRepository,
	releaseRepository shared.ReleaseRepository,
	commentRepository shared.CommentRepository,
	bugRepository shared.BugRepository,
	cveRepository shared.CVERepository,
	buildTagGateway shared.BuildTagGateway,
	ticketGateway shared.TicketGateway,
	notificationGateway shared.NotificationGateway,
	authorization shared.AuthorizationProvider,
) *UpdateService {
	return &UpdateService{
		updateRepository:    updateRepository,
		buildRepository:     buildRepository,
		releaseRepository:   releaseRepository,
		commentRepository:   commentRepository,
		bugRepository:       bugRepository,
		cveRepository:       cveRepository,
		buildTagGateway:     buildTagGateway,
		ticketGateway:       ticketGateway,
		notificationGateway: notificationGateway,
		authorization:       authorization,
		fetchTicketDetails:  os.Getenv("UPDATEHUB_EMAIL") != "",
	}
}

func (s *UpdateService) Read(id uuid.UUID) (models.Update, error) {
	update, err := s.updateRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return update, &shared.NotFoundError{Resource: "update", ID: id.String()}
		}
		return update, err
	}
	return update, nil
}

func (s *UpdateService) PendingRequests() ([]models.Update, error) {
	testing, err := s.updateRepository.FindByRequest(dtos.RequestTesting)
	if err != nil {
		return nil, err
	}
	stable, err := s.updateRepository.FindByRequest(dtos.RequestStable)
	if err != nil {
		return nil, err
	}
	obsolete, err := s.updateRepository.FindByRequest(dtos.RequestObsolete)
	if err != nil {
		return nil, err
	}
	return append(append(testing, stable...), obsolete...), nil
}

// Create assembles a new update from catalog builds. Every build must exist,
// belong to the named release and not already be attached to another update.
func (s *UpdateService) Create(req dtos.CreateUpdateRequest, actor string) (models.Update, error) {
	release, err := s.releaseRepository.FindByName(req.Release)
	if err != nil {
		return models.Update{}, &shared.NotFoundError{Resource: "release", ID: req.Release}
	}
	if release.Locked {
		return models.Update{}, &shared.InvalidRequestError{Reason: fmt.Sprintf("release %s is locked", release.Name)}
	}

	builds := make([]models.Build, 0, len(req.Builds))
	for _, nvr := range req.Builds {
		build, err := s.buildRepository.FindByNVR(nvr)
		if err != nil {
			return models.Update{}, &shared.NotFoundError{Resource: "build", ID: nvr}
		}
		if build.ReleaseID != release.ID {
			return models.Update{}, &shared.InvalidRequestError{Reason: fmt.Sprintf("build %s does not belong to release %s", nvr, release.Name)}
		}
		if build.UpdateID != nil {
			return models.Update{}, &shared.InvalidRequestError{Reason: fmt.Sprintf("build %s is already part of another update", nvr)}
		}
		builds = append(builds, build)
	}

	update := models.Update{
		Type:      dtos.UpdateType(req.Type),
		Status:    dtos.StatusPending,
		Submitter: actor,
		Notes:     req.Notes,
		CloseBugs: utils.OrDefault(req.CloseBugs, true),
		ReleaseID: release.ID,
		Release:   release,
	}

	err = s.updateRepository.Transaction(func(tx shared.DB) error {
		if err := s.updateRepository.Create(tx, &update); err != nil {
			return err
		}
		for i := range builds {
			builds[i].UpdateID = &update.ID
		}
		if err := s.buildRepository.SaveBatch(tx, builds); err != nil {
			return err
		}
		update.Builds = builds

		if err := s.reconcileBugs(context.Background(), tx, &update, req.Bugs); err != nil {
			return err
		}
		return s.reconcileCVEs(tx, &update, req.CVEs)
	})
	if err != nil {
		return models.Update{}, err
	}
	return update, nil
}

// SubmitRequest records a push intent for an update, or executes it right
// away for the unpush and obsolete actions. Validation happens before any
// mutation; validation failures leave the aggregate untouched.
func (s *UpdateService) SubmitRequest(ctx context.Context, id uuid.UUID, action dtos.RequestAction, actor string, pathCheck bool) (models.Update, error) {
	var result models.Update
	err := s.updateRepository.Transaction(func(tx shared.DB) error {
		update, err := s.updateRepository.ReadForUpdate(tx, id)
		if err != nil {
			return &shared.NotFoundError{Resource: "update", ID: id.String()}
		}

		if err := s.submitRequest(ctx, tx, &update, action, actor, pathCheck); err != nil {
			return err
		}
		result = update
		return nil
	})
	return result, err
}

func (s *UpdateService) submitRequest(ctx context.Context, tx shared.DB, update *models.Update, action dtos.RequestAction, actor string, pathCheck bool) error {
	authorized, err := s.authorization.IsAuthorized(*update, actor)
	if err != nil {
		return errors.Wrap(err, "could not check authorization")
	}
	if !authorized {
		return &shared.UnauthorizedError{Actor: actor, Title: update.Title()}
	}

	if !statemachine.IsKnownAction(action) {
		return &shared.InvalidRequestError{Reason: fmt.Sprintf("unknown request: %s", action)}
	}
	if string(action) == string(update.Status) {
		return &shared.InvalidRequestError{Reason: fmt.Sprintf("%s already %s", update.Title(), action)}
	}
	if update.HasRequest(action) {
		return &shared.InvalidRequestError{Reason: fmt.Sprintf("%s has already been submitted to %s", update.Title(), action)}
	}

	switch {
	case action == dtos.RequestUnpush:
		if err := s.unpush(ctx, tx, update); err != nil {
			return err
		}
		return s.appendComment(tx, update, "This update has been unpushed", 0, actor, false)
	case action == dtos.RequestObsolete:
		return s.obsolete(ctx, tx, update, "")
	case update.Type == dtos.TypeSecurity && !update.SecurityApproved:
		// record the intent, defer the transition until the security team
		// has signed off
		slog.Info("update awaiting security team approval", "update", update.Title())
		update.Request = &action
		return s.updateRepository.Save(tx, update)
	case action == dtos.RequestStable && pathCheck:
		if err := s.checkUpdatePath(ctx, *update); err != nil {
			return err
		}
	}

	update.Request = &action
	update.Pushed = false
	update.DatePushed = nil
	if err := s.updateRepository.Save(tx, update); err != nil {
		return err
	}
	if err := s.appendComment(tx, update, fmt.Sprintf("This update has been submitted for %s", action), 0, actor, false); err != nil {
		return err
	}
	s.notifyAdmins(ctx, string(action), *update)
	slog.Info("update submitted", "update", update.Title(), "action", action)
	return nil
}

// checkUpdatePath refuses to push builds to stable that are older than what
// is already released for the same package. Ordering is a label compare on
// the (epoch, version, release) triple, never a lexical string compare.
func (s *UpdateService) checkUpdatePath(ctx context.Context, update models.Update) error {
	tag := update.Release.DistTag + "-updates"
	for _, build := range update.Builds {
		myBuild, err := s.buildTagGateway.GetBuild(ctx, build.NVR)
		if err != nil {
			return &shared.GatewayError{Gateway: "buildtag", Op: "getBuild " + build.NVR, Err: err}
		}
		tagged, err := s.buildTagGateway.ListTagged(ctx, tag, build.Package.Name, true)
		if err != nil {
			return &shared.GatewayError{Gateway: "buildtag", Op: "listTagged " + tag, Err: err}
		}
		for _, oldBuild := range tagged {
			if s.buildTagGateway.CompareVersionRelease(myBuild, oldBuild) < 0 {
				return &shared.BrokenUpdatePathError{ReleasedNVR: oldBuild.NVR, SubmittedNVR: myBuild.NVR}
			}
		}
	}
	return nil
}

// CompleteRequest is called by the push process once the pending request has
// been materialized in the repositories. It maps the request onto the new
// status and clears the intent.
func (s *UpdateService) CompleteRequest(ctx context.Context, id uuid.UUID) (models.Update, error) {
	var result models.Update
	err := s.updateRepository.Transaction(func(tx shared.DB) error {
		update, err := s.updateRepository.ReadForUpdate(tx, id)
		if err != nil {
			return &shared.NotFoundError{Resource: "update", ID: id.String()}
		}
		if update.Request == nil {
			return &shared.InvalidRequestError{Reason: fmt.Sprintf("%s has no pending request", update.Title())}
		}

		status, pushed, needsAlias := statemachine.StatusForRequest(*update.Request)
		if status == dtos.StatusObsolete {
			// an obsoletion leaves no tag behind, moving to the candidate
			// tag would resurrect the builds in the next compose
			if err := s.removeTags(ctx, &update); err != nil {
				return err
			}
		} else if err := s.applyTags(ctx, &update, status); err != nil {
			return err
		}
		update.Status = status
		update.Pushed = pushed
		if pushed {
			update.DatePushed = utils.Ptr(time.Now().UTC())
		}
		if needsAlias {
			if err := s.assignAlias(tx, &update); err != nil {
				return err
			}
		}
		update.Request = nil
		if err := s.updateRepository.Save(tx, &update); err != nil {
			return err
		}
		if err := s.statusComment(tx, &update); err != nil {
			return err
		}
		result = update
		return nil
	})
	return result, err
}

// assignAlias hands out the permanent update id, eg. FEDORA-2026-0013. The
// scan is scoped to the release's id prefix so sequences of different
// releases can not interleave. Idempotent once an alias is set.
func (s *UpdateService) assignAlias(tx shared.DB, update *models.Update) error {
	if update.Alias != nil && *update.Alias != "" {
		slog.Debug("keeping current update id", "alias", *update.Alias)
		return nil
	}

	latest, err := s.updateRepository.LatestAlias(tx, update.Release.IDPrefix)
	if err != nil {
		return err
	}

	year := time.Now().Year()
	sequence := 0
	if latest != "" {
		// alias layout is {prefix}-{year}-{seq}; the prefix itself may
		// contain dashes, so parse from the right
		parts := strings.Split(latest, "-")
		if len(parts) >= 3 {
			latestYear, yerr := strconv.Atoi(parts[len(parts)-2])
			latestSeq, serr := strconv.Atoi(parts[len(parts)-1])
			if yerr == nil && serr == nil && latestYear == year {
				sequence = latestSeq
			}
		}
	}
	sequence++

	alias := fmt.Sprintf("%s-%d-%04d", update.Release.IDPrefix, year, sequence)
	update.Alias = &alias
	slog.Debug("assigned update id", "update", update.Title(), "alias", alias)
	return nil
}

// RecordComment appends feedback to the update and adjusts karma. Only the
// latest karma value per author counts; reversing one's own earlier vote
// swings the total by two. Landing exactly on a configured threshold
// triggers the automatic stable request or the automatic obsoletion.
func (s *UpdateService) RecordComment(ctx context.Context, id uuid.UUID, text string, karma int, author string, anonymous bool) (models.Update, error) {
	var result models.Update
	err := s.updateRepository.Transaction(func(tx shared.DB) error {
		update, err := s.updateRepository.ReadForUpdate(tx, id)
		if err != nil {
			return &shared.NotFoundError{Resource: "update", ID: id.String()}
		}
		if err := s.recordComment(ctx, tx, &update, text, karma, author, anonymous); err != nil {
			return err
		}
		result = update
		return nil
	})
	return result, err
}

func (s *UpdateService) recordComment(ctx context.Context, tx shared.DB, update *models.Update, text string, karma int, author string, anonymous bool) error {
	if !anonymous && karma != 0 && !s.hasKarmaComment(*update, author, karma) {
		prior := utils.Map(utils.Filter(update.Comments, func(c models.Comment) bool {
			return c.Author == author
		}), func(c models.Comment) int {
			return c.Karma
		})

		update.Karma += statemachine.KarmaAdjustment(prior, karma)
		slog.Info("updated karma", "update", update.Title(), "karma", update.Karma)

		if threshold := update.StableKarmaThreshold(); threshold != 0 && update.Karma == threshold {
			slog.Info("automatically marking update as stable", "update", update.Title())
			stable := dtos.RequestStable
			update.Request = &stable
			update.Pushed = false
			update.DatePushed = nil
			s.notify(ctx, update.Maintainers(), "stablekarma", *update)
			s.notifyAdmins(ctx, "stablekarma", *update)
		}
		if update.Status == dtos.StatusTesting {
			if threshold := update.UnstableKarmaThreshold(); threshold != 0 && update.Karma == threshold {
				slog.Info("automatically obsoleting unstable update", "update", update.Title())
				if err := s.obsolete(ctx, tx, update, ""); err != nil {
					return err
				}
				s.notify(ctx, update.Maintainers(), "unstable", *update)
			}
		}
		if err := s.updateRepository.Save(tx, update); err != nil {
			return err
		}
	}

	if err := s.appendComment(tx, update, text, karma, author, anonymous); err != nil {
		return err
	}

	// notify the maintainers and everybody who commented before
	commenters := utils.Map(utils.Filter(update.Comments, func(c models.Comment) bool {
		return !c.Anonymous && c.Author != dtos.SystemUser
	}), func(c models.Comment) string {
		return c.Author
	})
	people := utils.UniqBy(append(update.Maintainers(), commenters...), func(p string) string { return p })
	s.notify(ctx, people, "comment", *update)
	return nil
}

func (s *UpdateService) hasKarmaComment(update models.Update, author string, karma int) bool {
	return utils.Any(update.Comments, func(c models.Comment) bool {
		return c.Author == author && c.Karma == karma
	})
}

func (s *UpdateService) appendComment(tx shared.DB, update *models.Update, text string, karma int, author string, anonymous bool) error {
	comment := models.Comment{
		Author:    author,
		Karma:     karma,
		Text:      text,
		Anonymous: anonymous,
		UpdateID:  update.ID,
	}
	if err := s.commentRepository.Create(tx, &comment); err != nil {
		return err
	}
	update.Comments = append(update.Comments, comment)
	return nil
}

func (s *UpdateService) statusComment(tx shared.DB, update *models.Update) error {
	switch update.Status {
	case dtos.StatusStable:
		return s.appendComment(tx, update, "This update has been pushed to stable", 0, dtos.SystemUser, false)
	case dtos.StatusTesting:
		return s.appendComment(tx, update, "This update has been pushed to testing", 0, dtos.SystemUser, false)
	case dtos.StatusObsolete:
		return s.appendComment(tx, update, "This update has been obsoleted", 0, dtos.SystemUser, false)
	}
	return nil
}

// UpdateBugs reconciles the update's bug list against the given ids. Removed
// bugs lose their association; a bug without any remaining update reference
// is deleted. New ids are attached, creating rows (and fetching ticket
// details when enabled) as needed.
func (s *UpdateService) UpdateBugs(ctx context.Context, id uuid.UUID, bugIDs []int) (models.Update, error) {
	var result models.Update
	err := s.updateRepository.Transaction(func(tx shared.DB) error {
		update, err := s.updateRepository.ReadForUpdate(tx, id)
		if err != nil {
			return &shared.NotFoundError{Resource: "update", ID: id.String()}
		}
		if err := s.reconcileBugs(ctx, tx, &update, bugIDs); err != nil {
			return err
		}
		result = update
		return nil
	})
	return result, err
}

func (s *UpdateService) reconcileBugs(ctx context.Context, tx shared.DB, update *models.Update, bugIDs []int) error {
	diff := utils.CompareSlices(update.Bugs, utils.Map(bugIDs, func(id int) models.Bug {
		return models.Bug{BugID: id}
	}), func(b models.Bug) int { return b.BugID })

	for _, bug := range diff.OnlyInA {
		if err := s.updateRepository.RemoveBug(tx, update, &bug); err != nil {
			return err
		}
		refs, err := s.bugRepository.CountUpdateReferences(tx, bug.ID)
		if err != nil {
			return err
		}
		if refs == 0 {
			slog.Debug("destroying stray bug", "bugId", bug.BugID)
			if err := s.bugRepository.Delete(tx, bug.ID); err != nil {
				return err
			}
		}
	}

	kept := diff.InBoth
	for _, added := range diff.OnlyInB {
		bug, err := s.bugRepository.FindByBugID(added.BugID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			bug = models.Bug{BugID: added.BugID}
			if s.fetchTicketDetails {
				s.fetchBugDetails(ctx, &bug)
			}
			if err := s.bugRepository.Create(tx, &bug); err != nil {
				return err
			}
		}
		if err := s.updateRepository.AppendBug(tx, update, &bug); err != nil {
			return err
		}
		kept = append(kept, bug)
	}

	update.Bugs = kept
	return nil
}

func (s *UpdateService) fetchBugDetails(ctx context.Context, bug *models.Bug) {
	ticket, err := s.ticketGateway.GetTicket(ctx, bug.BugID)
	if err != nil {
		bug.Title = "Invalid bug number"
		slog.Warn("could not fetch ticket details", "bugId", bug.BugID, "err", err)
		return
	}
	bug.Title = ticket.ShortDescription
	if ticket.Product == "Security Response" {
		bug.Parent = true
	}
	for _, keyword := range ticket.Keywords {
		if strings.EqualFold(keyword, "security") {
			bug.Security = true
			break
		}
	}
}

// UpdateCVEs reconciles the update's CVE list, mirroring UpdateBugs.
func (s *UpdateService) UpdateCVEs(ctx context.Context, id uuid.UUID, cveIDs []string) (models.Update, error) {
	var result models.Update
	err := s.updateRepository.Transaction(func(tx shared.DB) error {
		update, err := s.updateRepository.ReadForUpdate(tx, id)
		if err != nil {
			return &shared.NotFoundError{Resource: "update", ID: id.String()}
		}
		if err := s.reconcileCVEs(tx, &update, cveIDs); err != nil {
			return err
		}
		result = update
		return nil
	})
	return result, err
}

func (s *UpdateService) reconcileCVEs(tx shared.DB, update *models.Update, cveIDs []string) error {
	diff := utils.CompareSlices(update.CVEs, utils.Map(cveIDs, func(id string) models.CVE {
		return models.CVE{CVEID: id}
	}), func(c models.CVE) string { return c.CVEID })

	for _, cve := range diff.OnlyInA {
		if err := s.updateRepository.RemoveCVE(tx, update, &cve); err != nil {
			return err
		}
		refs, err := s.cveRepository.CountUpdateReferences(tx, cve.ID)
		if err != nil {
			return err
		}
		if refs == 0 {
			slog.Debug("destroying stray cve", "cveId", cve.CVEID)
			if err := s.cveRepository.Delete(tx, cve.ID); err != nil {
				return err
			}
		}
	}

	kept := diff.InBoth
	for _, added := range diff.OnlyInB {
		cve, err := s.cveRepository.FindByCVEID(added.CVEID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			slog.Debug("creating new cve", "cveId", added.CVEID)
			cve = models.CVE{CVEID: added.CVEID}
			if err := s.cveRepository.Create(tx, &cve); err != nil {
				return err
			}
		}
		if err := s.updateRepository.AppendCVE(tx, update, &cve); err != nil {
			return err
		}
		kept = append(kept, cve)
	}

	update.CVEs = kept
	return nil
}

func (s *UpdateService) notify(ctx context.Context, recipients []string, template string, update models.Update) {
	if len(recipients) == 0 {
		return
	}
	trackerURL := os.Getenv("BUGZILLA_URL")
	err := s.notificationGateway.Enqueue(ctx, recipients, template, map[string]any{
		"title":   update.Title(),
		"builds":  update.NVRTitle(),
		"release": update.Release.LongName,
		"status":  string(update.Status),
		"alias":   utils.SafeDereference(update.Alias),
		"bugs": utils.Map(update.Bugs, func(b models.Bug) string {
			return b.TicketURL(trackerURL)
		}),
	})
	if err != nil {
		// notifications are best effort, a failed mail never rolls back a
		// committed transition
		slog.Error("could not enqueue notification", "template", template, "err", err)
	}
}

func (s *UpdateService) notifyAdmins(ctx context.Context, template string, update models.Update) {
	admins := strings.Fields(os.Getenv("UPDATEHUB_ADMINS"))
	s.notify(ctx, admins, template, update)
}
