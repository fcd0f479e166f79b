// Copyright (C) 2025 timbastin
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
)

type ReleaseRepository interface {
	Read(id uuid.UUID) (models.Release, error)
	FindByName(name string) (models.Release, error)
	All() ([]models.Release, error)
	Create(tx DB, release *models.Release) error
	Save(tx DB, release *models.Release) error
}

type PackageRepository interface {
	Read(id uuid.UUID) (models.Package, error)
	FindByName(name string) (models.Package, error)
	Create(tx DB, pkg *models.Package) error
	Save(tx DB, pkg *models.Package) error
}

type BuildRepository interface {
	FindByNVR(nvr string) (models.Build, error)
	Create(tx DB, build *models.Build) error
	SaveBatch(tx DB, builds []models.Build) error
}

type UpdateRepository interface {
	Read(id uuid.UUID) (models.Update, error)
	// ReadForUpdate locks the update row for the duration of the
	// transaction. Every mutating lifecycle operation goes through this to
	// serialize concurrent writers per update.
	ReadForUpdate(tx DB, id uuid.UUID) (models.Update, error)
	Create(tx DB, update *models.Update) error
	Save(tx DB, update *models.Update) error
	Delete(tx DB, id uuid.UUID) error
	FindByRequest(action dtos.RequestAction) ([]models.Update, error)
	// LatestAlias returns the highest assigned alias within an id-prefix
	// namespace, or the empty string if none has been assigned yet.
	LatestAlias(tx DB, idPrefix string) (string, error)

	AppendBug(tx DB, update *models.Update, bug *models.Bug) error
	RemoveBug(tx DB, update *models.Update, bug *models.Bug) error
	AppendCVE(tx DB, update *models.Update, cve *models.CVE) error
	RemoveCVE(tx DB, update *models.Update, cve *models.CVE) error

	Transaction(fn func(tx DB) error) error
	GetDB(tx DB) DB
}

type CommentRepository interface {
	Create(tx DB, comment *models.Comment) error
}

type BugRepository interface {
	FindByBugID(bugID int) (models.Bug, error)
	Create(tx DB, bug *models.Bug) error
	Save(tx DB, bug *models.Bug) error
	Delete(tx DB, id uuid.UUID) error
	// CountUpdateReferences returns how many updates still reference the
	// bug. A zero count makes the row eligible for garbage collection.
	CountUpdateReferences(tx DB, id uuid.UUID) (int64, error)
}

type CVERepository interface {
	FindByCVEID(cveID string) (models.CVE, error)
	Create(tx DB, cve *models.CVE) error
	Delete(tx DB, id uuid.UUID) error
	CountUpdateReferences(tx DB, id uuid.UUID) (int64, error)
}

// BuildInfo is the build-tag system's view of one build.
type BuildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Release string `json:"release"`
	Epoch   int    `json:"epoch"`
	NVR     string `json:"nvr"`
}

// BuildTagGateway is the external build-tagging API. Tag operations either
// succeed or return an error; callers decide whether a failure is fatal for
// the surrounding transaction.
type BuildTagGateway interface {
	GetBuild(ctx context.Context, nvr string) (BuildInfo, error)
	GetLatestBuilds(ctx context.Context, tag, pkg string) ([]BuildInfo, error)
	ListTagged(ctx context.Context, tag, pkg string, latest bool) ([]BuildInfo, error)
	TagBuild(ctx context.Context, tag, nvr string) error
	UntagBuild(ctx context.Context, tag, nvr string) error
	MoveBuild(ctx context.Context, fromTag, toTag, nvr string) error
	// CompareVersionRelease orders two builds by their (epoch, version,
	// release) triple, returning -1, 0 or 1.
	CompareVersionRelease(a, b BuildInfo) int
}

// Ticket is the ticket tracker's view of one bug report.
type Ticket struct {
	ID               int      `json:"id"`
	Status           string   `json:"status"`
	Product          string   `json:"product"`
	Keywords         []string `json:"keywords"`
	ShortDescription string   `json:"shortDescription"`
	DependsOn        []int    `json:"dependsOn"`
}

type TicketGateway interface {
	GetTicket(ctx context.Context, id int) (Ticket, error)
	AddComment(ctx context.Context, id int, text string) error
	SetStatus(ctx context.Context, id int, status, comment string) error
	Close(ctx context.Context, id int, resolution, fixedInVersion string) error
}

type NotificationGateway interface {
	Enqueue(ctx context.Context, recipients []string, template string, context map[string]any) error
}

type AuthorizationProvider interface {
	IsAuthorized(update models.Update, actor string) (bool, error)
}

type UpdateService interface {
	Create(req dtos.CreateUpdateRequest, actor string) (models.Update, error)
	SubmitRequest(ctx context.Context, id uuid.UUID, action dtos.RequestAction, actor string, pathCheck bool) (models.Update, error)
	CompleteRequest(ctx context.Context, id uuid.UUID) (models.Update, error)
	RecordComment(ctx context.Context, id uuid.UUID, text string, karma int, author string, anonymous bool) (models.Update, error)
	UpdateBugs(ctx context.Context, id uuid.UUID, bugIDs []int) (models.Update, error)
	UpdateCVEs(ctx context.Context, id uuid.UUID, cveIDs []string) (models.Update, error)
	ModifyBugs(ctx context.Context, update models.Update)
	SendUpdateNotice(ctx context.Context, update models.Update)
	Read(id uuid.UUID) (models.Update, error)
	PendingRequests() ([]models.Update, error)
}
