package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/utils"
)

// Update is the aggregate root of the lifecycle state machine. Status is the
// current reality, Request the pending intent; both only ever change through
// the update service so that build tags, karma and alias assignment stay
// consistent.
type Update struct {
	Model
	Type   dtos.UpdateType   `json:"type" gorm:"type:text;not null;"`
	Status dtos.UpdateStatus `json:"status" gorm:"type:text;not null;default:'pending';"`
	// Request is nil when no push intent is pending.
	Request *dtos.RequestAction `json:"request" gorm:"type:text;"`
	Pushed  bool                `json:"pushed" gorm:"default:false;"`

	Submitter string `json:"submitter" gorm:"not null;type:text;"`
	Karma     int    `json:"karma" gorm:"default:0;"`
	Notes     string `json:"notes" gorm:"type:text;"`

	CloseBugs bool `json:"closeBugs" gorm:"default:true;"`

	SecurityApproved bool `json:"securityApproved" gorm:"default:false;"`
	RelengApproved   bool `json:"relengApproved" gorm:"default:false;"`
	QAApproved       bool `json:"qaApproved" gorm:"default:false;"`

	DateSubmitted        time.Time  `json:"dateSubmitted" gorm:"autoCreateTime;"`
	DateModified         *time.Time `json:"dateModified" gorm:"autoUpdateTime:false;"`
	DatePushed           *time.Time `json:"datePushed"`
	SecurityApprovalDate *time.Time `json:"securityApprovalDate"`
	RelengApprovalDate   *time.Time `json:"relengApprovalDate"`
	QAApprovalDate       *time.Time `json:"qaApprovalDate"`

	// Alias is the permanent human readable id, eg. FEDORA-2026-0013.
	// Assigned on first push to testing or stable, never reassigned.
	Alias *string `json:"alias" gorm:"uniqueIndex;type:text;"`

	ReleaseID uuid.UUID `json:"releaseId" gorm:"type:uuid;not null;"`
	Release   Release   `json:"release"`

	Builds   []Build   `json:"builds" gorm:"foreignKey:UpdateID;"`
	Comments []Comment `json:"comments" gorm:"foreignKey:UpdateID;constraint:OnDelete:CASCADE;"`

	Bugs []Bug `json:"bugs" gorm:"many2many:update_bugs;"`
	CVEs []CVE `json:"cves" gorm:"many2many:update_cves;"`
}

func (m Update) TableName() string {
	return "updates"
}

// Title is derived from the constituent builds, never stored. Staleness when
// builds change is impossible by construction.
func (m Update) Title() string {
	names := make([]string, len(m.Builds))
	for i, build := range m.Builds {
		names[i] = build.Package.Name
	}
	return strings.Join(names, ", ") + " " + string(m.Type) + " update"
}

// NVRTitle joins the build nvrs, the form used in comments and notices.
func (m Update) NVRTitle() string {
	nvrs := make([]string, len(m.Builds))
	for i, build := range m.Builds {
		nvrs[i] = build.NVR
	}
	return strings.Join(nvrs, " ")
}

// Maintainers is the union of the committer lists of all packages in this
// update.
func (m Update) Maintainers() []string {
	return utils.UniqBy(utils.Flat(utils.Map(m.Builds, func(b Build) []string {
		return b.Package.Committers
	})), func(p string) string { return p })
}

// StableKarmaThreshold returns the configured stable karma threshold for this
// update. The thresholds live on the package; with multi-build updates the
// first build's package decides, matching how the per-package defaults were
// always applied.
func (m Update) StableKarmaThreshold() int {
	if len(m.Builds) == 0 {
		return 0
	}
	return m.Builds[0].Package.StableKarma
}

func (m Update) UnstableKarmaThreshold() int {
	if len(m.Builds) == 0 {
		return 0
	}
	return m.Builds[0].Package.UnstableKarma
}

func (m Update) HasRequest(action dtos.RequestAction) bool {
	return m.Request != nil && *m.Request == action
}
