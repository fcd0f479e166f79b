package models

import (
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/statemachine"
)

// Release holds the per-release configuration every update and build refers
// to. Rows are created by administrators and treated as immutable afterwards,
// except for the Locked flag which freezes all request handling for the
// release during a compose.
type Release struct {
	Model
	Name     string `json:"name" gorm:"uniqueIndex;not null;type:text;"`
	LongName string `json:"longName" gorm:"uniqueIndex;not null;type:text;"`
	Version  int    `json:"version"`
	// IDPrefix is the alias namespace, eg. FEDORA in FEDORA-2026-0001.
	IDPrefix     string `json:"idPrefix" gorm:"column:id_prefix;not null;type:text;"`
	DistTag      string `json:"distTag" gorm:"not null;type:text;"`
	StableTag    string `json:"stableTag" gorm:"type:text;"`
	TestingTag   string `json:"testingTag" gorm:"type:text;"`
	CandidateTag string `json:"candidateTag" gorm:"type:text;"`
	Locked       bool   `json:"locked" gorm:"default:false;"`
}

func (m Release) TableName() string {
	return "releases"
}

// NewRelease derives the three repository tags from the dist tag unless they
// were set explicitly.
func NewRelease(req dtos.CreateReleaseRequest) Release {
	release := Release{
		Name:         req.Name,
		LongName:     req.LongName,
		Version:      req.Version,
		IDPrefix:     req.IDPrefix,
		DistTag:      req.DistTag,
		StableTag:    req.StableTag,
		TestingTag:   req.TestingTag,
		CandidateTag: req.CandidateTag,
	}
	if release.StableTag == "" {
		release.StableTag = statemachine.BuildTag(dtos.StatusStable, req.DistTag)
	}
	if release.TestingTag == "" {
		release.TestingTag = statemachine.BuildTag(dtos.StatusTesting, req.DistTag)
	}
	if release.CandidateTag == "" {
		release.CandidateTag = statemachine.CandidateTag(req.DistTag)
	}
	return release
}
