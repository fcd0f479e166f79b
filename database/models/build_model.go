package models

import (
	"github.com/google/uuid"
)

// Build is one name-version-release artifact. Its tag membership in the
// build-tag system is never stored here: it is derived from the owning
// update's status (see statemachine.BuildTag) and kept consistent by the
// unpush/untag/obsolete operations.
type Build struct {
	Model
	NVR string `json:"nvr" gorm:"uniqueIndex;not null;type:text;"`
	// Inherited marks builds whose current tag was inherited from a parent
	// tag rather than applied explicitly. Unpushing such a build removes the
	// tag instead of moving it back to the candidate tag.
	Inherited bool      `json:"inherited" gorm:"default:false;"`
	PackageID uuid.UUID `json:"packageId" gorm:"type:uuid;not null;"`
	Package   Package   `json:"package"`
	ReleaseID uuid.UUID `json:"releaseId" gorm:"type:uuid;not null;"`
	Release   Release   `json:"release"`
	UpdateID  *uuid.UUID `json:"updateId" gorm:"type:uuid;"`
}

func (m Build) TableName() string {
	return "builds"
}

// VersionRelease returns the version-release part of the nvr, eg.
// "1.0-1.fc40" for "kernel-1.0-1.fc40". Used as the fixed-in version when
// closing tickets.
func (m Build) VersionRelease() string {
	name, version, release := SplitNVR(m.NVR)
	if name == "" {
		return m.NVR
	}
	return version + "-" + release
}
