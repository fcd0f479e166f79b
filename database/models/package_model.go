package models

import (
	"github.com/lib/pq"
)

// Package is the catalog entry a build belongs to. StableKarma and
// UnstableKarma are the per-package feedback thresholds; a zero value
// disables the respective automatic transition.
type Package struct {
	Model
	Name          string         `json:"name" gorm:"uniqueIndex;not null;type:text;"`
	Committers    pq.StringArray `json:"committers" gorm:"type:text[];"`
	StableKarma   int            `json:"stableKarma" gorm:"default:0;"`
	UnstableKarma int            `json:"unstableKarma" gorm:"default:0;"`

	Builds []Build `json:"builds" gorm:"foreignKey:PackageID;"`
}

func (m Package) TableName() string {
	return "packages"
}
