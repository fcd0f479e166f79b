// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package accesscontrol

import (
	"os"
	"slices"
	"strings"

	"github.com/l3montree-dev/updatehub/database/models"
)

// CommitterAccessControl decides who may drive an update through its
// lifecycle: the submitter, any committer of an affected package, and the
// configured administrators.
type CommitterAccessControl struct {
	admins []string
}

func NewCommitterAccessControl() *CommitterAccessControl {
	return &CommitterAccessControl{
		admins: strings.Fields(os.Getenv("UPDATEHUB_ADMINS")),
	}
}

func (a *CommitterAccessControl) IsAuthorized(update models.Update, actor string) (bool, error) {
	if actor == "" {
		return false, nil
	}
	if actor == update.Submitter {
		return true, nil
	}
	if slices.Contains(update.Maintainers(), actor) {
		return true, nil
	}
	return slices.Contains(a.admins, actor), nil
}
