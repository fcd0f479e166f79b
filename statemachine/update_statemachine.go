// Copyright (C) 2025 l3montree GmbH
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

package statemachine

import (
	"slices"

	"github.com/l3montree-dev/updatehub/dtos"
)

// BuildTag computes the build-tag every build of an update must carry for a
// given status. It is a pure function of status and the release dist tag:
// tag membership is never stored, only derived.
//
//	pending/obsolete/unpushed -> {dist}-updates-candidate
//	testing                   -> {dist}-updates-testing
//	stable                    -> {dist}-updates
func BuildTag(status dtos.UpdateStatus, distTag string) string {
	tag := distTag + "-updates"
	switch status {
	case dtos.StatusPending, dtos.StatusObsolete, dtos.StatusUnpushed:
		tag += "-candidate"
	case dtos.StatusTesting:
		tag += "-testing"
	}
	return tag
}

// CandidateTag is where unpushed builds live.
func CandidateTag(distTag string) string {
	return distTag + "-updates-candidate"
}

// StatusForRequest maps an executed request onto the resulting status. The
// second return reports whether the transition counts as a push (sets the
// pushed flag and the push timestamp) and the third whether an alias must be
// assigned if the update does not have one yet.
func StatusForRequest(request dtos.RequestAction) (status dtos.UpdateStatus, pushed bool, assignAlias bool) {
	switch request {
	case dtos.RequestTesting:
		return dtos.StatusTesting, true, true
	case dtos.RequestStable:
		return dtos.StatusStable, true, true
	case dtos.RequestObsolete:
		return dtos.StatusObsolete, false, false
	}
	return "", false, false
}

// KarmaAdjustment computes the delta to apply to an update's karma total when
// an author submits a new non-zero karma value. priorValues are the karma
// values of all earlier comments by the same author. Reversing one's own
// earlier vote swings by two; anything else counts once.
func KarmaAdjustment(priorValues []int, karma int) int {
	if karma == 1 && slices.Contains(priorValues, -1) {
		return 2
	}
	if karma == -1 && slices.Contains(priorValues, 1) {
		return -2
	}
	return karma
}

// IsKnownAction reports whether the action is one an actor may request.
func IsKnownAction(action dtos.RequestAction) bool {
	switch action {
	case dtos.RequestTesting, dtos.RequestStable, dtos.RequestObsolete, dtos.RequestUnpush:
		return true
	}
	return false
}
