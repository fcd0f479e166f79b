// Copyright (C) 2026 l3montree GmbH
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

package commands

import (
	"log/slog"

	"github.com/l3montree-dev/updatehub/shared"
	"github.com/spf13/cobra"
)

// NewPushCommand works through every update with a pending request: the
// builds get retagged, the status flips, bug housekeeping runs and the
// notices go out. Run after the repositories have been composed.
func NewPushCommand() *cobra.Command {
	push := &cobra.Command{
		Use:   "push",
		Short: "Process all pending push requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			updateService := newUpdateService(db)
			pending, err := updateService.PendingRequests()
			if err != nil {
				return err
			}
			slog.Info("processing pending requests", "count", len(pending))

			for _, update := range pending {
				completed, err := updateService.CompleteRequest(cmd.Context(), update.ID)
				if err != nil {
					slog.Error("could not complete request", "update", update.Title(), "err", err)
					continue
				}
				updateService.ModifyBugs(cmd.Context(), completed)
				updateService.SendUpdateNotice(cmd.Context(), completed)
				slog.Info("pushed update", "update", completed.Title(), "status", completed.Status)
			}
			return nil
		},
	}
	return push
}
