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
	"github.com/l3montree-dev/updatehub/accesscontrol"
	"github.com/l3montree-dev/updatehub/database/repositories"
	"github.com/l3montree-dev/updatehub/integrations/bugzillaint"
	"github.com/l3montree-dev/updatehub/integrations/kojiint"
	"github.com/l3montree-dev/updatehub/integrations/mailint"
	"github.com/l3montree-dev/updatehub/services"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "updatehub-cli",
	Short: "Management cli",
	Long:  `The updatehub cli can be used to interact with a running updatehub instance.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// newUpdateService wires the full update service by hand. The cli runs
// short lived commands, no fx app needed.
func newUpdateService(db shared.DB) shared.UpdateService {
	return services.NewUpdateService(
		repositories.NewUpdateRepository(db),
		repositories.NewBuildRepository(db),
		repositories.NewReleaseRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewBugRepository(db),
		repositories.NewCVERepository(db),
		kojiint.NewKojiClient(),
		bugzillaint.NewBugzillaClient(),
		mailint.NewMailQueueClient(),
		accesscontrol.NewCommitterAccessControl(),
	)
}
