package commands

import (
	"log/slog"

	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/database/repositories"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/spf13/cobra"
)

func NewReleaseCommand() *cobra.Command {
	release := &cobra.Command{
		Use:   "release",
		Short: "Manage releases",
	}
	release.AddCommand(newReleaseCreateCommand())
	return release
}

func newReleaseCreateCommand() *cobra.Command {
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new release",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			longName, _ := cmd.Flags().GetString("long-name")
			version, _ := cmd.Flags().GetInt("version")
			idPrefix, _ := cmd.Flags().GetString("id-prefix")
			distTag, _ := cmd.Flags().GetString("dist-tag")

			release := models.NewRelease(dtos.CreateReleaseRequest{
				Name:     name,
				LongName: longName,
				Version:  version,
				IDPrefix: idPrefix,
				DistTag:  distTag,
			})
			if err := repositories.NewReleaseRepository(db).Create(nil, &release); err != nil {
				return err
			}
			slog.Info("created release", "name", release.Name, "distTag", release.DistTag)
			return nil
		},
	}

	create.Flags().String("name", "", "Short name, eg. F40")
	create.Flags().String("long-name", "", "Long name, eg. Fedora 40")
	create.Flags().Int("version", 0, "Release version number")
	create.Flags().String("id-prefix", "", "Alias namespace, eg. FEDORA")
	create.Flags().String("dist-tag", "", "Dist tag, eg. dist-f40")
	create.MarkFlagRequired("name")      // nolint
	create.MarkFlagRequired("long-name") // nolint
	create.MarkFlagRequired("id-prefix") // nolint
	create.MarkFlagRequired("dist-tag")  // nolint

	return create
}
