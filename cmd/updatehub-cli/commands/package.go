package commands

import (
	"log/slog"

	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/database/repositories"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/lib/pq"
	"github.com/spf13/cobra"
)

func NewPackageCommand() *cobra.Command {
	pkg := &cobra.Command{
		Use:   "package",
		Short: "Manage packages",
	}
	pkg.AddCommand(newPackageCreateCommand())
	return pkg
}

func newPackageCreateCommand() *cobra.Command {
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new package",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			committers, _ := cmd.Flags().GetStringArray("committers")
			stableKarma, _ := cmd.Flags().GetInt("stable-karma")
			unstableKarma, _ := cmd.Flags().GetInt("unstable-karma")

			pkg := models.Package{
				Name:          name,
				Committers:    pq.StringArray(committers),
				StableKarma:   stableKarma,
				UnstableKarma: unstableKarma,
			}
			if err := repositories.NewPackageRepository(db).Create(nil, &pkg); err != nil {
				return err
			}
			slog.Info("created package", "name", pkg.Name)
			return nil
		},
	}

	create.Flags().String("name", "", "Package name")
	create.Flags().StringArrayP("committers", "c", nil, "Committers allowed to manage updates for this package")
	create.Flags().Int("stable-karma", 3, "Karma threshold for the automatic stable request, 0 disables")
	create.Flags().Int("unstable-karma", -3, "Karma threshold for automatic obsoletion, 0 disables")
	create.MarkFlagRequired("name") // nolint

	return create
}
