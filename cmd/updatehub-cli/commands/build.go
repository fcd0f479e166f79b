package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/database/repositories"
	"github.com/l3montree-dev/updatehub/integrations/kojiint"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/spf13/cobra"
)

func NewBuildCommand() *cobra.Command {
	build := &cobra.Command{
		Use:   "build",
		Short: "Manage catalog builds",
	}
	build.AddCommand(newBuildRegisterCommand())
	return build
}

// newBuildRegisterCommand pulls a build from the build system into the local
// catalog so updates can reference it. The package has to exist already, the
// committer list is not something the build system knows.
func newBuildRegisterCommand() *cobra.Command {
	register := &cobra.Command{
		Use:   "register <nvr>",
		Short: "Register a build from the build system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			nvr := args[0]
			releaseName, _ := cmd.Flags().GetString("release")
			inherited, _ := cmd.Flags().GetBool("inherited")

			release, err := repositories.NewReleaseRepository(db).FindByName(releaseName)
			if err != nil {
				return fmt.Errorf("unknown release %s", releaseName)
			}

			info, err := kojiint.NewKojiClient().GetBuild(cmd.Context(), nvr)
			if err != nil {
				return fmt.Errorf("build system does not know %s: %w", nvr, err)
			}

			pkgName := info.Name
			if pkgName == "" {
				pkgName, _, _ = models.SplitNVR(nvr)
			}
			pkg, err := repositories.NewPackageRepository(db).FindByName(pkgName)
			if err != nil {
				return fmt.Errorf("unknown package %s, create it first", pkgName)
			}

			if info.NVR != "" {
				nvr = info.NVR
			}
			build := models.Build{
				NVR:       nvr,
				Inherited: inherited,
				PackageID: pkg.ID,
				ReleaseID: release.ID,
			}
			if err := repositories.NewBuildRepository(db).Create(nil, &build); err != nil {
				return err
			}
			slog.Info("registered build", "nvr", build.NVR, "package", pkg.Name, "release", release.Name)
			return nil
		},
	}

	register.Flags().String("release", "", "Release the build belongs to")
	register.Flags().Bool("inherited", false, "Mark the build as inherited from a previous release")
	register.MarkFlagRequired("release") // nolint

	return register
}
