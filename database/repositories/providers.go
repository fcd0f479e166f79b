// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/updatehub/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewReleaseRepository, fx.As(new(shared.ReleaseRepository)))),
	fx.Provide(fx.Annotate(NewPackageRepository, fx.As(new(shared.PackageRepository)))),
	fx.Provide(fx.Annotate(NewBuildRepository, fx.As(new(shared.BuildRepository)))),
	fx.Provide(fx.Annotate(NewUpdateRepository, fx.As(new(shared.UpdateRepository)))),
	fx.Provide(fx.Annotate(NewCommentRepository, fx.As(new(shared.CommentRepository)))),
	fx.Provide(fx.Annotate(NewBugRepository, fx.As(new(shared.BugRepository)))),
	fx.Provide(fx.Annotate(NewCVERepository, fx.As(new(shared.CVERepository)))),
)
