// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package accesscontrol

import (
	"github.com/l3montree-dev/updatehub/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewCommitterAccessControl,
			fx.As(new(shared.AuthorizationProvider)),
		),
	),
)
