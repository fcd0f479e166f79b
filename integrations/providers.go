// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package integrations

import (
	"github.com/l3montree-dev/updatehub/integrations/bugzillaint"
	"github.com/l3montree-dev/updatehub/integrations/kojiint"
	"github.com/l3montree-dev/updatehub/integrations/mailint"
	"github.com/l3montree-dev/updatehub/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			kojiint.NewKojiClient,
			fx.As(new(shared.BuildTagGateway)),
		),
		fx.Annotate(
			bugzillaint.NewBugzillaClient,
			fx.As(new(shared.TicketGateway)),
		),
		fx.Annotate(
			mailint.NewMailQueueClient,
			fx.As(new(shared.NotificationGateway)),
		),
	),
)
