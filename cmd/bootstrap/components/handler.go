package components

import (
	"fastrider/internal/handler"
	"fastrider/internal/handler/api"
	"fastrider/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFastRiderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
