package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/api/handler/router"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/scheduler/tick"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/authenticating"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/commanding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dispatch(cfg *config.Config, tick *tick.DispatchTickService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dispatch/run",
			Method:  http.MethodGet,
			Handler: RunDispatch(cfg, tick),
		},
		{
			Path:    "/v1/dispatch/status",
			Method:  http.MethodGet,
			Handler: DispatchStatus(tick),
		},
		{
			Path:    "/v1/dispatch/trigger",
			Method:  http.MethodPost,
			Handler: TriggerDispatch(tick),
		},
	}
}

func Webhook(service *commanding.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhook/chat",
			Method:  http.MethodPost,
			Handler: ChatWebhook(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
