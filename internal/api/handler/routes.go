package handler

import (
	"net/http"

	"github.com/vfg2006/performance-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/dashboarding"
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

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/reload",
			Method:  http.MethodPost,
			Handler: ReloadDashboard(service),
		},
	}
}

func Channels(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/channels",
			Method:  http.MethodGet,
			Handler: GetChannels(service),
		},
		{
			Path:    "/v1/channels/toggle",
			Method:  http.MethodPost,
			Handler: ToggleChannel(service),
		},
		{
			Path:    "/v1/channels/reset",
			Method:  http.MethodPost,
			Handler: ResetChannels(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
