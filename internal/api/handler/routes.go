package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/toy-store-api/internal/api/handler/router"
	"github.com/vfg2006/toy-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/toy-store-api/internal/usecases/customer"
	"github.com/vfg2006/toy-store-api/internal/usecases/reporting"
	"github.com/vfg2006/toy-store-api/internal/usecases/selling"
	"github.com/vfg2006/toy-store-api/pkg/middleware"
)

var authenticated = []func(http.Handler) http.Handler{middleware.Authenticated()}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: authenticated,
		},
	}
}

func Customers(service customer.CustomerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateCustomer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCustomer(service),
			Middlewares: authenticated,
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateSale(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: authenticated,
		},
	}
}

func Stats(aggregator reporting.SalesAggregator, snapshots SnapshotReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stats/daily",
			Method:      http.MethodGet,
			Handler:     GetDailySalesStats(aggregator),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/stats/top-customers",
			Method:      http.MethodGet,
			Handler:     GetTopCustomers(aggregator),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/stats/top-customers/snapshot",
			Method:      http.MethodGet,
			Handler:     GetTopCustomersSnapshot(snapshots),
			Middlewares: authenticated,
		},
	}
}

func Cron(jobs CronJobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: authenticated,
		},
	}
}
