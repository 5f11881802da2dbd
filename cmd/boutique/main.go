package main

import (
	"context"
	"log/slog"
	"os"

	"boutique/config"
	"boutique/internal/delivery"
	"boutique/internal/delivery/http"
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"
	"boutique/internal/domain/pricing"
	"boutique/internal/infra/auth"
	"boutique/internal/infra/cartstore"
	"boutique/internal/infra/identity"
	logs "boutique/internal/infra/log"
	"boutique/internal/infra/payment/stripe"
	"boutique/internal/infra/persistence/postgres"
	"boutique/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cartstore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			cartstore.NewCartStorage,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			identity.NewContextIdentityService,
			stripe.NewPaymentService,
			newPricingPolicy,
			newTrackingLocation,
		),
	)
}

// newPricingPolicy builds the jurisdiction policy from configuration,
// falling back to the French defaults when the section is absent.
func newPricingPolicy(cfg *config.Config) pricing.Policy {
	if cfg.Pricing == nil {
		return pricing.DefaultPolicy()
	}

	policy := pricing.Policy{
		VATRate:               decimal.NewFromFloat(cfg.Pricing.VATRate),
		ShippingFlatRate:      decimal.NewFromFloat(cfg.Pricing.ShippingFlatRate),
		FreeShippingThreshold: decimal.NewFromFloat(cfg.Pricing.FreeShippingThreshold),
		Currency:              cfg.Pricing.Currency,
	}
	if policy.Currency == "" {
		policy.Currency = pricing.DefaultPolicy().Currency
	}

	return policy
}

// newTrackingLocation resolves the default location stamped on tracking
// events.
func newTrackingLocation(cfg *config.Config) impl.TrackingLocation {
	if cfg.Tracking == nil || cfg.Tracking.DefaultLocation == "" {
		return "Paris, France"
	}

	return impl.TrackingLocation(cfg.Tracking.DefaultLocation)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
