package container

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/dengnews/shortlink/internal/analytics"
	analyticsstore "github.com/dengnews/shortlink/internal/analytics/store"
	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/handlers"
	"github.com/dengnews/shortlink/internal/health"
	"github.com/dengnews/shortlink/internal/messaging"
	"github.com/dengnews/shortlink/internal/middleware"
	"github.com/dengnews/shortlink/internal/ratelimit"
	"github.com/dengnews/shortlink/internal/shortlink"
	"github.com/dengnews/shortlink/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// PostgresPackage provides the pgx pool, or nil when no DSN is configured.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		if options.PostgresDSN == "" {
			return nil, nil
		}

		return pgxpool.New(context.Background(), options.PostgresDSN)
	})
}

// RepositoryPackage provides the mapping store, article store, generator,
// and resolver. With a Postgres pool the stores are database-backed and the
// mapping store gains a Redis read cache; without one the service runs on
// memory stores seeded from the fixture catalog.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortlink.MappingStore, error) {
		options := do.MustInvoke[*Options](i)
		pool := do.MustInvoke[*pgxpool.Pool](i)

		var links shortlink.MappingStore
		if pool != nil {
			links = store.NewPostgresLinkStore(pool)
		} else {
			links = store.NewMemoryLinkStore()
		}

		if options.CacheTTL > 0 {
			client := do.MustInvoke[*redis.Client](i)
			links = store.NewRedisLinkCache(links, client, options.CacheTTL)
		}

		return links, nil
	})

	do.Provide(injector, func(i *do.Injector) (content.Store, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)

		if pool != nil {
			return store.NewPostgresContentStore(pool), nil
		}

		return store.NewMemoryContentStore(content.Seed()), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortlink.Generator, error) {
		newCode, err := shortlink.NewCodeFunc()
		if err != nil {
			return nil, err
		}

		return shortlink.NewGenerator(do.MustInvoke[shortlink.MappingStore](i), newCode), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortlink.Resolver, error) {
		options := do.MustInvoke[*Options](i)

		return shortlink.NewResolver(
			do.MustInvoke[shortlink.MappingStore](i),
			do.MustInvoke[content.Store](i),
			content.Locale(options.DefaultLocale),
			options.LookupTimeout,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// RateLimitPackage provides the limiter, counting in memory under the
// default policy.
func RateLimitPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*ratelimit.Limiter, error) {
		return ratelimit.NewLimiter(store.NewRateLimitMemoryStore(), ratelimit.DefaultPolicy()), nil
	})
}

// PublisherGroupPackage provides the watermill publisher over Redis streams
// and the typed publish functions for the analytics topics.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client := do.MustInvoke[*redis.Client](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: client,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.LinkCreatedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.Typed[analytics.LinkCreatedEvent](group, analytics.TopicLinkCreated), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.LinkResolvedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.Typed[analytics.LinkResolvedEvent](group, analytics.TopicLinkResolved), nil
	})
}

// ConsumerGroupPackage provides the analytics consumer group for the
// consumer binary.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		client := do.MustInvoke[*redis.Client](i)
		pool := do.MustInvoke[*pgxpool.Pool](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: "link-analytics",
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		var events analytics.Store
		if pool != nil {
			events = analyticsstore.NewPostgres(pool)
		} else {
			events = analyticsstore.NewNoop(logger)
		}

		group := messaging.NewConsumerGroup(logger)
		group.Add(analytics.NewConsumer(subscriber, events, logger))

		return group, nil
	})
}

// HTTPPackage provides the router and the huma API with all routes and
// middleware registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		api := humachi.New(router, huma.DefaultConfig("Deng News Short Links", "1.0.0"))

		api.UseMiddleware(
			middleware.RequestMeta(api),
			middleware.RateLimit(api, do.MustInvoke[*ratelimit.Limiter](i), logger),
		)

		linkHandler := handlers.NewLinkHandler(
			do.MustInvoke[*shortlink.Generator](i),
			do.MustInvoke[*shortlink.Resolver](i),
			options.BaseURL,
			content.Locale(options.DefaultLocale),
			do.MustInvoke[messaging.Publish[analytics.LinkCreatedEvent]](i),
			do.MustInvoke[messaging.Publish[analytics.LinkResolvedEvent]](i),
			logger,
		)
		handlers.RegisterRoutes(api, linkHandler)

		var postgres health.Checker

		if pool := do.MustInvoke[*pgxpool.Pool](i); pool != nil {
			postgres = health.NewPostgresChecker(pool)
		}

		redisChecker := health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
		health.RegisterRoutes(api, health.NewHandler(redisChecker, postgres))

		return api, nil
	})
}
