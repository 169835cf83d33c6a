// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling with retry, goose schema migrations,
// health checks, and common error helpers.
//
//	import "github.com/jnbao2020/saleor/pkg/pg"
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    log.Fatal(err)
//	}
//
// Config fields are populated from PG_* environment variables via
// github.com/caarlos0/env tags. Error helpers such as IsNotFoundError and
// IsDuplicateKeyError classify pgx errors so storage layers can map them to
// domain errors without importing pgconn everywhere.
package pg
