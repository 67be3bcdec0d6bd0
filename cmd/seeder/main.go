// Seeder backfills the review store from a JSON fixture. Rows go
// through the same validation path as live submissions, so a bad
// fixture row is skipped and logged, never half-written.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"matcha_map/internal/adapters/observability"
	redisad "matcha_map/internal/adapters/redis"
	"matcha_map/internal/app"
	"matcha_map/internal/catalog"
	"matcha_map/internal/domain"
	"matcha_map/internal/shared"
	mysqlrepo "matcha_map/internal/storage/mysql"
)

type seedRow struct {
	CafeID  string `json:"cafe_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var rows []seedRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	store := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewReviewService(catalog.All(), store, cache)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for i, row := range rows {
		i, row := i, row

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			_, err := svc.SubmitReview(ctx, domain.NewReview{
				CafeID:  row.CafeID,
				Rating:  row.Rating,
				Comment: row.Comment,
				Author:  row.Author,
			})
			if err != nil {
				log.Warn().Int("row", i).Str("cafe", row.CafeID).Err(err).Msg("seed row skipped")
				return
			}
			log.Info().Int("row", i).Str("cafe", row.CafeID).Msg("seed row ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
