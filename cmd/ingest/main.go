// Batch ingester: walks a folder of markdown postings and upserts each one
// into the job store. Intended for the scraping collaborator's drop
// directories (inbox/ and liked/).
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobscout/internal/app"
	"jobscout/internal/config"
	"jobscout/internal/database/migration"
	"jobscout/internal/repository"
	"jobscout/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	dir := flag.String("dir", "", "folder of *.md job postings")
	bucket := flag.String("bucket", repository.BucketInbox, "target bucket: inbox or liked")
	flag.Parse()

	_ = godotenv.Load()

	if strings.TrimSpace(*dir) == "" {
		log.Fatalf("provide -dir")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := (migration.Runner{Dir: "migrations"}).Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ingestUC := usecase.NewIngestUsecase(repository.NewPostgresJobRepository(c.DB), c.Cache, c.Logger)

	paths, err := filepath.Glob(filepath.Join(*dir, "*.md"))
	if err != nil {
		log.Fatalf("bad -dir: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ok, failed := 0, 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[Ingest] skip %s: %v", path, err)
			failed++
			continue
		}

		jobID, err := ingestUC.IngestFile(ctx, path, content, *bucket)
		if err != nil {
			log.Printf("[Ingest] failed %s: %v", path, err)
			failed++
			continue
		}
		log.Printf("[Ingest] upserted job=%s from %s", jobID, path)
		ok++
	}

	log.Printf("[Ingest] done: %d upserted, %d failed", ok, failed)
}
