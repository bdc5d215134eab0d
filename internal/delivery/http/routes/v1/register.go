package v1

import (
	"log"

	"jobscout/internal/database"
	"jobscout/internal/delivery/http/handler"
	"jobscout/internal/repository"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, db database.DB, cache usecase.RankCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jobRepo := repository.NewPostgresJobRepository(db)
	feedbackRepo := repository.NewPostgresFeedbackRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	reputableRepo := repository.NewPostgresReputableRepository(db)

	jobsUC := usecase.NewJobsUsecase(jobRepo, feedbackRepo)
	ingestUC := usecase.NewIngestUsecase(jobRepo, cache, logger)
	rankingUC := usecase.NewRankingUsecase(jobRepo, profileRepo, cache, logger)
	filterUC := usecase.NewFilterUsecase(jobRepo, profileRepo, reputableRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, reputableRepo)

	handler.NewJobsHandler(jobsUC, ingestUC).RegisterRoutes(r)
	handler.NewRankHandler(rankingUC).RegisterRoutes(r)
	handler.NewFilterHandler(filterUC).RegisterRoutes(r)
	handler.NewProfileHandler(profileUC).RegisterRoutes(r)
}
