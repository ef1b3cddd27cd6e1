package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hazzamyman/ricd-portal/internal/auth"
	"github.com/hazzamyman/ricd-portal/internal/config"
	"github.com/hazzamyman/ricd-portal/internal/db"
	"github.com/hazzamyman/ricd-portal/internal/excel"
	httphandler "github.com/hazzamyman/ricd-portal/internal/http"
	"github.com/hazzamyman/ricd-portal/internal/http/middleware"
	"github.com/hazzamyman/ricd-portal/internal/logger"
	"github.com/hazzamyman/ricd-portal/internal/pdf"
	"github.com/hazzamyman/ricd-portal/internal/repository"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	referenceRepo := repository.NewReferenceRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	fundingRepo := repository.NewFundingRepository(database)
	reportRepo := repository.NewReportRepository(database)
	visibilityRepo := repository.NewVisibilityRepository(database)

	accessTTL, err := time.ParseDuration(cfg.Auth.AccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_ACCESS_TTL")
	}
	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, accessTTL)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	exporter := excel.NewExporter()

	userService := service.NewUserService(userRepo, issuer)
	projectService := service.NewProjectService(projectRepo, referenceRepo)
	firstPayPct := decimal.NewFromFloat(cfg.Portal.DefaultFirstPayPct)
	fundingService := service.NewFundingService(fundingRepo, projectRepo, firstPayPct, log)
	reportService := service.NewReportService(reportRepo, projectRepo, cfg.Portal.AttachmentDir, log)
	visibilityService := service.NewVisibilityService(visibilityRepo)
	dashboardService := service.NewDashboardService(projectRepo, reportRepo)
	importService := service.NewImportService(referenceRepo, projectRepo, log)
	referenceService := service.NewReferenceService(referenceRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		userService,
		projectService,
		fundingService,
		reportService,
		visibilityService,
		dashboardService,
		importService,
		referenceService,
		exporter,
		pdfGenerator,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting portal")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
