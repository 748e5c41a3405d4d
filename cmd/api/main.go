package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rates-service/internal/adapter/coindesk"
	"rates-service/internal/adapter/postgres"
	"rates-service/internal/handler"
	"rates-service/internal/security"
	"rates-service/internal/service"
	"rates-service/internal/usecase"
	"rates-service/pkg/config"
	"rates-service/pkg/i18n"
	"rates-service/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log := logger.Init(cfg.Log.Level)

	log.Info("Starting app...")

	// initialize db pool
	dbPool, err := postgres.InitDBPool(*cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize db pool")
	}
	defer dbPool.Close()

	// initialize adapters
	feedClient := coindesk.NewClient(cfg.CoinDesk.URL, time.Duration(cfg.CoinDesk.TimeoutSeconds)*time.Second, log)
	log.Info("Initialized CoinDesk feed client")

	db := postgres.NewCurrencyRepo(dbPool, log)
	log.Info("Initialized currency repository")

	// key material is loaded once here and shared read-only afterwards
	signer, err := security.NewSigner(cfg.RSA.PrivateKey, cfg.RSA.PublicKey, log)
	if err != nil {
		log.Fatalf("Failed to initialize RSA signer: %v", err)
	}
	if signer.Ephemeral() {
		log.Warn("Running with ephemeral RSA keys, do not use in production")
	}

	cipher, err := security.NewFieldCipher([]byte(cfg.AES.Key), []byte(cfg.AES.IV))
	if err != nil {
		log.Fatalf("Failed to initialize AES field cipher: %v", err)
	}
	log.Info("Initialized key material")

	localizer := i18n.New()

	// initialize services
	ratesService := service.NewRatesService(feedClient, db, signer, log)
	currencyService := service.NewCurrencyService(db, localizer, log)
	secureService := service.NewSecureCurrencyService(currencyService, cipher, localizer, log)
	log.Info("Initialized service layer")

	// initialize usecases
	ratesUsecase := usecase.NewRatesUsecase(ratesService, log)
	currencyUsecase := usecase.NewCurrencyUsecase(currencyService, secureService, log)
	log.Info("Initialized usecase layer")

	ratesHandler := handler.NewRatesHandler(ratesUsecase, log)
	currencyHandler := handler.NewCurrencyHandler(currencyUsecase, log)
	secureHandler := handler.NewSecureCurrencyHandler(currencyUsecase, log)

	r := gin.Default()

	// cors middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: false,
	}))

	api := r.Group("/api")
	{
		api.GET("/rates", ratesHandler.GetRates)
		api.GET("/rates/signed", ratesHandler.GetSignedRates)
		api.POST("/rates/verify", ratesHandler.VerifyRates)

		api.GET("/currencies", currencyHandler.ListCurrencies)
		api.GET("/currencies/:id", currencyHandler.GetCurrency)
		api.POST("/currencies", currencyHandler.CreateCurrency)
		api.PUT("/currencies/:id", currencyHandler.UpdateCurrency)
		api.DELETE("/currencies/:id", currencyHandler.DeleteCurrency)

		api.GET("/secure/currencies/:id", secureHandler.GetDecryptedCurrency)
		api.POST("/secure/currencies", secureHandler.CreateEncryptedCurrency)
		api.PUT("/secure/currencies/:id", secureHandler.UpdateEncryptedCurrency)
	}

	// task scheduler: daily feed health probe
	c := cron.New()

	_, err = c.AddFunc("0 8 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		snapshot := feedClient.CurrentPrice(ctx)
		if snapshot.IsMock {
			log.Warn("Feed health probe: CoinDesk unavailable, serving mock data")
		} else {
			log.Infof("Feed health probe: live feed OK, updated %s", snapshot.Time.UpdatedISO)
		}
	})
	if err != nil {
		log.Fatalf("Error adding feed probe to scheduler: %v", err)
	}

	c.Start()
	log.Info("Scheduler initialized, feed probe runs daily at 08:00")

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Server starting on port %s...", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Got shutdown signal...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Error server shutdown:", err)
	}
	log.Info("Server stopped")

	c.Stop()
	log.Info("Scheduler stopped")

	log.Info("Gracefully shut down")
}
