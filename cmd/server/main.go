package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lcintel/internal/chat"
	"lcintel/internal/config"
	"lcintel/internal/email/noop"
	"lcintel/internal/email/ses"
	"lcintel/internal/extract"
	"lcintel/internal/extract/gemini"
	"lcintel/internal/extract/openai"
	"lcintel/internal/external/apininjas"
	"lcintel/internal/external/exa"
	"lcintel/internal/external/geoapify"
	"lcintel/internal/external/perplexity"
	"lcintel/internal/handler"
	"lcintel/internal/ocr/textract"
	"lcintel/internal/pipeline"
	"lcintel/internal/port"
	"lcintel/internal/repository/postgres"
	"lcintel/internal/router"
	s3storage "lcintel/internal/storage/s3"
	"lcintel/internal/unlocode"
	"lcintel/internal/validator"
	"lcintel/internal/verify"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The record store is optional. Without it the server still runs
	// the full pipeline; only customer lookups and location search are
	// unavailable.
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Printf("server: record store unavailable, continuing without it: %v", err)
		db = nil
	} else {
		defer db.Close()
	}

	locodeIndex := unlocode.NewIndex(nil)
	var customerH *handler.CustomerHandler
	var portH *handler.PortHandler
	if db != nil {
		locodeRepo := postgres.NewLocodeRepo(db)
		entries, err := locodeRepo.LoadAll(context.Background())
		if err != nil {
			log.Printf("server: loading locations failed, location search disabled: %v", err)
		} else {
			locodeIndex = unlocode.NewIndex(entries)
			log.Printf("server: loaded %d locations", locodeIndex.Len())
			portH = handler.NewPortHandler(locodeIndex)
		}
		customerH = handler.NewCustomerHandler(postgres.NewCustomerRepo(db))
	}

	// Field extraction with provider fallback
	extract.RegisterProvider("gemini", func(c *config.ExtractProviderConfig) (port.FieldExtractor, error) {
		return gemini.NewExtractor(c), nil
	})
	extract.RegisterProvider("openai", func(c *config.ExtractProviderConfig) (port.FieldExtractor, error) {
		return openai.NewExtractor(c), nil
	})

	var extractors []port.FieldExtractor
	var names []string
	for _, pc := range []*config.ExtractProviderConfig{cfg.Extract.PrimaryConfig(), cfg.Extract.SecondaryConfig()} {
		if pc == nil {
			continue
		}
		e, err := extract.NewExtractor(pc)
		if err != nil {
			return fmt.Errorf("failed to initialize extractor: %w", err)
		}
		extractors = append(extractors, e)
		names = append(names, pc.Provider)
	}
	if len(extractors) == 0 {
		return errors.New("no extraction provider configured")
	}

	var ocrReader port.OCRReader
	if cfg.Extract.OCR.Provider == "textract" {
		ocrReader, err = textract.NewTextractReader(cfg.Extract.OCR.Region)
		if err != nil {
			return fmt.Errorf("failed to initialize OCR reader: %w", err)
		}
	}

	providerCfgs := map[string]config.ExtractProviderConfig{}
	for _, pc := range []*config.ExtractProviderConfig{cfg.Extract.PrimaryConfig(), cfg.Extract.SecondaryConfig()} {
		if pc != nil {
			providerCfgs[pc.Provider] = *pc
		}
	}
	extractSvc := extract.NewService(extract.NewFallbackExtractor(extractors, names), ocrReader).
		WithProviderResolver(func(provider, model string) (port.FieldExtractor, error) {
			pc, ok := providerCfgs[provider]
			if !ok {
				return nil, fmt.Errorf("extraction provider %q is not configured", provider)
			}
			if model != "" {
				pc.DefaultModel = model
			}
			return extract.NewExtractor(&pc)
		})

	// External verification providers. Nil clients degrade the
	// corresponding tool tiers rather than disabling the toolset.
	var swiftDir port.SwiftDirectory
	if cfg.Verify.APINinjasKey != "" {
		swiftDir = apininjas.NewClient(&cfg.Verify)
	}
	var geocoder port.Geocoder
	if cfg.Verify.GeoapifyKey != "" {
		geocoder = geoapify.NewClient(&cfg.Verify)
	}
	var researcher port.Researcher
	if cfg.Verify.PerplexityKey != "" {
		researcher = perplexity.NewClient(&cfg.Verify)
	}
	var searcher port.Searcher
	if cfg.Verify.ExaKey != "" {
		searcher = exa.NewClient(&cfg.Verify)
	}

	toolset := verify.NewToolset(&cfg.Verify, swiftDir, geocoder, researcher, searcher, locodeIndex)
	dispatcher := verify.NewDispatcher(toolset, cfg.Verify.Concurrency, time.Duration(cfg.Verify.TimeoutSecs)*time.Second)

	// Conversation over the same provider as primary extraction
	var chatModel port.ChatModel
	switch cfg.Extract.Primary.Provider {
	case "openai":
		chatModel = openai.NewChatModel(&cfg.Extract.Primary)
	default:
		chatModel = gemini.NewChatModel(&cfg.Extract.Primary)
	}
	aggregator := chat.NewAggregator(chatModel, &cfg.Chat)
	research := chat.NewResearchService(dispatcher)

	engine := validator.NewDefaultEngine()
	svc := pipeline.NewService(
		pipeline.NewManager(),
		extractSvc,
		engine,
		dispatcher,
		aggregator,
		research,
	)

	// Session archival to object storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		log.Printf("server: object storage unavailable, archival disabled: %v", err)
	} else {
		svc.WithArchive(s3Client, cfg.S3.Bucket)
	}

	// Compliance alerts on sanctions findings
	if cfg.Email.AlertTo != "" {
		var sender port.EmailSender
		if cfg.Email.Provider == "ses" {
			sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
			if err != nil {
				return fmt.Errorf("failed to initialize SES sender: %w", err)
			}
		} else {
			sender = noop.NewNoopSender()
		}
		svc.WithComplianceAlerts(sender, cfg.Email.AlertTo)
	}

	r := router.Setup(
		cfg,
		handler.NewSessionHandler(svc),
		handler.NewVerifyHandler(dispatcher, toolset),
		handler.NewValidateHandler(engine),
		handler.NewFieldHandler(),
		customerH,
		portH,
		handler.NewHealthHandler(db),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("Server stopped")
	return nil
}
