package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"marketdash/internal/classify"
	"marketdash/internal/client/dataplane"
	"marketdash/internal/config"
	cronrunner "marketdash/internal/cron"
	"marketdash/internal/feed"
	"marketdash/internal/handler"
	"marketdash/internal/logger"
	"marketdash/internal/metrics"
	"marketdash/internal/rank"
	"marketdash/internal/view"

	_ "marketdash/docs"
)

func main() {
	cfgPath := os.Getenv("MD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("MD_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	upstreamHTTP := &http.Client{Timeout: cfg.Upstream.Timeout}
	client := dataplane.NewClient(upstreamHTTP, cfg.Upstream.BaseURL, cfg.Upstream.APIKey)
	recorder := metrics.New()

	lagPolicy := classify.LagPolicy{
		WarnAfter: cfg.Lag.WarnAfter,
		BadAfter:  cfg.Lag.BadAfter,
	}
	feeds := feed.NewController(client, logger, cfg.Feeds.Limit, time.Now)
	board := &rank.Board{}
	builder := view.NewBuilder(lagPolicy, feeds, board, time.Now)

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{View: builder}
	healthHandler.Register(engine)
	proxyHandler := &handler.ProxyHandler{
		Client:  client,
		Logger:  logger,
		Metrics: recorder,
	}
	proxyHandler.Register(engine)
	dashboardHandler := &handler.DashboardHandler{View: builder}
	dashboardHandler.Register(engine)
	liveHandler := &handler.LiveHandler{
		View:     builder,
		Logger:   logger,
		Metrics:  recorder,
		Interval: cfg.Live.PushInterval,
	}
	liveHandler.Register(engine)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pollStats := func(ctx context.Context) {
		stats, err := client.Stats(ctx)
		recorder.RecordPoll("stats", err)
		if err != nil {
			builder.ApplyStatsError(err)
			logger.Warn("stats poll failed", zap.Error(err))
			return
		}
		builder.ApplyStats(stats)
	}
	pollStreamLag := func(ctx context.Context) {
		lag, err := client.StreamLag(ctx)
		recorder.RecordPoll("stream_lag", err)
		if err != nil {
			builder.ApplyStreamLagError(err)
			logger.Warn("stream lag poll failed", zap.Error(err))
			return
		}
		builder.ApplyStreamLag(lag)
	}
	pollStrategies := func(ctx context.Context) {
		list, err := client.Strategies(ctx)
		recorder.RecordPoll("strategies", err)
		if err != nil {
			board.ApplyError(err)
			logger.Warn("strategies poll failed", zap.Error(err))
			return
		}
		board.ApplySuccess(list, time.Now().UTC())
	}
	pollFeed := func(tab feed.Tab) func(context.Context) {
		return func(ctx context.Context) {
			err := feeds.Poll(ctx, tab)
			recorder.RecordPoll("events_"+string(tab), err)
			if err != nil {
				logger.Warn("event feed poll failed",
					zap.String("feed", string(tab)),
					zap.Error(err),
				)
			}
		}
	}

	cronRunner := cronrunner.New(logger, ctx)
	pollers := []struct {
		name string
		spec string
		job  func(context.Context)
	}{
		{"stats", "@every " + cfg.Poll.Stats.String(), pollStats},
		{"stream_lag", "@every " + cfg.Poll.StreamLag.String(), pollStreamLag},
		{"strategies", "@every " + cfg.Poll.Strategies.String(), pollStrategies},
		{"events_new_markets", "@every " + cfg.Poll.Events.String(), pollFeed(feed.TabNewMarkets)},
		{"events_price_jumps", "@every " + cfg.Poll.Events.String(), pollFeed(feed.TabPriceJumps)},
	}
	for _, p := range pollers {
		if _, err := cronRunner.Add(p.name, p.spec, p.job); err != nil {
			logger.Fatal("cron register failed",
				zap.String("job", p.name),
				zap.Error(err),
			)
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	// Prime every snapshot once before serving so the first page load
	// isn't empty while the timers wind up.
	primeCtx, cancelPrime := context.WithTimeout(ctx, cfg.Upstream.Timeout+5*time.Second)
	for _, p := range pollers {
		p.job(primeCtx)
	}
	cancelPrime()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
