package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	"github.com/spf13/pflag"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"resume-analyzer-go/internal/api/handler"
	"resume-analyzer-go/internal/api/router"
	"resume-analyzer-go/internal/config"
	appCoreLogger "resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/ner"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/processor"
	"resume-analyzer-go/internal/recommender"
	"resume-analyzer-go/internal/storage"
)

func main() {
	var configPath string
	var sampleConfigPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.StringVar(&sampleConfigPath, "sample-config", "", "Write a sample config file to this path and exit")
	pflag.Parse()

	if sampleConfigPath != "" {
		if err := config.CreateSampleConfig(sampleConfigPath); err != nil {
			glog.Fatalf("创建示例配置失败: %v", err)
		}
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 技能关键词库与NER词表加载失败都是致命错误，进程不允许半初始化地对外服务
	skillSet, err := storage.LoadSkillSet(cfg.SkillCache.CacheFile, cfg.SkillCache.DatasetCSV)
	if err != nil {
		glog.Fatalf("初始化技能关键词库失败: %v", err)
	}
	glog.Infof("技能关键词库初始化成功 (%d项)", skillSet.Len())

	annotator, err := ner.NewAnnotator(cfg.NER.LexiconPath, ner.WithHeadLines(cfg.NER.HeadLines))
	if err != nil {
		glog.Fatalf("初始化NER标注器失败: %v", err)
	}
	glog.Info("NER标注器初始化成功")

	pdfExtractor, err := parser.NewPDFTextExtractor(ctx)
	if err != nil {
		glog.Fatalf("创建PDF提取器失败: %v", err)
	}
	glog.Info("PDF提取器初始化成功")

	strategy, err := recommender.NewStrategy(cfg.Recommender.Strategy, cfg.Recommender.FuzzyThreshold)
	if err != nil {
		glog.Fatalf("初始化匹配策略失败: %v", err)
	}
	engine := recommender.NewEngine(strategy, recommender.WithTopN(cfg.Recommender.TopN))
	glog.Infof("推荐引擎初始化成功 (策略: %s)", strategy.Name())

	analyzer := processor.NewResumeAnalyzer([]processor.ComponentOpt{
		processor.WithcompPdfextractor(pdfExtractor),
		processor.WithcompAnnotator(annotator),
		processor.WithcompSkills(skillSet),
		processor.WithcompEngine(engine),
	})
	glog.Info("ResumeAnalyzer初始化成功")

	resumeHandler := handler.NewResumeHandler(cfg, analyzer)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithMaxRequestBodySize(int(cfg.MaxFileSizeBytes())+1<<20),
	)
	h.Use(router.Recovery())
	h.Use(cors.Default())
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	// Hertz 的日志也走同一个 zerolog 实例
	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	if cfg.Logger.Level == "debug" {
		glog.SetLevel(glog.LevelDebug)
	} else {
		glog.SetLevel(glog.LevelInfo)
	}
}
