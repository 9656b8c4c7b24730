package http

import (
	"ResearchAssistant/internal/config"
	"ResearchAssistant/internal/middleware/requestid"
	researchService "ResearchAssistant/internal/modules/research/application/service"
	"ResearchAssistant/internal/modules/research/domain/research"
	"ResearchAssistant/internal/modules/research/infrastructure/gemini"
	researchHandler "ResearchAssistant/internal/modules/research/interface/http"
	"ResearchAssistant/pkg/back"
	"ResearchAssistant/pkg/ssl"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine 根据配置装配路由，外部模型使用 Gemini
func NewEngine(conf *config.Config) *gin.Engine {
	client := gemini.NewClient(conf.Gemini.API.URL, conf.Gemini.API.Key, conf.GeminiTimeout())
	return NewEngineWithGenerator(conf, client)
}

// NewEngineWithGenerator 装配路由，外部模型由调用方注入
func NewEngineWithGenerator(conf *config.Config, generator research.ContentGenerator) *gin.Engine {
	ge := gin.New()
	ge.Use(gin.Recovery())
	ge.Use(requestid.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestid.HeaderName}
	corsConfig.ExposeHeaders = []string{requestid.HeaderName}
	ge.Use(cors.New(corsConfig))

	if conf.MainConfig.ForceSSL {
		ge.Use(ssl.TlsHandler())
	}

	researchSvc := researchService.NewResearchService(generator)
	researchH := researchHandler.NewResearchHandler(researchSvc)

	ge.GET("/ping", func(c *gin.Context) {
		back.Success(c, "pong")
	})

	api := ge.Group("/api/research")
	api.POST("/process", researchH.Process)

	return ge
}
