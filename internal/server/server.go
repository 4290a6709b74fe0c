// Package server mirrors the gateway operations as an HTTP/JSON API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/echo8/krpc/internal/config"
	"github.com/echo8/krpc/internal/gateway"
	"github.com/echo8/krpc/internal/metric"
	"github.com/echo8/krpc/model"

	"github.com/facebookgo/grace/gracehttp"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server interface {
	Run() error
	ServeHTTP(w http.ResponseWriter, req *http.Request)
}

type server struct {
	cfg     *config.HttpConfig
	gw      *gateway.Gateway
	metrics metric.Service

	engine *gin.Engine
	srv    *http.Server
}

func NewServer(cfg *config.HttpConfig, gw *gateway.Gateway, ms metric.Service) (Server, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), ms.GinMiddleware())
	if cfg.Cors != nil {
		engine.Use(cors.New(cfg.Cors.GinConfig()))
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
	s := &server{cfg: cfg, gw: gw, metrics: ms, engine: engine, srv: srv}
	s.registerRoutes()
	return s, nil
}

func (s *server) registerRoutes() {
	v1 := s.engine.Group("/v1")

	v1.POST("/produce", bodyHandler(s.gw.Produce))
	v1.POST("/produce/batch", bodyHandler(s.gw.BatchProduce))
	v1.POST("/consume", bodyHandler(s.gw.Consume))
	v1.GET("/topics/:topic/partitions/:partition/stream", s.streamConsume)
	v1.POST("/offsets/commit", bodyHandler(s.gw.CommitOffset))

	v1.GET("/topics", paramHandler(s.gw.ListTopics, func(*gin.Context) *model.ListTopicsRequest {
		return &model.ListTopicsRequest{}
	}))
	v1.POST("/topics", bodyHandler(s.gw.CreateTopic))
	v1.GET("/topics/:topic", paramHandler(s.gw.DescribeTopic, func(c *gin.Context) *model.DescribeTopicRequest {
		return &model.DescribeTopicRequest{Topic: c.Param("topic")}
	}))
	v1.DELETE("/topics/:topic", paramHandler(s.gw.DeleteTopic, func(c *gin.Context) *model.DeleteTopicRequest {
		return &model.DeleteTopicRequest{Topic: c.Param("topic")}
	}))

	v1.GET("/groups", paramHandler(s.gw.ListConsumerGroups, func(*gin.Context) *model.ListConsumerGroupsRequest {
		return &model.ListConsumerGroupsRequest{}
	}))
	v1.GET("/groups/:group", paramHandler(s.gw.DescribeConsumerGroup, func(c *gin.Context) *model.DescribeConsumerGroupRequest {
		return &model.DescribeConsumerGroupRequest{GroupId: c.Param("group")}
	}))

	v1.GET("/smartmodules", paramHandler(s.gw.ListSmartModules, func(*gin.Context) *model.ListSmartModulesRequest {
		return &model.ListSmartModulesRequest{}
	}))
	v1.POST("/smartmodules", bodyHandler(s.gw.CreateSmartModule))
	v1.GET("/smartmodules/:name", paramHandler(s.gw.DescribeSmartModule, func(c *gin.Context) *model.DescribeSmartModuleRequest {
		return &model.DescribeSmartModuleRequest{Name: c.Param("name")}
	}))
	v1.PUT("/smartmodules/:name", bodyHandler(s.gw.UpdateSmartModule))
	v1.DELETE("/smartmodules/:name", paramHandler(s.gw.DeleteSmartModule, func(c *gin.Context) *model.DeleteSmartModuleRequest {
		return &model.DeleteSmartModuleRequest{Name: c.Param("name")}
	}))

	s.engine.GET("/healthcheck", paramHandler(s.gw.HealthCheck, func(*gin.Context) *model.HealthCheckRequest {
		return &model.HealthCheckRequest{}
	}))

	for _, r := range s.engine.Routes() {
		slog.Debug("Added route.", "method", r.Method, "path", r.Path)
	}
}

// bodyHandler decodes the JSON request body before calling the gateway.
func bodyHandler[Req, Resp any](fn func(context.Context, *Req) (*Resp, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respond(c, fn, &req)
	}
}

// paramHandler builds the request from the path instead of the body.
func paramHandler[Req, Resp any](fn func(context.Context, *Req) (*Resp, error), build func(*gin.Context) *Req) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, fn, build(c))
	}
}

func respond[Req, Resp any](c *gin.Context, fn func(context.Context, *Req) (*Resp, error), req *Req) {
	res, err := fn(c.Request.Context(), req)
	if err != nil {
		handleGatewayError(err, c)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *server) streamConsume(c *gin.Context) {
	partition, err := strconv.ParseInt(c.Param("partition"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partition: " + c.Param("partition")})
		return
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset: " + c.Query("offset")})
		return
	}
	req := &model.StreamConsumeRequest{Topic: c.Param("topic"), Partition: int32(partition), Offset: offset}

	ctx := c.Request.Context()
	err = s.gw.StreamConsume(ctx, req, func(msg *model.ConsumedMessage) error {
		c.SSEvent("message", msg)
		c.Writer.Flush()
		return nil
	})
	if ctx.Err() != nil {
		return
	}
	if !c.Writer.Written() {
		handleGatewayError(err, c)
		return
	}
	slog.Error("Stream ended with error.", "topic", req.Topic, "partition", req.Partition, "error", err)
	c.SSEvent("error", gin.H{"error": err.Error()})
	c.Writer.Flush()
}

func handleGatewayError(err error, c *gin.Context) {
	if errors.Is(err, context.Canceled) {
		c.Status(499)
		return
	}
	slog.Error("Gateway request failed.", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *server) Run() error {
	slog.Info("Serving HTTP.", "addr", s.srv.Addr)
	return gracehttp.Serve(s.srv)
}

func (s *server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.engine.ServeHTTP(w, req)
}
