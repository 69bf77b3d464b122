// Package http 铸造页面的 HTTP 服务
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/internal/api/http/handlers"
	"github.com/c0np4nn4/dapp-practice/internal/api/http/middleware"
	apiconfig "github.com/c0np4nn4/dapp-practice/internal/config/api"
	"github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/metrics"
)

// Server HTTP服务器
// 负责路由注册、监听启动和优雅关闭
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	options    *apiconfig.APIOptions
	logger     *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// ServerDeps 服务器依赖
type ServerDeps struct {
	Options    *apiconfig.APIOptions
	Controller handlers.Controller
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     *zap.Logger
}

// NewServer 创建HTTP服务器并注册所有路由
func NewServer(deps ServerDeps) (*Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	options := deps.Options
	if options == nil {
		options = apiconfig.New(nil).GetOptions()
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.NewRequestID().Middleware(),
		middleware.NewLogger(logger).Middleware(),
	)
	if deps.Registerer != nil {
		router.Use(middleware.NewMetrics(deps.Registerer, metrics.Namespace, logger).Middleware())
	}

	s := &Server{
		router:  router,
		options: options,
		logger:  logger,
	}
	if err := s.setupRoutes(deps); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRoutes(deps ServerDeps) error {
	if err := handlers.NewPageHandler(deps.Controller, s.logger).RegisterRoutes(s.router); err != nil {
		return fmt.Errorf("加载页面模板失败: %w", err)
	}

	v1 := s.router.Group("/api/v1")
	handlers.NewMintHandlers(deps.Controller, s.logger).RegisterRoutes(v1)
	handlers.NewHealthHandler().RegisterRoutes(s.router)

	if deps.Gatherer != nil {
		s.router.GET(s.options.HTTP.MetricsPath, gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	s.logger.Debug("HTTP路由注册完成", zap.Int("routes", len(s.router.Routes())))
	return nil
}

// Handler 返回路由处理器
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start 监听配置的地址并在后台提供服务
//
// 端口被占用时直接返回错误
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("HTTP服务器已启动")
	}

	ln, err := net.Listen("tcp", s.options.Address())
	if err != nil {
		return fmt.Errorf("监听 %s 失败: %w", s.options.Address(), err)
	}
	s.listener = ln
	s.done = make(chan struct{})
	s.httpServer = &http.Server{
		Handler:     s.router,
		ReadTimeout: s.options.HTTP.ReadTimeout,
	}

	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP服务异常退出", zap.Error(err))
		}
	}(s.httpServer, s.done)

	s.logger.Info("HTTP服务器启动成功", zap.String("address", "http://"+ln.Addr().String()))
	return nil
}

// Addr 返回实际监听地址，未启动时为空
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop 优雅关闭，等待进行中的请求完成
//
// 超过 ShutdownTimeout 后强制关闭
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.httpServer, s.done
	s.httpServer, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.logger.Info("正在关闭HTTP服务器")
	if s.options.HTTP.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.HTTP.ShutdownTimeout)
		defer cancel()
	}

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Warn("优雅关闭超时，强制关闭", zap.Error(err))
		_ = srv.Close()
	}
	<-done
	s.logger.Info("HTTP服务器已关闭")
	return nil
}
