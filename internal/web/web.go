package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/scoreboard"
	"github.com/goserg/scoreboard/internal/config"
	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/service"
	"github.com/goserg/scoreboard/internal/storage"
	"github.com/goserg/scoreboard/internal/web/webpath"
)

type Server struct {
	playerService *service.PlayerService
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(ps *service.PlayerService, cfg config.Server, l *logrus.Logger, metricsHandler http.Handler) (*Server, error) {
	server := Server{
		playerService: ps,
		cfg:           cfg,
		log:           l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("Medal", domain.Medal)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(server.logRequest)
	app.Use(webpath.Api, cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	app.Get(webpath.Health, func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	if metricsHandler != nil {
		app.Get(webpath.Metrics, adaptor.HTTPHandler(metricsHandler))
	}

	app.Get(webpath.Home, server.handleMain)
	app.Post(webpath.Players, server.handleNewPlayerPost)
	app.Post(webpath.DeletePlayer, server.handleDeletePlayerPost)
	app.Post(webpath.Match, server.handleMatchPost)

	app.Post(webpath.ApiPlayer, server.handleCreatePlayer)
	app.Get(webpath.ApiPlayerByID, server.handleGetPlayer)
	app.Patch(webpath.ApiPlayerByID, server.handleUpdatePoints)
	app.Delete(webpath.ApiPlayerByID, server.handleDeletePlayer)
	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Delete(webpath.ApiPlayers, server.handleDeleteAll)
	app.Post(webpath.ApiMatch, server.handleSimulateMatch)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("server started")
	if s.cfg.TLSCert != "" {
		return s.app.ListenTLS(addr, s.cfg.TLSCert, s.cfg.TLSKey)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) logRequest(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	log := s.log.WithFields(logrus.Fields{
		"method":   ctx.Method(),
		"path":     ctx.Path(),
		"status":   ctx.Response().StatusCode(),
		"duration": time.Since(start),
	})
	if err != nil {
		log.WithError(err).Warn("request failed")
		return err
	}
	log.Debug("request handled")
	return nil
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	} else {
		code = statusFor(err)
	}
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request error")
	}
	return ctx.Status(code).JSON(message{Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, storage.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, service.ErrEmptyUsername):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
