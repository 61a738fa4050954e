// Package studio serves a read-only HTTP API for browsing the schema catalog
// and previewing generated data without touching disk or a database.
package studio

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"synthkit/internal/ecosystem"
	"synthkit/internal/engine"
)

// Server exposes catalog browsing and row preview over HTTP.
type Server struct {
	app     *fiber.App
	engine  *engine.Engine
	catalog *ecosystem.Catalog
	port    int
}

// NewServer wires the preview API. catalog may be nil when no ecosystems
// directory exists; the ecosystem endpoints then return 404s.
func NewServer(eng *engine.Engine, catalog *ecosystem.Catalog, port int) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "synthkit studio",
		DisableStartupMessage: true,
	})

	server := &Server{
		app:     app,
		engine:  eng,
		catalog: catalog,
		port:    port,
	}
	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api")
	api.Get("/meta", s.handleMeta)
	api.Get("/domains", s.handleGetDomains)
	api.Get("/domains/:domain/tables", s.handleGetTables)
	api.Get("/domains/:domain/tables/:table/schema", s.handleGetSchema)
	api.Get("/domains/:domain/tables/:table/preview", s.handlePreview)
	api.Get("/ecosystems", s.handleGetEcosystems)
	api.Get("/ecosystems/:key", s.handleGetEcosystem)
}

// Start blocks serving HTTP until the listener fails or is shut down.
func (s *Server) Start() error {
	fmt.Printf("🚀 Studio starting on http://localhost:%d\n", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
