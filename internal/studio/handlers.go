package studio

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"synthkit/internal/ecosystem"
	"synthkit/internal/engine"
	"synthkit/internal/i18n"
	"synthkit/internal/quality"
	"synthkit/internal/schema"
	"synthkit/internal/synth"
)

// previewCap bounds how many rows one preview request may generate.
const previewCap = 500

func (s *Server) handleMeta(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"geographies":    synth.Geographies(),
		"error_profiles": quality.ProfileNames(),
		"languages":      i18n.Languages(),
	})
}

func (s *Server) handleGetDomains(c *fiber.Ctx) error {
	domains, issues := s.engine.Schemas().ListDomains()
	return c.JSON(fiber.Map{
		"domains": domains,
		"issues":  issues,
	})
}

func (s *Server) handleGetTables(c *fiber.Ctx) error {
	tables, issues, err := s.engine.Schemas().ListTables(c.Params("domain"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"domain": c.Params("domain"),
		"tables": tables,
		"issues": issues,
	})
}

func (s *Server) handleGetSchema(c *fiber.Ctx) error {
	ts, err := s.engine.Schemas().LoadTableSchema(c.Params("domain"), c.Params("table"))
	if err != nil {
		var nf *schema.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"domain": ts.Domain,
		"table":  ts.Table,
		"fields": ts.Fields,
	})
}

func (s *Server) handlePreview(c *fiber.Ctx) error {
	rows := c.QueryInt("rows", 10)
	if rows < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "rows must be positive"})
	}
	if rows > previewCap {
		rows = previewCap
	}

	opts := engine.Options{
		ErrorProfile: c.Query("error_profile"),
		Geography:    c.Query("geography"),
	}
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid seed"})
		}
		opts.Seed = &seed
	}

	data, err := s.engine.Generate(c.Params("domain"), c.Params("table"), rows, opts)
	if err != nil {
		var nf *schema.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"domain": c.Params("domain"),
		"table":  c.Params("table"),
		"rows":   len(data),
		"data":   data,
	})
}

func (s *Server) handleGetEcosystems(c *fiber.Ctx) error {
	if s.catalog == nil {
		return c.Status(404).JSON(fiber.Map{"error": "no ecosystem catalog loaded"})
	}
	return c.JSON(fiber.Map{"ecosystems": s.catalog.Keys()})
}

func (s *Server) handleGetEcosystem(c *fiber.Ctx) error {
	if s.catalog == nil {
		return c.Status(404).JSON(fiber.Map{"error": "no ecosystem catalog loaded"})
	}
	def, err := s.catalog.Get(c.Params("key"))
	if err != nil {
		var nf *ecosystem.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(def)
}
