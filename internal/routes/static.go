package routes

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

const fallbackStaticDir = "frontend/dist"

// RegisterStaticRoutes serves the built dashboard and falls back to its
// index.html for any other GET so client-side routing works.
func RegisterStaticRoutes(app *fiber.App, dir string, logger *slog.Logger) {
	staticDir := resolveStaticDir(dir)
	if staticDir != "" {
		app.Static("/", staticDir)
		logger.Info("serving static files", slog.String("dir", staticDir))
	} else {
		logger.Warn("no static assets found, dashboard disabled", slog.String("dir", dir))
	}

	app.Get("*", func(c *fiber.Ctx) error {
		if staticDir != "" {
			index := filepath.Join(staticDir, "index.html")
			if fileExists(index) {
				return c.SendFile(index)
			}
		}
		return c.Status(http.StatusNotFound).SendString("Static index.html not found. Build the UI first.")
	})
}

func resolveStaticDir(dir string) string {
	for _, candidate := range []string{dir, fallbackStaticDir} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
