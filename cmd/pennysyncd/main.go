// Command pennysyncd is a reference sync server for pennywise clients.
// It stores one snapshot per user and serves it back wholesale; there
// is no merging, auth, or multi-device conflict handling.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"

	"github.com/pennywise-app/pennywise/internal/common"
	syncpkg "github.com/pennywise-app/pennywise/internal/sync"
)

func main() {
	viper.SetEnvPrefix("PENNYSYNCD")
	viper.AutomaticEnv()
	viper.SetDefault("listen", ":8090")
	viper.SetDefault("data_dir", "./pennysyncd-data")
	viper.SetDefault("logging.format", "json")

	if err := common.SetupLogger(slog.LevelInfo, viper.GetString("logging.format")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	store, err := newSnapshotStore(viper.GetString("data_dir"))
	if err != nil {
		common.LogError(err, "failed to open snapshot store", nil)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName: "pennysyncd",
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/sync", func(c *fiber.Ctx) error {
		var payload syncpkg.Payload
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "invalid payload",
			})
		}
		if payload.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "userId is required",
			})
		}

		if err := store.Save(payload.UserID, payload); err != nil {
			common.LogError(err, "failed to save snapshot", common.Fields{"user": payload.UserID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "failed to store snapshot",
			})
		}

		common.LogInfo("snapshot stored", common.Fields{
			"user":     payload.UserID,
			"expenses": len(payload.Expenses),
			"incomes":  len(payload.Incomes),
		})
		return c.JSON(fiber.Map{"success": true})
	})

	app.Get("/sync", func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "userId is required",
			})
		}

		payload, ok, err := store.Load(userID)
		if err != nil {
			common.LogError(err, "failed to load snapshot", common.Fields{"user": userID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "failed to load snapshot",
			})
		}
		if !ok {
			common.LogDebug("no snapshot for user", common.Fields{"user": userID})
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "no snapshot for user",
			})
		}

		return c.JSON(fiber.Map{"data": payload})
	})

	addr := viper.GetString("listen")
	common.LogInfo("pennysyncd listening", common.Fields{"addr": addr})
	if err := app.Listen(addr); err != nil {
		common.LogError(err, "server stopped", nil)
		os.Exit(1)
	}
}
