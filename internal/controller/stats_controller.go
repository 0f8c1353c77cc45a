package controller

import (
	"github.com/gofiber/fiber/v2"

	"doc-chat-be/internal/pkg/serverutils"
	"doc-chat-be/internal/service"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type statsController struct {
	consumer service.IActivityConsumerService
}

func NewStatsController(consumer service.IActivityConsumerService) IStatsController {
	return &statsController{consumer: consumer}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats/v1")
	h.Get("", c.Show)
}

func (c *statsController) Show(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get usage stats", c.consumer.Snapshot()))
}
