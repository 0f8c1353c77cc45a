package controller

import (
	"github.com/gofiber/fiber/v2"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/serverutils"
	"doc-chat-be/internal/service"
)

type IDemoController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type demoController struct {
	service service.IDemoService
}

func NewDemoController(service service.IDemoService) IDemoController {
	return &demoController{service: service}
}

func (c *demoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/demo/v1")
	h.Post("", c.Ask)
}

func (c *demoController) Ask(ctx *fiber.Ctx) error {
	var req dto.DemoChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid demo request")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.Answer(req.Question)

	return ctx.JSON(serverutils.SuccessResponse("Success answer demo question", res))
}
