package controller

import (
	"github.com/gofiber/fiber/v2"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/serverutils"
	"doc-chat-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("/reset", c.Reset)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.service.Info(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Reset(ctx *fiber.Ctx) error {
	var req dto.ResetSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid reset request")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.service.Reset(ctx.Context(), req.SessionId)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset session", nil))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	c.service.Delete(ctx.Context(), id)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
