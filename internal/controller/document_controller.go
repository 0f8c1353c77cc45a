package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/serverutils"
	"doc-chat-be/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Post("/upload", c.Upload)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid upload form")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	var filename string
	var data []byte
	if file, err := ctx.FormFile("file"); err == nil && file != nil {
		filename = file.Filename
		f, err := file.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
		}
	} else if req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no file or text provided")
	}

	res, err := c.service.Upload(ctx.Context(), &req, filename, data)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}
