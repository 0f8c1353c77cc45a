package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"doc-chat-be/pkg/extractor"
	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/rag"
	"doc-chat-be/pkg/store"
)

// ErrorHandlerMiddleware maps domain errors returned by controllers to HTTP
// statuses and the standard response envelope. Unknown errors become 500
// with their message preserved.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(statusFor(err)).JSON(ErrorResponse(messageFor(err)))
	}
}

func statusFor(err error) int {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, store.ErrSessionExpired):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrDuplicateSession):
		return fiber.StatusConflict
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, extractor.ErrExtractionFailed),
		errors.Is(err, rag.ErrEmptyDocument),
		errors.Is(err, rag.ErrNoIndex):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrEmbeddingProvider), errors.Is(err, llm.ErrCompletionProvider):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, rag.ErrEmptyDocument):
		return "Could not extract text from file"
	case errors.Is(err, rag.ErrNoIndex):
		return "No documents found. Please upload a file first."
	case errors.Is(err, store.ErrSessionExpired), errors.Is(err, store.ErrSessionNotFound):
		return "Session expired. Please upload your document again."
	default:
		return err.Error()
	}
}
