package api

import (
	"errors"

	"insight-gateway/internal/domain/entity"
	"insight-gateway/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightHandler struct {
	insights *usecase.InsightService
	images   *usecase.ImageService
	log      *zap.Logger
}

func NewInsightHandler(insights *usecase.InsightService, images *usecase.ImageService, log *zap.Logger) *InsightHandler {
	return &InsightHandler{insights: insights, images: images, log: log}
}

func (h *InsightHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "AI insight server is running",
	})
}

func (h *InsightHandler) HandleInsight(c *fiber.Ctx) error {
	var req entity.InsightRequest
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.insights.Generate(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, entity.ErrPromptRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.log.Error("insight generation failed",
			zap.String("request_id", requestID(c)),
			zap.String("mode", string(req.Mode)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI call failed"})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *InsightHandler) HandleGenerateImage(c *fiber.Ctx) error {
	var req entity.ImageRequest
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.images.Generate(c.UserContext(), req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPromptRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, entity.ErrEmptyProviderResult):
			h.log.Warn("image provider returned no payload", zap.String("request_id", requestID(c)))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
		h.log.Error("image generation failed",
			zap.String("request_id", requestID(c)),
			zap.String("size", req.Size),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Image generation failed"})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// parseBody leaves out untouched when there is no body, so a bare POST is
// reported as a missing prompt rather than a malformed request.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return entity.ErrInvalidRequest
	}
	return nil
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
