package controller

import (
	"health-assistant-be/internal/dto"
	"health-assistant-be/internal/pkg/serverutils"
	"health-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("documents", c.Ingest)
	h.Get("datasets/:dataset/count", c.Count)
}

func (c *knowledgeController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.knowledgeService.Ingest(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Document queued for ingestion", nil))
}

func (c *knowledgeController) Count(ctx *fiber.Ctx) error {
	dataset := ctx.Params("dataset")

	count, err := c.knowledgeService.CountByDataset(ctx.Context(), dataset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success count dataset", fiber.Map{
		"dataset": dataset,
		"count":   count,
	}))
}
