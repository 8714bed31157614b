package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"socialpulse/internal/models"
	"socialpulse/internal/queue"
	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type PostHandler struct {
	s           service.PostService
	AsynqClient *asynq.Client
}

func NewPostHandler(service service.PostService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: service, AsynqClient: asynqClient}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.Create(c.Context(), userID, req.AccountID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}

	h.enqueueRecompute(userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post added",
		"post":    post,
	})
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := c.QueryInt("account_id", 0)
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	posts, total, err := h.s.List(c.Context(), userID, int64(accountID), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	if posts == nil {
		posts = []*models.Post{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":     posts,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
		"timestamp": time.Now(),
	})
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)

	postID, err := c.ParamsInt("id", 0)
	if err != nil || postID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post id",
		})
	}

	var req transfer.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.Update(c.Context(), userID, int64(postID), &req)
	if err != nil {
		return serviceError(c, err)
	}

	h.enqueueRecompute(userID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post updated",
		"post":    post,
	})
}

func (h *PostHandler) Trending(c *fiber.Ctx) error {
	userID := GetUserID(c)
	limit := c.QueryInt("limit", 10)

	posts, err := h.s.Trending(c.Context(), userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list trending posts",
		})
	}

	if posts == nil {
		posts = []*models.Post{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":     posts,
		"timestamp": time.Now(),
	})
}

func (h *PostHandler) enqueueRecompute(userID int64) {
	if h.AsynqClient == nil {
		return
	}
	err := queue.EnqueueRecompute(h.AsynqClient, queue.RecomputePayload{UserID: userID})
	if err != nil {
		slog.Info(err.Error())
	}
}
