package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"smartcloset/models"
	"smartcloset/services"
	"smartcloset/tasks"
	"smartcloset/wardrobe"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AnalyzeIn struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
	Lang        string `json:"lang" validate:"omitempty,language"`
}

type DailyOutfitIn struct {
	Lang        string                  `json:"lang" validate:"omitempty,language"`
	DeviceToken string                  `json:"deviceToken" validate:"max=500"`
	Weather     *models.WeatherSnapshot `json:"weather"`
}

type AskIn struct {
	Query       string `json:"query" validate:"max=2000"`
	ImageBase64 string `json:"imageBase64"`
	Lang        string `json:"lang" validate:"omitempty,language"`
}

// DailyOutfitOut is a recommendation with its ids resolved against the
// current closet. Unknown ids stay in ItemIDs but have no entry in Items.
type DailyOutfitOut struct {
	models.RecommendationResult
	Items   []models.ClothingItem   `json:"items"`
	Weather *models.WeatherSnapshot `json:"weather,omitempty"`
}

type TaskEnqueuedOut struct {
	TaskID string `json:"taskId"`
	Queue  string `json:"queue"`
	State  string `json:"state"`
}

type TaskStatusOut struct {
	TaskID string          `json:"taskId"`
	State  string          `json:"state"`
	Error  string          `json:"error,omitempty"`
	Result *DailyOutfitOut `json:"result,omitempty"`
}

type StylistController struct {
	Stylist  services.StylistProvider
	Wardrobe *wardrobe.Store
	Weather  services.WeatherProvider
}

func (controller *StylistController) StylistRoutes(g *echo.Group) {
	g.POST("/analyze", controller.Analyze)
	g.POST("/daily", controller.DailyOutfit)
	g.GET("/tasks/:id", controller.TaskStatus)
	g.POST("/ask", controller.Ask)
}

// Analyze always answers 200 once the image decodes; model failures come
// back as the fallback item.
func (controller *StylistController) Analyze(c echo.Context) error {
	var req AnalyzeIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	image, err := services.DecodeImageBase64(req.ImageBase64)
	if err != nil || len(image) == 0 {
		return jsonError(c, http.StatusBadRequest, "Invalid image")
	}
	lang := requestLanguage(c, req.Lang)
	return c.JSON(http.StatusOK, controller.Stylist.AnalyzeImage(c.Request().Context(), image, lang))
}

func (controller *StylistController) DailyOutfit(c echo.Context) error {
	var req DailyOutfitIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	ctx := c.Request().Context()
	lang := requestLanguage(c, req.Lang)

	closet := controller.Wardrobe.ActiveItems()
	if len(closet) == 0 {
		return jsonError(c, http.StatusBadRequest, "closet is empty")
	}

	weather := req.Weather
	if weather == nil {
		snapshot, err := controller.Weather.Current(ctx)
		if err != nil {
			sentry.CaptureException(fmt.Errorf("weather lookup for daily outfit: %w", err))
			return jsonError(c, http.StatusServiceUnavailable, "Weather unavailable")
		}
		weather = &snapshot
	}

	if c.QueryParam("async") == "true" {
		return controller.enqueueDailyOutfit(c, tasks.DailyOutfitPayload{
			Closet:      closet,
			Weather:     *weather,
			Lang:        lang,
			DeviceToken: req.DeviceToken,
		})
	}

	result := controller.Stylist.RecommendDailyOutfit(ctx, closet, *weather, lang)
	return c.JSON(http.StatusOK, DailyOutfitOut{
		RecommendationResult: result,
		Items:                wardrobe.ResolveItems(result.ItemIDs, closet),
		Weather:              weather,
	})
}

func (controller *StylistController) enqueueDailyOutfit(c echo.Context, payload tasks.DailyOutfitPayload) error {
	asynqClient, ok := c.Get("__asynqclient").(TaskEnqueuer)
	if !ok {
		return jsonError(c, http.StatusServiceUnavailable, "Service is not available, please try again a bit later")
	}
	task, err := tasks.NewDailyOutfitTask(payload)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "Failed to schedule daily outfit")
	}
	info, err := asynqClient.Enqueue(task, tasks.DailyOutfitOptions()...)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("enqueue daily outfit task: %w", err))
		return jsonError(c, http.StatusInternalServerError, "Failed to schedule daily outfit")
	}
	log.Ctx(c.Request().Context()).Info().Str("task_id", info.ID).Str("queue", info.Queue).Msg("daily outfit task submitted")
	return c.JSON(http.StatusAccepted, TaskEnqueuedOut{
		TaskID: info.ID,
		Queue:  info.Queue,
		State:  info.State.String(),
	})
}

func (controller *StylistController) TaskStatus(c echo.Context) error {
	inspector, ok := c.Get("__asynqinspector").(TaskInspector)
	if !ok {
		return jsonError(c, http.StatusServiceUnavailable, "Service is not available, please try again a bit later")
	}
	info, err := inspector.GetTaskInfo(tasks.QueueGenerate, c.Param("id"))
	if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return jsonError(c, http.StatusNotFound, "Task not found")
	}
	if err != nil {
		sentry.CaptureException(fmt.Errorf("inspect task %s: %w", c.Param("id"), err))
		return jsonError(c, http.StatusInternalServerError, "Failed to read task state")
	}

	out := TaskStatusOut{
		TaskID: info.ID,
		State:  info.State.String(),
		Error:  info.LastErr,
	}
	if info.State == asynq.TaskStateCompleted {
		result, err := tasks.DecodeResult(info)
		if err != nil {
			sentry.CaptureException(err)
			return jsonError(c, http.StatusInternalServerError, "Failed to read task result")
		}
		if result != nil {
			out.Result = &DailyOutfitOut{
				RecommendationResult: *result,
				Items:                wardrobe.ResolveItems(result.ItemIDs, controller.Wardrobe.Items()),
			}
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (controller *StylistController) Ask(c echo.Context) error {
	var req AskIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	image, err := services.DecodeImageBase64(req.ImageBase64)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid image")
	}
	query := strings.TrimSpace(req.Query)
	if len(image) == 0 && query == "" {
		return jsonError(c, http.StatusBadRequest, "query or image is required")
	}
	if query == "" {
		query = services.DefaultAskQuery
	}
	lang := requestLanguage(c, req.Lang)
	text := controller.Stylist.AskStylist(c.Request().Context(), controller.Wardrobe.ActiveItems(), query, image, lang)
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}
