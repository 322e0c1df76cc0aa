package controllers

import (
	"net/http"

	"smartcloset/logging"
	"smartcloset/models"
	"smartcloset/services"
	"smartcloset/session"
	"smartcloset/wardrobe"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("season", models.ValidateSeason)
	v.RegisterValidation("language", models.ValidateLanguage)
	v.RegisterValidation("folder", models.ValidateFolder)
	v.RegisterValidation("weather_condition", models.ValidateWeatherCondition)
	return &CustomValidator{validator: v}
}

// TaskEnqueuer is the part of *asynq.Client the handlers use.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskInspector is the part of *asynq.Inspector the handlers use.
type TaskInspector interface {
	GetTaskInfo(queue string, id string) (*asynq.TaskInfo, error)
}

// Dependencies are the process wide stores and providers behind the API.
// Enqueuer and Inspector stay nil when deferred work is disabled.
type Dependencies struct {
	Wardrobe     *wardrobe.Store
	Inspirations *wardrobe.InspirationBoard
	Session      *session.Store
	Chat         *session.ChatHistory
	Stylist      services.StylistProvider
	Weather      services.WeatherProvider
	Enqueuer     TaskEnqueuer
	Inspector    TaskInspector
}

func SetupServer(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(logging.RequestLogger())
	e.Use(middleware.BodyLimit("12M"))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deps.Enqueuer != nil {
				c.Set("__asynqclient", deps.Enqueuer)
			}
			if deps.Inspector != nil {
				c.Set("__asynqinspector", deps.Inspector)
			}
			return next(c)
		}
	})
	e.Use(LanguageMiddleware)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Accept-Language", logging.RequestIDHeader},
	}))

	authController := AuthController{Session: deps.Session}
	authController.AuthRoutes(e.Group("/auth"))

	wardrobeGroup := e.Group("/wardrobe")
	clothesController := ClothesController{Wardrobe: deps.Wardrobe}
	clothesController.ClothingRoutes(wardrobeGroup.Group("/items"))
	outfitsController := OutfitsController{Wardrobe: deps.Wardrobe}
	outfitsController.OutfitRoutes(wardrobeGroup.Group("/outfits"))

	weatherController := WeatherController{Weather: deps.Weather}
	weatherController.WeatherRoutes(e.Group("/weather"))

	stylistController := StylistController{Stylist: deps.Stylist, Wardrobe: deps.Wardrobe, Weather: deps.Weather}
	stylistController.StylistRoutes(e.Group("/stylist"))

	labController := LabController{Chat: deps.Chat, Stylist: deps.Stylist, Wardrobe: deps.Wardrobe}
	labController.LabRoutes(e.Group("/lab"))

	inspirationsController := InspirationsController{Board: deps.Inspirations}
	inspirationsController.InspirationRoutes(e.Group("/inspirations"))

	shoppingController := ShoppingController{Wardrobe: deps.Wardrobe, Chat: deps.Chat}
	shoppingController.ShoppingRoutes(e.Group("/shopping"))

	profileController := ProfileController{Wardrobe: deps.Wardrobe, Inspirations: deps.Inspirations}
	profileController.ProfileRoutes(e.Group("/profile"))

	return e
}
