package httpapi

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dulc3/dashboard-api/internal/feed"
	"github.com/dulc3/dashboard-api/internal/weather"
)

var validate = validator.New()

const version = "0.1.0"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, weatherSvc *weather.Service, feedSvc *feed.Service, environment string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "dashboard-api backend",
			"version": version,
			"status":  "running",
		})
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "healthy",
			"timestamp":   time.Now().UTC(),
			"version":     version,
			"environment": environment,
		})
	})

	api.Get("/weather", func(c *fiber.Ctx) error {
		q := parseLocationQuery(c)
		return c.JSON(weatherSvc.Current(c.Context(), q.City, q.Country))
	})

	api.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(weatherSvc.Forecast(c.Context(), req.Location.City, req.Location.Country, req.Days))
	})

	api.Get("/weather/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"cities": weatherSvc.Cities()})
	})

	api.Get("/weather/local", func(c *fiber.Ctx) error {
		locationKey := c.Query("location", "san_bernardino")
		reading, err := weatherSvc.Local(c.Context(), locationKey)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(reading)
	})

	social := api.Group("/social")

	social.Get("/feed", func(c *fiber.Ctx) error {
		var req feedQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		categories := feed.NormalizeCategories(req.Categories)
		return c.JSON(feedSvc.Articles(c.Context(), categories, req.Limit))
	})

	social.Get("/feed/trending", func(c *fiber.Ctx) error {
		categories := feed.NormalizeCategories(c.Query("categories", "security,tech"))
		return c.JSON(feedSvc.Trending(c.Context(), categories))
	})

	social.Get("/feed/categories", func(c *fiber.Ctx) error {
		return c.JSON(feedSvc.Categories())
	})

	social.Get("/feed/sources", func(c *fiber.Ctx) error {
		return c.JSON(feedSvc.Sources())
	})

	social.Post("/feed/refresh", func(c *fiber.Ctx) error {
		return c.JSON(feedSvc.Refresh(c.Context()))
	})
}

// locationQuery holds the city/country pair shared by the weather endpoints.
type locationQuery struct {
	City    string `validate:"required"`
	Country string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) locationQuery {
	return locationQuery{
		City:    c.Query("city", "London"),
		Country: c.Query("country", "GB"),
	}
}

// forecastQuery adds the bounded days parameter.
type forecastQuery struct {
	Location locationQuery
	Days     int `validate:"min=1,max=5"`
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	q.Location = parseLocationQuery(c)

	days, err := strconv.Atoi(c.Query("days", "5"))
	if err != nil {
		return err
	}
	q.Days = days
	return nil
}

// feedQuery holds the social feed parameters. Category validation happens in
// the feed package; only limit is enforced here.
type feedQuery struct {
	Categories string
	Limit      int `validate:"min=1,max=100"`
}

func (q *feedQuery) bind(c *fiber.Ctx) error {
	q.Categories = c.Query("categories", "security,tech")

	limit, err := strconv.Atoi(c.Query("limit", "30"))
	if err != nil {
		return err
	}
	q.Limit = limit
	return nil
}
