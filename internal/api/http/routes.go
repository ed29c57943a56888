package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/flight-duration-estimator/internal/airports"
	"github.com/i474232898/flight-duration-estimator/internal/estimator"
	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

var validate = validator.New()

const calculationTimeLayout = "2006-01-02 15:04:05"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *estimator.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/airports", func(c *fiber.Ctx) error {
		list := service.Airports(c.Query("country"))
		out := make([]airportResponse, 0, len(list))
		for _, a := range list {
			out = append(out, newAirportResponse(a))
		}
		return c.JSON(out)
	})

	v1.Get("/airports/:code", func(c *fiber.Ctx) error {
		code, err := parseCode(c.Params("code"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		a, err := service.Airport(code)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(newAirportResponse(a))
	})

	v1.Get("/weather/:code", func(c *fiber.Ctx) error {
		code, err := parseCode(c.Params("code"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		a, reading, err := service.AirportWeather(c.UserContext(), code)
		if err != nil {
			return lookupError(err)
		}

		return c.JSON(fiber.Map{
			"iata":    a.Code,
			"name":    a.Name,
			"weather": reading,
		})
	})

	estimate := func(c *fiber.Ctx) error {
		var req estimateRequest
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		est, err := service.Estimate(c.UserContext(), req.Origin, req.Destination)
		if err != nil {
			return lookupError(err)
		}

		return c.JSON(estimateResponse{
			Estimate:        est,
			CalculationTime: est.ComputedAt.Format(calculationTimeLayout),
		})
	}

	v1.Post("/flights/estimate", estimate)
	// Path kept for the web front-end.
	app.Post("/api/calculate", estimate)
}

// ErrorHandler renders every error as a JSON body with the matching status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func lookupError(err error) error {
	if errors.Is(err, airports.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "airport lookup failed")
}

// estimateRequest is the JSON body of an estimate call.
type estimateRequest struct {
	Origin      string `json:"origin" validate:"required,len=3,alpha"`
	Destination string `json:"destination" validate:"required,len=3,alpha"`
}

func (r *estimateRequest) bind(c *fiber.Ctx) error {
	if err := c.BodyParser(r); err != nil {
		return errors.New("invalid request body")
	}
	r.Origin = normalizeCode(r.Origin)
	r.Destination = normalizeCode(r.Destination)
	return validate.Struct(r)
}

type estimateResponse struct {
	flight.Estimate
	CalculationTime string `json:"calculation_time"`
}

type airportResponse struct {
	Code      string  `json:"iata_code"`
	Name      string  `json:"name"`
	Country   string  `json:"iso_country"`
	Latitude  float64 `json:"latitude_deg"`
	Longitude float64 `json:"longitude_deg"`
}

func newAirportResponse(a airports.Airport) airportResponse {
	return airportResponse{
		Code:      a.Code,
		Name:      a.Name,
		Country:   a.Country,
		Latitude:  a.Position.Latitude,
		Longitude: a.Position.Longitude,
	}
}

func parseCode(raw string) (string, error) {
	code := normalizeCode(raw)
	if err := validate.Var(code, "required,len=3,alpha"); err != nil {
		return "", errors.New("airport code must be three letters")
	}
	return code, nil
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Health reports liveness together with the size of the loaded dataset.
func Health(started time.Time, airportCount func() int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "flight-duration-estimator",
			"airports": airportCount(),
			"uptime":   time.Since(started).Round(time.Second).String(),
		})
	}
}
