// Package contact accepts contact form submissions.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	controller "github.com/laceandcraft/storefront/internal/db/controller/contact"
	"github.com/laceandcraft/storefront/internal/db/models"
	"github.com/laceandcraft/storefront/internal/web/handler"
)

const (
	// Path is the path the form posts to.
	Path = handler.RootPath + "contact"

	// SuccessMessage is returned after a stored submission.
	SuccessMessage = "Thank you for your message! We'll get back to you soon."

	// FailureMessage is returned when a submission could not be stored.
	FailureMessage = "Something went wrong. Please try again later."

	invalidBodyMessage = "Invalid request body."
)

// Form is the submitted contact form.
type Form struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Email   string `json:"email" form:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" form:"subject" validate:"required,max=255"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Response is the JSON answer to a submission.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Service is the contact form handler service.
type Service struct {
	handler.Service
	deps      *handler.Deps
	validator *validator.Validate
}

// Handler is the contact form handler.
var Handler = Service{}

// Init initializes the contact form handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return nil
	}

	s.deps = deps
	s.validator = NewValidator()

	app.Post(Path, s.Post)

	return nil
}

// NewValidator returns a validator reporting fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Post validates and stores a submission.
// The client address and user agent are taken from the request.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Warn().Err(err).Msg("failed to parse contact form")

		return c.Status(fiber.StatusBadRequest).JSON(Response{Message: invalidBodyMessage})
	}
	form.trim()

	if err := s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			log.Error().Err(err).Msg("contact form validation failed")
			return c.Status(fiber.StatusInternalServerError).JSON(Response{Message: FailureMessage})
		}

		return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{Errors: FieldErrors(validationErrors)})
	}

	submission := &models.ContactSubmission{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     models.Str(form.Phone),
		Subject:   form.Subject,
		Message:   form.Message,
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}

	if err := controller.Create(s.deps.DB, submission); err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")
		return c.Status(fiber.StatusInternalServerError).JSON(Response{Message: FailureMessage})
	}

	log.Info().Uint64("id", submission.ID).Str("subject", submission.Subject).Msg("contact submission received")

	return c.JSON(Response{Success: true, Message: SuccessMessage})
}

func (f *Form) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
}

// FieldErrors turns validation errors into messages keyed by field name.
func FieldErrors(errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}

	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
