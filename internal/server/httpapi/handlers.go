package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/formhub/internal/common"
	"github.com/dmitrijs2005/formhub/internal/server/forms"
	"github.com/gofiber/fiber/v2"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createFormRequest struct {
	FormName string            `json:"formName"`
	Fields   []forms.FormField `json:"fields"`
}

type submitFormRequest struct {
	Data map[string]any `json:"data"`
}

func (s *Server) signup(c *fiber.Ctx) error {

	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	ctx := userContext(c)

	_, err := s.users.Register(ctx, body.Name, body.Email, body.Password, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
		case errors.Is(err, common.ErrorAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already in use"})
		default:
			s.logger.Error(ctx, err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error registering user"})
		}
	}

	s.logger.Info(ctx, "Registered", "email", body.Email)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (s *Server) login(c *fiber.Ctx) error {

	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	ctx := userContext(c)

	token, role, err := s.users.Login(ctx, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
		case errors.Is(err, common.ErrorNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, common.ErrorUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		default:
			s.logger.Error(ctx, err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error logging in"})
		}
	}

	return c.JSON(fiber.Map{"message": "Login successful", "token": token, "role": role})
}

func (s *Server) createForm(c *fiber.Ctx) error {

	claims, ok := requestClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var body createFormRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Form name and fields are required"})
	}

	ctx := userContext(c)

	_, err := s.forms.Create(ctx, claims, body.FormName, body.Fields)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Form name and fields are required"})
		default:
			s.logger.Error(ctx, err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating form"})
		}
	}

	s.logger.Info(ctx, "Form created", "formName", body.FormName, "adminId", claims.UserID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Form created successfully"})
}

func (s *Server) adminDashboard(c *fiber.Ctx) error {

	claims, ok := requestClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx := userContext(c)

	result, err := s.forms.ListOwn(ctx, claims)
	if err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
		s.logger.Error(ctx, err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching forms"})
	}

	return c.JSON(result)
}

func (s *Server) submitForm(c *fiber.Ctx) error {

	formID := c.Params("formId")

	var body submitFormRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Submission data is required"})
	}

	ctx := userContext(c)

	if err := s.forms.Submit(ctx, formID, body.Data); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Form not found"})
		}
		s.logger.Error(ctx, err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error submitting form"})
	}

	return c.JSON(fiber.Map{"message": "Form submitted successfully"})
}
