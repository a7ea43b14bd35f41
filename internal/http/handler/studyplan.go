package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"auralearn/internal/service"
)

const planNotFoundDetail = "Study plan not found"

// CreateStudyPlan handles POST /api/study-plans.
func CreateStudyPlan(svc service.StudyPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.StudyPlanInput
		if err := c.BodyParser(&in); err != nil {
			return writeDetail(c, fiber.StatusBadRequest, "invalid request body")
		}

		plan, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true, "study_plan": plan})
	}
}

// ListStudyPlans handles GET /api/study-plans.
func ListStudyPlans(svc service.StudyPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plans, err := svc.List(c.UserContext())
		if err != nil {
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"study_plans": plans})
	}
}

// GetStudyPlan handles GET /api/study-plans/:id.
func GetStudyPlan(svc service.StudyPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plan, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeDetail(c, fiber.StatusNotFound, planNotFoundDetail)
			}
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"study_plan": plan})
	}
}

// UpdateStudyPlan handles PUT /api/study-plans/:id with a full StudyPlan
// body. Any id in the payload is ignored in favor of the path parameter.
func UpdateStudyPlan(svc service.StudyPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.StudyPlanInput
		if err := c.BodyParser(&in); err != nil {
			return writeDetail(c, fiber.StatusBadRequest, "invalid request body")
		}

		plan, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeDetail(c, fiber.StatusNotFound, planNotFoundDetail)
			}
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true, "study_plan": plan})
	}
}

// DeleteStudyPlan handles DELETE /api/study-plans/:id.
func DeleteStudyPlan(svc service.StudyPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeDetail(c, fiber.StatusNotFound, planNotFoundDetail)
			}
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true, "message": "Study plan deleted"})
	}
}
