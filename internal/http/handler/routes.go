package handler

import (
	"github.com/gofiber/fiber/v2"

	"auralearn/internal/service"
	"auralearn/internal/storage"
	"auralearn/internal/tutor"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic: decode, dispatch, encode.
func RegisterRoutes(app *fiber.App, fileSvc service.FileService, planSvc service.StudyPlanService, responder tutor.Responder, store storage.Storage) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/", Root())
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/upload", UploadFile(fileSvc))
	api.Get("/files", ListFiles(fileSvc))
	api.Post("/chat", Chat(responder))
	api.Post("/study-plans", CreateStudyPlan(planSvc))
	api.Get("/study-plans", ListStudyPlans(planSvc))
	api.Get("/study-plans/:id", GetStudyPlan(planSvc))
	api.Put("/study-plans/:id", UpdateStudyPlan(planSvc))
	api.Delete("/study-plans/:id", DeleteStudyPlan(planSvc))
}
