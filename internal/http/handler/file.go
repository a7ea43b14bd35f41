package handler

import (
	"github.com/gofiber/fiber/v2"

	"auralearn/internal/service"
)

// UploadFile handles POST /api/upload (multipart/form-data, field name: file).
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeDetail(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeDetail(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		file, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeDetail(c, fiber.StatusInternalServerError, "Upload failed: "+err.Error())
		}
		return c.JSON(fiber.Map{
			"success":  true,
			"file_id":  file.ID,
			"filename": file.OriginalName,
			"message":  "File uploaded successfully",
		})
	}
}

// ListFiles handles GET /api/files.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.List(c.UserContext())
		if err != nil {
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"files": files})
	}
}
