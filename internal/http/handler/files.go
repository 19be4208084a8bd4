package handler

import (
	"errors"
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/service"
)

// @Summary   List uploaded files
// @Tags      files
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array}  model.UploadedFile
// @Failure   401 {object} model.ErrorBody
// @Router    /api/admin/files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(nonNil(files))
	}
}

// UploadFile accepts multipart field "file" of at most maxBytes.
//
// @Summary   Upload a file
// @Tags      files
// @Accept    multipart/form-data
// @Produce   json
// @Security  BearerAuth
// @Param     file formData file true "File content"
// @Success   200  {object} model.UploadedFile
// @Failure   413  {object} model.ErrorBody
// @Failure   422  {object} validationBody
// @Router    /api/admin/files/upload [post]
func UploadFile(svc service.FileService, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeValidation(c, errFileRequired)
		}
		if maxBytes > 0 && fh.Size > maxBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "File too large")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Cannot read uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}

		uploaded, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if errors.Is(err, service.ErrNameRequired) {
			return writeError(c, fiber.StatusBadRequest, "Invalid file name")
		}
		if err != nil {
			return err
		}
		return c.JSON(uploaded)
	}
}

// @Summary   Delete a file
// @Tags      files
// @Produce   json
// @Security  BearerAuth
// @Param     name path     string true "File name"
// @Success   200  {object} model.Message
// @Failure   404  {object} model.ErrorBody
// @Router    /api/admin/files/{name} [delete]
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := svc.Delete(c.UserContext(), c.Params("name"))
		if errors.Is(err, service.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "File not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(model.Message{Message: "File deleted successfully"})
	}
}

// ServeFile streams a stored file to anyone; site pages link to these URLs directly.
//
// @Summary  Download a file
// @Tags     files
// @Produce  octet-stream
// @Param    name path     string true "File name"
// @Success  200  {file}   binary
// @Failure  404  {object} model.ErrorBody
// @Router   /api/files/{name} [get]
func ServeFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		rc, info, err := svc.Open(c.UserContext(), name)
		if errors.Is(err, service.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "File not found")
		}
		if err != nil {
			return err
		}

		ct := info.ContentType
		if ct == "" {
			ct = mime.TypeByExtension(filepath.Ext(name))
		}
		if ct != "" {
			c.Set(fiber.HeaderContentType, ct)
		}
		// the stream is closed once the response has been written
		return c.SendStream(rc, int(info.Size))
	}
}
