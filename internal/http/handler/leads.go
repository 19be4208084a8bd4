package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/service"
)

// @Summary  Submit a contact inquiry
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body     model.ContactRequest true "Inquiry"
// @Success  200  {object} model.Contact
// @Failure  422  {object} validationBody
// @Router   /api/contact [post]
func SubmitContact(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ContactRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}
		contact, err := svc.SubmitContact(c.UserContext(), req)
		if err != nil {
			return err
		}
		return c.JSON(contact)
	}
}

// @Summary  Submit an IPO qualification application
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body     model.ApplicationRequest true "Application"
// @Success  200  {object} model.Application
// @Failure  422  {object} validationBody
// @Router   /api/application [post]
func SubmitApplication(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ApplicationRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}
		app, err := svc.SubmitApplication(c.UserContext(), req)
		if err != nil {
			return err
		}
		return c.JSON(app)
	}
}

// @Summary   List contact inquiries
// @Tags      contacts
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array}  model.Contact
// @Failure   401 {object} model.ErrorBody
// @Router    /api/admin/contacts [get]
func ListContacts(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListContacts(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(nonNil(items))
	}
}

// UpdateContact applies a partial update; absent fields keep their stored value.
//
// @Summary   Update a contact's status or notes
// @Tags      contacts
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path     string              true "Contact id"
// @Param     body body     model.ContactUpdate true "Fields to change"
// @Success   200  {object} model.Contact
// @Failure   400  {object} model.ErrorBody
// @Failure   404  {object} model.ErrorBody
// @Router    /api/admin/contacts/{id} [put]
func UpdateContact(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ContactUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		contact, err := svc.UpdateContact(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return leadError(c, err, "Contact not found")
		}
		return c.JSON(contact)
	}
}

// @Summary   Delete a contact
// @Tags      contacts
// @Produce   json
// @Security  BearerAuth
// @Param     id  path     string true "Contact id"
// @Success   200 {object} model.Message
// @Failure   404 {object} model.ErrorBody
// @Router    /api/admin/contacts/{id} [delete]
func DeleteContact(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteContact(c.UserContext(), c.Params("id")); err != nil {
			return leadError(c, err, "Contact not found")
		}
		return c.JSON(model.Message{Message: "Contact deleted successfully"})
	}
}

// @Summary   List applications
// @Tags      applications
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array}  model.Application
// @Failure   401 {object} model.ErrorBody
// @Router    /api/admin/applications [get]
func ListApplications(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListApplications(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(nonNil(items))
	}
}

// @Summary   Update an application's status
// @Tags      applications
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path     string                  true "Application id"
// @Param     body body     model.ApplicationUpdate true "Fields to change"
// @Success   200  {object} model.Application
// @Failure   400  {object} model.ErrorBody
// @Failure   404  {object} model.ErrorBody
// @Router    /api/admin/applications/{id} [put]
func UpdateApplication(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ApplicationUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		app, err := svc.UpdateApplication(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return leadError(c, err, "Application not found")
		}
		return c.JSON(app)
	}
}

// @Summary   Delete an application
// @Tags      applications
// @Produce   json
// @Security  BearerAuth
// @Param     id  path     string true "Application id"
// @Success   200 {object} model.Message
// @Failure   404 {object} model.ErrorBody
// @Router    /api/admin/applications/{id} [delete]
func DeleteApplication(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteApplication(c.UserContext(), c.Params("id")); err != nil {
			return leadError(c, err, "Application not found")
		}
		return c.JSON(model.Message{Message: "Application deleted successfully"})
	}
}

func leadError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "Invalid status")
	default:
		return err
	}
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
