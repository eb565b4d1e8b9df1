package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/LieTttv/PDVomnierp-sub000/internal/application/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
)

// BillingHandler maneja el ciclo de vida del borrador de facturación y la
// transmisión (protegido, módulo billing).
type BillingHandler struct {
	draftUC    *appbilling.DraftUseCase
	transmitUC *appbilling.TransmitUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(draftUC *appbilling.DraftUseCase, transmitUC *appbilling.TransmitUseCase) *BillingHandler {
	return &BillingHandler{draftUC: draftUC, transmitUC: transmitUC}
}

// StartDraft godoc
// @Summary      Abrir borrador de facturación
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartDraftRequest  true  "orden a facturar"
// @Success      201   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/billing/drafts [post]
func (h *BillingHandler) StartDraft(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	var in dto.StartDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id es requerido"})
	}
	out, err := h.draftUC.StartDraft(c.Context(), storeID, in.OrderID)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDraft godoc
// @Summary      Consultar borrador
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/drafts/{id} [get]
func (h *BillingHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.draftUC.GetDraft(GetStoreID(c), c.Params("id"))
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Editar cantidad de una línea
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.UpdateQuantityRequest  true  "índice y cantidad"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/billing/drafts/{id}/lines/quantity [put]
func (h *BillingHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.draftUC.UpdateQuantity(GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar línea del borrador
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del borrador"
// @Param        index  path  int     true  "índice de la línea"
// @Success      200    {object}  dto.DraftResponse
// @Router       /api/billing/drafts/{id}/lines/{index} [delete]
func (h *BillingHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	out, err := h.draftUC.RemoveLine(GetStoreID(c), c.Params("id"), index)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// SetDiscount godoc
// @Summary      Fijar descuento
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.SetDiscountRequest  true  "descuento plano"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/billing/drafts/{id}/discount [put]
func (h *BillingHandler) SetDiscount(c *fiber.Ctx) error {
	var in dto.SetDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.draftUC.SetDiscount(GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// SetFreightCharge godoc
// @Summary      Fijar valor del flete
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.SetFreightChargeRequest  true  "valor del flete"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/billing/drafts/{id}/freight-charge [put]
func (h *BillingHandler) SetFreightCharge(c *fiber.Ctx) error {
	var in dto.SetFreightChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.draftUC.SetFreightCharge(GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// SetPayment godoc
// @Summary      Fijar plazo y medio de pago
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.SetPaymentRequest  true  "plazo y medio"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/billing/drafts/{id}/payment [put]
func (h *BillingHandler) SetPayment(c *fiber.Ctx) error {
	var in dto.SetPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.draftUC.SetPayment(GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// SetFreightInfo godoc
// @Summary      Editar datos de transporte
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.FreightInfoRequest  true  "datos logísticos"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/billing/drafts/{id}/freight [put]
func (h *BillingHandler) SetFreightInfo(c *fiber.Ctx) error {
	var in dto.FreightInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.draftUC.SetFreightInfo(GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return h.mapDraftError(c, err)
	}
	return c.JSON(out)
}

// Discard godoc
// @Summary      Descartar borrador
// @Tags         billing
// @Security     Bearer
// @Param        id  path  string  true  "ID del borrador"
// @Success      204
// @Router       /api/billing/drafts/{id} [delete]
func (h *BillingHandler) Discard(c *fiber.Ctx) error {
	h.draftUC.Discard(GetStoreID(c), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Transmit godoc
// @Summary      Transmitir borrador
// @Description  Genera la factura y marca la orden como facturada. La
// @Description  transmisión tarda unos segundos y no es cancelable.
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/billing/drafts/{id}/transmit [post]
func (h *BillingHandler) Transmit(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	out, err := h.transmitUC.Transmit(c.Context(), storeID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDraft) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_DRAFT", Message: "el borrador no tiene líneas para transmitir"})
		}
		return h.mapDraftError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// mapDraftError traduce errores de dominio del borrador a estados HTTP.
func (h *BillingHandler) mapDraftError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador u orden no encontrados"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otra tienda"})
	case errors.Is(err, domain.ErrOrderAlreadyBilled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_BILLED", Message: "la orden ya fue facturada"})
	case errors.Is(err, domain.ErrDraftNotEditable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_EDITABLE", Message: "el borrador ya no está en revisión"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
