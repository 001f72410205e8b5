package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/reportes"
)

// ReporteHandler maneja el reporte de existencias PDF y el export XML.
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// ExistenciasPDF godoc
// @Summary      Reporte de existencias valuadas (PDF)
// @Description  Proyecta cada tarima de la bodega desde su ledger y genera
// @Description  el PDF de existencias valuadas.
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        bodega_id  path  string  true  "ID de la bodega"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/existencias/{bodega_id} [get]
func (h *ReporteHandler) ExistenciasPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ReporteExistenciasPDF(c.Context(), c.Params("bodega_id"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="existencias.pdf"`)
	return c.Send(pdfBytes)
}

// LedgerXML godoc
// @Summary      Export XML del ledger de una tarima
// @Tags         reportes
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "ID de la tarima"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/ledger/{id}/xml [get]
func (h *ReporteHandler) LedgerXML(c *fiber.Ctx) error {
	xmlBytes, err := h.uc.LedgerXML(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set("Content-Type", "application/xml")
	return c.Send(xmlBytes)
}
