package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/services"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

type ReportController struct {
	reporteService services.ReporteServiceInterface
	logger         *zap.Logger
}

func NewReportController(reporteService services.ReporteServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reporteService: reporteService, logger: logger}
}

// GetHistorial sirve el reporte de historial como JSON o, con format=xlsx,
// como planilla descargable. Filtros: sector y solo_operativos.
func (c *ReportController) GetHistorial(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	opciones := services.OpcionesReporte{
		Sector:         strings.ToLower(ctx.QueryParam("sector")),
		SoloOperativos: ctx.QueryParam("solo_operativos") == "true",
	}
	format := strings.ToLower(ctx.QueryParam("format"))

	reporte, err := c.reporteService.GetHistorial(reqCtx, opciones)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, reporte)
	}

	return utils.SuccessResponse(ctx, reporte, "Reporte de historial generado", http.StatusOK)
}

var historialHeaders = []string{
	"Interno", "Tipo", "Marca", "Modelo", "Fecha ingreso", "Obra", "Falla reportada",
	"Estado", "Días en taller", "Pérdida estimada (USD)", "Retrabajo", "Sector", "Última acción",
}

var etapasHeaders = []string{
	"Interno", "Acción", "Fecha", "Días de etapa", "Días acumulados",
}

func filaASlice(fila dto.FilaHistorialDTO) []interface{} {
	retrabajo := "No"
	if fila.Retrabajo {
		retrabajo = "Sí"
	}
	return []interface{}{
		fila.EquipoID, fila.TipoEquipo, fila.Marca, fila.Modelo, fila.FechaIngreso,
		fila.ObraAsignada, fila.InformeFallas, fila.Estado, fila.DiasTotal,
		fila.PerdidaEstimada, retrabajo, fila.Sector, fila.UltimaAccion,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, reporte *dto.ReporteHistorialDTO) error {
	f := excelize.NewFile()

	sheet := "Historial"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &historialHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, fila := range reporte.Filas {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := filaASlice(fila)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "D", 18)
	f.SetColWidth(sheet, "F", "G", 35)
	f.SetColWidth(sheet, "J", "J", 22)
	f.SetColWidth(sheet, "M", "M", 35)

	// Hoja de etapas: el desglose de cada ingreso, fila por acción.
	etapasSheet := "Etapas"
	f.NewSheet(etapasSheet)
	f.SetSheetRow(etapasSheet, "A1", &etapasHeaders)
	f.SetCellStyle(etapasSheet, "A1", "E1", style)

	filaNro := 2
	for _, fila := range reporte.Filas {
		for _, etapa := range fila.Etapas {
			cell, _ := excelize.CoordinatesToCellName(1, filaNro)
			row := []interface{}{fila.EquipoID, etapa.Descripcion, etapa.FechaAccion, etapa.DiasEtapa, etapa.DiasAcumulados}
			f.SetSheetRow(etapasSheet, cell, &row)
			filaNro++
		}
	}
	f.SetColWidth(etapasSheet, "B", "B", 45)

	c.escribirResumen(f, style, reporte)

	fileName := fmt.Sprintf("historial_taller_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

// escribirResumen arma el bloque de KPIs de la flota en su propia hoja.
func (c *ReportController) escribirResumen(f *excelize.File, headerStyle int, reporte *dto.ReporteHistorialDTO) {
	if reporte.Resumen == nil || reporte.Resumen.Stats == nil {
		return
	}
	stats := reporte.Resumen.Stats

	sheet := "Resumen"
	f.NewSheet(sheet)

	kpis := [][]interface{}{
		{"Indicadores al", reporte.Resumen.Fecha},
		{"Ingresos totales", stats.TotalIngresos},
		{"En taller hoy", stats.EnTaller},
		{"Operativos", stats.Operativos},
		{"En prueba", stats.EnPrueba},
		{"Esperando repuestos", stats.EsperaRepuestos},
		{"En reparación", stats.EnReparacion},
		{"Estadía promedio (días)", stats.EstadiaPromedio},
		{"Pérdida total estimada (USD)", stats.PerdidaTotal},
		{"Retrabajos históricos", stats.RetrabajosHistoricos},
		{"Retrabajos en taller", stats.RetrabajosEnTaller},
		{"Espera de repuestos promedio (días)", stats.EsperaRepuestosPromedio},
	}
	for i, par := range kpis {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(sheet, cell, &par)
	}

	inicio := len(kpis) + 2
	tituloCell, _ := excelize.CoordinatesToCellName(1, inicio)
	titulo := []interface{}{"Ingresos por tipo de equipo"}
	f.SetSheetRow(sheet, tituloCell, &titulo)
	f.SetCellStyle(sheet, tituloCell, tituloCell, headerStyle)
	for i, conteo := range stats.PorTipo {
		cell, _ := excelize.CoordinatesToCellName(1, inicio+1+i)
		row := []interface{}{conteo.Tipo, conteo.Cantidad}
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "A", "A", 38)
}
