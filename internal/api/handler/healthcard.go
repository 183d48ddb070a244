package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/healthcard-api/internal/usecases/exporting"
	"github.com/vfg2006/healthcard-api/internal/usecases/healthchecking"
	"github.com/vfg2006/healthcard-api/pkg/apiErrors"
)

// GetHealthCard retorna o relatório de saúde da conta. Com refresh=true a
// coleta é refeita mesmo com relatório recente em cache
func GetHealthCard(service healthchecking.HealthChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetHealthCard")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		refresh := r.URL.Query().Get("refresh") == "true"

		report, err := service.GetReport(id, refresh)
		if err != nil {
			writeReportError(w, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ExportHealthCard exporta o relatório da conta em CSV ou Excel
func ExportHealthCard(service healthchecking.HealthChecker, exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportHealthCard")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		format := exporting.Format(r.URL.Query().Get("format"))
		if format == "" {
			format = exporting.FormatCSV
		}

		report, err := service.GetReport(id, false)
		if err != nil {
			writeReportError(w, id, err)
			return
		}

		content, contentType, err := exporter.Export(report, format)
		if err != nil {
			logrus.Error("Error exporting report:", err)

			if errors.Is(err, exporting.ErrUnsupportedFormat) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de exportação inválido. Valores aceitos: csv, xlsx", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporting.Filename(report, format)))

		if _, err := w.Write(content); err != nil {
			logrus.Error("Error writing export response:", err)
		}
	})
}

// writeReportError traduz os erros do caso de uso para a resposta HTTP
func writeReportError(w http.ResponseWriter, accountID string, err error) {
	logrus.Error("Error getting health report:", err)

	var reportErr *healthchecking.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), map[string]interface{}{
			"account_id": reportErr.AccountID,
			"error_type": reportErr.Err.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, healthchecking.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
			"account_id": accountID,
		})

	case errors.Is(err, healthchecking.ErrMetaIntegration) || errors.Is(err, healthchecking.ErrGoogleIntegration):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao coletar dados da plataforma de anúncios", nil)

	case errors.Is(err, healthchecking.ErrDatabaseOperation) || errors.Is(err, healthchecking.ErrSaveReport):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar relatórios no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório de saúde", nil)
	}
}
