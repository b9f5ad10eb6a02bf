package handler

import (
	"net/http"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/reporting"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func GetDashboardSummary(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := campaignFilterFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.DashboardSummary(filter)
		if err != nil {
			logrus.Error("Error building dashboard summary:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetDashboardAlerts(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := campaignFilterFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		alerts, err := service.DashboardAlerts(filter)
		if err != nil {
			logrus.Error("Error building dashboard alerts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar alertas do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
