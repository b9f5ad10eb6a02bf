package handler

import (
	"net/http"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/scheduler"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStatusRefresh = "status-refresh"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	StatusRefreshService *scheduler.StatusRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := claimsFromRequest(r)
		if !ok || !userClaims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStatusRefresh:
			if services.StatusRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de status não disponível", nil)
				return
			}

			summary, err := services.StatusRefreshService.RefreshStatuses()
			if err != nil {
				logrus.WithError(err).Error("Erro na execução manual da varredura de status")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar varredura de status", nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(summary); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
		}
	}
}

// GetCronStatus retorna o estado atual dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]interface{}{}

		if services.StatusRefreshService != nil {
			status[CronJobTypeStatusRefresh] = services.StatusRefreshService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
