package handler

import (
	"net/http"
	"strings"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/campaigning"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/apiErrors"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := campaignFilterFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaigns, err := service.ListCampaigns(filter)
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeCampaignError(w, err, "Erro ao listar campanhas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(id)
		if err != nil {
			logrus.Error("Error getting campaign:", err)
			writeCampaignError(w, err, "Erro ao consultar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.CreateCampaign(&request)
		if err != nil {
			logrus.Error("Error creating campaign:", pkgerrors.Wrap(err, "create campaign"))
			writeCampaignError(w, err, "Erro ao criar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		request.ID = id

		result, err := service.UpdateCampaign(&request)
		if err != nil {
			logrus.Error("Error updating campaign:", pkgerrors.Wrap(err, "update campaign"))
			writeCampaignError(w, err, "Erro ao atualizar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(id); err != nil {
			logrus.Error("Error deleting campaign:", err)
			writeCampaignError(w, err, "Erro ao excluir campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DuplicateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.DuplicateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		response, err := service.DuplicateCampaign(id, &request)
		if err != nil {
			logrus.Error("Error duplicating campaign:", pkgerrors.Wrap(err, "duplicate campaign"))
			writeCampaignError(w, err, "Erro ao duplicar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CampaignStatusOptions devolve os status selecionáveis para o par de
// datas informado no formulário
func CampaignStatusOptions(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		options, err := service.StatusOptions(startDate, endDate)
		if err != nil {
			writeCampaignError(w, err, "Erro ao montar opções de status")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(options); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeCampaignError traduz erros do caso de uso para a resposta da API
func writeCampaignError(w http.ResponseWriter, err error, fallback string) {
	var campaignErr *campaigning.CampaignError
	if pkgerrors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func campaignFilterFromQuery(r *http.Request) (domain.CampaignFilter, error) {
	filter := domain.CampaignFilter{}
	query := r.URL.Query()

	if rawStatus := query.Get("status"); rawStatus != "" {
		for _, status := range strings.Split(rawStatus, ",") {
			filter.Statuses = append(filter.Statuses, domain.CampaignStatus(status))
		}
	}

	if brandID := query.Get("brand_id"); brandID != "" {
		filter.BrandID = &brandID
	}

	if managerID := query.Get("manager_id"); managerID != "" {
		filter.ManagerID = &managerID
	}

	if regionID := query.Get("region_id"); regionID != "" {
		filter.RegionID = &regionID
	}

	if channel := query.Get("channel"); channel != "" {
		filter.Channel = &channel
	}

	periodFrom, err := utils.ParseDate(query.Get("period_from"))
	if err != nil {
		return filter, pkgerrors.Wrap(err, "período inicial inválido")
	}
	filter.PeriodFrom = periodFrom

	periodTo, err := utils.ParseDate(query.Get("period_to"))
	if err != nil {
		return filter, pkgerrors.Wrap(err, "período final inválido")
	}
	filter.PeriodTo = periodTo

	return filter, nil
}
