package handler

import (
	"net/http"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Handlers de dados de referência: listas somente-leitura usadas pelos
// filtros e formulários do dashboard

func ListBrands(repo repository.ReferenceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brands, err := repo.ListBrands()
		if err != nil {
			logrus.Error("Error listing brands:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar marcas", nil)
			return
		}

		writeJSON(w, brands)
	})
}

func ListManagers(repo repository.ReferenceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		managers, err := repo.ListManagers()
		if err != nil {
			logrus.Error("Error listing managers:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar gestores", nil)
			return
		}

		writeJSON(w, managers)
	})
}

func ListRegions(repo repository.ReferenceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		regions, err := repo.ListRegions()
		if err != nil {
			logrus.Error("Error listing regions:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar regiões", nil)
			return
		}

		writeJSON(w, regions)
	})
}

func ListChannels(repo repository.ReferenceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channels, err := repo.ListChannels()
		if err != nil {
			logrus.Error("Error listing channels:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar canais", nil)
			return
		}

		writeJSON(w, channels)
	})
}

func ListBroadcasters(repo repository.ReferenceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		broadcasters, err := repo.ListBroadcasters(r.URL.Query().Get("channel"))
		if err != nil {
			logrus.Error("Error listing broadcasters:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar emissoras", nil)
			return
		}

		writeJSON(w, broadcasters)
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
