package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/authenticating"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/apiErrors"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// claimsFromRequest recupera as claims colocadas no contexto pelo AuthMiddleware
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// userIDFromPath extrai e converte o parâmetro :id da rota
func userIDFromPath(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		return 0, errors.New("ID do usuário não fornecido")
	}
	return strconv.Atoi(idStr)
}

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		user, err := service.GetUserProfile(id)
		if err != nil {
			logrus.WithField("user_id", id).Error("Erro ao buscar usuário: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário", nil)
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		writeJSON(w, user.Sanitize())
	}
}

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user *domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		created, err := service.CreateUser(user)
		if err != nil {
			logrus.WithField("user_email", user.Email).Error("Erro ao criar usuário: ", err)
			writeUserError(w, err, "Erro ao criar usuário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created.Sanitize()); err != nil {
			logrus.Error(err)
		}
	}
}

// ListUsers lista todos os usuários (somente administradores)
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok || !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem listar todos os usuários", nil)
			return
		}

		users, err := service.ListUser()
		if err != nil {
			logrus.Error("Erro ao buscar usuários: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		for _, u := range users {
			u.Sanitize()
		}

		writeJSON(w, users)
	}
}

// UpdateUser atualiza informações do usuário. O próprio usuário pode editar
// seu perfil; mudanças de perfil de acesso exigem administrador
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		claims, ok := claimsFromRequest(r)
		if !ok || (claims.UserID != id && !claims.IsAdmin()) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		if updateReq.RoleID != nil && !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar o tipo de usuário", nil)
			return
		}

		if err := service.UpdateUser(&updateReq); err != nil {
			logrus.WithField("user_id", id).Error("Erro ao atualizar usuário: ", err)
			writeUserError(w, err, "Erro ao atualizar usuário")
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// writeUserError traduz erros do caso de uso authenticating em respostas da API
func writeUserError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, authenticating.ErrUserAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		var authErr *authenticating.AuthError
		if errors.As(err, &authErr) {
			apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
