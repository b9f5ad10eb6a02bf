package campaigning

import (
	"fmt"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/config"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/statusing"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/apiErrors"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Limite de cópias por requisição de duplicação em massa
const maxDuplicateCopies = 20

// CampaignResult devolve a campanha gravada e, quando houver, o aviso
// informativo da política de status (ex.: SCHEDULED degradado para PLANNED)
type CampaignResult struct {
	Campaign *domain.Campaign `json:"campaign"`
	Notice   string           `json:"notice,omitempty"`
}

type CampaignService interface {
	CreateCampaign(request *domain.CreateCampaignRequest) (*CampaignResult, error)
	UpdateCampaign(request *domain.UpdateCampaignRequest) (*CampaignResult, error)
	GetCampaign(id string) (*domain.Campaign, error)
	ListCampaigns(filter domain.CampaignFilter) ([]*domain.Campaign, error)
	DeleteCampaign(id string) error
	DuplicateCampaign(id string, request *domain.DuplicateCampaignRequest) (*domain.DuplicateCampaignResponse, error)
	StatusOptions(startDate, endDate string) ([]domain.StatusOption, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	cfg                *config.Config
	now                func() time.Time
}

func NewService(campaignRepository repository.CampaignRepository, cfg *config.Config) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		cfg:                cfg,
		now:                time.Now,
	}
}

func (s *Service) CreateCampaign(request *domain.CreateCampaignRequest) (*CampaignResult, error) {
	if request.Name == "" || request.BrandID == "" || request.ManagerID == "" ||
		request.RegionID == "" || request.Channel == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"Nome, marca, gestor, região e canal são obrigatórios")
	}

	if request.Budget < 0 {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrInvalidFormat,
			"A verba da campanha não pode ser negativa")
	}

	startDate, endDate, err := parseDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, err.Error())
	}

	status := request.Status
	if status == "" {
		status = domain.CampaignStatusPlanned
	}
	if !status.IsCanonical() {
		return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Status %q não é válido para novas campanhas", status))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer,
			"Falha ao gerar identificador único para campanha")
	}

	campaign := &domain.Campaign{
		ID:                id,
		Name:              request.Name,
		BrandID:           request.BrandID,
		ManagerID:         request.ManagerID,
		RegionID:          request.RegionID,
		Channel:           request.Channel,
		BroadcasterID:     request.BroadcasterID,
		Status:            status,
		StartDate:         startDate,
		EndDate:           endDate,
		Budget:            request.Budget,
		ExtraSocialBudget: request.ExtraSocialBudget,
		ExpectedGrps:      request.ExpectedGrps,
		SpotsPurchased:    request.SpotsPurchased,
		Notes:             request.Notes,
	}

	// A política de status roda antes de toda escrita
	resolution := statusing.ResolveDisplayStatus(campaign, s.now())
	campaign.Status = resolution.Status

	if err := s.campaignRepository.Create(campaign); err != nil {
		logrus.WithError(err).Error("Erro ao gravar campanha no banco de dados")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
			"Falha ao gravar campanha no banco de dados")
	}

	return &CampaignResult{Campaign: campaign, Notice: resolution.Notice}, nil
}

func (s *Service) UpdateCampaign(request *domain.UpdateCampaignRequest) (*CampaignResult, error) {
	if request.ID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData,
			"O ID da campanha é obrigatório")
	}

	campaign, err := s.campaignRepository.GetByID(request.ID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation,
			request.ID, "Falha ao consultar campanha no banco de dados")
	}
	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound,
			request.ID, "")
	}

	// Códigos legados armazenados são convertidos em toda leitura
	campaign.Status = statusing.MigrateLegacyStatus(campaign.Status)

	if err := s.applyUpdate(campaign, request); err != nil {
		return nil, err
	}

	resolution := statusing.ResolveDisplayStatus(campaign, s.now())
	campaign.Status = resolution.Status

	if err := s.campaignRepository.Update(campaign); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao atualizar campanha")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
			campaign.ID, "Falha ao atualizar campanha no banco de dados")
	}

	return &CampaignResult{Campaign: campaign, Notice: resolution.Notice}, nil
}

func (s *Service) applyUpdate(campaign *domain.Campaign, request *domain.UpdateCampaignRequest) error {
	if request.Name != nil {
		campaign.Name = *request.Name
	}

	if request.BrandID != nil {
		campaign.BrandID = *request.BrandID
	}

	if request.ManagerID != nil {
		campaign.ManagerID = *request.ManagerID
	}

	if request.RegionID != nil {
		campaign.RegionID = *request.RegionID
	}

	if request.Channel != nil {
		campaign.Channel = *request.Channel
	}

	if request.BroadcasterID != nil {
		campaign.BroadcasterID = request.BroadcasterID
	}

	if request.Status != nil {
		if !request.Status.IsCanonical() {
			return NewCampaignErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidFormat,
				campaign.ID, fmt.Sprintf("Status %q não é válido", *request.Status))
		}
		campaign.Status = *request.Status
	}

	// String vazia limpa a data; campo ausente mantém o valor atual
	if request.StartDate != nil {
		startDate, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return NewCampaignErrorWithID(ErrInvalidDateRange, apiErrors.ErrInvalidFormat,
				campaign.ID, fmt.Sprintf("Data de início inválida: %q", *request.StartDate))
		}
		campaign.StartDate = startDate
	}

	if request.EndDate != nil {
		endDate, err := utils.ParseDate(*request.EndDate)
		if err != nil {
			return NewCampaignErrorWithID(ErrInvalidDateRange, apiErrors.ErrInvalidFormat,
				campaign.ID, fmt.Sprintf("Data de término inválida: %q", *request.EndDate))
		}
		campaign.EndDate = endDate
	}

	if request.Budget != nil {
		if *request.Budget < 0 {
			return NewCampaignErrorWithID(ErrMissingRequiredData, apiErrors.ErrInvalidFormat,
				campaign.ID, "A verba da campanha não pode ser negativa")
		}
		campaign.Budget = *request.Budget
	}

	if request.ExtraSocialBudget != nil {
		campaign.ExtraSocialBudget = request.ExtraSocialBudget
	}

	if request.ExpectedGrps != nil {
		campaign.ExpectedGrps = request.ExpectedGrps
	}

	if request.AchievedGrps != nil {
		campaign.AchievedGrps = request.AchievedGrps
	}

	if request.SpotsPurchased != nil {
		campaign.SpotsPurchased = request.SpotsPurchased
	}

	if request.Impressions != nil {
		campaign.Impressions = request.Impressions
	}

	if request.Leads != nil {
		campaign.Leads = request.Leads
	}

	if request.CostPerLead != nil {
		campaign.CostPerLead = request.CostPerLead
	}

	if request.Notes != nil {
		campaign.Notes = request.Notes
	}

	return nil
}

func (s *Service) GetCampaign(id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData,
			"O ID da campanha é obrigatório")
	}

	campaign, err := s.campaignRepository.GetByID(id)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation,
			id, "Falha ao consultar campanha no banco de dados")
	}
	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, id, "")
	}

	campaign.Status = statusing.MigrateLegacyStatus(campaign.Status)

	return campaign, nil
}

func (s *Service) ListCampaigns(filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.List(filter)
	if err != nil {
		return nil, NewCampaignError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation,
			"Falha ao listar campanhas no banco de dados")
	}

	for _, campaign := range campaigns {
		migrated := statusing.MigrateLegacyStatus(campaign.Status)
		if migrated != campaign.Status {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"raw_status":  campaign.Status,
			}).Debug("Status legado convertido na leitura")
			campaign.Status = migrated
		}
	}

	return campaigns, nil
}

func (s *Service) DeleteCampaign(id string) error {
	if id == "" {
		return NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData,
			"O ID da campanha é obrigatório")
	}

	if err := s.campaignRepository.Delete(id); err != nil {
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
			id, "Falha ao excluir campanha no banco de dados")
	}

	return nil
}

// DuplicateCampaign cria cópias da campanha com identificadores novos.
// Campos de planejamento são copiados; métricas realizadas (GRPs
// alcançados, impressões, leads, CPL) são zeradas e o status é derivado
// novamente das datas copiadas.
func (s *Service) DuplicateCampaign(id string, request *domain.DuplicateCampaignRequest) (*domain.DuplicateCampaignResponse, error) {
	source, err := s.GetCampaign(id)
	if err != nil {
		return nil, err
	}

	copies := request.Copies
	if copies <= 0 {
		copies = 1
	}
	if copies > maxDuplicateCopies {
		return nil, NewCampaignErrorWithID(ErrInvalidCopiesNumber, apiErrors.ErrInvalidFormat,
			id, fmt.Sprintf("O máximo de cópias por requisição é %d", maxDuplicateCopies))
	}

	now := s.now()
	created := make([]string, 0, copies)

	for i := 1; i <= copies; i++ {
		copyID, err := utils.GenerateID()
		if err != nil {
			return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer,
				"Falha ao gerar identificador único para cópia")
		}

		duplicate := &domain.Campaign{
			ID:                copyID,
			Name:              duplicateName(source.Name, request.NameSuffix, i, copies),
			BrandID:           source.BrandID,
			ManagerID:         source.ManagerID,
			RegionID:          source.RegionID,
			Channel:           source.Channel,
			BroadcasterID:     source.BroadcasterID,
			Status:            domain.CampaignStatusPlanned,
			StartDate:         source.StartDate,
			EndDate:           source.EndDate,
			Budget:            source.Budget,
			ExtraSocialBudget: source.ExtraSocialBudget,
			ExpectedGrps:      source.ExpectedGrps,
			SpotsPurchased:    source.SpotsPurchased,
			Notes:             source.Notes,
		}

		resolution := statusing.ResolveDisplayStatus(duplicate, now)
		duplicate.Status = resolution.Status

		if err := s.campaignRepository.Create(duplicate); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"source_id": id,
				"copy":      i,
			}).Error("Erro ao gravar cópia de campanha")
			return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
				id, fmt.Sprintf("Falha ao gravar a cópia %d de %d", i, copies))
		}

		created = append(created, copyID)
	}

	return &domain.DuplicateCampaignResponse{
		Quantity:  len(created),
		Campaigns: created,
		Message:   fmt.Sprintf("%d cópia(s) criada(s) com sucesso", len(created)),
	}, nil
}

func duplicateName(name string, suffix *string, index, total int) string {
	if suffix != nil && *suffix != "" {
		if total > 1 {
			return fmt.Sprintf("%s %s %d", name, *suffix, index)
		}
		return fmt.Sprintf("%s %s", name, *suffix)
	}

	if total > 1 {
		return fmt.Sprintf("%s (cópia %d)", name, index)
	}
	return fmt.Sprintf("%s (cópia)", name)
}

// StatusOptions monta o seletor de status do formulário: SCHEDULED só é
// oferecido quando as datas o permitem; os demais status são livres
func (s *Service) StatusOptions(startDate, endDate string) ([]domain.StatusOption, error) {
	start, end, err := parseDates(&startDate, &endDate)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, err.Error())
	}

	eligible := statusing.IsScheduledEligible(start, end)

	options := []domain.StatusOption{
		{Status: domain.CampaignStatusPlanned, Available: true},
		{Status: domain.CampaignStatusScheduled, Available: eligible},
		{Status: domain.CampaignStatusActive, Available: true},
		{Status: domain.CampaignStatusCompleted, Available: true},
		{Status: domain.CampaignStatusCancelled, Available: true},
	}

	if !eligible {
		options[1].Reason = "Datas válidas são obrigatórias para o status Agendada"
	}

	return options, nil
}

func parseDates(startDate, endDate *string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if startDate != nil {
		parsed, err := utils.ParseDate(*startDate)
		if err != nil {
			return nil, nil, fmt.Errorf("data de início inválida: %q", *startDate)
		}
		start = parsed
	}

	if endDate != nil {
		parsed, err := utils.ParseDate(*endDate)
		if err != nil {
			return nil, nil, fmt.Errorf("data de término inválida: %q", *endDate)
		}
		end = parsed
	}

	return start, end, nil
}
