package campaigning

import (
	"testing"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository/mocks"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/statusing"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestService(repo *mocks.MockCampaignRepository) *Service {
	return &Service{
		campaignRepository: repo,
		now:                func() time.Time { return testNow },
	}
}

func stringPtr(s string) *string {
	return &s
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestService_CreateCampaign(t *testing.T) {
	tests := []struct {
		name           string
		request        *domain.CreateCampaignRequest
		setup          func(repo *mocks.MockCampaignRepository)
		expectedErr    error
		expectedStatus domain.CampaignStatus
		expectedNotice string
	}{
		{
			name: "campanha sem nome é rejeitada",
			request: &domain.CreateCampaignRequest{
				BrandID:   "BRD001",
				ManagerID: "MGR001",
				RegionID:  "REG001",
				Channel:   domain.ChannelMeta,
			},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "verba negativa é rejeitada",
			request: &domain.CreateCampaignRequest{
				Name:      "Campanha Meta",
				BrandID:   "BRD001",
				ManagerID: "MGR001",
				RegionID:  "REG001",
				Channel:   domain.ChannelMeta,
				Budget:    -100,
			},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "status legado é rejeitado na escrita",
			request: &domain.CreateCampaignRequest{
				Name:      "Campanha Meta",
				BrandID:   "BRD001",
				ManagerID: "MGR001",
				RegionID:  "REG001",
				Channel:   domain.ChannelMeta,
				Status:    domain.LegacyStatusPending,
			},
			expectedErr: ErrInvalidStatus,
		},
		{
			name: "data inválida é rejeitada",
			request: &domain.CreateCampaignRequest{
				Name:      "Campanha Meta",
				BrandID:   "BRD001",
				ManagerID: "MGR001",
				RegionID:  "REG001",
				Channel:   domain.ChannelMeta,
				StartDate: stringPtr("15/01/2025"),
			},
			expectedErr: ErrInvalidDateRange,
		},
		{
			name: "período em curso grava como ACTIVE",
			request: &domain.CreateCampaignRequest{
				Name:      "Campanha Meta",
				BrandID:   "BRD001",
				ManagerID: "MGR001",
				RegionID:  "REG001",
				Channel:   domain.ChannelMeta,
				StartDate: stringPtr("2025-01-01"),
				EndDate:   stringPtr("2025-01-31"),
				Budget:    5000,
			},
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().Create(gomock.Any()).Return(nil)
			},
			expectedStatus: domain.CampaignStatusActive,
		},
		{
			name: "SCHEDULED sem datas degrada para PLANNED com aviso",
			request: &domain.CreateCampaignRequest{
				Name:      "Campanha TV",
				BrandID:   "BRD001",
				ManagerID: "MGR001",
				RegionID:  "REG001",
				Channel:   domain.ChannelTV,
				Status:    domain.CampaignStatusScheduled,
			},
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().Create(gomock.Any()).Return(nil)
			},
			expectedStatus: domain.CampaignStatusPlanned,
			expectedNotice: statusing.ScheduledDatesNotice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCampaignRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := newTestService(repo)
			result, err := service.CreateCampaign(tt.request)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, result.Campaign.ID)
			assert.Equal(t, tt.expectedStatus, result.Campaign.Status)
			assert.Equal(t, tt.expectedNotice, result.Notice)
		})
	}
}

func TestService_UpdateCampaign(t *testing.T) {
	existing := func() *domain.Campaign {
		return &domain.Campaign{
			ID:        "CMP001",
			Name:      "Campanha Meta",
			BrandID:   "BRD001",
			ManagerID: "MGR001",
			RegionID:  "REG001",
			Channel:   domain.ChannelMeta,
			Status:    domain.CampaignStatusActive,
			StartDate: utils.DatePtr(2025, 1, 1),
			EndDate:   utils.DatePtr(2025, 1, 31),
			Budget:    5000,
		}
	}

	t.Run("sem ID é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := newTestService(mocks.NewMockCampaignRepository(ctrl))
		_, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{})

		assert.ErrorIs(t, err, ErrCampaignIDRequired)
	})

	t.Run("campanha inexistente retorna not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP404").Return(nil, nil)

		service := newTestService(repo)
		_, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{ID: "CMP404"})

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("string vazia limpa a data e o status degrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(existing(), nil)

		var saved *domain.Campaign
		repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
			saved = c
			return nil
		})

		service := newTestService(repo)
		result, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{
			ID:      "CMP001",
			EndDate: stringPtr(""),
		})

		assert.NoError(t, err)
		assert.Nil(t, saved.EndDate)
		assert.Equal(t, domain.CampaignStatusPlanned, result.Campaign.Status)
	})

	t.Run("status legado no pedido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(existing(), nil)

		service := newTestService(repo)
		legacy := domain.LegacyStatusOK
		_, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{
			ID:     "CMP001",
			Status: &legacy,
		})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("CANCELLED manual sobrevive à política de status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(existing(), nil)
		repo.EXPECT().Update(gomock.Any()).Return(nil)

		service := newTestService(repo)
		cancelled := domain.CampaignStatusCancelled
		result, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{
			ID:     "CMP001",
			Status: &cancelled,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusCancelled, result.Campaign.Status)
	})
}

func TestService_GetCampaign(t *testing.T) {
	t.Run("status legado é convertido na leitura", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(&domain.Campaign{
			ID:     "CMP001",
			Status: domain.LegacyStatusLoaded,
		}, nil)

		service := newTestService(repo)
		campaign, err := service.GetCampaign("CMP001")

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusScheduled, campaign.Status)
	})

	t.Run("campanha inexistente retorna not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP404").Return(nil, nil)

		service := newTestService(repo)
		_, err := service.GetCampaign("CMP404")

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestService_DuplicateCampaign(t *testing.T) {
	source := func() *domain.Campaign {
		return &domain.Campaign{
			ID:             "CMP001",
			Name:           "TV Nacional",
			BrandID:        "BRD001",
			ManagerID:      "MGR001",
			RegionID:       "REG001",
			Channel:        domain.ChannelTV,
			Status:         domain.CampaignStatusCompleted,
			StartDate:      utils.DatePtr(2024, 12, 1),
			EndDate:        utils.DatePtr(2024, 12, 31),
			Budget:         80000,
			ExpectedGrps:   floatPtr(120),
			AchievedGrps:   floatPtr(95),
			SpotsPurchased: intPtr(300),
			Leads:          intPtr(450),
			CostPerLead:    floatPtr(177.7),
		}
	}

	t.Run("cópia única zera métricas realizadas e deriva o status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(source(), nil)

		var saved *domain.Campaign
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
			saved = c
			return nil
		})

		service := newTestService(repo)
		response, err := service.DuplicateCampaign("CMP001", &domain.DuplicateCampaignRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.Quantity)
		assert.Len(t, response.Campaigns, 1)

		assert.NotEqual(t, "CMP001", saved.ID)
		assert.Equal(t, "TV Nacional (cópia)", saved.Name)

		// planejamento é copiado, realizado não
		assert.Equal(t, source().Budget, saved.Budget)
		assert.Equal(t, source().ExpectedGrps, saved.ExpectedGrps)
		assert.Nil(t, saved.AchievedGrps)
		assert.Nil(t, saved.Leads)
		assert.Nil(t, saved.CostPerLead)
		assert.Nil(t, saved.Impressions)

		// período de dezembro já encerrado no now de referência
		assert.Equal(t, domain.CampaignStatusCompleted, saved.Status)
	})

	t.Run("múltiplas cópias numeram o nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(source(), nil)

		names := make([]string, 0, 3)
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
			names = append(names, c.Name)
			return nil
		}).Times(3)

		service := newTestService(repo)
		response, err := service.DuplicateCampaign("CMP001", &domain.DuplicateCampaignRequest{Copies: 3})

		assert.NoError(t, err)
		assert.Equal(t, 3, response.Quantity)
		assert.Equal(t, []string{
			"TV Nacional (cópia 1)",
			"TV Nacional (cópia 2)",
			"TV Nacional (cópia 3)",
		}, names)
	})

	t.Run("sufixo customizado substitui o padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(source(), nil)

		var saved *domain.Campaign
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
			saved = c
			return nil
		})

		service := newTestService(repo)
		_, err := service.DuplicateCampaign("CMP001", &domain.DuplicateCampaignRequest{
			Copies:     1,
			NameSuffix: stringPtr("Janeiro"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "TV Nacional Janeiro", saved.Name)
	})

	t.Run("acima do limite de cópias é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID("CMP001").Return(source(), nil)

		service := newTestService(repo)
		_, err := service.DuplicateCampaign("CMP001", &domain.DuplicateCampaignRequest{Copies: 21})

		assert.ErrorIs(t, err, ErrInvalidCopiesNumber)
	})
}

func TestService_StatusOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockCampaignRepository(ctrl))

	t.Run("datas válidas liberam SCHEDULED", func(t *testing.T) {
		options, err := service.StatusOptions("2025-02-01", "2025-02-28")

		assert.NoError(t, err)
		assert.Len(t, options, 5)

		for _, option := range options {
			assert.True(t, option.Available, "status %s deveria estar disponível", option.Status)
		}
	})

	t.Run("sem datas SCHEDULED fica indisponível com motivo", func(t *testing.T) {
		options, err := service.StatusOptions("", "")

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusScheduled, options[1].Status)
		assert.False(t, options[1].Available)
		assert.NotEmpty(t, options[1].Reason)
	})

	t.Run("datas invertidas bloqueiam SCHEDULED", func(t *testing.T) {
		options, err := service.StatusOptions("2025-02-28", "2025-02-01")

		assert.NoError(t, err)
		assert.False(t, options[1].Available)
	})
}
