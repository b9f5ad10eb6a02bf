package domain

// Dados de referência consumidos somente para leitura pelas campanhas

type Brand struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Manager struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ChannelConfig descreve quais métricas opcionais se aplicam a um canal
type ChannelConfig struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Social          bool   `json:"social"`
	TracksGrps      bool   `json:"tracks_grps"`
	TracksSpots     bool   `json:"tracks_spots"`
	HasBroadcasters bool   `json:"has_broadcasters"`
}

type Broadcaster struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Active  bool   `json:"active"`
}
