package utils

import "time"

// ParseDate converte "2006-01-02" em data; string vazia vira nil (data
// ausente), nunca a data zero
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DatePtr é um auxiliar para montar datas opcionais em literais
func DatePtr(year int, month time.Month, day int) *time.Time {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &date
}
