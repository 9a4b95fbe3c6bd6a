package response

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type UnitResponse struct {
	ID            string        `json:"id"`
	DevelopmentID string        `json:"development_id"`
	Name          string        `json:"name"`
	Bedrooms      int           `json:"bedrooms"`
	Bathrooms     int           `json:"bathrooms"`
	FloorAreaSqm  string        `json:"floor_area_sqm,omitempty"`
	BERRating     string        `json:"ber_rating,omitempty"`
	Price         MoneyResponse `json:"price"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func FromUnit(u entities.Unit) UnitResponse {
	return UnitResponse{
		ID:            u.ID,
		DevelopmentID: u.DevelopmentID,
		Name:          u.Name,
		Bedrooms:      u.Bedrooms,
		Bathrooms:     u.Bathrooms,
		FloorAreaSqm:  u.FloorAreaSqm,
		BERRating:     u.BERRating,
		Price:         FromMonetaryAmount(u.Price),
		Status:        string(u.Status),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func FromUnits(units []entities.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, FromUnit(u))
	}
	return out
}
