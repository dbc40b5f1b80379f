package dto

import (
	"github.com/rnozawa/fanbox-dl/internal/model"
)

// JSONPlanList is the plan.listSupporting response envelope.
type JSONPlanList struct {
	Body []JSONPlan `json:"body"`
}

// JSONPlan represents one supported plan.
type JSONPlan struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Fee       int      `json:"fee"`
	CreatorID string   `json:"creatorId"`
	User      JSONUser `json:"user"`
}

// JSONUser is the creator account attached to a plan.
type JSONUser struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// ToArtist converts a JSONPlan to a model.Artist.
func (jp *JSONPlan) ToArtist() *model.Artist {
	return &model.Artist{
		Name:       jp.User.Name,
		PlanTitle:  jp.Title,
		UserID:     jp.User.UserID,
		CreatorID:  jp.CreatorID,
		PledgedFee: jp.Fee,
	}
}
