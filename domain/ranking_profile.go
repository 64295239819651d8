package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.ranking_profiles (
//     name        TEXT PRIMARY KEY,
//     weights     JSONB NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ DEFAULT NOW()
// );

// RankingProfile is a named set of raw weights used when a request carries none.
type RankingProfile struct {
	Name      string            `gorm:"column:name;primaryKey" json:"name"`
	Weights   datatypes.JSONMap `gorm:"column:weights;type:jsonb;not null" json:"weights"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RankingProfile) TableName() string {
	return "ranking_profiles"
}
