package models

import (
	"time"

	"gorm.io/datatypes"
)

// MarketSnapshot is the current market-conditions baseline. Simulations read
// it, mutate a copy and return the copy; nothing writes the mutation back.
type MarketSnapshot struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement" json:"-"`
	VolatilityIndex  float64        `gorm:"not null;default:0" json:"volatilityIndex"`
	Trend            string         `gorm:"type:varchar(50)" json:"trend"`
	Outlook          string         `gorm:"type:varchar(50)" json:"outlook"`
	AdvancingSectors datatypes.JSON `gorm:"type:jsonb" json:"advancingSectors,omitempty"`
	DecliningSectors datatypes.JSON `gorm:"type:jsonb" json:"decliningSectors,omitempty"`
	UpdatedAt        time.Time      `gorm:"type:timestamptz;autoUpdateTime" json:"updatedAt"`
}

func (MarketSnapshot) TableName() string {
	return "market_conditions"
}
