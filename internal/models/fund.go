package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Fund is one mutual fund scheme with its static attributes, performance
// snapshot and pre-computed scoring inputs. Returns are nullable because
// young funds have no 3Y/5Y history yet.
type Fund struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SchemeCode   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"scheme_code"`
	SchemeName   string `gorm:"type:text;not null" json:"scheme_name"`
	FundHouse    string `gorm:"type:text" json:"fund_house"`
	FundCategory string `gorm:"type:varchar(100);index" json:"fund_category"`
	FundType     string `gorm:"type:varchar(100);index" json:"fund_type"`

	Returns1D        *float64 `gorm:"column:returns_1d" json:"returns_1d"`
	Returns1W        *float64 `gorm:"column:returns_1w" json:"returns_1w"`
	Returns1Y        *float64 `gorm:"column:returns_1y" json:"returns_1y"`
	Returns3Y        *float64 `gorm:"column:returns_3y" json:"returns_3y"`
	Returns5Y        *float64 `gorm:"column:returns_5y" json:"returns_5y"`
	ReturnsInception *float64 `gorm:"column:returns_inception" json:"returns_inception"`

	Volatility   float64 `gorm:"not null;default:0" json:"volatility"`
	ExpenseRatio float64 `gorm:"not null;default:0" json:"expense_ratio"`
	RiskLevel    string  `gorm:"type:varchar(50)" json:"risk"`

	ManagerChanged   bool           `gorm:"not null;default:false" json:"managerChanged"`
	SectorAllocation datatypes.JSON `gorm:"type:jsonb" json:"sectorAllocation,omitempty"`

	RollingReturnScore float64 `gorm:"not null;default:0" json:"rollingReturnScore"`
	ConsistencyScore   float64 `gorm:"not null;default:0" json:"consistencyScore"`

	// TotalScore is the persisted score written by the refresh job. It stays
	// nullable so unscored funds can be filtered out of ranked listings.
	TotalScore *float64 `gorm:"index" json:"total_score"`

	FundRating *int             `gorm:"default:null" json:"fund_rating,omitempty"`
	AUM        *decimal.Decimal `gorm:"type:numeric(30,10)" json:"aum,omitempty"`

	ScoreUpdated *time.Time `gorm:"type:timestamptz" json:"score_updated,omitempty"`
	LastUpdated  time.Time  `gorm:"type:timestamptz;autoUpdateTime" json:"last_updated"`

	// Derived at read time, never persisted.
	CalculatedScore float64 `gorm:"-" json:"calculatedScore"`
	Mood            string  `gorm:"-" json:"mood,omitempty"`
}

func (Fund) TableName() string {
	return "funds"
}
