package model

import "time"

// ── 船舶类型 ──

const (
	VesselTypeContainer = "Container"
	VesselTypeRoRo      = "RoRo"
	VesselTypeBulk      = "Bulk"
)

// VesselTypes 全部合法船舶类型
var VesselTypes = []string{VesselTypeContainer, VesselTypeRoRo, VesselTypeBulk}

// ── 靠泊状态 ──
// 主链：planned → confirmed → at_berth → completed
// delayed / cancelled 可从任意非终态进入

const (
	StatusPlanned   = "planned"
	StatusConfirmed = "confirmed"
	StatusAtBerth   = "at_berth"
	StatusCompleted = "completed"
	StatusDelayed   = "delayed"
	StatusCancelled = "cancelled"
)

// Vessel 船舶靠泊记录表 — 对应 vessels
// 航次号（voyage_number）为业务主键，租户内唯一，格式 YYYY-###-[E|W|N|S]
// 船舶在 [ETA, ETD) 半开区间内占用所分配的泊位
type Vessel struct {
	VesselID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vessel_id"`
	TenantID     string    `gorm:"type:uuid;not null"                             json:"tenant_id"`
	VoyageNumber string    `gorm:"type:varchar(12);not null"                      json:"voyage_number"`
	VesselName   string    `gorm:"type:varchar(100);not null"                     json:"vessel_name"`
	VesselType   string    `gorm:"type:varchar(20);not null"                      json:"vessel_type"`
	Operator     string    `gorm:"type:varchar(100)"                              json:"operator,omitempty"`
	RouteInfo    string    `gorm:"type:varchar(200)"                              json:"route_info,omitempty"`
	ETA          time.Time `gorm:"column:eta;not null"                            json:"eta"`
	ETD          time.Time `gorm:"column:etd;not null"                            json:"etd"`
	LOA          float64   `gorm:"column:loa;type:numeric(6,2);not null"          json:"loa"`
	Draft        float64   `gorm:"type:numeric(5,2);not null"                     json:"draft"`
	TerminalID   string    `gorm:"type:uuid;not null"                             json:"terminal_id"`
	BerthID      string    `gorm:"type:uuid;not null"                             json:"berth_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'planned'"    json:"status"`
	Version      int       `gorm:"not null;default:1"                             json:"version"`
	BaseModel

	// 关联
	Terminal *Terminal `gorm:"foreignKey:TerminalID;references:TerminalID" json:"terminal,omitempty"`
	Berth    *Berth    `gorm:"foreignKey:BerthID;references:BerthID"       json:"berth,omitempty"`
}

// TableName 指定表名
func (Vessel) TableName() string { return "vessels" }

// IsTerminalStatus 终态判断：completed / cancelled 之后不允许再变更状态
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// CanTransition 校验状态迁移是否合法
// 主链只能逐级前进；delayed / cancelled 可从任意非终态进入；
// delayed 可恢复到主链任意状态
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	if IsTerminalStatus(from) {
		return false
	}
	switch to {
	case StatusDelayed, StatusCancelled:
		return true
	case StatusConfirmed:
		return from == StatusPlanned || from == StatusDelayed
	case StatusAtBerth:
		return from == StatusConfirmed || from == StatusDelayed
	case StatusCompleted:
		return from == StatusAtBerth || from == StatusDelayed
	case StatusPlanned:
		return from == StatusDelayed
	default:
		return false
	}
}
