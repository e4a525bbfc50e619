package model

// Berth 泊位表 — 对应 berths
// 泊位通过 terminal_id 外键归属于唯一码头
// 不变式：length_m > 0；max_draft 若存在则 > 0（由 CHECK 约束与 Service 层双重保证）
type Berth struct {
	BerthID    string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"berth_id"`
	TerminalID string   `gorm:"type:uuid;not null"                             json:"terminal_id"`
	Name       string   `gorm:"type:varchar(100);not null"                     json:"name"`
	LengthM    float64  `gorm:"type:numeric(7,2);not null"                     json:"length_m"`
	MaxDraft   *float64 `gorm:"type:numeric(5,2)"                              json:"max_draft,omitempty"`
	Position   *int     `gorm:"type:smallint"                                  json:"position,omitempty"` // 时间线展示排序
	IsActive   bool     `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	// 关联
	Terminal *Terminal `gorm:"foreignKey:TerminalID;references:TerminalID" json:"terminal,omitempty"`
}

// TableName 指定表名
func (Berth) TableName() string { return "berths" }
