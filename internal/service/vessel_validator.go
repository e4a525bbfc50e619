package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
)

// voyageNumberPattern 航次号格式：YYYY-###-[E|W|N|S]，如 2024-001-E
var voyageNumberPattern = regexp.MustCompile(`^\d{4}-\d{3}-[EWNS]$`)

// ValidateOptions 校验选项
type ValidateOptions struct {
	IsUpdate            bool
	ExcludeVoyageNumber string // 更新时排除自身旧航次号的唯一性检查
	VoyageNumberExists  func(voyageNumber string) (bool, error)
}

// ValidateVesselDraft 船舶草稿字段校验引擎
// 逐项检查并累积全部错误（不短路），调用方需要完整错误清单用于表单展示
// ETA 早于当前时间仅记录日志，不构成校验失败
func ValidateVesselDraft(draft *dto.VesselDraft, opts *ValidateOptions, logger *zap.Logger) []string {
	var errs []string

	// 1-3. 航次号：非空 → 格式 → 租户内唯一
	voyage := trimmed(draft.VoyageNumber)
	if voyage == "" {
		errs = append(errs, "航次号不能为空")
	} else if !voyageNumberPattern.MatchString(voyage) {
		errs = append(errs, "航次号格式无效，应为 YYYY-###-方向，如 2024-001-E")
	} else if opts != nil && opts.VoyageNumberExists != nil && voyage != opts.ExcludeVoyageNumber {
		exists, err := opts.VoyageNumberExists(voyage)
		if err != nil {
			errs = append(errs, "航次号唯一性检查失败，请稍后重试")
		} else if exists {
			errs = append(errs, fmt.Sprintf("航次号 %s 已被其他船舶使用", voyage))
		}
	}

	// 4. 船名非空
	if trimmed(draft.VesselName) == "" {
		errs = append(errs, "船名不能为空")
	}

	// 5. ETA / ETD 必填且格式合法
	eta, etaErr := parseDraftTime(draft.ETA)
	if etaErr != "" {
		errs = append(errs, "ETA "+etaErr)
	}
	etd, etdErr := parseDraftTime(draft.ETD)
	if etdErr != "" {
		errs = append(errs, "ETD "+etdErr)
	}

	// 6. 码头与船舶类型
	if trimmed(draft.TerminalID) == "" {
		errs = append(errs, "必须选择码头")
	}
	vesselType := trimmed(draft.VesselType)
	if vesselType == "" {
		errs = append(errs, "必须选择船舶类型")
	} else if !isValidVesselType(vesselType) {
		errs = append(errs, fmt.Sprintf("船舶类型 %s 无效", vesselType))
	}

	if trimmed(draft.BerthID) == "" {
		errs = append(errs, "必须选择泊位")
	}

	// 7. LOA > 0
	if draft.LOA == nil {
		errs = append(errs, "船长（LOA）不能为空")
	} else if *draft.LOA <= 0 {
		errs = append(errs, "船长（LOA）必须大于 0")
	}

	// 8. 吃水 > 0
	if draft.Draft == nil {
		errs = append(errs, "吃水不能为空")
	} else if *draft.Draft <= 0 {
		errs = append(errs, "吃水必须大于 0")
	}

	// 9. ETA 严格早于 ETD
	if etaErr == "" && etdErr == "" {
		if !eta.Before(etd) {
			errs = append(errs, "ETA 必须早于 ETD")
		}
		// 10. ETA 早于当前时间：仅告警，不阻断
		if eta.Before(time.Now()) && logger != nil {
			logger.Warn("船舶草稿 ETA 早于当前时间",
				zap.String("voyage_number", voyage),
				zap.Time("eta", eta))
		}
	}

	// 更新时校验状态字段
	if opts != nil && opts.IsUpdate && draft.Status != nil {
		if !isValidStatus(*draft.Status) {
			errs = append(errs, fmt.Sprintf("状态 %s 无效", *draft.Status))
		}
	}

	return errs
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// parseDraftTime 解析 RFC3339 时间字段，返回错误描述（空串表示成功）
func parseDraftTime(s *string) (time.Time, string) {
	v := trimmed(s)
	if v == "" {
		return time.Time{}, "不能为空"
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, "格式无效，应为 RFC3339"
	}
	return t, ""
}

func isValidVesselType(t string) bool {
	for _, v := range model.VesselTypes {
		if v == t {
			return true
		}
	}
	return false
}

func isValidStatus(s string) bool {
	switch s {
	case model.StatusPlanned, model.StatusConfirmed, model.StatusAtBerth,
		model.StatusCompleted, model.StatusDelayed, model.StatusCancelled:
		return true
	}
	return false
}
