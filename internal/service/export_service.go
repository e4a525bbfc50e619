package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoVessels    = errors.New("当前窗口内无船舶靠泊记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 泊位计划导出为 Excel (.xlsx)，一泊位一分组，按 ETA 排序
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportBerthPlan 导出指定窗口的泊位计划为 Excel
	ExportBerthPlan(ctx context.Context, tenantID string, from, to time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportBerthPlan — 导出泊位计划为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "泊位计划"
//   - 表头: | 泊位 | 航次号 | 船名 | 类型 | 船公司 | ETA | ETD | LOA | 吃水 | 状态 |
//   - 行按 (泊位名, ETA) 排序
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportBerthPlan(ctx context.Context, tenantID string, from, to time.Time) (*bytes.Buffer, string, error) {
	filter := &repository.VesselFilter{From: &from, To: &to}
	vessels, _, err := s.repo.Vessel.List(ctx, tenantID, filter, 0, 10000)
	if err != nil {
		s.logger.Error("查询船舶列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(vessels) == 0 {
		return nil, "", ErrExportNoVessels
	}

	sort.Slice(vessels, func(i, j int) bool {
		bi, bj := "", ""
		if vessels[i].Berth != nil {
			bi = vessels[i].Berth.Name
		}
		if vessels[j].Berth != nil {
			bj = vessels[j].Berth.Name
		}
		if bi != bj {
			return bi < bj
		}
		return vessels[i].ETA.Before(vessels[j].ETA)
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "泊位计划"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	widths := map[string]float64{
		"A": 16, "B": 14, "C": 22, "D": 12, "E": 18,
		"F": 20, "G": 20, "H": 10, "I": 10, "J": 12,
	}
	for col, w := range widths {
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("泊位计划 %s — %s",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	f.MergeCell(sheetName, "A1", "J1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"泊位", "航次号", "船名", "类型", "船公司", "ETA", "ETD", "LOA (m)", "吃水 (m)", "状态"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 2), h)
		f.SetCellStyle(sheetName, cell(col, 2), cell(col, 2), headerStyle)
	}

	// 数据行
	row := 3
	for i := range vessels {
		v := &vessels[i]
		berthName := "-"
		if v.Berth != nil {
			berthName = v.Berth.Name
		}
		f.SetCellValue(sheetName, cell("A", row), berthName)
		f.SetCellValue(sheetName, cell("B", row), v.VoyageNumber)
		f.SetCellValue(sheetName, cell("C", row), v.VesselName)
		f.SetCellValue(sheetName, cell("D", row), v.VesselType)
		f.SetCellValue(sheetName, cell("E", row), v.Operator)
		f.SetCellValue(sheetName, cell("F", row), v.ETA.UTC().Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, cell("G", row), v.ETD.UTC().Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, cell("H", row), v.LOA)
		f.SetCellValue(sheetName, cell("I", row), v.Draft)
		f.SetCellValue(sheetName, cell("J", row), v.Status)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("泊位计划_%s.xlsx", from.Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
