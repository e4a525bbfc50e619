package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/internal/model"
)

func TestExportBerthPlan(t *testing.T) {
	repo, _, vesselRepo := newTestRepo()
	seedTestBerth(repo, "berth-1", 400, f64Ptr(16.5))

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	vesselRepo.vessels["tenant-1:2026-001-E"] = &model.Vessel{
		VesselID:     "v-1",
		TenantID:     "tenant-1",
		VoyageNumber: "2026-001-E",
		VesselName:   "MSC Hamburg Express",
		VesselType:   model.VesselTypeContainer,
		Operator:     "MSC",
		BerthID:      "berth-1",
		ETA:          eta,
		ETD:          eta.Add(12 * time.Hour),
		LOA:          366,
		Draft:        15.2,
		Status:       model.StatusConfirmed,
	}

	svc := NewExportService(repo, zap.NewNop())
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	buf, filename, err := svc.ExportBerthPlan(context.Background(), "tenant-1", from, to)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("期望 .xlsx 文件名，实际=%s", filename)
	}

	// 读回文件校验内容
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	defer f.Close()

	voyage, err := f.GetCellValue("泊位计划", "B3")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if voyage != "2026-001-E" {
		t.Errorf("期望 B3=2026-001-E，实际=%s", voyage)
	}
}

func TestExportBerthPlan_EmptyWindow(t *testing.T) {
	repo, _, _ := newTestRepo()
	seedTestBerth(repo, "berth-1", 400, f64Ptr(16.5))
	svc := NewExportService(repo, zap.NewNop())

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.ExportBerthPlan(context.Background(), "tenant-1", from, from.AddDate(0, 0, 7))
	if !errors.Is(err, ErrExportNoVessels) {
		t.Errorf("空窗口应报无记录错误，实际=%v", err)
	}
}
