package dto

// ── 仪表盘模块 DTO ──

// MetricsRequest 指标查询参数
// 窗口缺省为 [今日零时, +24h)
type MetricsRequest struct {
	From string `form:"from" binding:"omitempty"` // RFC3339
	To   string `form:"to"   binding:"omitempty"`
}

// DailyThroughput 单日吞吐（按 ETA 所在日历日分桶）
type DailyThroughput struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DashboardMetrics 仪表盘派生指标（按需重算，无持久状态）
type DashboardMetrics struct {
	TotalVessels      int               `json:"total_vessels"`
	UpcomingArrivals  int               `json:"upcoming_arrivals"`  // ETA 落在 (now, now+24h)
	BerthUtilization  float64           `json:"berth_utilization"`  // 百分比，[0,100]
	OperationalDelays int               `json:"operational_delays"` // status=delayed
	VesselsByType     map[string]int    `json:"vessels_by_type"`
	DailyThroughput   []DailyThroughput `json:"daily_throughput"` // 最近 7 天
	AvgTurnaroundH    float64           `json:"avg_turnaround_hours"`
}
