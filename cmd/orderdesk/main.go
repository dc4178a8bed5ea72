package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/uniformdn/orderdesk/internal/app"
	"github.com/uniformdn/orderdesk/internal/customers"
	"github.com/uniformdn/orderdesk/internal/insights"
	"github.com/uniformdn/orderdesk/internal/orders"
	"github.com/uniformdn/orderdesk/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("orderdesk failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	store := orders.NewStore(seedOrders(), "Võ Đình Thắng", "Tâm Phúc Việt")
	logger.Info("store ready",
		slog.Int("orders", len(store.Orders())),
		slog.Int("collaborators", len(store.Collaborators())),
	)

	now := time.Now()

	roster := customers.Aggregate(store.Orders(), now)
	for _, c := range roster {
		logger.Info("customer",
			slog.String("code", c.CustomerCode),
			slog.String("name", c.Name),
			slog.Int("orders", c.TotalOrders),
			slog.Int64("spent", c.TotalSpent),
			slog.Int("points", c.MembershipPoints),
		)
	}

	summary := insights.Summarize(store.Orders())
	logger.Info("dashboard",
		slog.Int("orders", summary.TotalOrders),
		slog.Int64("revenue", summary.TotalRevenue),
		slog.Int64("deposit", summary.TotalDeposit),
		slog.Int64("debt", summary.TotalDebt),
	)

	if err := exportOrders(cfg, store, now, logger); err != nil {
		return err
	}

	renderDocuments(cfg, store, logger)
	return nil
}

func exportOrders(cfg *app.Config, store *orders.Store, now time.Time, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(cfg.ExportDir, report.ExportFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	list := orders.Filter(store.Orders(), "", orders.StatusAll)
	if err := report.WriteOrdersCSV(f, list); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	logger.Info("orders exported", slog.String("path", path), slog.Int("orders", len(list)))
	return nil
}

// renderDocuments produces a sample confirmation PDF when a Gotenberg
// instance is reachable. Skipped silently otherwise; the CSV export is
// the only artifact the run depends on.
func renderDocuments(cfg *app.Config, store *orders.Store, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := report.NewClient(cfg.GotenbergURL)
	if err := client.Ping(ctx); err != nil {
		logger.Warn("gotenberg unavailable, skipping pdf render", slog.Any("error", err))
		return
	}

	builder := report.NewDocumentBuilder(report.CompanyInfo{
		Name:    cfg.CompanyName,
		Brand:   cfg.CompanyBrand,
		Address: cfg.CompanyAddress,
		Hotline: cfg.CompanyHotline,
		Website: cfg.CompanyWebsite,
		Email:   cfg.CompanyEmail,
		LogoURL: cfg.CompanyLogoURL,
	}, client)

	for _, o := range store.Recent(1) {
		pdf, err := builder.ConfirmationPDF(ctx, o)
		if err != nil {
			logger.Error("render confirmation", slog.String("order", o.OrderNumber), slog.Any("error", err))
			continue
		}
		path := filepath.Join(cfg.ExportDir, report.ConfirmationFilename(o.OrderNumber))
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			logger.Error("write confirmation", slog.String("path", path), slog.Any("error", err))
			continue
		}
		logger.Info("confirmation rendered", slog.String("path", path))
	}
}

// seedOrders is the demo dataset loaded when the process starts with
// no persisted state.
func seedOrders() []orders.Order {
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []orders.Order{
		{
			ID:          "1",
			OrderNumber: "DH001",
			OrderName:   "In áo thun sự kiện",
			OrderDate:   date("2025-10-01"),

			CustomerName:  "Nguyễn Văn A",
			ContactNumber: "0901234567",
			Products: []orders.ProductLine{
				{
					ID: "p1-1", ProductName: "Áo Thun Cổ Tròn", Form: "Regular", Size: "L",
					Quantity: 50, Unit: "Cái", FabricColor: "Trắng", FabricCode: "CT01",
					RibColor: "Trắng", RibThread: "Trắng", PrintType: "In lụa",
					UnitPrice: 80000, PrintCost: 20000, TotalPrice: 100000, LineTotal: 5000000,
					Notes: "Logo trước ngực",
				},
			},
			TotalOrderValue: 5000000, VAT: 10, FinalAmount: 5500000,
			Deposit: 2000000, Payment: 3500000, RemainingDebt: 0,
			ExecutionDays:          9,
			ExpectedCompletionDate: date("2025-10-10"),
			ActualCompletionDate:   date("2025-10-09"),
			Status:                 orders.StatusDelivered,
			Notes:                  "In logo trước ngực",
			Collaborator:           "Võ Đình Thắng",
			DiscountApplied:        true,
		},
		{
			ID:          "2",
			OrderNumber: "DH002",
			OrderName:   "Thêu sơ mi đồng phục",
			OrderDate:   date("2025-10-05"),

			CustomerName:  "Trần Thị B",
			ContactNumber: "0987654321",
			Products: []orders.ProductLine{
				{
					ID: "p2-1", ProductName: "Áo Sơ Mi Nam", Form: "Slimfit", Size: "M",
					Quantity: 10, Unit: "Cái", FabricColor: "Xanh da trời", FabricCode: "KT05",
					RibColor: "N/A", RibThread: "N/A", PrintType: "Thêu logo",
					UnitPrice: 220000, PrintCost: 30000, TotalPrice: 250000, LineTotal: 2500000,
					Notes: "Logo tay áo trái",
				},
				{
					ID: "p2-2", ProductName: "Áo Sơ Mi Nữ", Form: "Regular", Size: "S",
					Quantity: 10, Unit: "Cái", FabricColor: "Xanh da trời", FabricCode: "KT05",
					RibColor: "N/A", RibThread: "N/A", PrintType: "Thêu logo",
					UnitPrice: 220000, PrintCost: 30000, TotalPrice: 250000, LineTotal: 2500000,
					Notes: "Logo tay áo trái",
				},
			},
			TotalOrderValue: 5000000, VAT: 0, FinalAmount: 5000000,
			Deposit: 1500000, RemainingDebt: 3500000,
			ExecutionDays:          10,
			ExpectedCompletionDate: date("2025-10-15"),
			Status:                 orders.StatusInProgress,
			Notes:                  "Thêu logo tay áo trái",
			Collaborator:           "Tâm Phúc Việt",
		},
		{
			ID:          "3",
			OrderNumber: "DH003",
			OrderName:   "In mũ quảng cáo",
			OrderDate:   date("2025-10-08"),

			CustomerName:  "Lê Văn C",
			ContactNumber: "0912345678",
			Products: []orders.ProductLine{
				{
					ID: "p3-1", ProductName: "Mũ Lưỡi Trai", Form: "Standard", Size: "Free",
					Quantity: 100, Unit: "Cái", FabricColor: "Đen", FabricCode: "KK01",
					RibColor: "N/A", RibThread: "N/A", PrintType: "In decal",
					UnitPrice: 35000, PrintCost: 10000, TotalPrice: 45000, LineTotal: 4500000,
				},
			},
			TotalOrderValue: 4500000, VAT: 10, FinalAmount: 4950000,
			Deposit: 2000000, RemainingDebt: 2950000,
			ExecutionDays:          12,
			ExpectedCompletionDate: date("2025-10-20"),
			ActualCompletionDate:   date("2025-10-22"),
			Status:                 orders.StatusCompleted,
			Collaborator:           "Võ Đình Thắng",
		},
		{
			ID:          "4",
			OrderNumber: "DH004",
			OrderName:   "In áo khoác nhóm",
			OrderDate:   date("2025-10-11"),

			CustomerName:  "Nguyễn Văn A",
			ContactNumber: "0901234567",
			Products: []orders.ProductLine{
				{
					ID: "p4-1", ProductName: "Áo Khoác Gió", Form: "Unisex", Size: "L",
					Quantity: 30, Unit: "Cái", FabricColor: "Xanh rêu", FabricCode: "DU03",
					RibColor: "Đen", RibThread: "Đen", PrintType: "In phản quang",
					UnitPrice: 250000, PrintCost: 50000, TotalPrice: 300000, LineTotal: 9000000,
					Notes: "In lưng áo",
				},
			},
			TotalOrderValue: 9000000, VAT: 10, FinalAmount: 9900000,
			Deposit: 4000000, RemainingDebt: 5900000,
			ExecutionDays:          15,
			ExpectedCompletionDate: date("2025-10-26"),
			Status:                 orders.StatusPending,
			Notes:                  "In lưng áo",
			Collaborator:           "Tâm Phúc Việt",
			DiscountApplied:        true,
		},
	}
}
