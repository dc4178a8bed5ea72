// Package report produces the external artifacts of the system: the
// spreadsheet-compatible CSV export and the printable customer
// documents rendered to PDF through Gotenberg.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/uniformdn/orderdesk/internal/orders"
	"github.com/uniformdn/orderdesk/internal/shared"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

// csvHeaders is the fixed export schema. Column order is load-bearing:
// downstream spreadsheets reference columns by position.
var csvHeaders = []string{
	"Mã ĐH", "Tên Đơn Hàng", "Ngày ĐH", "Tên KH", "SĐT KH",
	"Tên sản phẩm", "Form", "Size", "Số lượng", "ĐVT", "Màu vải", "Mã vải",
	"Màu bo", "Chỉ bo", "Loại in/Thêu", "Đơn giá chưa in", "Chi phí in/Thêu",
	"Tổng giá SP", "Thành tiền SP", "Tổng Giá Trị ĐH", "VAT (%)", "Thành Tiền (sau VAT)",
	"Khuyến mãi", "Đặt cọc", "Thanh Toán", "Còn Nợ", "Số Ngày Thực Hiện", "Ngày Giao Hàng",
	"Ngày Giao Thực Tế", "Tình Trạng", "Người bán", "Chiết Khấu", "Ghi chú ĐH", "Ghi chú SP",
}

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

// writeBOM emits the UTF-8 byte order mark so Excel opens the file
// with Vietnamese text intact.
func (s *csvStreamer) writeBOM() error {
	if s == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	_, err := s.buf.WriteString("\uFEFF")
	return err
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func (s *csvStreamer) Close() error {
	return s.Flush()
}

// WriteOrdersCSV streams the order list as CSV: one row per product
// line, or a single row with blank product columns for orders without
// lines, so every order appears at least once.
func WriteOrdersCSV(w io.Writer, list []orders.Order) error {
	streamer := newCSVStreamer(w)
	if err := streamer.writeBOM(); err != nil {
		return err
	}
	if err := streamer.writeRow(csvHeaders); err != nil {
		return err
	}
	for _, o := range list {
		if o.IsPlaceholder {
			continue
		}
		if len(o.Products) == 0 {
			if err := streamer.writeRow(orderRow(o, nil)); err != nil {
				return err
			}
			continue
		}
		for i := range o.Products {
			if err := streamer.writeRow(orderRow(o, &o.Products[i])); err != nil {
				return err
			}
		}
	}
	return streamer.Close()
}

func orderRow(o orders.Order, p *orders.ProductLine) []string {
	row := make([]string, 0, len(csvHeaders))
	row = append(row,
		o.OrderNumber,
		o.OrderName,
		shared.FormatDate(o.OrderDate),
		o.CustomerName,
		o.ContactNumber,
	)
	if p != nil {
		row = append(row,
			p.ProductName,
			p.Form,
			p.Size,
			strconv.Itoa(p.Quantity),
			p.Unit,
			p.FabricColor,
			p.FabricCode,
			p.RibColor,
			p.RibThread,
			p.PrintType,
			strconv.FormatInt(p.UnitPrice, 10),
			strconv.FormatInt(p.PrintCost, 10),
			strconv.FormatInt(p.TotalPrice, 10),
			strconv.FormatInt(p.LineTotal, 10),
		)
	} else {
		row = append(row, make([]string, 14)...)
	}
	row = append(row,
		strconv.FormatInt(o.TotalOrderValue, 10),
		strconv.FormatFloat(o.VAT, 'f', -1, 64),
		strconv.FormatInt(o.FinalAmount, 10),
		strconv.FormatInt(o.Discount, 10),
		strconv.FormatInt(o.Deposit, 10),
		strconv.FormatInt(o.Payment, 10),
		strconv.FormatInt(o.RemainingDebt, 10),
		strconv.Itoa(o.ExecutionDays),
		shared.FormatDate(o.ExpectedCompletionDate),
		shared.FormatDate(o.ActualCompletionDate),
		o.Status.Label(),
		o.Collaborator,
		yesNo(o.DiscountApplied),
		o.Notes,
	)
	if p != nil {
		row = append(row, p.Notes)
	} else {
		row = append(row, "")
	}
	return row
}

func yesNo(b bool) string {
	if b {
		return "Có"
	}
	return "Không"
}

// ExportFilename stamps the download name with the export instant.
// Colons and dots are replaced so the name is filesystem-safe.
func ExportFilename(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "DanhSachDonHang_" + stamp + ".csv"
}
