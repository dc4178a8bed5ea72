package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniformdn/orderdesk/internal/orders"
)

type stubRenderer struct {
	html string
	pdf  []byte
	err  error
}

func (s *stubRenderer) RenderHTML(_ context.Context, html string) ([]byte, error) {
	s.html = html
	return s.pdf, s.err
}

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:    "CÔNG TY TNHH DANA DESIGN",
		Brand:   "XƯỞNG MAY 2K PLUS - ĐỒNG PHỤC ĐÀ NẴNG",
		Address: "34 Bình An 7 - Hoà Cường - Tp. Đà Nẵng",
		Hotline: "(zalo) 0934 845 456 - 0905 984 026",
		Website: "dongphucdn.com",
		Email:   "dongphucdanang238@gmail.com",
	}
}

func confirmationOrder() orders.Order {
	return orders.Order{
		OrderNumber:   "DH001",
		OrderName:     "In áo thun sự kiện",
		OrderDate:     date("2025-10-01"),
		CustomerName:  "Nguyễn Văn A",
		ContactNumber: "0901234567",
		Products: []orders.ProductLine{
			{ProductName: "Áo Thun Cổ Tròn", Form: "Regular", Size: "L", Quantity: 50, Unit: "Cái",
				UnitPrice: 80000, PrintCost: 20000, TotalPrice: 100000, LineTotal: 5000000},
		},
		TotalOrderValue:        5000000,
		VAT:                    10,
		FinalAmount:            5500000,
		Deposit:                2000000,
		Payment:                500000,
		ExecutionDays:          9,
		ExpectedCompletionDate: date("2025-10-10"),
		Status:                 orders.StatusInProgress,
		Collaborator:           "Võ Đình Thắng",
	}
}

func TestConfirmationHTML(t *testing.T) {
	b := NewDocumentBuilder(testCompany(), &stubRenderer{})
	html, err := b.ConfirmationHTML(confirmationOrder())
	require.NoError(t, err)

	assert.Contains(t, html, "Xác Nhận Đơn Hàng")
	assert.Contains(t, html, "DH001")
	assert.Contains(t, html, "01/10/2025")
	assert.Contains(t, html, "CÔNG TY TNHH DANA DESIGN")
	assert.Contains(t, html, "Nguyễn Văn A")
	assert.Contains(t, html, "Võ Đình Thắng")
	assert.Contains(t, html, "Áo Thun Cổ Tròn")
	// remaining = 5.500.000 - 2.000.000 - 500.000
	assert.Contains(t, html, "3.000.000 VND")
	assert.Contains(t, html, "Ba triệu đồng")
	assert.Contains(t, html, "Khách hàng xác nhận")
}

func TestConfirmationHTMLDefaults(t *testing.T) {
	b := NewDocumentBuilder(testCompany(), &stubRenderer{})
	o := confirmationOrder()
	o.Collaborator = ""
	o.Notes = ""
	html, err := b.ConfirmationHTML(o)
	require.NoError(t, err)

	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, "Không có ghi chú.")
}

func TestConfirmationHTMLEscapesContent(t *testing.T) {
	b := NewDocumentBuilder(testCompany(), &stubRenderer{})
	o := confirmationOrder()
	o.Notes = "<script>alert(1)</script>"
	html, err := b.ConfirmationHTML(o)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestDeliveryNoteHTML(t *testing.T) {
	b := NewDocumentBuilder(testCompany(), &stubRenderer{})
	o := confirmationOrder()
	o.Products = append(o.Products, orders.ProductLine{ProductName: "Mũ Lưỡi Trai", Quantity: 100, Unit: "Cái"})

	html, err := b.DeliveryNoteHTML(o, date("2025-10-12"))
	require.NoError(t, err)

	assert.Contains(t, html, "Biên Bản Giao Hàng")
	assert.Contains(t, html, "12/10/2025")
	assert.Contains(t, html, "Tổng số sản phẩm được giao:")
	assert.Contains(t, html, ">150<")
	assert.Contains(t, html, "KCS")
	// no pricing on the handover sheet
	assert.NotContains(t, html, "VAT")
	assert.NotContains(t, html, "Đặt cọc")
}

func TestConfirmationPDFUsesRenderer(t *testing.T) {
	stub := &stubRenderer{pdf: []byte("%PDF-fake")}
	b := NewDocumentBuilder(testCompany(), stub)

	pdf, err := b.ConfirmationPDF(context.Background(), confirmationOrder())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.True(t, strings.Contains(stub.html, "DH001"))
}

func TestDocumentFilenames(t *testing.T) {
	assert.Equal(t, "XacNhan_DH_DH001.pdf", ConfirmationFilename("DH001"))
	assert.Equal(t, "GiaoHang_DH_DH001.pdf", DeliveryNoteFilename("DH001"))
}
