package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/uniformdn/orderdesk/internal/orders"
	"github.com/uniformdn/orderdesk/internal/shared"
	"github.com/uniformdn/orderdesk/internal/vnd"
)

// CompanyInfo is the letterhead printed on every customer document.
type CompanyInfo struct {
	Name    string
	Brand   string
	Address string
	Hotline string
	Website string
	Email   string
	LogoURL string
}

// DocumentBuilder renders the two customer-facing documents. The HTML
// side is deterministic; PDF conversion goes through the Renderer.
type DocumentBuilder struct {
	company  CompanyInfo
	renderer Renderer
}

// NewDocumentBuilder wires a letterhead and a renderer together.
func NewDocumentBuilder(company CompanyInfo, renderer Renderer) *DocumentBuilder {
	return &DocumentBuilder{company: company, renderer: renderer}
}

var docFuncs = template.FuncMap{
	"money": vnd.Format,
	"vnd":   vnd.FormatVND,
	"words": vnd.InWords,
	"date":  shared.FormatDate,
	"inc":   func(i int) int { return i + 1 },
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>Xác Nhận Đơn Hàng {{.Order.OrderNumber}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 11px; color: #000; margin: 0; }
header { display: flex; justify-content: space-between; border-bottom: 2px solid #000; padding-bottom: 6px; }
h1 { font-size: 14px; text-transform: uppercase; margin: 0; }
h2 { font-size: 18px; text-transform: uppercase; color: #c00; text-align: center; margin: 0 0 4px; }
h3 { font-size: 11px; text-transform: uppercase; margin: 4px 0; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #000; padding: 3px; font-size: 10px; }
th { background: #eee; }
.num { text-align: right; }
.ctr { text-align: center; }
.cols { display: flex; justify-content: space-between; gap: 16px; }
.cols > div { flex: 1; }
.total { font-weight: bold; border-top: 1px solid #000; border-bottom: 1px solid #000; }
.due { color: #c00; font-weight: bold; }
.fin td { border: none; padding: 2px 0; }
.words { font-style: italic; text-align: right; }
footer { display: flex; justify-content: space-around; padding-top: 30px; }
footer div { text-align: center; }
.sig { font-style: italic; font-size: 10px; }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Company.Name}}</h1>
    <p><strong>{{.Company.Brand}}</strong></p>
    <p>Địa chỉ: {{.Company.Address}}</p>
    <p>Hotline: {{.Company.Hotline}}</p>
    <p>Website: {{.Company.Website}}</p>
    <p>Email: {{.Company.Email}}</p>
  </div>
  <div>
    <h2>Xác Nhận Đơn Hàng</h2>
    <p class="ctr">Mã ĐH: <strong>{{.Order.OrderNumber}}</strong></p>
    <p class="ctr">Ngày ĐH: <strong>{{date .Order.OrderDate}}</strong></p>
  </div>
  {{if .Company.LogoURL}}<div><img src="{{.Company.LogoURL}}" alt="Logo" style="max-height:80px"></div>{{end}}
</header>
<section class="cols">
  <div>
    <h3>Thông tin khách hàng</h3>
    <p>Tên Khách Hàng: <strong>{{.Order.CustomerName}}</strong></p>
    <p>Số Điện Thoại: <strong>{{.Order.ContactNumber}}</strong></p>
    <p>Người bán: <strong>{{if .Order.Collaborator}}{{.Order.Collaborator}}{{else}}N/A{{end}}</strong></p>
  </div>
  <div>
    <h3>Thông tin giao hàng</h3>
    <p>Tên đơn hàng: <strong>{{.Order.OrderName}}</strong></p>
    <p>Ngày giao hàng (dự kiến): <strong>{{date .Order.ExpectedCompletionDate}}</strong></p>
    <p>Số ngày thực hiện: <strong>{{.Order.ExecutionDays}} ngày</strong></p>
  </div>
</section>
<section>
  <h3>Chi tiết sản phẩm</h3>
  <table>
    <thead>
      <tr><th>STT</th><th>Tên sản phẩm</th><th>Form</th><th>Size</th><th>Số lượng</th><th>ĐVT</th><th>Màu vải</th><th>Mã vải</th><th>Màu bo</th><th>Chỉ bo</th><th>Loại in/Thêu</th><th>Đơn giá</th><th>CP in/thêu</th><th>Thành tiền</th></tr>
    </thead>
    <tbody>
      {{range $i, $p := .Order.Products}}
      <tr>
        <td class="ctr">{{inc $i}}</td>
        <td>{{$p.ProductName}}</td>
        <td>{{$p.Form}}</td>
        <td>{{$p.Size}}</td>
        <td class="ctr">{{$p.Quantity}}</td>
        <td>{{$p.Unit}}</td>
        <td>{{$p.FabricColor}}</td>
        <td>{{$p.FabricCode}}</td>
        <td>{{$p.RibColor}}</td>
        <td>{{$p.RibThread}}</td>
        <td>{{$p.PrintType}}</td>
        <td class="num">{{money $p.UnitPrice}}</td>
        <td class="num">{{money $p.PrintCost}}</td>
        <td class="num"><strong>{{money $p.LineTotal}}</strong></td>
      </tr>
      {{end}}
    </tbody>
  </table>
</section>
<section class="cols" style="border-top:1px solid #000; padding-top:4px">
  <div>
    <h3>Ghi chú</h3>
    <p><em>{{if .Order.Notes}}{{.Order.Notes}}{{else}}Không có ghi chú.{{end}}</em></p>
  </div>
  <div>
    <table class="fin">
      <tr><td>Tổng giá trị SP:</td><td class="num">{{vnd .Order.TotalOrderValue}}</td></tr>
      <tr><td>VAT ({{.Order.VAT}}%):</td><td class="num">{{vnd .VATAmount}}</td></tr>
      <tr class="total"><td>Thành tiền:</td><td class="num">{{vnd .Order.FinalAmount}}</td></tr>
      <tr><td>Khuyến mãi:</td><td class="num">{{vnd .Order.Discount}}</td></tr>
      <tr><td>Đặt cọc:</td><td class="num">{{vnd .Order.Deposit}}</td></tr>
      <tr class="due"><td>Còn lại:</td><td class="num">{{vnd .Remaining}}</td></tr>
    </table>
    <p class="words">({{words .Remaining}})</p>
  </div>
</section>
<footer>
  <div><p><strong>Khách hàng xác nhận</strong></p><p class="sig">(Ký và ghi rõ họ tên)</p></div>
  <div><p><strong>Người lập phiếu</strong></p><p class="sig">(Ký và ghi rõ họ tên)</p></div>
</footer>
</body>
</html>`))

var deliveryNoteTmpl = template.Must(template.New("delivery").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>Biên Bản Giao Hàng {{.Order.OrderNumber}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 11px; color: #000; margin: 0; }
header { display: flex; justify-content: space-between; border-bottom: 2px solid #000; padding-bottom: 6px; }
h1 { font-size: 14px; text-transform: uppercase; margin: 0; }
h2 { font-size: 18px; text-transform: uppercase; color: #c00; text-align: center; margin: 0 0 4px; }
h3 { font-size: 11px; text-transform: uppercase; margin: 4px 0; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #000; padding: 3px; }
th { background: #eee; }
.ctr { text-align: center; }
.num { text-align: right; }
tfoot td { font-weight: bold; }
footer { display: flex; justify-content: space-around; padding-top: 60px; }
footer div { text-align: center; }
.sig { font-style: italic; font-size: 10px; }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Company.Name}}</h1>
    <p><strong>{{.Company.Brand}}</strong></p>
    <p>Địa chỉ: {{.Company.Address}}</p>
    <p>Hotline: {{.Company.Hotline}}</p>
    <p>Website: {{.Company.Website}}</p>
    <p>Email: {{.Company.Email}}</p>
  </div>
  <div>
    <h2>Biên Bản Giao Hàng</h2>
    <p class="ctr">Mã ĐH: <strong>{{.Order.OrderNumber}}</strong></p>
    <p class="ctr">Ngày Giao: <strong>{{date .DeliveryDate}}</strong></p>
  </div>
  {{if .Company.LogoURL}}<div><img src="{{.Company.LogoURL}}" alt="Logo" style="max-height:80px"></div>{{end}}
</header>
<section>
  <h3>Thông tin khách hàng</h3>
  <p>Tên Khách Hàng: <strong>{{.Order.CustomerName}}</strong></p>
  <p>Số Điện Thoại: <strong>{{.Order.ContactNumber}}</strong></p>
  <p>Tên đơn hàng: <strong>{{.Order.OrderName}}</strong></p>
</section>
<section>
  <h3>Chi tiết sản phẩm</h3>
  <table>
    <thead>
      <tr><th>STT</th><th>Loại sản phẩm</th><th>Form</th><th>Size</th><th>Số lượng</th><th>Đơn vị tính</th></tr>
    </thead>
    <tbody>
      {{range $i, $p := .Order.Products}}
      <tr>
        <td class="ctr">{{inc $i}}</td>
        <td>{{$p.ProductName}}</td>
        <td class="ctr">{{$p.Form}}</td>
        <td class="ctr">{{$p.Size}}</td>
        <td class="ctr"><strong>{{$p.Quantity}}</strong></td>
        <td class="ctr">{{$p.Unit}}</td>
      </tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr><td colspan="4" class="num">Tổng số sản phẩm được giao:</td><td class="ctr">{{.TotalQuantity}}</td><td></td></tr>
    </tfoot>
  </table>
</section>
<footer>
  <div><p><strong>Người nhận</strong></p><p class="sig">(Ký và ghi rõ họ tên)</p></div>
  <div><p><strong>Người giao hàng</strong></p><p class="sig">(Ký và ghi rõ họ tên)</p></div>
  <div><p><strong>KCS</strong></p><p class="sig">(Ký và ghi rõ họ tên)</p></div>
</footer>
</body>
</html>`))

type confirmationData struct {
	Company   CompanyInfo
	Order     orders.Order
	VATAmount int64
	Remaining int64
}

type deliveryData struct {
	Company       CompanyInfo
	Order         orders.Order
	DeliveryDate  time.Time
	TotalQuantity int
}

// ConfirmationHTML renders the order confirmation sheet the customer
// signs before production starts.
func (b *DocumentBuilder) ConfirmationHTML(o orders.Order) (string, error) {
	data := confirmationData{
		Company:   b.company,
		Order:     o,
		VATAmount: o.FinalAmount - o.TotalOrderValue,
		Remaining: o.FinalAmount - o.Discount - o.Deposit - o.Payment,
	}
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}

// DeliveryNoteHTML renders the handover sheet, stamped with the
// delivery date rather than the order date.
func (b *DocumentBuilder) DeliveryNoteHTML(o orders.Order, deliveryDate time.Time) (string, error) {
	total := 0
	for _, p := range o.Products {
		total += p.Quantity
	}
	data := deliveryData{
		Company:       b.company,
		Order:         o,
		DeliveryDate:  deliveryDate,
		TotalQuantity: total,
	}
	var buf bytes.Buffer
	if err := deliveryNoteTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render delivery note: %w", err)
	}
	return buf.String(), nil
}

// ConfirmationPDF renders the confirmation sheet to PDF via Gotenberg.
func (b *DocumentBuilder) ConfirmationPDF(ctx context.Context, o orders.Order) ([]byte, error) {
	html, err := b.ConfirmationHTML(o)
	if err != nil {
		return nil, err
	}
	return b.renderer.RenderHTML(ctx, html)
}

// DeliveryNotePDF renders the delivery note to PDF via Gotenberg.
func (b *DocumentBuilder) DeliveryNotePDF(ctx context.Context, o orders.Order, deliveryDate time.Time) ([]byte, error) {
	html, err := b.DeliveryNoteHTML(o, deliveryDate)
	if err != nil {
		return nil, err
	}
	return b.renderer.RenderHTML(ctx, html)
}

// ConfirmationFilename names the confirmation download for one order.
func ConfirmationFilename(orderNumber string) string {
	return fmt.Sprintf("XacNhan_DH_%s.pdf", orderNumber)
}

// DeliveryNoteFilename names the delivery note download for one order.
func DeliveryNoteFilename(orderNumber string) string {
	return fmt.Sprintf("GiaoHang_DH_%s.pdf", orderNumber)
}
