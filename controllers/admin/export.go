package adminControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel streams the full order book as a spreadsheet.
// GET /admin/api/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("User").
			Order("created_at DESC").Find(&orders).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"OrderNumber", "Customer", "Email", "Status", "PaymentStatus",
			"PaymentMethod", "Subtotal", "Tax", "ShippingCost", "TotalAmount",
			"Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			customer, email := o.GuestName, o.GuestEmail
			if o.User != nil {
				customer, email = o.User.Name, o.User.Email
			}

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.ProductName+" "+item.Size+" x"+strconv.Itoa(item.Quantity))
			}

			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(customer)
			row.AddCell().SetValue(email)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.Tax)
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(strings.Join(lines, "; "))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to write Excel file")
			return
		}
	}
}
