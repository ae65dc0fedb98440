package catalogControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/lcvaldiviag/STREAMIX-sub000/catalog"
)

// GET /admin/catalog/export
func ExportCatalogToExcel(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Catalog")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Kind", "Name", "Category",
			"PriceUSD", "PriceBS", "SoldOut", "IncludedNames",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, item := range items {
			row := sheet.AddRow()

			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(string(item.Kind))
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Category)
			row.AddCell().SetValue(item.PriceUSD)
			row.AddCell().SetValue(item.PriceBS)
			row.AddCell().SetValue(item.SoldOut)
			row.AddCell().SetValue(strings.Join(item.IncludedNames, ", "))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=catalog.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
