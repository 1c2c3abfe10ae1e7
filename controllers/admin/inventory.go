package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdjustInventoryInput struct {
	Type     string `json:"type" binding:"required,oneof=add remove adjustment return"`
	Quantity int    `json:"quantity" binding:"required"`
	Note     string `json:"note"`
}

// POST /admin/api/variants/:id/inventory
func AdjustInventory(db *gorm.DB) gin.HandlerFunc {
	inventory := services.NewInventoryService(db)
	return func(c *gin.Context) {
		variantID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid variant ID")
			return
		}
		var input AdjustInventoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		variant, err := inventory.Adjust(uint(variantID),
			models.InventoryLogType(input.Type), input.Quantity, input.Note)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Inventory adjusted", variant)
	}
}

// GET /admin/api/variants/:id/inventory
func InventoryHistory(db *gorm.DB) gin.HandlerFunc {
	inventory := services.NewInventoryService(db)
	return func(c *gin.Context) {
		variantID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid variant ID")
			return
		}
		logs, err := inventory.History(uint(variantID))
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Inventory history fetched", logs)
	}
}
