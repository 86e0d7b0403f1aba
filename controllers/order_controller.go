package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/requests"
	"github.com/LearnPlayAI/HeartCart-sub006/websocket"
)

// CreateOrder places a corporate bulk order. Prices come from the
// product rows, not from the client; inactive or out-of-stock products
// are rejected.
func CreateOrder(c *gin.Context) {
	var req requests.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var promotion *models.Promotion
	if req.PromotionCode != nil && *req.PromotionCode != "" {
		var p models.Promotion
		if err := config.DB.Where("code = ?", *req.PromotionCode).First(&p).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown promotion code"})
			return
		}
		if !p.IsRunning(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Promotion is not active"})
			return
		}
		promotion = &p
	}

	order := models.Order{
		Reference:       ulid.Make().String(),
		CompanyName:     req.CompanyName,
		VatNumber:       req.VatNumber,
		ContactPerson:   req.ContactPerson,
		Email:           req.Email,
		Phone:           req.Phone,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Status:          models.OrderStatusPending,
		Total:           decimal.Zero,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero

		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return errors.New("product not found")
			}
			if !product.IsActive {
				return errors.New("product is not available")
			}
			if product.StockQuantity < item.Quantity {
				return errors.New("insufficient stock")
			}

			unitPrice := product.Price
			if promotion != nil {
				discount := decimal.NewFromInt(int64(promotion.DiscountPercent)).Div(decimal.NewFromInt(100))
				unitPrice = unitPrice.Sub(unitPrice.Mul(discount)).Round(2)
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
			})
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))

			if err := tx.Model(&product).
				Update("stock_quantity", product.StockQuantity-item.Quantity).Error; err != nil {
				return err
			}
		}

		order.Total = total
		if promotion != nil {
			snapshot, err := json.Marshal(gin.H{
				"code":             promotion.Code,
				"discount_percent": promotion.DiscountPercent,
			})
			if err != nil {
				return err
			}
			order.PromotionSnapshot = snapshot
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	websocket.BroadcastEvent("orders", gin.H{
		"action":    "created",
		"reference": order.Reference,
		"company":   order.CompanyName,
		"total":     order.Total,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "data": order})
}

func GetOrders(c *gin.Context) {
	var orders []models.Order
	q := config.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": orders})
}

func GetOrderDetail(c *gin.Context) {
	id := c.Param("id")

	var order models.Order
	err := config.DB.Preload("Items").Preload("Items.Product").First(&order, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": order})
}

func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req requests.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		log.Printf("order status update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}

	websocket.BroadcastEvent("orders", gin.H{
		"action":    "status_changed",
		"reference": order.Reference,
		"status":    req.Status,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "data": order})
}
