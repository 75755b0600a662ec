package api

import (
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService service.AddressService
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// @Summary Get deposit addresses
// @Description Wallet addresses shown in the fee payment modal
// @Tags Addresses
// @Produce json
// @Success 200 {object} Response{data=models.DepositAddresses}
// @Failure 404 {object} Response "Deposit addresses are not configured"
// @Failure 500 {object} Response
// @Router /addresses [get]
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	addresses, err := h.addressService.GetAddresses(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve addresses")
		return
	}
	respond(c, http.StatusOK, "Deposit addresses", addresses)
}
