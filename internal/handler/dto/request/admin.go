package request

type AdminLoginRequest struct {
	Pincode string `json:"pincode" binding:"required"`
}
