package response

type CreatePromotionResponse struct {
	ID int64 `json:"id"`
}
