package models

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	// Fallback names the recommendation tier that produced the payload when
	// the primary source failed. Degraded data is still a success.
	Fallback string `json:"fallback,omitempty"`
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Total    int    `json:"total,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

// RejectionResponse surfaces a local validation rejection. The rejection is
// the payload so clients can branch on its code and remaining count.
func RejectionResponse(rej *ValidationRejection) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   rej.Message,
		Data:    rej,
	}
}

// DegradedResponse tags a successful result that came from a fallback tier.
func DegradedResponse(data interface{}, tier, message string) ApiResponse {
	return ApiResponse{
		Success:  true,
		Data:     data,
		Message:  message,
		Fallback: tier,
	}
}

func PaginatedResponse(data interface{}, page, limit, total int) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Page:    page,
		Limit:   limit,
		Total:   total,
	}
}
