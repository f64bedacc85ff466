package dto

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func Fail(err string) Response {
	return Response{Success: false, Error: err}
}

// NewPagination fills the pagination block; totalPages is
// ceil(total/limit).
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
